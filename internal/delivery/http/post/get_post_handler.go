package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/delivery/http/middleware"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/model"
)

type PostGetter interface {
	GetPostByID(ctx context.Context, viewer *model.Viewer, id int64) (*model.PostDetailed, error)
}

type GetPostHandler struct {
	postService PostGetter
	validate    *validator.Validate
	log         *logger.Logger
}

func NewGetPostHandler(postService PostGetter, validate *validator.Validate, log *logger.Logger) *GetPostHandler {
	return &GetPostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type GetPostRequestInternal struct {
	PostID int64 `validate:"required,gt=0"`
}

func (h *GetPostHandler) Handle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		renderNotFound(c)
		return
	}

	if err := h.validate.Struct(&GetPostRequestInternal{PostID: id}); err != nil {
		renderNotFound(c)
		return
	}

	viewer := middleware.ViewerFromContext(c)

	detailed, err := h.postService.GetPostByID(c.Request.Context(), viewer, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			renderNotFound(c)
			return
		}
		h.log.Error("Failed to get post", slog.String("error", err.Error()), slog.Int64("post_id", id))
		renderInternalError(c)
		return
	}

	render(c, http.StatusOK, "post_detail.html", gin.H{
		"Post":       detailed.Post,
		"Author":     detailed.Author,
		"ShareQuery": url.QueryEscape(detailed.Post.Content),
	})
}
