package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/delivery/http/flash"
	"inkwell-blog-service/internal/delivery/http/middleware"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/model"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, viewer *model.Viewer, id int64) error
}

type DeletePostHandler struct {
	postService PostDeleter
	validate    *validator.Validate
	log         *logger.Logger
}

func NewDeletePostHandler(postService PostDeleter, validate *validator.Validate, log *logger.Logger) *DeletePostHandler {
	return &DeletePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type DeletePostRequestInternal struct {
	PostID int64 `validate:"required,gt=0"`
}

func (h *DeletePostHandler) Handle(c *gin.Context) {
	viewer := middleware.ViewerFromContext(c)
	if !viewer.CanManagePosts() {
		renderNotFound(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		renderNotFound(c)
		return
	}

	if err := h.validate.Struct(&DeletePostRequestInternal{PostID: id}); err != nil {
		renderNotFound(c)
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), viewer, id); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			renderNotFound(c)
			return
		}
		h.log.Error("Failed to delete post", slog.String("error", err.Error()), slog.Int64("post_id", id))
		renderInternalError(c)
		return
	}

	flash.Success(c, "Post deleted.")
	c.Redirect(http.StatusSeeOther, "/")
}
