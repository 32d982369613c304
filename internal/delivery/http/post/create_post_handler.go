package post_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/delivery/http/flash"
	"inkwell-blog-service/internal/delivery/http/forms"
	"inkwell-blog-service/internal/delivery/http/middleware"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/model"
)

type PostCreator interface {
	CreatePost(ctx context.Context, viewer *model.Viewer, post *model.CreatePostDTO) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
	log         *logger.Logger
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate, log *logger.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

// ShowForm renders an empty editor. Viewers who cannot manage posts get the
// same not found page the detail view gives them for hidden posts.
func (h *CreatePostHandler) ShowForm(c *gin.Context) {
	viewer := middleware.ViewerFromContext(c)
	if !viewer.CanManagePosts() {
		renderNotFound(c)
		return
	}

	render(c, http.StatusOK, "post_form.html", gin.H{
		"Form":   &forms.PostForm{},
		"Action": "/posts",
	})
}

func (h *CreatePostHandler) Handle(c *gin.Context) {
	viewer := middleware.ViewerFromContext(c)
	if !viewer.CanManagePosts() {
		renderNotFound(c)
		return
	}

	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Debug("Failed to bind post form", slog.String("error", err.Error()))
		renderNotFound(c)
		return
	}

	if fieldErrors := form.Validate(h.validate); fieldErrors != nil {
		render(c, http.StatusUnprocessableEntity, "post_form.html", gin.H{
			"Form":   &form,
			"Action": "/posts",
			"Errors": fieldErrors,
		})
		return
	}

	created, err := h.postService.CreatePost(c.Request.Context(), viewer, form.CreateDTO())
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			renderNotFound(c)
			return
		}
		h.log.Error("Failed to create post", slog.String("error", err.Error()))
		renderInternalError(c)
		return
	}

	flash.Success(c, "Post created.")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d", created.ID))
}
