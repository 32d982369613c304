package post_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/delivery/http/flash"
	"inkwell-blog-service/internal/delivery/http/forms"
	"inkwell-blog-service/internal/delivery/http/middleware"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/model"
)

type PostEditor interface {
	GetPostByID(ctx context.Context, viewer *model.Viewer, id int64) (*model.PostDetailed, error)
	UpdatePost(ctx context.Context, viewer *model.Viewer, id int64, update *model.UpdatePostDTO) (*model.Post, error)
}

type UpdatePostHandler struct {
	postService PostEditor
	validate    *validator.Validate
	log         *logger.Logger
}

func NewUpdatePostHandler(postService PostEditor, validate *validator.Validate, log *logger.Logger) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

func (h *UpdatePostHandler) ShowForm(c *gin.Context) {
	viewer := middleware.ViewerFromContext(c)
	if !viewer.CanManagePosts() {
		renderNotFound(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		renderNotFound(c)
		return
	}

	detailed, err := h.postService.GetPostByID(c.Request.Context(), viewer, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			renderNotFound(c)
			return
		}
		h.log.Error("Failed to get post for edit", slog.String("error", err.Error()), slog.Int64("post_id", id))
		renderInternalError(c)
		return
	}

	render(c, http.StatusOK, "post_form.html", gin.H{
		"Form":   forms.FromPost(detailed.Post),
		"Action": fmt.Sprintf("/posts/%d", id),
	})
}

func (h *UpdatePostHandler) Handle(c *gin.Context) {
	viewer := middleware.ViewerFromContext(c)
	if !viewer.CanManagePosts() {
		renderNotFound(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
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
			"Action": fmt.Sprintf("/posts/%d", id),
			"Errors": fieldErrors,
		})
		return
	}

	updated, err := h.postService.UpdatePost(c.Request.Context(), viewer, id, form.UpdateDTO())
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			renderNotFound(c)
			return
		}
		h.log.Error("Failed to update post", slog.String("error", err.Error()), slog.Int64("post_id", id))
		renderInternalError(c)
		return
	}

	flash.Success(c, "Post updated.")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d", updated.ID))
}
