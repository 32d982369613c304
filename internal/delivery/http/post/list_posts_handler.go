package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell-blog-service/internal/delivery/http/middleware"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/model"
)

type PostLister interface {
	ListPosts(ctx context.Context, viewer *model.Viewer, query string, pageToken string) (*model.PostPage, error)
}

type ListPostsHandler struct {
	postService PostLister
	log         *logger.Logger
}

func NewListPostsHandler(postService PostLister, log *logger.Logger) *ListPostsHandler {
	return &ListPostsHandler{
		postService: postService,
		log:         log,
	}
}

func (h *ListPostsHandler) Handle(c *gin.Context) {
	viewer := middleware.ViewerFromContext(c)

	page, err := h.postService.ListPosts(c.Request.Context(), viewer, c.Query("q"), c.Query("page"))
	if err != nil {
		h.log.Error("Failed to list posts", slog.String("error", err.Error()))
		renderInternalError(c)
		return
	}

	render(c, http.StatusOK, "post_list.html", gin.H{
		"Posts": page.Posts,
		"Page":  page.Page,
		"Query": page.Query,
	})
}
