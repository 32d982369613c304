package post_service

import (
	"context"

	"inkwell-blog-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/post --outpkg mocks --filename PostService.go
type Service interface {
	CreatePost(ctx context.Context, viewer *model.Viewer, post *model.CreatePostDTO) (*model.Post, error)
	GetPostByID(ctx context.Context, viewer *model.Viewer, id int64) (*model.PostDetailed, error)
	ListPosts(ctx context.Context, viewer *model.Viewer, query string, pageToken string) (*model.PostPage, error)
	UpdatePost(ctx context.Context, viewer *model.Viewer, id int64, update *model.UpdatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, viewer *model.Viewer, id int64) error
}
