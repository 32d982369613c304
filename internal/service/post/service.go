package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/metrics"
	"inkwell-blog-service/internal/model"
	"inkwell-blog-service/internal/pagination"
	post_repository "inkwell-blog-service/internal/repository/post"
	user_repository "inkwell-blog-service/internal/repository/user"
)

type PostService struct {
	postRepo post_repository.Repository
	userRepo user_repository.Repository
	log      *logger.Logger
	metrics  metrics.Provider
	clock    func() time.Time
}

// NewPostService wires the listing and mutation logic. clock supplies "now"
// for the publish-date gate; pass nil to use wall time.
func NewPostService(
	postRepo post_repository.Repository,
	userRepo user_repository.Repository,
	log *logger.Logger,
	metrics metrics.Provider,
	clock func() time.Time,
) *PostService {
	if clock == nil {
		clock = time.Now
	}
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		log:      log,
		metrics:  metrics,
		clock:    clock,
	}
}

func (s *PostService) today() pgtype.Date {
	now := s.clock().UTC()
	return pgtype.Date{
		Time:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Valid: true,
	}
}

func (s *PostService) CreatePost(ctx context.Context, viewer *model.Viewer, post *model.CreatePostDTO) (*model.Post, error) {
	// Unprivileged callers get the not-found error so the admin surface
	// stays indistinguishable from a missing page.
	if !viewer.CanManagePosts() {
		s.log.Debug("Create post denied", slog.Bool("anonymous", viewer == nil))
		s.metrics.IncrementPostOperations("create", false)
		return nil, custom_errors.ErrPostNotFound
	}

	newPost := &model.Post{
		AuthorID: viewer.ID,
		Title:    post.Title,
		Content:  post.Content,
		Image:    post.Image,
		Publish:  post.Publish,
		Draft:    post.Draft,
	}

	created, err := s.postRepo.Create(ctx, newPost)
	if err != nil {
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("create", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("create", true)
	return created, nil
}

func (s *PostService) GetPostByID(ctx context.Context, viewer *model.Viewer, id int64) (*model.PostDetailed, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.Int64("id", id))
			s.metrics.IncrementPostOperations("get", false)
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id",
				slog.String("error", err.Error()),
				slog.Int64("id", id))
			s.metrics.IncrementPostOperations("get", false)
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	// Hidden posts answer not-found rather than forbidden, so their
	// existence never leaks to unprivileged viewers.
	if post.HiddenOn(s.today().Time) && !viewer.SeesHidden() {
		s.log.Debug("Hidden post requested without privilege", slog.Int64("id", id))
		s.metrics.IncrementPostOperations("get", false)
		return nil, custom_errors.ErrPostNotFound
	}

	author, err := s.userRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			s.log.Debug("Author not found", slog.Int64("author_id", post.AuthorID))
			s.metrics.IncrementPostOperations("get", false)
			return nil, custom_errors.ErrUserNotFound
		default:
			s.log.Error("Failed to get author",
				slog.String("error", err.Error()),
				slog.Int64("author_id", post.AuthorID))
			s.metrics.IncrementPostOperations("get", false)
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	s.metrics.IncrementPostOperations("get", true)
	return &model.PostDetailed{Post: post, Author: author}, nil
}

// ListPosts runs the listing pipeline in a fixed order: visibility gating,
// then search, then pagination. Searching an ungated set would leak hidden
// posts; paginating before search would miscount pages.
func (s *PostService) ListPosts(ctx context.Context, viewer *model.Viewer, query string, pageToken string) (*model.PostPage, error) {
	filters := model.PostFilters{}

	if !viewer.SeesHidden() {
		today := s.today()
		filters.VisibleOn = &today
	}
	if query != "" {
		search := query
		filters.Search = &search
	}

	total, err := s.postRepo.Count(ctx, filters)
	if err != nil {
		s.log.Error("Failed to count posts", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("list", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	page := pagination.Resolve(pageToken, total, pagination.DefaultPageSize)

	limit := page.Limit()
	offset := page.Offset()
	filters.Limit = &limit
	filters.Offset = &offset

	posts, err := s.postRepo.List(ctx, filters)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("list", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	result := make([]*model.PostDetailed, 0, len(posts))
	for _, post := range posts {
		author, err := s.userRepo.GetByID(ctx, post.AuthorID)
		if err != nil {
			switch {
			case errors.Is(err, custom_errors.ErrUserNotFound):
				s.log.Debug("Author not found", slog.Int64("author_id", post.AuthorID), slog.Int64("post_id", post.ID))
				s.metrics.IncrementPostOperations("list", false)
				return nil, custom_errors.ErrUserNotFound
			default:
				s.log.Error("Failed to get author", slog.String("error", err.Error()), slog.Int64("author_id", post.AuthorID))
				s.metrics.IncrementPostOperations("list", false)
				return nil, custom_errors.ErrDatabaseQuery
			}
		}
		result = append(result, &model.PostDetailed{Post: post, Author: author})
	}

	s.metrics.IncrementPostOperations("list", true)
	return &model.PostPage{Posts: result, Page: page, Query: query}, nil
}

func (s *PostService) UpdatePost(ctx context.Context, viewer *model.Viewer, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	if !viewer.CanManagePosts() {
		s.log.Debug("Update post denied", slog.Int64("id", id))
		s.metrics.IncrementPostOperations("update", false)
		return nil, custom_errors.ErrPostNotFound
	}

	updated, err := s.postRepo.Update(ctx, id, update)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			s.metrics.IncrementPostOperations("update", false)
			return nil, custom_errors.ErrPostNotFound
		case errors.Is(err, custom_errors.ErrNoUpdateRows):
			s.metrics.IncrementPostOperations("update", false)
			return nil, custom_errors.ErrNoUpdateRows
		default:
			s.log.Error("Failed to update post", slog.String("error", err.Error()), slog.Int64("id", id))
			s.metrics.IncrementPostOperations("update", false)
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	s.metrics.IncrementPostOperations("update", true)
	return updated, nil
}

func (s *PostService) DeletePost(ctx context.Context, viewer *model.Viewer, id int64) error {
	if !viewer.CanManagePosts() {
		s.log.Debug("Delete post denied", slog.Int64("id", id))
		s.metrics.IncrementPostOperations("delete", false)
		return custom_errors.ErrPostNotFound
	}

	err := s.postRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found for delete", slog.Int64("id", id))
			s.metrics.IncrementPostOperations("delete", false)
			return custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to delete post", slog.String("error", err.Error()), slog.Int64("id", id))
			s.metrics.IncrementPostOperations("delete", false)
			return custom_errors.ErrDatabaseQuery
		}
	}

	s.metrics.IncrementPostOperations("delete", true)
	return nil
}
