package post_service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/logger"
	prometheus_metrics "inkwell-blog-service/internal/metrics/prometheus"
	"inkwell-blog-service/internal/model"
	post_repository_mock "inkwell-blog-service/mocks/post"
	user_repository_mock "inkwell-blog-service/mocks/user"
)

var testNow = time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func dateOf(t time.Time) pgtype.Date {
	return pgtype.Date{
		Time:  time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		Valid: true,
	}
}

func newTestService(postRepo *post_repository_mock.Repository, userRepo *user_repository_mock.Repository) *PostService {
	log := logger.New("test")
	metrics := prometheus_metrics.NewMetricsProvider()
	return NewPostService(postRepo, userRepo, log, metrics, testClock)
}

var (
	anonymous     *model.Viewer
	staffOnly     = &model.Viewer{ID: 2, Username: "staff", IsStaff: true}
	superuserOnly = &model.Viewer{ID: 3, Username: "root", IsSuperuser: true}
	admin         = &model.Viewer{ID: 1, Username: "admin", IsStaff: true, IsSuperuser: true}
)

func TestPostService_CreatePost(t *testing.T) {
	dto := &model.CreatePostDTO{
		Title:   "New Post",
		Content: "Body",
		Publish: dateOf(testNow),
	}

	tests := []struct {
		name        string
		viewer      *model.Viewer
		mocks       func(postRepo *post_repository_mock.Repository)
		wantErr     error
		wantAuthor  int64
	}{
		{
			name:   "success binds author to the viewer",
			viewer: admin,
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
					return p.AuthorID == admin.ID && p.Title == "New Post"
				})).Return(&model.Post{ID: 10, AuthorID: admin.ID, Title: "New Post"}, nil)
			},
			wantAuthor: admin.ID,
		},
		{
			name:    "anonymous viewer gets not found",
			viewer:  anonymous,
			mocks:   func(postRepo *post_repository_mock.Repository) {},
			wantErr: custom_errors.ErrPostNotFound,
		},
		{
			name:    "staff without superuser gets not found",
			viewer:  staffOnly,
			mocks:   func(postRepo *post_repository_mock.Repository) {},
			wantErr: custom_errors.ErrPostNotFound,
		},
		{
			name:    "superuser without staff gets not found",
			viewer:  superuserOnly,
			mocks:   func(postRepo *post_repository_mock.Repository) {},
			wantErr: custom_errors.ErrPostNotFound,
		},
		{
			name:   "repository error",
			viewer: admin,
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).
					Return(nil, custom_errors.ErrDatabaseQuery)
			},
			wantErr: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_repository_mock.Repository)
			userRepo := new(user_repository_mock.Repository)
			tt.mocks(postRepo)
			service := newTestService(postRepo, userRepo)

			got, err := service.CreatePost(context.Background(), tt.viewer, dto)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantAuthor, got.AuthorID)
			}
			postRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_GetPostByID(t *testing.T) {
	author := &model.User{ID: 1, Username: "admin", FirstName: "Ada", LastName: "Lovelace"}

	publicPost := &model.Post{ID: 1, AuthorID: 1, Title: "Public", Publish: dateOf(testNow.AddDate(0, 0, -7))}
	todayPost := &model.Post{ID: 2, AuthorID: 1, Title: "Today", Publish: dateOf(testNow)}
	scheduledPost := &model.Post{ID: 3, AuthorID: 1, Title: "Scheduled", Publish: dateOf(testNow.AddDate(0, 0, 7))}
	draftPost := &model.Post{ID: 4, AuthorID: 1, Title: "Draft", Publish: dateOf(testNow.AddDate(0, 0, -7)), Draft: true}

	tests := []struct {
		name    string
		viewer  *model.Viewer
		post    *model.Post
		repoErr error
		wantErr error
	}{
		{
			name:   "public post visible to anonymous",
			viewer: anonymous,
			post:   publicPost,
		},
		{
			name:   "publish date equal to today is visible",
			viewer: anonymous,
			post:   todayPost,
		},
		{
			name:    "scheduled post hidden from anonymous",
			viewer:  anonymous,
			post:    scheduledPost,
			wantErr: custom_errors.ErrPostNotFound,
		},
		{
			name:    "draft hidden from anonymous",
			viewer:  anonymous,
			post:    draftPost,
			wantErr: custom_errors.ErrPostNotFound,
		},
		{
			name:   "draft visible to staff",
			viewer: staffOnly,
			post:   draftPost,
		},
		{
			name:   "scheduled post visible to superuser",
			viewer: superuserOnly,
			post:   scheduledPost,
		},
		{
			name:    "missing post",
			viewer:  admin,
			repoErr: custom_errors.ErrPostNotFound,
			wantErr: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_repository_mock.Repository)
			userRepo := new(user_repository_mock.Repository)

			if tt.repoErr != nil {
				postRepo.On("GetByID", mock.Anything, mock.AnythingOfType("int64")).Return(nil, tt.repoErr)
			} else {
				postRepo.On("GetByID", mock.Anything, tt.post.ID).Return(tt.post, nil)
				if tt.wantErr == nil {
					userRepo.On("GetByID", mock.Anything, tt.post.AuthorID).Return(author, nil)
				}
			}

			service := newTestService(postRepo, userRepo)

			var id int64 = 99
			if tt.post != nil {
				id = tt.post.ID
			}
			got, err := service.GetPostByID(context.Background(), tt.viewer, id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.post, got.Post)
				assert.Equal(t, author, got.Author)
			}
			postRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_ListPosts(t *testing.T) {
	author := &model.User{ID: 1, Username: "admin"}

	t.Run("anonymous listing gates on today", func(t *testing.T) {
		postRepo := new(post_repository_mock.Repository)
		userRepo := new(user_repository_mock.Repository)

		today := dateOf(testNow)
		gated := func(f model.PostFilters) bool {
			return f.VisibleOn != nil && f.VisibleOn.Time.Equal(today.Time) && f.Search == nil
		}

		postRepo.On("Count", mock.Anything, mock.MatchedBy(gated)).Return(2, nil)
		postRepo.On("List", mock.Anything, mock.MatchedBy(func(f model.PostFilters) bool {
			return gated(f) && f.Limit != nil && *f.Limit == 6 && f.Offset != nil && *f.Offset == 0
		})).Return([]*model.Post{
			{ID: 2, AuthorID: 1, Title: "Second"},
			{ID: 1, AuthorID: 1, Title: "First"},
		}, nil)
		userRepo.On("GetByID", mock.Anything, int64(1)).Return(author, nil)

		service := newTestService(postRepo, userRepo)

		page, err := service.ListPosts(context.Background(), anonymous, "", "")

		require.NoError(t, err)
		assert.Len(t, page.Posts, 2)
		assert.Equal(t, 1, page.Page.Number)
		assert.Equal(t, 1, page.Page.TotalPages)
		postRepo.AssertExpectations(t)
	})

	t.Run("privileged listing is ungated", func(t *testing.T) {
		postRepo := new(post_repository_mock.Repository)
		userRepo := new(user_repository_mock.Repository)

		ungated := func(f model.PostFilters) bool { return f.VisibleOn == nil }

		postRepo.On("Count", mock.Anything, mock.MatchedBy(ungated)).Return(1, nil)
		postRepo.On("List", mock.Anything, mock.MatchedBy(ungated)).Return([]*model.Post{
			{ID: 4, AuthorID: 1, Title: "Draft", Draft: true},
		}, nil)
		userRepo.On("GetByID", mock.Anything, int64(1)).Return(author, nil)

		service := newTestService(postRepo, userRepo)

		page, err := service.ListPosts(context.Background(), staffOnly, "", "")

		require.NoError(t, err)
		require.Len(t, page.Posts, 1)
		assert.True(t, page.Posts[0].Post.Draft)
		postRepo.AssertExpectations(t)
	})

	t.Run("query travels to the repository", func(t *testing.T) {
		postRepo := new(post_repository_mock.Repository)
		userRepo := new(user_repository_mock.Repository)

		searched := func(f model.PostFilters) bool {
			return f.Search != nil && *f.Search == "lovelace"
		}

		postRepo.On("Count", mock.Anything, mock.MatchedBy(searched)).Return(1, nil)
		postRepo.On("List", mock.Anything, mock.MatchedBy(searched)).Return([]*model.Post{
			{ID: 1, AuthorID: 1, Title: "Match"},
		}, nil)
		userRepo.On("GetByID", mock.Anything, int64(1)).Return(author, nil)

		service := newTestService(postRepo, userRepo)

		page, err := service.ListPosts(context.Background(), anonymous, "lovelace", "")

		require.NoError(t, err)
		assert.Equal(t, "lovelace", page.Query)
		assert.Len(t, page.Posts, 1)
		postRepo.AssertExpectations(t)
	})

	t.Run("overflowing page token falls back to the last page", func(t *testing.T) {
		postRepo := new(post_repository_mock.Repository)
		userRepo := new(user_repository_mock.Repository)

		postRepo.On("Count", mock.Anything, mock.Anything).Return(13, nil)
		postRepo.On("List", mock.Anything, mock.MatchedBy(func(f model.PostFilters) bool {
			return f.Offset != nil && *f.Offset == 12 && f.Limit != nil && *f.Limit == 6
		})).Return([]*model.Post{{ID: 13, AuthorID: 1, Title: "Last"}}, nil)
		userRepo.On("GetByID", mock.Anything, int64(1)).Return(author, nil)

		service := newTestService(postRepo, userRepo)

		page, err := service.ListPosts(context.Background(), anonymous, "", "9999")

		require.NoError(t, err)
		assert.Equal(t, 3, page.Page.Number)
		assert.Len(t, page.Posts, 1)
		postRepo.AssertExpectations(t)
	})

	t.Run("count error surfaces as database error", func(t *testing.T) {
		postRepo := new(post_repository_mock.Repository)
		userRepo := new(user_repository_mock.Repository)

		postRepo.On("Count", mock.Anything, mock.Anything).Return(0, custom_errors.ErrDatabaseQuery)

		service := newTestService(postRepo, userRepo)

		page, err := service.ListPosts(context.Background(), anonymous, "", "")

		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
		assert.Nil(t, page)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	newTitle := "Updated"
	update := &model.UpdatePostDTO{Title: &newTitle}

	tests := []struct {
		name    string
		viewer  *model.Viewer
		mocks   func(postRepo *post_repository_mock.Repository)
		wantErr error
	}{
		{
			name:   "success",
			viewer: admin,
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("Update", mock.Anything, int64(1), update).
					Return(&model.Post{ID: 1, Title: newTitle}, nil)
			},
		},
		{
			name:    "staff without superuser gets not found",
			viewer:  staffOnly,
			mocks:   func(postRepo *post_repository_mock.Repository) {},
			wantErr: custom_errors.ErrPostNotFound,
		},
		{
			name:   "missing post",
			viewer: admin,
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("Update", mock.Anything, int64(1), update).
					Return(nil, custom_errors.ErrPostNotFound)
			},
			wantErr: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_repository_mock.Repository)
			userRepo := new(user_repository_mock.Repository)
			tt.mocks(postRepo)
			service := newTestService(postRepo, userRepo)

			got, err := service.UpdatePost(context.Background(), tt.viewer, 1, update)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, newTitle, got.Title)
			}
			postRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_DeletePost(t *testing.T) {
	tests := []struct {
		name    string
		viewer  *model.Viewer
		mocks   func(postRepo *post_repository_mock.Repository)
		wantErr error
	}{
		{
			name:   "success",
			viewer: admin,
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("Delete", mock.Anything, int64(1)).Return(nil)
			},
		},
		{
			name:    "anonymous viewer gets not found",
			viewer:  anonymous,
			mocks:   func(postRepo *post_repository_mock.Repository) {},
			wantErr: custom_errors.ErrPostNotFound,
		},
		{
			name:   "delete of nonexistent id",
			viewer: admin,
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("Delete", mock.Anything, int64(1)).Return(custom_errors.ErrPostNotFound)
			},
			wantErr: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_repository_mock.Repository)
			userRepo := new(user_repository_mock.Repository)
			tt.mocks(postRepo)
			service := newTestService(postRepo, userRepo)

			err := service.DeletePost(context.Background(), tt.viewer, 1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			postRepo.AssertExpectations(t)
		})
	}
}
