package memory

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/model"
	user_repository "inkwell-blog-service/internal/repository/user"
)

// PostRepository mirrors the postgres implementation over a map. It needs the
// user repository because the free-text search also matches author names.
type PostRepository struct {
	log    *logger.Logger
	users  user_repository.Repository
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger, users user_repository.Repository) *PostRepository {
	return &PostRepository{
		log:    log,
		users:  users,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	newPost := &model.Post{
		ID:        p.nextID,
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		Content:   post.Content,
		Image:     post.Image,
		Publish:   post.Publish,
		Draft:     post.Draft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.Image != nil {
		post.Image = *update.Image
	}
	if update.Publish != nil {
		post.Publish = *update.Publish
	}
	if update.Draft != nil {
		post.Draft = *update.Draft
	}

	post.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	result := *post
	return &result, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}

	delete(p.posts, id)
	return nil
}

func (p *PostRepository) Count(ctx context.Context, filters model.PostFilters) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.filtered(ctx, filters)), nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	filteredPosts := p.filtered(ctx, filters)

	if filters.Offset != nil {
		offset := *filters.Offset
		if offset >= len(filteredPosts) {
			return []*model.Post{}, nil
		}
		filteredPosts = filteredPosts[offset:]
	}

	if filters.Limit != nil {
		limit := *filters.Limit
		if limit < len(filteredPosts) {
			filteredPosts = filteredPosts[:limit]
		}
	}

	return filteredPosts, nil
}

// filtered applies visibility and search and returns copies in the default
// listing order. Callers hold at least the read lock.
func (p *PostRepository) filtered(ctx context.Context, filters model.PostFilters) []*model.Post {
	var result []*model.Post
	for _, post := range p.posts {
		if filters.VisibleOn != nil {
			if post.Draft || post.Publish.Time.After(filters.VisibleOn.Time) {
				continue
			}
		}
		if filters.Search != nil && *filters.Search != "" {
			if !p.matchesSearch(ctx, post, *filters.Search) {
				continue
			}
		}

		postCopy := *post
		result = append(result, &postCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Time.Equal(result[j].CreatedAt.Time) {
			return result[i].CreatedAt.Time.After(result[j].CreatedAt.Time)
		}
		return result[i].ID > result[j].ID
	})

	return result
}

func (p *PostRepository) matchesSearch(ctx context.Context, post *model.Post, query string) bool {
	needle := strings.ToLower(query)

	var firstName, lastName string
	if author, err := p.users.GetByID(ctx, post.AuthorID); err == nil {
		firstName = author.FirstName
		lastName = author.LastName
	}

	for _, field := range []string{post.Title, post.Content, firstName, lastName, post.Image} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
