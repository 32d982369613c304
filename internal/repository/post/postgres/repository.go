package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/metrics"
	"inkwell-blog-service/internal/model"
	"inkwell-blog-service/internal/repository/postgres/db"
)

type PostRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.Provider
}

func NewPostRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) observe(queryType string, start time.Time, err error) {
	p.metrics.IncrementDatabaseQueries(queryType, err == nil)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (_ *model.Post, err error) {
	start := time.Now()
	defer func() { p.observe("post_create", start, err) }()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"author_id":  post.AuthorID,
		"title":      post.Title,
		"content":    post.Content,
		"image":      post.Image,
		"publish":    post.Publish,
		"draft":      post.Draft,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO posts (author_id, title, content, image, publish, draft, created_at, updated_at)
		VALUES (@author_id, @title, @content, @image, @publish, @draft, @created_at, @updated_at)
		RETURNING id, author_id, title, content, image, publish, draft, created_at, updated_at`

	var createdPost model.Post
	err = p.db.QueryRow(ctx, query, args).Scan(
		&createdPost.ID,
		&createdPost.AuthorID,
		&createdPost.Title,
		&createdPost.Content,
		&createdPost.Image,
		&createdPost.Publish,
		&createdPost.Draft,
		&createdPost.CreatedAt,
		&createdPost.UpdatedAt,
	)

	if err != nil {
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (_ *model.Post, err error) {
	start := time.Now()
	defer func() { p.observe("post_get_by_id", start, err) }()

	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, author_id, title, content, image, publish, draft, created_at, updated_at
				FROM posts WHERE id = @id`

	post := &model.Post{}
	err = p.db.QueryRow(ctx, query, args).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Content,
		&post.Image,
		&post.Publish,
		&post.Draft,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return post, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (_ *model.Post, err error) {
	start := time.Now()
	defer func() { p.observe("post_update", start, err) }()

	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Title != nil {
		setClauses = append(setClauses, "title = @title")
		args["title"] = *update.Title
	}
	if update.Content != nil {
		setClauses = append(setClauses, "content = @content")
		args["content"] = *update.Content
	}
	if update.Image != nil {
		setClauses = append(setClauses, "image = @image")
		args["image"] = *update.Image
	}
	if update.Publish != nil {
		setClauses = append(setClauses, "publish = @publish")
		args["publish"] = *update.Publish
	}
	if update.Draft != nil {
		setClauses = append(setClauses, "draft = @draft")
		args["draft"] = *update.Draft
	}

	if len(setClauses) == 0 {
		return nil, custom_errors.ErrNoUpdateRows
	}

	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	query := "UPDATE posts SET " + strings.Join(setClauses, ", ") +
		" WHERE id = @id RETURNING id, author_id, title, content, image, publish, draft, created_at, updated_at"

	var updatedPost model.Post
	err = p.db.QueryRow(ctx, query, args).Scan(
		&updatedPost.ID,
		&updatedPost.AuthorID,
		&updatedPost.Title,
		&updatedPost.Content,
		&updatedPost.Image,
		&updatedPost.Publish,
		&updatedPost.Draft,
		&updatedPost.CreatedAt,
		&updatedPost.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &updatedPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { p.observe("post_delete", start, err) }()

	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`

	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		err = custom_errors.ErrPostNotFound
		return err
	}
	return nil
}

// filterClauses builds the WHERE fragment shared by Count and List. The
// users join is there for the author-name search fields; with one author
// per post it cannot multiply rows, but the search contract promises a
// duplicate-free result, so the selects stay DISTINCT.
func filterClauses(filters model.PostFilters, args pgx.NamedArgs) []string {
	whereClauses := []string{}

	if filters.VisibleOn != nil {
		whereClauses = append(whereClauses, "p.draft = FALSE AND p.publish <= @visible_on")
		args["visible_on"] = *filters.VisibleOn
	}

	if filters.Search != nil && *filters.Search != "" {
		whereClauses = append(whereClauses,
			`(p.title ILIKE @search
				OR p.content ILIKE @search
				OR u.first_name ILIKE @search
				OR u.last_name ILIKE @search
				OR p.image ILIKE @search)`)
		args["search"] = "%" + *filters.Search + "%"
	}

	return whereClauses
}

func (p *PostRepository) Count(ctx context.Context, filters model.PostFilters) (_ int, err error) {
	start := time.Now()
	defer func() { p.observe("post_count", start, err) }()

	args := pgx.NamedArgs{}
	query := `SELECT COUNT(DISTINCT p.id) FROM posts p JOIN users u ON u.id = p.author_id`

	whereClauses := filterClauses(filters, args)
	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}

	var total int
	err = p.db.QueryRow(ctx, query, args).Scan(&total)
	if err != nil {
		p.log.Error("Error counting posts", slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}

	return total, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) (_ []*model.Post, err error) {
	start := time.Now()
	defer func() { p.observe("post_list", start, err) }()

	args := pgx.NamedArgs{}
	baseQuery := `SELECT DISTINCT p.id, p.author_id, p.title, p.content, p.image, p.publish, p.draft, p.created_at, p.updated_at
		FROM posts p JOIN users u ON u.id = p.author_id`

	whereClauses := filterClauses(filters, args)
	if len(whereClauses) > 0 {
		baseQuery += " WHERE " + strings.Join(whereClauses, " AND ")
	}

	baseQuery += " ORDER BY p.created_at DESC, p.id DESC"

	if filters.Limit != nil {
		baseQuery += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		baseQuery += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	rows, err := p.db.Query(ctx, baseQuery, args)
	if err != nil {
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		err = rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.Title,
			&post.Content,
			&post.Image,
			&post.Publish,
			&post.Draft,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return posts, nil
}
