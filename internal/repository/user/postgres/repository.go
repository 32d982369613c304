package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/metrics"
	"inkwell-blog-service/internal/model"
	"inkwell-blog-service/internal/repository/postgres/db"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.Provider
}

func NewUserRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *UserRepository {
	return &UserRepository{db: db, log: log, metrics: metrics}
}

func (r *UserRepository) observe(queryType string, start time.Time, err error) {
	r.metrics.IncrementDatabaseQueries(queryType, err == nil)
	r.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (_ *model.User, err error) {
	start := time.Now()
	defer func() { r.observe("user_create", start, err) }()

	args := pgx.NamedArgs{
		"username":      user.Username,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"password_hash": user.PasswordHash,
		"is_staff":      user.IsStaff,
		"is_superuser":  user.IsSuperuser,
		"created_at":    pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	query := `
		INSERT INTO users (username, first_name, last_name, password_hash, is_staff, is_superuser, created_at)
		VALUES (@username, @first_name, @last_name, @password_hash, @is_staff, @is_superuser, @created_at)
		RETURNING id, username, first_name, last_name, password_hash, is_staff, is_superuser, created_at`

	var created model.User
	err = r.db.QueryRow(ctx, query, args).Scan(
		&created.ID,
		&created.Username,
		&created.FirstName,
		&created.LastName,
		&created.PasswordHash,
		&created.IsStaff,
		&created.IsSuperuser,
		&created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			r.log.Debug("Username already taken", slog.String("username", user.Username))
			return nil, custom_errors.ErrUsernameExists
		}
		r.log.Error("Error creating user", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (_ *model.User, err error) {
	start := time.Now()
	defer func() { r.observe("user_get_by_id", start, err) }()

	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, username, first_name, last_name, password_hash, is_staff, is_superuser, created_at
				FROM users WHERE id = @id`

	user := &model.User{}
	err = r.db.QueryRow(ctx, query, args).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.IsStaff,
		&user.IsSuperuser,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("User not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		r.log.Error("Error getting user by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (_ *model.User, err error) {
	start := time.Now()
	defer func() { r.observe("user_get_by_username", start, err) }()

	args := pgx.NamedArgs{"username": username}
	query := `SELECT id, username, first_name, last_name, password_hash, is_staff, is_superuser, created_at
				FROM users WHERE username = @username`

	user := &model.User{}
	err = r.db.QueryRow(ctx, query, args).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.IsStaff,
		&user.IsSuperuser,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("User not found by username", slog.String("username", username))
			return nil, custom_errors.ErrUserNotFound
		}
		r.log.Error("Error getting user by username", slog.String("username", username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}
