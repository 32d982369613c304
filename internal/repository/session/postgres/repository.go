package session_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/metrics"
	"inkwell-blog-service/internal/model"
	"inkwell-blog-service/internal/repository/postgres/db"
)

type SessionRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.Provider
}

func NewSessionRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *SessionRepository {
	return &SessionRepository{db: db, log: log, metrics: metrics}
}

func (r *SessionRepository) observe(queryType string, start time.Time, err error) {
	r.metrics.IncrementDatabaseQueries(queryType, err == nil)
	r.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func (r *SessionRepository) Create(ctx context.Context, session *model.Session) (_ *model.Session, err error) {
	start := time.Now()
	defer func() { r.observe("session_create", start, err) }()

	args := pgx.NamedArgs{
		"token":      session.Token,
		"user_id":    session.UserID,
		"expires_at": session.ExpiresAt,
		"created_at": pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	query := `
		INSERT INTO sessions (token, user_id, expires_at, created_at)
		VALUES (@token, @user_id, @expires_at, @created_at)
		RETURNING token, user_id, expires_at, created_at`

	var created model.Session
	err = r.db.QueryRow(ctx, query, args).Scan(
		&created.Token,
		&created.UserID,
		&created.ExpiresAt,
		&created.CreatedAt,
	)
	if err != nil {
		r.log.Error("Error creating session", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &created, nil
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (_ *model.Session, err error) {
	start := time.Now()
	defer func() { r.observe("session_get_by_token", start, err) }()

	args := pgx.NamedArgs{"token": token}
	query := `SELECT token, user_id, expires_at, created_at FROM sessions WHERE token = @token`

	session := &model.Session{}
	err = r.db.QueryRow(ctx, query, args).Scan(
		&session.Token,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("Session not found by token")
			return nil, custom_errors.ErrSessionNotFound
		}
		r.log.Error("Error getting session by token", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) (err error) {
	start := time.Now()
	defer func() { r.observe("session_delete", start, err) }()

	args := pgx.NamedArgs{"token": token}
	query := `DELETE FROM sessions WHERE token = @token`

	result, err := r.db.Exec(ctx, query, args)
	if err != nil {
		r.log.Error("Error deleting session", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		err = custom_errors.ErrSessionNotFound
		return err
	}
	return nil
}
