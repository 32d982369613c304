package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/model"
)

type SessionRepository struct {
	log      *logger.Logger
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

func NewSessionRepository(log *logger.Logger) *SessionRepository {
	return &SessionRepository{
		log:      log,
		sessions: make(map[string]*model.Session),
	}
}

func (r *SessionRepository) Create(ctx context.Context, session *model.Session) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newSession := &model.Session{
		Token:     session.Token,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	r.sessions[newSession.Token] = newSession

	result := *newSession
	return &result, nil
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[token]
	if !exists {
		r.log.Debug("Session not found by token")
		return nil, custom_errors.ErrSessionNotFound
	}

	result := *session
	return &result, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[token]; !exists {
		r.log.Debug("Session not found by token", slog.String("token", token))
		return custom_errors.ErrSessionNotFound
	}

	delete(r.sessions, token)
	return nil
}
