package auth_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/crypto/bcrypt"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/metrics"
	"inkwell-blog-service/internal/model"
	session_repository "inkwell-blog-service/internal/repository/session"
	user_repository "inkwell-blog-service/internal/repository/user"
)

type AuthService struct {
	userRepo    user_repository.Repository
	sessionRepo session_repository.Repository
	log         *logger.Logger
	metrics     metrics.Provider
	sessionTTL  time.Duration
	clock       func() time.Time
}

func NewAuthService(
	userRepo user_repository.Repository,
	sessionRepo session_repository.Repository,
	log *logger.Logger,
	metrics metrics.Provider,
	sessionTTL time.Duration,
	clock func() time.Time,
) *AuthService {
	if clock == nil {
		clock = time.Now
	}
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		log:         log,
		metrics:     metrics,
		sessionTTL:  sessionTTL,
		clock:       clock,
	}
}

// HashPassword is the single place passwords are hashed, so the cost stays
// consistent between seeding and runtime checks.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*model.Session, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		// Unknown username and wrong password answer the same way.
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Login with unknown username", slog.String("username", username))
			s.metrics.IncrementAuthOperations("login", false)
			return nil, custom_errors.ErrInvalidCredentials
		}
		s.log.Error("Failed to get user for login", slog.String("error", err.Error()))
		s.metrics.IncrementAuthOperations("login", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Debug("Login with wrong password", slog.String("username", username))
		s.metrics.IncrementAuthOperations("login", false)
		return nil, custom_errors.ErrInvalidCredentials
	}

	session := &model.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: pgtype.Timestamptz{Time: s.clock().Add(s.sessionTTL), Valid: true},
	}

	created, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		s.log.Error("Failed to create session", slog.String("error", err.Error()), slog.Int64("user_id", user.ID))
		s.metrics.IncrementAuthOperations("login", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementAuthOperations("login", true)
	return created, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	err := s.sessionRepo.Delete(ctx, token)
	if err != nil && !errors.Is(err, custom_errors.ErrSessionNotFound) {
		s.log.Error("Failed to delete session", slog.String("error", err.Error()))
		s.metrics.IncrementAuthOperations("logout", false)
		return custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementAuthOperations("logout", true)
	return nil
}

func (s *AuthService) ViewerByToken(ctx context.Context, token string) (*model.Viewer, error) {
	if token == "" {
		return nil, custom_errors.ErrSessionNotFound
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, custom_errors.ErrSessionNotFound) {
			return nil, custom_errors.ErrSessionNotFound
		}
		s.log.Error("Failed to get session by token", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if session.ExpiresAt.Time.Before(s.clock()) {
		s.log.Debug("Session expired", slog.Int64("user_id", session.UserID))
		if err := s.sessionRepo.Delete(ctx, token); err != nil && !errors.Is(err, custom_errors.ErrSessionNotFound) {
			s.log.Warn("Failed to delete expired session", slog.String("error", err.Error()))
		}
		return nil, custom_errors.ErrSessionNotFound
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			// Stale session for a deleted account.
			s.log.Debug("Session user no longer exists", slog.Int64("user_id", session.UserID))
			return nil, custom_errors.ErrSessionNotFound
		}
		s.log.Error("Failed to get session user", slog.String("error", err.Error()), slog.Int64("user_id", session.UserID))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &model.Viewer{
		ID:          user.ID,
		Username:    user.Username,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
	}, nil
}
