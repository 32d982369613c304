package auth_service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/logger"
	prometheus_metrics "inkwell-blog-service/internal/metrics/prometheus"
	"inkwell-blog-service/internal/model"
	session_memory "inkwell-blog-service/internal/repository/session/memory"
	user_memory "inkwell-blog-service/internal/repository/user/memory"
)

var testNow = time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)

type authFixture struct {
	service  *AuthService
	users    *user_memory.UserRepository
	sessions *session_memory.SessionRepository
	now      time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	log := logger.New("test")
	f := &authFixture{
		users:    user_memory.NewUserRepository(log),
		sessions: session_memory.NewSessionRepository(log),
		now:      testNow,
	}
	f.service = NewAuthService(
		f.users,
		f.sessions,
		log,
		prometheus_metrics.NewMetricsProvider(),
		24*time.Hour,
		func() time.Time { return f.now },
	)
	return f
}

func (f *authFixture) seedUser(t *testing.T, username, password string, staff, superuser bool) *model.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	user, err := f.users.Create(context.Background(), &model.User{
		Username:     username,
		PasswordHash: hash,
		IsStaff:      staff,
		IsSuperuser:  superuser,
	})
	require.NoError(t, err)
	return user
}

func TestAuthService_Login(t *testing.T) {
	t.Run("success issues a session with ttl", func(t *testing.T) {
		f := newAuthFixture(t)
		user := f.seedUser(t, "admin", "s3cret", true, true)

		session, err := f.service.Login(context.Background(), "admin", "s3cret")

		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, user.ID, session.UserID)
		assert.Equal(t, f.now.Add(24*time.Hour), session.ExpiresAt.Time)

		stored, err := f.sessions.GetByToken(context.Background(), session.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, stored.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.seedUser(t, "admin", "s3cret", true, true)

		session, err := f.service.Login(context.Background(), "admin", "wrong")

		assert.ErrorIs(t, err, custom_errors.ErrInvalidCredentials)
		assert.Nil(t, session)
	})

	t.Run("unknown username answers like wrong password", func(t *testing.T) {
		f := newAuthFixture(t)

		session, err := f.service.Login(context.Background(), "nobody", "s3cret")

		assert.ErrorIs(t, err, custom_errors.ErrInvalidCredentials)
		assert.Nil(t, session)
	})
}

func TestAuthService_ViewerByToken(t *testing.T) {
	t.Run("valid session resolves the viewer flags", func(t *testing.T) {
		f := newAuthFixture(t)
		user := f.seedUser(t, "editor", "s3cret", true, false)
		session, err := f.service.Login(context.Background(), "editor", "s3cret")
		require.NoError(t, err)

		viewer, err := f.service.ViewerByToken(context.Background(), session.Token)

		require.NoError(t, err)
		assert.Equal(t, user.ID, viewer.ID)
		assert.Equal(t, "editor", viewer.Username)
		assert.True(t, viewer.IsStaff)
		assert.False(t, viewer.IsSuperuser)
	})

	t.Run("empty token", func(t *testing.T) {
		f := newAuthFixture(t)

		viewer, err := f.service.ViewerByToken(context.Background(), "")

		assert.ErrorIs(t, err, custom_errors.ErrSessionNotFound)
		assert.Nil(t, viewer)
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newAuthFixture(t)

		viewer, err := f.service.ViewerByToken(context.Background(), "missing")

		assert.ErrorIs(t, err, custom_errors.ErrSessionNotFound)
		assert.Nil(t, viewer)
	})

	t.Run("expired session is rejected and removed", func(t *testing.T) {
		f := newAuthFixture(t)
		f.seedUser(t, "admin", "s3cret", true, true)
		session, err := f.service.Login(context.Background(), "admin", "s3cret")
		require.NoError(t, err)

		f.now = f.now.Add(25 * time.Hour)

		viewer, err := f.service.ViewerByToken(context.Background(), session.Token)

		assert.ErrorIs(t, err, custom_errors.ErrSessionNotFound)
		assert.Nil(t, viewer)

		_, err = f.sessions.GetByToken(context.Background(), session.Token)
		assert.ErrorIs(t, err, custom_errors.ErrSessionNotFound)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("removes the session", func(t *testing.T) {
		f := newAuthFixture(t)
		f.seedUser(t, "admin", "s3cret", true, true)
		session, err := f.service.Login(context.Background(), "admin", "s3cret")
		require.NoError(t, err)

		require.NoError(t, f.service.Logout(context.Background(), session.Token))

		_, err = f.service.ViewerByToken(context.Background(), session.Token)
		assert.ErrorIs(t, err, custom_errors.ErrSessionNotFound)
	})

	t.Run("logout of unknown token is a no-op", func(t *testing.T) {
		f := newAuthFixture(t)

		assert.NoError(t, f.service.Logout(context.Background(), "missing"))
	})
}
