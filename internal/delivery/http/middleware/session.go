package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/model"
	auth_service "inkwell-blog-service/internal/service/auth"
)

const viewerContextKey = "viewer"

// Session resolves the session cookie into a viewer and stores it in the
// request context. Requests without a valid session continue as anonymous.
func Session(authService auth_service.Service, cookieName string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil {
			c.Next()
			return
		}

		viewer, err := authService.ViewerByToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, custom_errors.ErrSessionNotFound) {
				// Dead cookie, drop it so the browser stops sending it.
				ClearSessionCookie(c, cookieName)
			} else {
				log.Error("Failed to resolve session", slog.String("error", err.Error()))
			}
			c.Next()
			return
		}

		c.Set(viewerContextKey, viewer)
		c.Next()
	}
}

// SetViewer stores an already resolved viewer in the request context.
func SetViewer(c *gin.Context, viewer *model.Viewer) {
	c.Set(viewerContextKey, viewer)
}

// ViewerFromContext returns the authenticated viewer, or nil for anonymous
// requests. Callers treat nil as a valid anonymous viewer.
func ViewerFromContext(c *gin.Context) *model.Viewer {
	value, exists := c.Get(viewerContextKey)
	if !exists {
		return nil
	}
	viewer, ok := value.(*model.Viewer)
	if !ok {
		return nil
	}
	return viewer
}

func SetSessionCookie(c *gin.Context, cookieName, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, token, int(ttl.Seconds()), "/", "", false, true)
}

func ClearSessionCookie(c *gin.Context, cookieName string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
}
