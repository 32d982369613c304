package auth_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell-blog-service/internal/delivery/http/flash"
	"inkwell-blog-service/internal/delivery/http/middleware"
	"inkwell-blog-service/internal/logger"
)

type SessionRevoker interface {
	Logout(ctx context.Context, token string) error
}

type LogoutHandler struct {
	authService SessionRevoker
	cookieName  string
	log         *logger.Logger
}

func NewLogoutHandler(authService SessionRevoker, cookieName string, log *logger.Logger) *LogoutHandler {
	return &LogoutHandler{
		authService: authService,
		cookieName:  cookieName,
		log:         log,
	}
}

func (h *LogoutHandler) Handle(c *gin.Context) {
	if token, err := c.Cookie(h.cookieName); err == nil {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			// The cookie is cleared either way, so the browser ends up
			// logged out even if the session row lingers.
			h.log.Error("Failed to revoke session", slog.String("error", err.Error()))
		}
	}

	middleware.ClearSessionCookie(c, h.cookieName)
	flash.Success(c, "Logged out.")
	c.Redirect(http.StatusSeeOther, "/")
}
