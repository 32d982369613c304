package auth_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/delivery/http/flash"
	"inkwell-blog-service/internal/delivery/http/forms"
	"inkwell-blog-service/internal/delivery/http/middleware"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/model"
)

type SessionIssuer interface {
	Login(ctx context.Context, username, password string) (*model.Session, error)
}

type LoginHandler struct {
	authService SessionIssuer
	validate    *validator.Validate
	cookieName  string
	sessionTTL  time.Duration
	log         *logger.Logger
}

func NewLoginHandler(authService SessionIssuer, validate *validator.Validate, cookieName string, sessionTTL time.Duration, log *logger.Logger) *LoginHandler {
	return &LoginHandler{
		authService: authService,
		validate:    validate,
		cookieName:  cookieName,
		sessionTTL:  sessionTTL,
		log:         log,
	}
}

func (h *LoginHandler) ShowForm(c *gin.Context) {
	if middleware.ViewerFromContext(c) != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	render(c, http.StatusOK, "login.html", gin.H{
		"Form": &forms.LoginForm{},
	})
}

func (h *LoginHandler) Handle(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Debug("Failed to bind login form", slog.String("error", err.Error()))
		render(c, http.StatusUnprocessableEntity, "login.html", gin.H{
			"Form":   &forms.LoginForm{},
			"Errors": map[string]string{"form": "invalid form submission"},
		})
		return
	}

	if fieldErrors := form.Validate(h.validate); fieldErrors != nil {
		render(c, http.StatusUnprocessableEntity, "login.html", gin.H{
			"Form":   &form,
			"Errors": fieldErrors,
		})
		return
	}

	session, err := h.authService.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, custom_errors.ErrInvalidCredentials) {
			render(c, http.StatusUnauthorized, "login.html", gin.H{
				"Form":   &forms.LoginForm{Username: form.Username},
				"Errors": map[string]string{"form": "invalid username or password"},
			})
			return
		}
		h.log.Error("Failed to log in", slog.String("error", err.Error()))
		render(c, http.StatusInternalServerError, "error.html", gin.H{})
		return
	}

	middleware.SetSessionCookie(c, h.cookieName, session.Token, h.sessionTTL)
	flash.Success(c, "Logged in.")
	c.Redirect(http.StatusSeeOther, "/")
}
