package auth_http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"inkwell-blog-service/internal/delivery/http/flash"
	"inkwell-blog-service/internal/delivery/http/middleware"
	"inkwell-blog-service/internal/logger"
	auth_service "inkwell-blog-service/internal/service/auth"
)

var validate = validator.New()

type AuthAPI struct {
	authService   auth_service.Service
	log           *logger.Logger
	loginHandler  *LoginHandler
	logoutHandler *LogoutHandler
}

func NewAuthAPI(authService auth_service.Service, cookieName string, sessionTTL time.Duration, log *logger.Logger) *AuthAPI {
	return &AuthAPI{
		authService:   authService,
		log:           log,
		loginHandler:  NewLoginHandler(authService, validate, cookieName, sessionTTL, log),
		logoutHandler: NewLogoutHandler(authService, cookieName, log),
	}
}

func (a *AuthAPI) RegisterRoutes(router *gin.Engine) {
	router.GET("/login", a.loginHandler.ShowForm)
	router.POST("/login", a.loginHandler.Handle)
	router.POST("/logout", a.logoutHandler.Handle)
}

func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Viewer"] = middleware.ViewerFromContext(c)
	data["Flashes"] = flash.Take(c)
	c.HTML(status, name, data)
}
