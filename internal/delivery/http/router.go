package delivery_http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	auth_http "inkwell-blog-service/internal/delivery/http/auth"
	"inkwell-blog-service/internal/delivery/http/flash"
	"inkwell-blog-service/internal/delivery/http/middleware"
	post_http "inkwell-blog-service/internal/delivery/http/post"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/metrics"
	auth_service "inkwell-blog-service/internal/service/auth"
)

type RouterConfig struct {
	Env           string
	TemplatesGlob string
	CookieName    string
}

func NewRouter(
	cfg RouterConfig,
	postAPI *post_http.PostAPI,
	authAPI *auth_http.AuthAPI,
	authService auth_service.Service,
	metricsProvider metrics.Provider,
	log *logger.Logger,
) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(log),
		middleware.Metrics(metricsProvider),
		middleware.Session(authService, cfg.CookieName, log),
	)

	router.LoadHTMLGlob(cfg.TemplatesGlob)
	router.Static("/static", "./web/static")

	postAPI.RegisterRoutes(router)
	authAPI.RegisterRoutes(router)

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "not_found.html", gin.H{
			"Viewer":  middleware.ViewerFromContext(c),
			"Flashes": flash.Take(c),
		})
	})

	return router
}
