package post_http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"inkwell-blog-service/internal/delivery/http/flash"
	"inkwell-blog-service/internal/delivery/http/middleware"
	"inkwell-blog-service/internal/logger"
	post_service "inkwell-blog-service/internal/service/post"
)

var validate = validator.New()

type PostAPI struct {
	postService       post_service.Service
	log               *logger.Logger
	listPostsHandler  *ListPostsHandler
	getPostHandler    *GetPostHandler
	createPostHandler *CreatePostHandler
	updatePostHandler *UpdatePostHandler
	deletePostHandler *DeletePostHandler
}

func NewPostAPI(postService post_service.Service, log *logger.Logger) *PostAPI {
	return &PostAPI{
		postService:       postService,
		log:               log,
		listPostsHandler:  NewListPostsHandler(postService, log),
		getPostHandler:    NewGetPostHandler(postService, validate, log),
		createPostHandler: NewCreatePostHandler(postService, validate, log),
		updatePostHandler: NewUpdatePostHandler(postService, validate, log),
		deletePostHandler: NewDeletePostHandler(postService, validate, log),
	}
}

func (a *PostAPI) RegisterRoutes(router *gin.Engine) {
	router.GET("/", a.listPostsHandler.Handle)
	router.GET("/posts", a.listPostsHandler.Handle)
	router.GET("/posts/new", a.createPostHandler.ShowForm)
	router.POST("/posts", a.createPostHandler.Handle)
	router.GET("/posts/:id", a.getPostHandler.Handle)
	router.GET("/posts/:id/edit", a.updatePostHandler.ShowForm)
	router.POST("/posts/:id", a.updatePostHandler.Handle)
	router.POST("/posts/:id/delete", a.deletePostHandler.Handle)
}

// render injects the data every template expects on top of the page data.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Viewer"] = middleware.ViewerFromContext(c)
	data["Flashes"] = flash.Take(c)
	c.HTML(status, name, data)
}

func renderNotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "not_found.html", gin.H{})
}

func renderInternalError(c *gin.Context) {
	render(c, http.StatusInternalServerError, "error.html", gin.H{})
}
