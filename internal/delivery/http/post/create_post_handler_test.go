package post_http_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	post_http "inkwell-blog-service/internal/delivery/http/post"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/model"
	mockpost "inkwell-blog-service/mocks/post"
)

func TestCreatePostHandler(t *testing.T) {
	validate := validator.New()
	testLogger := logger.New("test")

	validForm := url.Values{
		"title":   {"A fresh post"},
		"content": {"Long enough content for the editor."},
		"publish": {"2026-08-27"},
	}

	t.Run("Success redirects to the new post", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewCreatePostHandler(mockPostService, validate, testLogger)

		mockPostService.On("CreatePost", mock.Anything, admin, mock.MatchedBy(func(dto *model.CreatePostDTO) bool {
			return dto.Title == "A fresh post" && dto.Publish.Valid && !dto.Draft
		})).Return(&model.Post{ID: 10, Title: "A fresh post"}, nil)

		engine := newTestEngine(admin)
		engine.POST("/posts", handler.Handle)

		recorder := doPostForm(engine, "/posts", validForm)

		assert.Equal(t, http.StatusSeeOther, recorder.Code)
		assert.Equal(t, "/posts/10", recorder.Header().Get("Location"))
		mockPostService.AssertExpectations(t)
	})

	t.Run("Draft checkbox is honored", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewCreatePostHandler(mockPostService, validate, testLogger)

		mockPostService.On("CreatePost", mock.Anything, admin, mock.MatchedBy(func(dto *model.CreatePostDTO) bool {
			return dto.Draft
		})).Return(&model.Post{ID: 11}, nil)

		form := url.Values{}
		for key, values := range validForm {
			form[key] = values
		}
		form.Set("draft", "true")

		engine := newTestEngine(admin)
		engine.POST("/posts", handler.Handle)

		recorder := doPostForm(engine, "/posts", form)

		assert.Equal(t, http.StatusSeeOther, recorder.Code)
		mockPostService.AssertExpectations(t)
	})

	t.Run("Anonymous viewer never reaches the service", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewCreatePostHandler(mockPostService, validate, testLogger)

		engine := newTestEngine(anonymous)
		engine.POST("/posts", handler.Handle)

		recorder := doPostForm(engine, "/posts", validForm)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		mockPostService.AssertNotCalled(t, "CreatePost")
	})

	t.Run("Staff without superuser never reaches the service", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewCreatePostHandler(mockPostService, validate, testLogger)

		engine := newTestEngine(staffOnly)
		engine.POST("/posts", handler.Handle)

		recorder := doPostForm(engine, "/posts", validForm)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		mockPostService.AssertNotCalled(t, "CreatePost")
	})

	t.Run("Validation errors re-render the form", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewCreatePostHandler(mockPostService, validate, testLogger)

		engine := newTestEngine(admin)
		engine.POST("/posts", handler.Handle)

		recorder := doPostForm(engine, "/posts", url.Values{
			"title":   {"ok"},
			"content": {"short"},
			"publish": {"not-a-date"},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "invalid")
		mockPostService.AssertNotCalled(t, "CreatePost")
	})

	t.Run("Form page is gated", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewCreatePostHandler(mockPostService, validate, testLogger)

		engine := newTestEngine(staffOnly)
		engine.GET("/posts/new", handler.ShowForm)

		recorder := doGet(engine, "/posts/new")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Form page renders for managers", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewCreatePostHandler(mockPostService, validate, testLogger)

		engine := newTestEngine(admin)
		engine.GET("/posts/new", handler.ShowForm)

		recorder := doGet(engine, "/posts/new")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
