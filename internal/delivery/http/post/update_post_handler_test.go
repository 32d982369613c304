package post_http_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"inkwell-blog-service/internal/custom_errors"
	post_http "inkwell-blog-service/internal/delivery/http/post"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/model"
	mockpost "inkwell-blog-service/mocks/post"
)

func TestUpdatePostHandler(t *testing.T) {
	validate := validator.New()
	testLogger := logger.New("test")

	validForm := url.Values{
		"title":   {"Edited title"},
		"content": {"Edited content with enough length."},
		"publish": {"2026-08-01"},
	}

	t.Run("Success redirects to the post", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewUpdatePostHandler(mockPostService, validate, testLogger)

		mockPostService.On("UpdatePost", mock.Anything, admin, int64(7), mock.MatchedBy(func(update *model.UpdatePostDTO) bool {
			return update.Title != nil && *update.Title == "Edited title"
		})).Return(&model.Post{ID: 7, Title: "Edited title"}, nil)

		engine := newTestEngine(admin)
		engine.POST("/posts/:id", handler.Handle)

		recorder := doPostForm(engine, "/posts/7", validForm)

		assert.Equal(t, http.StatusSeeOther, recorder.Code)
		assert.Equal(t, "/posts/7", recorder.Header().Get("Location"))
		mockPostService.AssertExpectations(t)
	})

	t.Run("Unprivileged viewer never reaches the service", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewUpdatePostHandler(mockPostService, validate, testLogger)

		engine := newTestEngine(staffOnly)
		engine.POST("/posts/:id", handler.Handle)

		recorder := doPostForm(engine, "/posts/7", validForm)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		mockPostService.AssertNotCalled(t, "UpdatePost")
	})

	t.Run("Missing post", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewUpdatePostHandler(mockPostService, validate, testLogger)

		mockPostService.On("UpdatePost", mock.Anything, admin, int64(42), mock.AnythingOfType("*model.UpdatePostDTO")).
			Return(nil, custom_errors.ErrPostNotFound)

		engine := newTestEngine(admin)
		engine.POST("/posts/:id", handler.Handle)

		recorder := doPostForm(engine, "/posts/42", validForm)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		mockPostService.AssertExpectations(t)
	})

	t.Run("Edit page pre-fills the form", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewUpdatePostHandler(mockPostService, validate, testLogger)

		mockPostService.On("GetPostByID", mock.Anything, admin, int64(7)).
			Return(&model.PostDetailed{
				Post:   &model.Post{ID: 7, Title: "Original title"},
				Author: &model.User{ID: 1},
			}, nil)

		engine := newTestEngine(admin)
		engine.GET("/posts/:id/edit", handler.ShowForm)

		recorder := doGet(engine, "/posts/7/edit")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Original title")
		mockPostService.AssertExpectations(t)
	})

	t.Run("Edit page is gated", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewUpdatePostHandler(mockPostService, validate, testLogger)

		engine := newTestEngine(anonymous)
		engine.GET("/posts/:id/edit", handler.ShowForm)

		recorder := doGet(engine, "/posts/7/edit")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		mockPostService.AssertNotCalled(t, "GetPostByID")
	})
}
