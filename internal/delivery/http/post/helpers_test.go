package post_http_test

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"inkwell-blog-service/internal/delivery/http/middleware"
	"inkwell-blog-service/internal/model"
)

var (
	anonymous *model.Viewer
	admin     = &model.Viewer{ID: 1, Username: "admin", IsStaff: true, IsSuperuser: true}
	staffOnly = &model.Viewer{ID: 2, Username: "staff", IsStaff: true}
)

// newTestEngine builds a gin engine with throwaway templates so handler
// tests can assert on status codes and a few rendered markers.
func newTestEngine(viewer *model.Viewer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	// The raw func keeps the ShareQuery marker byte-for-byte as the handler
	// produced it; html/template would otherwise escape "+" to "&#43;" here,
	// unlike the real template's URL attribute context.
	engine.SetHTMLTemplate(template.Must(template.New("test").Funcs(template.FuncMap{
		"raw": func(s string) template.HTML { return template.HTML(s) },
	}).Parse(`
{{define "post_list.html"}}list posts={{len .Posts}} page={{.Page.Number}} q={{.Query}}{{end}}
{{define "post_detail.html"}}detail {{.Post.Title}} share={{raw .ShareQuery}}{{end}}
{{define "post_form.html"}}form {{.Form.Title}}{{with .Errors}}invalid{{end}}{{end}}
{{define "not_found.html"}}not found{{end}}
{{define "error.html"}}error{{end}}
`)))
	engine.Use(func(c *gin.Context) {
		if viewer != nil {
			middleware.SetViewer(c, viewer)
		}
		c.Next()
	})
	return engine
}

func doGet(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(recorder, req)
	return recorder
}

func doPostForm(engine *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	engine.ServeHTTP(recorder, req)
	return recorder
}
