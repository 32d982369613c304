package forms

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgtype"

	"inkwell-blog-service/internal/model"
)

const publishLayout = "2006-01-02"

// PostForm is the editor form for both creating and editing a post.
type PostForm struct {
	Title   string `form:"title" validate:"required,min=3,max=255"`
	Content string `form:"content" validate:"required,min=10"`
	Image   string `form:"image" validate:"omitempty,max=255"`
	Publish string `form:"publish" validate:"required,datetime=2006-01-02"`
	Draft   bool   `form:"draft"`
}

// FromPost pre-fills the form for the edit page.
func FromPost(post *model.Post) *PostForm {
	form := &PostForm{
		Title:   post.Title,
		Content: post.Content,
		Image:   post.Image,
		Draft:   post.Draft,
	}
	if post.Publish.Valid {
		form.Publish = post.Publish.Time.Format(publishLayout)
	}
	return form
}

// Validate returns one message per invalid field, keyed by form field name.
func (f *PostForm) Validate(validate *validator.Validate) map[string]string {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": "invalid form submission"}
	}

	fieldErrors := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		fieldErrors[fieldName(fieldError.Field())] = fieldMessage(fieldError)
	}
	return fieldErrors
}

func (f *PostForm) CreateDTO() *model.CreatePostDTO {
	return &model.CreatePostDTO{
		Title:   f.Title,
		Content: f.Content,
		Image:   f.Image,
		Publish: f.publishDate(),
		Draft:   f.Draft,
	}
}

func (f *PostForm) UpdateDTO() *model.UpdatePostDTO {
	publish := f.publishDate()
	return &model.UpdatePostDTO{
		Title:   &f.Title,
		Content: &f.Content,
		Image:   &f.Image,
		Publish: &publish,
		Draft:   &f.Draft,
	}
}

func (f *PostForm) publishDate() pgtype.Date {
	parsed, err := time.ParseInLocation(publishLayout, f.Publish, time.UTC)
	if err != nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: parsed, Valid: true}
}

func fieldName(structField string) string {
	switch structField {
	case "Title":
		return "title"
	case "Content":
		return "content"
	case "Image":
		return "image"
	case "Publish":
		return "publish"
	case "Draft":
		return "draft"
	default:
		return structField
	}
}

func fieldMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fieldError.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldError.Param())
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "invalid value"
	}
}
