package forms

import "github.com/go-playground/validator/v10"

type LoginForm struct {
	Username string `form:"username" validate:"required,max=150"`
	Password string `form:"password" validate:"required"`
}

func (f *LoginForm) Validate(validate *validator.Validate) map[string]string {
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
		switch fieldError.Field() {
		case "Username":
			fieldErrors["username"] = "username is required"
		case "Password":
			fieldErrors["password"] = "password is required"
		}
	}
	return fieldErrors
}
