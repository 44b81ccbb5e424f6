package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// credit: https://github.com/go-playground/validator/issues/559#issuecomment-976459959

type ApiError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func msgForTag(fe validator.FieldError, field string) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%v is required", field)
	case "strNotEmpty":
		return fmt.Sprintf("%v must not be empty or contain only whitespace characters", field)
	}

	return fe.Error()
}

/*
GenerateErrorMessages turns an error into a list of ApiError.
Validation errors produce one entry per failed field, any other error
produces a single entry whose field is fieldName (or "Unknown").

Example output:

	[
	  {
		"field": "club_name",
		"message": "club_name is required"
	  }
	]
*/
func GenerateErrorMessages(err error, fieldName ...string) []ApiError {
	if err == nil {
		return []ApiError{}
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]ApiError, len(ve))
		for i, fe := range ve {
			out[i] = ApiError{Field: fe.Field(), Message: msgForTag(fe, fe.Field())}
		}
		return out
	}

	field := "Unknown"
	if len(fieldName) > 0 && fieldName[0] != "" {
		field = fieldName[0]
	}

	return []ApiError{{Field: field, Message: err.Error()}}
}

// check if string is empty, after trimming spaces
// Usage: `binding:"strNotEmpty"`
func StrNotEmpty(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return strings.TrimSpace(field.String()) != ""
}

// Registers the custom tags and reports field names the way clients send
// them (form tag first, then json tag).
func RegisterCustomValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})

	return v.RegisterValidation("strNotEmpty", StrNotEmpty)
}

// RegisterBindingValidations installs the custom validations on gin's binding engine.
func RegisterBindingValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}

	return RegisterCustomValidations(v)
}
