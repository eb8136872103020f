package api

import (
	"errors"  // Error matching
	"fmt"     // Message formatting
	"reflect" // Struct tag lookup
	"strings" // Message joining

	"github.com/gin-gonic/gin/binding"       // Gin's validator engine
	"github.com/go-playground/validator/v10" // Field level validation errors
)

func init() {
	// Report json field names ("planet_name") instead of Go field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindingMessage turns a binding failure into a client facing message
func bindingMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return strings.Join(msgs, "; ")
	}
	return "Invalid request: " + err.Error()
}

// fieldError converts a single field error into a readable message
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
