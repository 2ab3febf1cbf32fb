package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// credentials is the username/password form shared by signup and login.
type credentials struct {
	Username string `validate:"required,max=64"`
	// bcrypt ignores everything past 72 bytes
	Password string `validate:"required,max=72"`
}

func readCredentials(r *http.Request) credentials {
	return credentials{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}
}

var validate = validator.New()

// validationMessage returns a human readable message, or "" when c passes.
func (c credentials) validationMessage() string {
	err := validate.Struct(c)
	if err == nil {
		return ""
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
