package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var participantPattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.@]+$`)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance with the project tags registered
func New() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("participant", validParticipant)
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// validParticipant accepts letters, digits, whitespace and - _ . @
func validParticipant(fl validator.FieldLevel) bool {
	return participantPattern.MatchString(fl.Field().String())
}
