package http

import (
	"github.com/go-playground/validator/v10"
)

// requestValidator checks the validate tags of request bodies.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
