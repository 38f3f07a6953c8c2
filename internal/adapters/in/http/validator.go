package http

import (
	"github.com/go-playground/validator/v10"
)

// requestValidator adapts go-playground/validator to the echo.Validator
// interface so handlers can call ctx.Validate on bound requests.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
