// Package validator plugs go-playground/validator into echo.
package validator

import (
	"ummana/internal/domain/validation"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New returns a validator that also knows the console's custom tags.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := validation.RegisterRules(v); err != nil {
		panic(err)
	}

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}
