package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var saudiPhoneRe = regexp.MustCompile(`^(\+966|0)5\d{8}$`)

// RegisterCustomValidations регистрирует наши правила в валидаторе.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("percent", isPercent); err != nil {
		return err
	}
	if err := v.RegisterValidation("sa_phone", isSaudiPhone); err != nil {
		return err
	}
	return nil
}

func isPercent(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return f >= 0 && f <= 100
}

func isSaudiPhone(fl validator.FieldLevel) bool {
	return saudiPhoneRe.MatchString(fl.Field().String())
}
