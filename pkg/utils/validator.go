package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-()]{6,19}$`)

func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "user", "admin", "delivery":
			return true
		}
		return false
	})

	return v
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
