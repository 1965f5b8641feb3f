package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// New creates a new validator instance.
func New() *validator.Validate {
	valid := validator.New()
	if err := RegisterIDValidation(valid); err != nil {
		panic(fmt.Sprintf("validator initialization; error: %s", err))
	}
	return valid
}

// RegisterIDValidation registers the "id" field validator with the validator
// instance.
func RegisterIDValidation(validator *validator.Validate) error {
	return validator.RegisterValidation("id", id)
}

var idRE = regexp.MustCompile(`^[\x21-\x7e]{1,64}$`)

// id matches record identifiers: between 1 and 64 printable ASCII characters,
// without whitespace.
func id(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return idRE.MatchString(val)
}
