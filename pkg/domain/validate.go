package domain

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// notblank rejects empty and whitespace-only strings.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// ValidateStruct runs the struct-tag rules of s. On failure it also returns
// the name of the first offending struct field.
func ValidateStruct(s any) (string, error) {
	err := validate.Struct(s)
	if err == nil {
		return "", nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].StructField(), err
	}
	return "", err
}

// ValidateVar checks a single value against a tag expression such as
// "notblank,max=255".
func ValidateVar(field any, tag string) error {
	return validate.Var(field, tag)
}
