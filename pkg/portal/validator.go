package portal

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator and keeps the last run's field
// errors around so callers can surface them as a response payload.
type Validator struct {
	driver *validator.Validate
	errors map[string]string
}

func GetDefaultValidator() *Validator {
	return MakeValidatorFrom(
		validator.New(validator.WithRequiredStructEnabled()),
	)
}

func MakeValidatorFrom(driver *validator.Validate) *Validator {
	registerCustomValidations(driver)

	return &Validator{
		driver: driver,
		errors: map[string]string{},
	}
}

func (v *Validator) Passes(subject any) (bool, error) {
	v.errors = map[string]string{}

	err := v.driver.Struct(subject)
	if err == nil {
		return true, nil
	}

	var fieldErrors validator.ValidationErrors
	if ok := asValidationErrors(err, &fieldErrors); ok {
		for _, fieldError := range fieldErrors {
			v.errors[strings.ToLower(fieldError.Field())] = fieldError.Tag()
		}
	}

	return false, err
}

func (v *Validator) Rejects(subject any) (bool, error) {
	passes, err := v.Passes(subject)

	return !passes, err
}

func (v *Validator) GetErrors() map[string]string {
	return v.errors
}

func (v *Validator) GetErrorsAsJson() string {
	seed, err := json.Marshal(v.errors)

	if err != nil {
		return "{}"
	}

	return string(seed)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}

	*target = fieldErrors

	return true
}
