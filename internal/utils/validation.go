package utils

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/toyz/proxygen/internal/errors"
)

// HTTPMethods lists the methods accepted by the "httpmethod" tag.
var HTTPMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"}

// StructValidator validates tagged structs and reports every failure with
// its JSON field path.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator creates a validator with the custom tags registered
func NewStructValidator() *StructValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("httpmethod", func(fl validator.FieldLevel) bool {
		method := strings.ToUpper(fl.Field().String())
		for _, allowed := range HTTPMethods {
			if method == allowed {
				return true
			}
		}
		return false
	})
	return &StructValidator{validate: validate}
}

// Validate checks s against its validate tags. Failures are collected into
// an *errors.MultipleErrors.
func (v *StructValidator) Validate(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.Wrap(errors.ValidationErrorCode, "validation failed", err)
	}

	result := &errors.MultipleErrors{}
	for _, fe := range fieldErrs {
		result.Add(errors.InvalidField(fe.Namespace(), fe.Tag(), fe.Param()))
	}
	return result.ErrorOrNil()
}

// jsonFieldName reports fields by their JSON name so paths match the input
// document.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		if yamlName := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]; yamlName != "" && yamlName != "-" {
			return yamlName
		}
		return field.Name
	}
	return name
}
