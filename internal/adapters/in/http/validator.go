package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"rfidship/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator runs go-playground validate tags on bound request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: validate}
}

// Validate reports every failed field as one errs.ValueIsInvalidError.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return errs.NewValueIsInvalidErrorWithCause("request", err)
	}

	problems := make([]string, 0, len(failures))
	for _, failure := range failures {
		if failure.Param() != "" {
			problems = append(problems, fmt.Sprintf("%s failed %s=%s", failure.Field(), failure.Tag(), failure.Param()))
			continue
		}
		problems = append(problems, fmt.Sprintf("%s failed %s", failure.Field(), failure.Tag()))
	}
	return errs.NewValueIsInvalidErrorWithCause("request", errors.New(strings.Join(problems, "; ")))
}
