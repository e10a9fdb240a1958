package model

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Worker is a worker record as stored and returned by a WorkerStore.
// An empty Number means the phone number is unknown.
type Worker struct {
	Name   string `json:"name" yaml:"name" validate:"required"`
	Number string `json:"number" yaml:"number"`
	Year   int    `json:"year" yaml:"year" validate:"required,gte=1"`
}

func (w Worker) String() string {
	return fmt.Sprintf("%s <%s> (%d)", w.Name, w.Number, w.Year)
}

// Validate checks that the worker can be persisted.
func (w Worker) Validate() error {
	err := validate.Struct(w)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
	}

	return errors.Errorf("invalid fields: %s", strings.Join(fields, ", "))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	return v
}
