// Package validation runs struct and value validation and reports failures
// as failure.ValidationFailed with human-readable messages per field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/JaimeStill/market-api/pkg/failure"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	return v
}

// fieldName reports a struct field by its query or json tag.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"query", "json"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// Errors collects validation messages keyed by field name.
type Errors struct {
	fields map[string][]string
}

// New creates an empty message collector.
func New() *Errors {
	return &Errors{fields: make(map[string][]string)}
}

// Add appends a message for field.
func (e *Errors) Add(field, message string) {
	e.fields[field] = append(e.fields[field], message)
}

// Struct validates s against its validate tags and collects any failures.
// A non-validation error from the validator is collected under field "_".
func (e *Errors) Struct(s any) {
	e.collect("", validate.Struct(s))
}

// Var validates a single value against tag and collects failures under field.
func (e *Errors) Var(field string, value any, tag string) {
	e.collect(field, validate.Var(value, tag))
}

// Err returns nil when nothing was collected, otherwise a
// *failure.ValidationFailed holding the collected messages.
func (e *Errors) Err() error {
	if len(e.fields) == 0 {
		return nil
	}
	return &failure.ValidationFailed{Fields: e.fields}
}

func (e *Errors) collect(field string, err error) {
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		e.Add(fallback(field, "_"), err.Error())
		return
	}

	for _, fe := range verrs {
		name := fallback(field, fe.Field())
		e.Add(name, Message(name, fe.Tag(), fe.Param()))
	}
}

// Struct validates s and returns a *failure.ValidationFailed or nil.
func Struct(s any) error {
	errs := New()
	errs.Struct(s)
	return errs.Err()
}

// Message renders the message for a failed rule on field.
func Message(field, tag, param string) string {
	label := strings.ReplaceAll(field, "_", " ")

	switch tag {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "number", "numeric":
		return fmt.Sprintf("The %s must be a number.", label)
	case "boolean":
		return fmt.Sprintf("The %s field must be true or false.", label)
	case "gte", "min":
		return fmt.Sprintf("The %s must be at least %s.", label, param)
	case "lte", "max":
		return fmt.Sprintf("The %s may not be greater than %s.", label, param)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", label)
	case "uuid", "uuid4", "uuid7":
		return fmt.Sprintf("The %s must be a valid UUID.", label)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", label)
	default:
		return fmt.Sprintf("The %s is invalid.", label)
	}
}

func fallback(preferred, other string) string {
	if preferred != "" {
		return preferred
	}
	return other
}
