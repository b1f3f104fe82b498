// Package validation provides struct validation for flow documents with
// go-playground/validator integration.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance
var Validate *validator.Validate

var nodeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func init() {
	Validate = validator.New()

	// Node identifiers: alphanumeric with underscores and hyphens.
	_ = Validate.RegisterValidation("node_id", func(fl validator.FieldLevel) bool {
		id := fl.Field().String()
		return id != "" && len(id) <= 100 && nodeIDPattern.MatchString(id)
	})

	// Use JSON tags for field names in error messages.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// Error represents a single field validation failure
type Error struct {
	Field   string `json:"field"`
	Value   any    `json:"value"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s (got: %v)", e.Field, e.Message, e.Value)
}

// Errors aggregates field validation failures
type Errors []Error

func (e Errors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Struct validates a struct against its tags, returning Errors on failure.
func Struct(s any) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs Errors
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrors {
			errs = append(errs, Error{
				Field:   fe.Field(),
				Value:   fe.Value(),
				Message: message(fe),
			})
		}
		return errs
	}
	return err
}

// message returns a human-readable message per failed tag.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "node_id":
		return "must be a valid node identifier (alphanumeric, underscore, hyphen)"
	default:
		return fmt.Sprintf("validation failed: %s", fe.Tag())
	}
}
