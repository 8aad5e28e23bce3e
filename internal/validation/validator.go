// Package validation checks CLI input structs using the validator/v10 library.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/dateutil"
)

// Error lists the fields that failed validation, keyed by flag name.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return strings.Join(parts, "; ")
}

// Validator wraps go-playground/validator with twine's custom tags.
type Validator struct {
	v *validator.Validate
}

// New creates a validator with the "day" and "contenttype" tags registered.
func New() *Validator {
	v := validator.New()

	// Use flag tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("flag"); name != "" {
			return name
		}
		return strings.ToLower(fld.Name)
	})

	_ = v.RegisterValidation("day", func(fl validator.FieldLevel) bool {
		return dateutil.IsValidDay(fl.Field().String())
	})
	_ = v.RegisterValidation("contenttype", func(fl validator.FieldLevel) bool {
		return content.Type(fl.Field().String()).Valid()
	})

	return &Validator{v: v}
}

// Validate validates a struct and returns an *Error listing every failure.
func (v *Validator) Validate(s any) error {
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make(map[string]string)
	for _, e := range validationErrs {
		fields[e.Field()] = friendlyMessage(e)
	}
	return &Error{Fields: fields}
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "day":
		return "must be a date in YYYY-MM-DD format"
	case "contenttype":
		return "must be one of: " + strings.Join(typeNames(), " ")
	default:
		return "is invalid"
	}
}

func typeNames() []string {
	names := make([]string, len(content.Types))
	for i, t := range content.Types {
		names[i] = string(t)
	}
	return names
}
