package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SchemaValidator validates input structs against their `validate` tags and
// reports failures keyed by JSON field name.
type SchemaValidator struct {
	validate *validator.Validate
}

// NewSchemaValidator returns a [Validator] backed by go-playground/validator.
func NewSchemaValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &SchemaValidator{validate: v}
}

// Validate checks obj, which must be a struct or a pointer to one. When
// fields are given, only messages for those top-level JSON fields are kept.
//
// Returns nil, a *[ValidationError], or [ErrUnsupportedType].
func (s *SchemaValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	val := reflect.ValueOf(obj)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return ErrUnsupportedType
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	err := s.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("schema validation: %w", err)
	}

	validationErr := NewValidationError()
	for _, fe := range fieldErrors {
		name := fieldName(fe)
		if len(fields) > 0 && !slices.Contains(fields, rootField(name)) {
			continue
		}
		validationErr.Add(name, fieldErrorMessage(fe))
	}

	if !validationErr.HasErrors() {
		return nil
	}

	return validationErr
}

// fieldName strips the struct type name from the namespace:
// "PatientInput.allergies[0].name" becomes "allergies[0].name".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func rootField(name string) string {
	if i := strings.IndexAny(name, ".["); i >= 0 {
		return name[:i]
	}
	return name
}
