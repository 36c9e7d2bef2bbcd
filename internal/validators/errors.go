package validators

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// SchemaField is the pseudo field name under which errors that concern the
// whole payload are reported.
const SchemaField = "_schema"

// ValidationError lists the problems found in an input payload, keyed by the
// JSON name of the offending field.
type ValidationError struct {
	Messages map[string][]string
}

// NewValidationError returns an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{Messages: make(map[string][]string)}
}

// SchemaError returns a ValidationError with a single payload-level message.
func SchemaError(message string) *ValidationError {
	e := NewValidationError()
	e.Add(SchemaField, message)
	return e
}

// Add appends message to the messages of field.
func (e *ValidationError) Add(field, message string) {
	e.Messages[field] = append(e.Messages[field], message)
}

// HasErrors reports whether at least one message was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Messages) > 0
}

// Fields returns the names of the fields with messages in sorted order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Messages))
	for f := range e.Messages {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Messages))
	for _, f := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e.Messages[f], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NoInputDataError reports a request that carried nothing to apply.
func NoInputDataError() *ValidationError {
	return SchemaError(msgNoInputData)
}

// MissingFieldError reports field as required but absent.
func MissingFieldError(field string) *ValidationError {
	e := NewValidationError()
	e.Add(field, msgMissingField)
	return e
}
