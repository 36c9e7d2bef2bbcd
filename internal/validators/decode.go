package validators

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

const unknownFieldPrefix = "json: unknown field "

// Decode strictly decodes one JSON object from r into dst.
//
// Unknown fields, type mismatches, malformed JSON and an empty body are all
// reported as a *[ValidationError].
func Decode(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}

	if dec.More() {
		return SchemaError(msgInvalidInputType)
	}

	return nil
}

// Load decodes r into dst and validates the result with v.
func Load(ctx context.Context, v Validator, r io.Reader, dst any) error {
	if err := Decode(r, dst); err != nil {
		return err
	}

	return v.Validate(ctx, dst)
}

func decodeError(err error) error {
	if errors.Is(err, io.EOF) {
		return SchemaError(msgNoInputData)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return SchemaError(msgInvalidInputType)
		}
		validationErr := NewValidationError()
		validationErr.Add(typeErr.Field, typeErrorMessage(typeErr.Type.Kind()))
		return validationErr
	}

	// encoding/json has no typed error for unknown fields
	if msg := err.Error(); strings.HasPrefix(msg, unknownFieldPrefix) {
		validationErr := NewValidationError()
		validationErr.Add(strings.Trim(strings.TrimPrefix(msg, unknownFieldPrefix), `"`), msgUnknownField)
		return validationErr
	}

	return SchemaError(msgInvalidInputType)
}
