// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements the input schemas of the API.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationError: field name to messages map reported back to the caller
//     as the "errors" payload of a 400 response.
//   - Decode / Load: strict JSON decoding of a request body into an input
//     struct followed by validation of its `validate` struct tags.
//
// Output-only fields (ids, timestamps, authors) are simply absent from the
// input structs, so a request that sends them fails with "Unknown field.".
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts the reported messages to specific named (JSON) fields.
	Validate(context.Context, any, ...string) error
}
