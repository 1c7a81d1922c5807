// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation of request
// bodies.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationErrors: every violated rule, grouped per property, so that
//     callers can report all problems of an input at once.
//
// Rules are declared with `validate` struct tags (go-playground/validator);
// properties are reported by their JSON names.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	// A rule violation is reported as [ValidationErrors].
	Validate(context.Context, any, ...string) error
}
