// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides client-side validation of every form the
// salestrak client submits. A form that fails validation never reaches the
// network layer.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldErrors: the per-field outcome, which unwraps to the sentinel errors
//     of errors.go and carries the message shown next to the field.
//
// Usage patterns:
//  1. Inject a Validator into services and call Validate before any request.
//  2. Call the Validate* helpers directly for live validation while typing.
//  3. Use errors.Is with the sentinels, or FieldErrors.Field for inline text.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
