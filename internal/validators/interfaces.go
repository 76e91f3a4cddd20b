// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//   - ValidationError: an error carrying the full list of human-readable
//     messages for a rejected payload, so the API can return every problem
//     at once instead of the first one found.
//
// Validators are injected into services; transport layers never validate
// request bodies themselves. This keeps validation logic reusable,
// composable, and testable independently of HTTP.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks, and
// cross-field rules.
type Validator interface {

	// Validate validates the provided input. A returned *ValidationError
	// lists every violated rule; any other error signals an unsupported
	// input type or an internal failure.
	Validate(context.Context, any) error
}
