// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, JWT token
// generation and validation, JSON response writing, and stored-file naming.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the
// authenticated user's identifier in the request context.
var UserIDCtxKey = contextKey("userID")

// UserEmailCtxKey is the key under which the auth middleware stores the
// authenticated user's email in the request context.
var UserEmailCtxKey = contextKey("userEmail")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetUserEmailFromContext retrieves the authenticated user's email from the
// context, with the same ok semantics as [GetUserIDFromContext].
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailCtxKey).(string)
	return email, ok
}
