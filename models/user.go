package models

import "time"

// User represents an account entity used for authentication and ownership of
// uploaded models. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned by the database.
	ID int64 `json:"id"`

	// Email is the unique address the user registers and logs in with.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// It is never serialized to JSON and never leaves the server process.
	Password string `json:"-"`

	// Username is the display name of the user. Non-sensitive, may be shown in UI.
	Username string `json:"username"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
