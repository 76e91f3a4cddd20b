package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because the email is already present (unique constraint).
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup by email or id
	// produces an empty result set. Absence is an expected outcome, not a
	// driver error, so it is never surfaced as sql.ErrNoRows.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrModelNotFound is returned when a query or update targets a model
	// id that does not exist in the database.
	ErrModelNotFound = errors.New("model was not found")

	// ErrRatingOutOfRange is returned when the ratings CHECK constraint
	// rejects a value outside [1,5]. The same bound is validated before any
	// persistence call, so seeing this error means a caller bypassed the
	// service layer.
	ErrRatingOutOfRange = errors.New("rating value is out of range")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an update with no fields to set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for reasons other than a recognised constraint.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows is returned when iterating or scanning a multi-row
	// result set fails.
	ErrScanningRows = errors.New("error scanning rows")
)
