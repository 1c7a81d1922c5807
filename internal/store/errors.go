package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrUserAlreadyExists = errors.New("user with this email already exists")

	// ErrUserNotFound is returned when a query expected to match one user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrOfferNotFound is returned when a query or update targets an offer
	// that does not exist.
	ErrOfferNotFound = errors.New("offer was not found")

	// ErrCommentNotSaved is returned when an INSERT of a comment completes
	// without returning the stored row.
	ErrCommentNotSaved = errors.New("comment was not saved")

	// ErrInvalidFileName is returned by file storages for names that would
	// escape the storage root.
	ErrInvalidFileName = errors.New("invalid file name")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a multi-row result set
	// fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingColumn is returned when a JSONB column cannot be decoded.
	ErrDecodingColumn = errors.New("failed to decode column")
)
