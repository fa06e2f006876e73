package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a team has no submission.
	ErrNotFound = errors.New("submission not found")

	// ErrAlreadyExists is returned when a team submits a second time.
	ErrAlreadyExists = errors.New("submission already exists")

	// ErrSubmissionRevealed is returned when a revealed submission would be
	// overwritten.
	ErrSubmissionRevealed = errors.New("submission is already revealed")

	// ErrStoreUnavailable wraps every backend failure. The store never
	// retries; callers decide whether to try again.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. They are wrapped together with
// [ErrStoreUnavailable] when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrWritingSnapshot is returned when the file backend cannot persist
	// its snapshot.
	ErrWritingSnapshot = errors.New("failed to write snapshot")
)
