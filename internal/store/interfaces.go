package store

import (
	"context"
	"time"

	"github.com/MKhiriev/keeper-reveal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SubmissionRepository persists sealed team submissions keyed by team ID.
type SubmissionRepository interface {
	// Create stores a new submission. It returns [ErrAlreadyExists] when the
	// team already has one.
	Create(ctx context.Context, sub models.Submission) error
	// Get returns the submission of a team or [ErrNotFound].
	Get(ctx context.Context, teamID string) (models.Submission, error)
	// UpdateRevealFields marks a submission revealed and stores its decoded
	// keepers and cost data. Already revealed submissions are left untouched.
	UpdateRevealFields(ctx context.Context, teamID, keepers string, costData *string) error
	// Replace overwrites the sealed fields of a team's submission in one
	// write. CreatedAt and the reveal fields are kept. It returns
	// [ErrNotFound] for a missing team and [ErrSubmissionRevealed] once the
	// submission is revealed.
	Replace(ctx context.Context, sub models.Submission) error
	// ListAll returns every submission keyed by team ID.
	ListAll(ctx context.Context) (map[string]models.Submission, error)
	// Remove deletes a submission. Removing a missing team is not an error.
	Remove(ctx context.Context, teamID string) error
	// RemoveAll deletes every submission.
	RemoveAll(ctx context.Context) error
}

// StateRepository persists the single shared countdown record.
type StateRepository interface {
	GetState(ctx context.Context) (models.CountdownState, error)
	// SetCountdownStart writes the shared countdown start; nil clears it.
	SetCountdownStart(ctx context.Context, start *time.Time) error
	// SetDeadline writes the submission deadline; nil clears it.
	SetDeadline(ctx context.Context, deadline *time.Time) error
}

// EventPublisher receives a change event after every successful write.
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event) error
}

// ErrorClassificator inspects driver errors of a SQL backend.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
