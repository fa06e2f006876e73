package service

import (
	"context"
	"time"

	"github.com/MKhiriev/keeper-reveal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SubmissionServiceWrapper

// SubmissionService seals and stores keeper selections.
type SubmissionService interface {
	// Submit seals req under its password and stores it for the sanitised
	// team. It fails with store.ErrAlreadyExists for a team that already
	// submitted and with ErrSubmissionsLocked after the deadline.
	Submit(ctx context.Context, req models.SubmitRequest) (models.Submission, error)

	// Edit replaces a sealed submission after checking its current password.
	Edit(ctx context.Context, teamID string, req models.EditRequest) (models.Submission, error)

	// List returns every submission ordered by creation time, with the
	// password ciphertext blanked.
	List(ctx context.Context) ([]models.Submission, error)
	Get(ctx context.Context, teamID string) (models.Submission, error)
}

// RevealService turns sealed submissions into revealed ones.
type RevealService interface {
	// RevealAll reveals every sealed submission with the system key. Teams
	// that fail are reported, never block the others, and make the returned
	// error a *PartialRevealFailureError.
	RevealAll(ctx context.Context) (models.RevealReport, error)

	// ManualReveal reveals one team with the team's own password.
	ManualReveal(ctx context.Context, teamID, password string) (models.Submission, error)
}

// StatusService reports the deadline and the countdown.
type StatusService interface {
	Deadline(ctx context.Context) (models.DeadlineStatus, error)
	Countdown(ctx context.Context) models.CountdownStatus
	StartCountdown(ctx context.Context) (models.CountdownOutcome, error)
	Board(ctx context.Context) (models.Board, error)
}

// CommissionerService holds the league administration actions.
type CommissionerService interface {
	Login(ctx context.Context, password string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	SetDeadline(ctx context.Context, deadline time.Time) error
	ClearDeadline(ctx context.Context) error

	ForceReveal(ctx context.Context) (models.CountdownOutcome, error)
	TestCountdown(ctx context.Context) error

	ClearSubmissions(ctx context.Context) error
	Reset(ctx context.Context) error
	Export(ctx context.Context) (models.Export, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Countdown is the part of countdown.Coordinator the services drive.
type Countdown interface {
	StartIfNeeded(ctx context.Context) (models.CountdownOutcome, error)
	DryRun(ctx context.Context) error
	Status() models.CountdownStatus
}

// SubmissionServiceWrapper defines middleware composition for SubmissionService.
// Implementations wrap an existing SubmissionService to add behavior such as
// validating.
type SubmissionServiceWrapper interface {
	Wrap(SubmissionService) SubmissionService
}
