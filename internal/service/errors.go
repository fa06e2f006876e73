package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/keeper-reveal/models"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrWrongSecret covers both an undecodable ciphertext and a digest
	// mismatch; callers cannot tell the two apart.
	ErrWrongSecret = errors.New("incorrect password")

	ErrSubmissionsLocked       = errors.New("deadline has passed, submissions are locked")
	ErrAlreadyRevealed         = errors.New("submission is already revealed")
	ErrManualRevealUnavailable = errors.New("manual reveal is only available after the deadline while no countdown runs")
	ErrDeadlineNotReached      = errors.New("countdown can only start once the deadline is reached")
	ErrTeamMismatch            = errors.New("an edit cannot move a submission to another team")
	ErrPartialReveal           = errors.New("partial reveal failure")

	ErrVersionIsNotSpecified      = errors.New("reveal server build version is not set (VERSION)")
	ErrCommissionerNotConfigured  = errors.New("commissioner password is not configured")
	ErrTokenCreationFailed        = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid    = errors.New("token is expired or invalid")
	ErrCommissionerRoleIsRequired = errors.New("commissioner role is required")
)

// PartialRevealFailureError is returned next to a [models.RevealReport] that
// holds at least one failed team. It matches [ErrPartialReveal].
type PartialRevealFailureError struct {
	Report models.RevealReport
}

func (e *PartialRevealFailureError) Error() string {
	return fmt.Sprintf("%s: %d team(s) failed, %d revealed", ErrPartialReveal, len(e.Report.Failures), len(e.Report.Revealed))
}

func (e *PartialRevealFailureError) Unwrap() error {
	return ErrPartialReveal
}

// RevealErr returns a *PartialRevealFailureError when report holds failures
// and nil otherwise.
func RevealErr(report models.RevealReport) error {
	if !report.HasFailures() {
		return nil
	}
	return &PartialRevealFailureError{Report: report}
}
