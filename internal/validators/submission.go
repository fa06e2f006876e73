package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/models"
)

// Field names accepted by [SubmissionValidator.Validate].
const (
	// FieldTeam targets the team name of a submission.
	FieldTeam = "team"

	// FieldKeepers targets the keeper count bounds and every keeper entry.
	FieldKeepers = "keepers"

	// FieldBudget targets the summed keeper cost.
	FieldBudget = "budget"

	// FieldPassword targets the team password and its minimum length.
	FieldPassword = "password"

	// FieldConfirmPassword targets the password confirmation.
	FieldConfirmPassword = "confirm_password"
)

// SubmissionValidator enforces the league rules on keeper submissions:
// keeper count bounds, the team budget and the password policy.
type SubmissionValidator struct {
	maxKeepers        int
	minKeepers        int
	teamBudget        int
	minPasswordLength int
}

func NewSubmissionValidator(cfg config.App) Validator {
	return &SubmissionValidator{
		maxKeepers:        cfg.MaxKeepers,
		minKeepers:        cfg.MinKeepers,
		teamBudget:        cfg.TeamBudget,
		minPasswordLength: cfg.MinPasswordLength,
	}
}

// Validate accepts SubmitRequest, EditRequest and RevealRequest, by value or
// by pointer. Without fields every rule of the type is checked.
func (v *SubmissionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SubmitRequest:
		return v.validateSubmitRequest(ctx, value, fields...)
	case *models.SubmitRequest:
		return v.validateSubmitRequest(ctx, *value, fields...)
	case models.EditRequest:
		return v.validateEditRequest(ctx, value, fields...)
	case *models.EditRequest:
		return v.validateEditRequest(ctx, *value, fields...)
	case models.RevealRequest:
		return v.validateRevealRequest(value)
	case *models.RevealRequest:
		return v.validateRevealRequest(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *SubmissionValidator) validateSubmitRequest(_ context.Context, req models.SubmitRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTeam, FieldKeepers, FieldBudget, FieldPassword, FieldConfirmPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldTeam:
			if strings.TrimSpace(req.TeamName) == "" {
				return ErrEmptyTeam
			}
		case FieldKeepers:
			if len(req.Keepers) > v.maxKeepers {
				return fmt.Errorf("%w: %d selected, at most %d allowed", ErrTooManyKeepers, len(req.Keepers), v.maxKeepers)
			}
			if len(req.Keepers) < v.minKeepers {
				return fmt.Errorf("%w: %d selected, at least %d required", ErrTooFewKeepers, len(req.Keepers), v.minKeepers)
			}
			for i, k := range req.Keepers {
				if strings.TrimSpace(k.Name) == "" {
					return fmt.Errorf("keeper at index %d: %w", i, ErrEmptyKeeperName)
				}
				if strings.Contains(k.Name, models.KeeperSeparator) {
					return fmt.Errorf("keeper at index %d: %w", i, ErrInvalidKeeperName)
				}
				if k.Cost < 0 {
					return fmt.Errorf("keeper at index %d: %w", i, ErrNegativeKeeperCost)
				}
			}
		case FieldBudget:
			// each cost is checked against what is left, so spent stays
			// within the budget and the sum cannot overflow
			spent := 0
			for _, k := range req.Keepers {
				cost := max(k.Cost, 0)
				if cost > v.teamBudget-spent {
					return fmt.Errorf("%w: %d of %d", ErrOverBudget, req.TotalCost(), v.teamBudget)
				}
				spent += cost
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
			if utf8.RuneCountInString(req.Password) < v.minPasswordLength {
				return fmt.Errorf("%w: at least %d characters", ErrPasswordTooShort, v.minPasswordLength)
			}
		case FieldConfirmPassword:
			if req.Password != req.ConfirmPassword {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SubmissionValidator) validateEditRequest(ctx context.Context, req models.EditRequest, fields ...string) error {
	if req.CurrentPassword == "" {
		return ErrEmptyPassword
	}

	return v.validateSubmitRequest(ctx, req.Submission, fields...)
}

func (v *SubmissionValidator) validateRevealRequest(req models.RevealRequest) error {
	if req.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}
