package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/internal/validators"
	"github.com/MKhiriev/keeper-reveal/models"
)

// SubmissionValidationService checks league rules before a request reaches
// the wrapped SubmissionService.
type SubmissionValidationService struct {
	inner     SubmissionService
	validator validators.Validator
}

func NewSubmissionValidationService(cfg config.App) SubmissionServiceWrapper {
	return &SubmissionValidationService{
		validator: validators.NewSubmissionValidator(cfg),
	}
}

func (v *SubmissionValidationService) Submit(ctx context.Context, req models.SubmitRequest) (models.Submission, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Submit(ctx, req)
}

func (v *SubmissionValidationService) Edit(ctx context.Context, teamID string, req models.EditRequest) (models.Submission, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Edit(ctx, teamID, req)
}

func (v *SubmissionValidationService) List(ctx context.Context) ([]models.Submission, error) {
	return v.inner.List(ctx)
}

func (v *SubmissionValidationService) Get(ctx context.Context, teamID string) (models.Submission, error) {
	return v.inner.Get(ctx, teamID)
}

func (v *SubmissionValidationService) Wrap(wrapped SubmissionService) SubmissionService {
	v.inner = wrapped
	return v
}
