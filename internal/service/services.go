package service

import (
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/internal/crypto"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/store"
)

type Services struct {
	SubmissionService   SubmissionService
	RevealService       RevealService
	StatusService       StatusService
	CommissionerService CommissionerService
	AppInfoService      AppInfoService
}

// NewServices wires the services around one countdown. The reveal
// authority is built beforehand because the countdown needs it.
func NewServices(
	storages *store.Storages,
	authority *RevealAuthority,
	countdown Countdown,
	codec crypto.Codec,
	clock clockwork.Clock,
	cfg config.App,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	commissioner, err := NewCommissionerService(storages.Submissions, storages.State, countdown, clock, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating commissioner service: %w", err)
	}

	submissions := NewSubmissionValidationService(cfg).
		Wrap(NewSubmissionService(storages.Submissions, storages.State, codec, clock, cfg, logger))

	return &Services{
		SubmissionService:   submissions,
		RevealService:       NewRevealService(authority, storages.Submissions, storages.State, countdown, codec, clock, logger),
		StatusService:       NewStatusService(storages.Submissions, storages.State, countdown, clock, cfg, logger),
		CommissionerService: commissioner,
		AppInfoService:      appInfo,
	}, nil
}
