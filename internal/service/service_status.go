package service

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/store"
	"github.com/MKhiriev/keeper-reveal/models"
)

type statusService struct {
	submissions     store.SubmissionRepository
	state           store.StateRepository
	countdown       Countdown
	clock           clockwork.Clock
	autoStartWindow time.Duration

	logger *logger.Logger
}

func NewStatusService(
	submissions store.SubmissionRepository,
	state store.StateRepository,
	countdown Countdown,
	clock clockwork.Clock,
	cfg config.App,
	logger *logger.Logger,
) StatusService {
	return &statusService{
		submissions:     submissions,
		state:           state,
		countdown:       countdown,
		clock:           clock,
		autoStartWindow: cfg.AutoStartWindow,
		logger:          logger,
	}
}

func (s *statusService) Deadline(ctx context.Context) (models.DeadlineStatus, error) {
	state, err := s.state.GetState(ctx)
	if err != nil {
		return models.DeadlineStatus{}, err
	}

	return models.DeadlineRemaining(s.clock.Now(), state.Deadline, s.autoStartWindow), nil
}

func (s *statusService) Countdown(_ context.Context) models.CountdownStatus {
	return s.countdown.Status()
}

// StartCountdown is the public trigger a board client fires when it sees the
// deadline arrive. It only reaches the coordinator while the deadline is in
// the auto-start window; the commissioner's force reveal is the one path that
// starts a countdown unconditionally.
func (s *statusService) StartCountdown(ctx context.Context) (models.CountdownOutcome, error) {
	deadline, err := s.Deadline(ctx)
	if err != nil {
		return "", err
	}

	if deadline.Kind != models.DeadlineReached {
		s.logger.Warn().Str("deadline", string(deadline.Kind)).Msg("countdown start refused")
		return "", ErrDeadlineNotReached
	}

	return s.countdown.StartIfNeeded(ctx)
}

// Board is everything a watching client shows in one read.
func (s *statusService) Board(ctx context.Context) (models.Board, error) {
	deadline, err := s.Deadline(ctx)
	if err != nil {
		return models.Board{}, err
	}

	all, err := s.submissions.ListAll(ctx)
	if err != nil {
		return models.Board{}, err
	}

	return models.Board{
		Deadline:    deadline,
		Countdown:   s.countdown.Status(),
		Submissions: sortedSealed(all),
	}, nil
}
