// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/store"
	"github.com/MKhiriev/keeper-reveal/models"
)

// DeadlineTimer watches the submission deadline. Once it is reached, and
// while it stays inside the auto-start window, every tick asks the
// coordinator to start a countdown. Every tick then advances the countdown.
type DeadlineTimer struct {
	clock     clockwork.Clock
	state     store.StateRepository
	countdown Countdown
	interval  time.Duration
	window    time.Duration
	logger    *logger.Logger
}

func NewDeadlineTimer(
	clock clockwork.Clock,
	state store.StateRepository,
	cd Countdown,
	cfg *config.StructuredConfig,
	log *logger.Logger,
) *DeadlineTimer {
	return &DeadlineTimer{
		clock:     clock,
		state:     state,
		countdown: cd,
		interval:  cfg.Workers.TickInterval,
		window:    cfg.App.AutoStartWindow,
		logger:    log.WithComponent("deadline-timer"),
	}
}

func (t *DeadlineTimer) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)

	ticker := t.clock.NewTicker(t.interval)
	defer ticker.Stop()

	t.logger.Info().Dur("interval", t.interval).Msg("deadline timer started")
	for {
		select {
		case <-ctx.Done():
			t.logger.Info().Msg("deadline timer stopped")
			return nil
		case <-ticker.Chan():
			t.tick(ctx)
		}
	}
}

func (t *DeadlineTimer) tick(ctx context.Context) {
	if t.deadlineReached(ctx) && t.countdown.State() == models.CountdownIdle {
		outcome, err := t.countdown.StartIfNeeded(ctx)
		switch {
		case err != nil:
			t.logger.Err(err).Str("func", "*DeadlineTimer.tick").Msg("error starting countdown")
		case outcome == models.OutcomeStarted || outcome == models.OutcomeJoined:
			t.logger.Info().Str("outcome", string(outcome)).Msg("deadline reached, countdown running")
		}
	}

	t.countdown.Tick(ctx)
}

func (t *DeadlineTimer) deadlineReached(ctx context.Context) bool {
	state, err := t.state.GetState(ctx)
	if err != nil {
		t.logger.Err(err).Str("func", "*DeadlineTimer.deadlineReached").Msg("error reading deadline")
		return false
	}

	status := models.DeadlineRemaining(t.clock.Now(), state.Deadline, t.window)
	return status.Kind == models.DeadlineReached
}
