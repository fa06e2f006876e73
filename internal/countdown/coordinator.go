// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package countdown

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/store"
	"github.com/MKhiriev/keeper-reveal/models"
)

// Revealer runs the mass reveal. It must be idempotent.
type Revealer interface {
	RevealAll(ctx context.Context) (models.RevealReport, error)
}

// Options configure a [Coordinator].
type Options struct {
	// Duration is the length of a countdown.
	Duration time.Duration
	// StaleThreshold is the age beyond which an observed countdown is
	// abandoned and cleared.
	StaleThreshold time.Duration
}

// Coordinator is one client's view of the shared reveal countdown.
//
// All fields below mu are local and never persisted. Store round trips and
// the reveal itself run without holding mu.
type Coordinator struct {
	clock       clockwork.Clock
	submissions store.SubmissionRepository
	state       store.StateRepository
	revealer    Revealer
	opts        Options
	logger      *logger.Logger

	mu            sync.Mutex
	phase         models.CountdownPhase
	startTime     time.Time
	active        bool
	autoRevealing bool
	dryRun        bool
	// lastCompleted is the start of the last countdown this coordinator saw
	// to the end; observing it again must not start a second countdown.
	lastCompleted time.Time
	observer      func(models.CountdownStatus)
}

func NewCoordinator(
	clock clockwork.Clock,
	submissions store.SubmissionRepository,
	state store.StateRepository,
	revealer Revealer,
	opts Options,
	log *logger.Logger,
) *Coordinator {
	return &Coordinator{
		clock:       clock,
		submissions: submissions,
		state:       state,
		revealer:    revealer,
		opts:        opts,
		logger:      log.WithComponent("countdown"),
		phase:       models.CountdownIdle,
	}
}

// SetObserver registers fn to be called after every local phase change.
// fn runs without the coordinator lock held.
func (c *Coordinator) SetObserver(fn func(models.CountdownStatus)) {
	c.mu.Lock()
	c.observer = fn
	c.mu.Unlock()
}

// StartIfNeeded begins a countdown unless there is nothing to reveal.
//
// When the store already holds a fresh start written by another client the
// coordinator joins it instead of overwriting it. A failed write of the new
// start is logged and the countdown still runs locally.
func (c *Coordinator) StartIfNeeded(ctx context.Context) (models.CountdownOutcome, error) {
	log := logger.FromContext(ctx)

	c.mu.Lock()
	if c.active || c.autoRevealing {
		c.mu.Unlock()
		return models.OutcomeAlreadyActive, nil
	}
	c.mu.Unlock()

	subs, err := c.submissions.ListAll(ctx)
	if err != nil {
		return "", err
	}
	if len(subs) == 0 {
		return models.OutcomeNoSubmissions, nil
	}
	if allRevealed(subs) {
		return models.OutcomeAllRevealed, nil
	}

	now := c.clock.Now()

	state, err := c.state.GetState(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Coordinator.StartIfNeeded").Msg("error reading shared countdown, starting a new one")
	} else if start := state.CountdownStartTime; start != nil && age(*start, now) < c.opts.StaleThreshold {
		if joined := c.begin(*start, false); joined {
			return models.OutcomeJoined, nil
		}
	}

	if err = c.state.SetCountdownStart(ctx, &now); err != nil {
		log.Err(err).Str("func", "*Coordinator.StartIfNeeded").Msg("error writing countdown start, counting locally")
	}

	if !c.begin(now, false) {
		return models.OutcomeAlreadyActive, nil
	}
	log.Info().Time("start", now).Int("subs", len(subs)).Msg("countdown started")

	return models.OutcomeStarted, nil
}

// OnCountdownStateChanged applies a shared start observed in the store.
func (c *Coordinator) OnCountdownStateChanged(ctx context.Context, start *time.Time) {
	log := logger.FromContext(ctx)

	if start == nil {
		c.mu.Lock()
		changed := c.active && !c.dryRun && !c.autoRevealing
		if changed {
			c.resetLocked()
		}
		status, observer := c.statusLocked(), c.observer
		c.mu.Unlock()

		if changed {
			log.Info().Msg("countdown cleared by another client")
			notify(observer, status)
		}
		return
	}

	if age(*start, c.clock.Now()) < c.opts.StaleThreshold {
		c.begin(*start, false)
		return
	}

	c.mu.Lock()
	if c.active && !c.dryRun && c.startTime.After(*start) {
		// a late echo of an older start; the newer countdown stays
		c.mu.Unlock()
		return
	}
	changed := c.active && !c.dryRun && !c.autoRevealing
	if changed {
		c.resetLocked()
	}
	completed := c.lastCompleted.Equal(*start)
	status, observer := c.statusLocked(), c.observer
	c.mu.Unlock()

	if changed {
		notify(observer, status)
	}

	log.Warn().
		AnErr("reason", ErrStaleCountdown).
		Time("start", *start).
		Bool("completed", completed).
		Msg("clearing abandoned countdown")
	if err := c.state.SetCountdownStart(ctx, nil); err != nil {
		log.Err(err).Str("func", "*Coordinator.OnCountdownStateChanged").Msg("error clearing stale countdown")
	}
}

// Sync reads the shared record once, typically at startup.
func (c *Coordinator) Sync(ctx context.Context) error {
	state, err := c.state.GetState(ctx)
	if err != nil {
		return err
	}

	c.OnCountdownStateChanged(ctx, state.CountdownStartTime)
	return nil
}

// Tick recomputes the remaining time and runs the reveal when it reaches
// zero. The reveal runs once per local countdown.
func (c *Coordinator) Tick(ctx context.Context) {
	log := logger.FromContext(ctx)

	c.mu.Lock()
	if !c.active || c.autoRevealing {
		c.mu.Unlock()
		return
	}
	if models.CountdownRemaining(c.startTime, c.clock.Now(), c.opts.Duration) > 0 {
		c.mu.Unlock()
		return
	}

	if c.dryRun {
		c.resetLocked()
		status, observer := c.statusLocked(), c.observer
		c.mu.Unlock()

		log.Info().Msg("test countdown finished")
		notify(observer, status)
		return
	}

	start := c.startTime
	c.autoRevealing = true
	c.phase = models.CountdownRevealing
	status, observer := c.statusLocked(), c.observer
	c.mu.Unlock()
	notify(observer, status)

	report, err := c.revealer.RevealAll(ctx)
	switch {
	case err != nil && !report.HasFailures():
		log.Err(err).Str("func", "*Coordinator.Tick").Msg("mass reveal failed")
	case report.HasFailures():
		log.Warn().Int("revealed", len(report.Revealed)).Int("failed", len(report.Failures)).Msg("mass reveal finished with failures")
	default:
		log.Info().Int("revealed", len(report.Revealed)).Int("skipped", report.Skipped).Msg("mass reveal finished")
	}

	c.mu.Lock()
	c.autoRevealing = false
	c.lastCompleted = start
	c.resetLocked()
	status, observer = c.statusLocked(), c.observer
	c.mu.Unlock()
	notify(observer, status)
}

// DryRun runs a local countdown that never reveals and never writes to the
// store.
func (c *Coordinator) DryRun(ctx context.Context) error {
	c.mu.Lock()
	if c.active || c.autoRevealing {
		c.mu.Unlock()
		return ErrCountdownActive
	}
	c.mu.Unlock()

	if !c.begin(c.clock.Now(), true) {
		return ErrCountdownActive
	}
	logger.FromContext(ctx).Info().Msg("test countdown started")

	return nil
}

// RemainingSeconds is 0 when no countdown is active.
func (c *Coordinator) RemainingSeconds() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return 0
	}
	return models.CountdownRemaining(c.startTime, c.clock.Now(), c.opts.Duration)
}

// State is the local phase.
func (c *Coordinator) State() models.CountdownPhase {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.phase
}

func (c *Coordinator) Status() models.CountdownStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.statusLocked()
}

// begin enters Counting for start. It returns false while the reveal runs,
// when start was already seen to the end, or when a test countdown is asked
// for during another countdown. A live countdown only moves forward to a
// newer start.
func (c *Coordinator) begin(start time.Time, dryRun bool) bool {
	c.mu.Lock()

	if c.autoRevealing || (!dryRun && c.lastCompleted.Equal(start)) {
		c.mu.Unlock()
		return false
	}
	if c.active && dryRun {
		c.mu.Unlock()
		return false
	}
	// a real countdown replaces a test one
	if c.active && !c.dryRun && !c.startTime.Before(start) {
		// same countdown, or a late echo of an older one
		c.mu.Unlock()
		return true
	}

	c.active = true
	c.dryRun = dryRun
	c.startTime = start
	c.phase = models.CountdownCounting
	status, observer := c.statusLocked(), c.observer
	c.mu.Unlock()

	notify(observer, status)
	return true
}

func (c *Coordinator) resetLocked() {
	c.active = false
	c.dryRun = false
	c.startTime = time.Time{}
	c.phase = models.CountdownIdle
}

func (c *Coordinator) statusLocked() models.CountdownStatus {
	status := models.CountdownStatus{
		Phase:           c.phase,
		Active:          c.active,
		DryRun:          c.dryRun,
		DurationSeconds: int(c.opts.Duration / time.Second),
	}
	if c.active {
		start := c.startTime
		status.StartTime = &start
		status.RemainingSeconds = models.CountdownRemaining(c.startTime, c.clock.Now(), c.opts.Duration)
	}

	return status
}

func notify(observer func(models.CountdownStatus), status models.CountdownStatus) {
	if observer != nil {
		observer(status)
	}
}

func allRevealed(subs map[string]models.Submission) bool {
	for _, sub := range subs {
		if !sub.Revealed {
			return false
		}
	}
	return true
}
