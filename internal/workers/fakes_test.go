package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/keeper-reveal/models"
)

var epoch = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

// fakeCountdown records how the workers drive the coordinator.
type fakeCountdown struct {
	mu       sync.Mutex
	phase    models.CountdownPhase
	outcome  models.CountdownOutcome
	startErr error
	syncErr  error
	starts   int
	ticks    int
	syncs    int
	observed []*time.Time
	observer func(models.CountdownStatus)
}

func newFakeCountdown() *fakeCountdown {
	return &fakeCountdown{phase: models.CountdownIdle, outcome: models.OutcomeStarted}
}

func (f *fakeCountdown) StartIfNeeded(context.Context) (models.CountdownOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts++
	return f.outcome, f.startErr
}

func (f *fakeCountdown) OnCountdownStateChanged(_ context.Context, start *time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observed = append(f.observed, start)
}

func (f *fakeCountdown) Sync(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncs++
	return f.syncErr
}

func (f *fakeCountdown) Tick(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ticks++
}

func (f *fakeCountdown) State() models.CountdownPhase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

func (f *fakeCountdown) SetObserver(fn func(models.CountdownStatus)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observer = fn
}

func (f *fakeCountdown) counts() (starts, ticks, syncs int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.starts, f.ticks, f.syncs
}

func (f *fakeCountdown) observedStarts() []*time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*time.Time(nil), f.observed...)
}

func (f *fakeCountdown) currentObserver() func(models.CountdownStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.observer
}

// recordingHub keeps every broadcast message.
type recordingHub struct {
	mu   sync.Mutex
	msgs []models.Push
}

func (h *recordingHub) Broadcast(msg models.Push) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.msgs = append(h.msgs, msg)
}

func (h *recordingHub) messages() []models.Push {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]models.Push(nil), h.msgs...)
}
