package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/keeper-reveal/models"
)

// fakeCountdown records the countdown calls made by the services.
type fakeCountdown struct {
	mu        sync.Mutex
	status    models.CountdownStatus
	outcome   models.CountdownOutcome
	err       error
	dryRunErr error
	starts    int
	dryRuns   int
}

func (f *fakeCountdown) StartIfNeeded(context.Context) (models.CountdownOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts++
	return f.outcome, f.err
}

func (f *fakeCountdown) DryRun(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dryRuns++
	return f.dryRunErr
}

func (f *fakeCountdown) Status() models.CountdownStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}
