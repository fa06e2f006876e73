// Package workers runs the background loops of the reveal server: the
// deadline timer that starts and advances the countdown, and the relay that
// hands change events to the countdown coordinator and watching clients.
package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/keeper-reveal/models"
)

// Worker is a background loop. Run blocks until ctx is cancelled or the loop
// fails.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// Countdown is the part of the countdown coordinator driven by the workers.
type Countdown interface {
	StartIfNeeded(ctx context.Context) (models.CountdownOutcome, error)
	OnCountdownStateChanged(ctx context.Context, start *time.Time)
	Sync(ctx context.Context) error
	Tick(ctx context.Context)
	State() models.CountdownPhase
	SetObserver(fn func(models.CountdownStatus))
}

// Broadcaster pushes a message to every watching client.
type Broadcaster interface {
	Broadcast(msg models.Push)
}
