package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/keeper-reveal/internal/broker"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/models"
)

// EventRelay subscribes to the change bus. Countdown changes are applied to
// the coordinator and every event is pushed to watching clients, together
// with the coordinator's own phase changes.
type EventRelay struct {
	bus       broker.Subscriber
	countdown Countdown
	hub       Broadcaster
	logger    *logger.Logger
}

func NewEventRelay(bus broker.Subscriber, cd Countdown, hub Broadcaster, log *logger.Logger) *EventRelay {
	return &EventRelay{
		bus:       bus,
		countdown: cd,
		hub:       hub,
		logger:    log.WithComponent("event-relay"),
	}
}

// Run subscribes, reads the shared countdown once so a restarted server
// joins a running countdown, and then waits for ctx.
func (r *EventRelay) Run(ctx context.Context) error {
	ctx = r.logger.WithContext(ctx)

	unsubscribe, err := r.bus.Subscribe(r.handle)
	if err != nil {
		return fmt.Errorf("subscribe to change events: %w", err)
	}
	defer unsubscribe()

	r.countdown.SetObserver(func(status models.CountdownStatus) {
		r.hub.Broadcast(models.Push{Kind: models.PushCountdown, Countdown: &status})
	})
	defer r.countdown.SetObserver(nil)

	if err = r.countdown.Sync(ctx); err != nil {
		r.logger.Err(err).Str("func", "*EventRelay.Run").Msg("error reading shared countdown")
	}

	<-ctx.Done()
	return nil
}

func (r *EventRelay) handle(ctx context.Context, event models.Event) {
	r.logger.Debug().Str("kind", string(event.Kind)).Str("team", event.TeamID).Msg("change event")

	if event.Kind == models.EventCountdownChanged {
		r.countdown.OnCountdownStateChanged(ctx, event.CountdownStartTime)
	}

	r.hub.Broadcast(models.Push{Kind: models.PushEvent, Event: &event})
}
