// Package broker carries store change events to every interested party:
// the countdown coordinator, the websocket hub and, through NATS, other
// server processes that share the same store.
package broker

import (
	"context"

	"github.com/MKhiriev/keeper-reveal/models"
)

// Handler receives one event. Handlers run on the bus's goroutines, never on
// the publisher's, so a handler may write to the store again.
type Handler func(ctx context.Context, event models.Event)

type Publisher interface {
	Publish(ctx context.Context, event models.Event) error
}

type Subscriber interface {
	// Subscribe registers h until the returned function is called.
	Subscribe(h Handler) (unsubscribe func(), err error)
}

// Bus is both ends of the change broadcast.
type Bus interface {
	Publisher
	Subscriber
	Close() error
}
