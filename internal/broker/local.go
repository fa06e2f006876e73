package broker

import (
	"context"
	"sync"

	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/models"
)

const subscriberBuffer = 64

// LocalBus delivers events inside one process. Every subscriber owns a
// buffered channel drained by its own goroutine, so events reach a
// subscriber in publish order.
type LocalBus struct {
	mu     sync.RWMutex
	subs   map[int]*localSubscription
	nextID int
	closed bool

	logger *logger.Logger
}

type localSubscription struct {
	ch   chan models.Event
	done chan struct{}
}

func NewLocalBus(log *logger.Logger) *LocalBus {
	return &LocalBus{
		subs:   make(map[int]*localSubscription),
		logger: log.WithComponent("local-bus"),
	}
}

// Publish never blocks: an event for a subscriber whose buffer is full is
// dropped and logged.
func (b *LocalBus) Publish(_ context.Context, event models.Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	for id, sub := range b.subs {
		select {
		case sub.ch <- event:
		default:
			b.logger.Warn().
				Int("subscriber", id).
				Str("kind", string(event.Kind)).
				Msg("subscriber buffer full, dropping event")
		}
	}

	return nil
}

func (b *LocalBus) Subscribe(h Handler) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBusClosed
	}

	id := b.nextID
	b.nextID++
	sub := &localSubscription{
		ch:   make(chan models.Event, subscriberBuffer),
		done: make(chan struct{}),
	}
	b.subs[id] = sub

	ctx := b.logger.WithContext(context.Background())
	go func() {
		for {
			select {
			case event := <-sub.ch:
				h(ctx, event)
			case <-sub.done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub.done)
			}
		})
	}, nil
}

// Close stops every subscriber goroutine. Events still buffered are dropped.
func (b *LocalBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, sub := range b.subs {
		close(sub.done)
		delete(b.subs, id)
	}

	return nil
}
