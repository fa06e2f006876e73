package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/models"
)

// NATSBus publishes events as JSON on one subject so that every server
// process sharing a store sees every write.
type NATSBus struct {
	nc      *nats.Conn
	subject string
	logger  *logger.Logger
}

func NewNATSBus(cfg config.Broker, log *logger.Logger) (*NATSBus, error) {
	log = log.WithComponent("nats-bus")

	opts := []nats.Option{
		nats.Name("keeper-reveal"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
	}

	nc, err := nats.Connect(cfg.NATSURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}
	log.Info().Str("url", nc.ConnectedUrl()).Str("subject", cfg.Subject).Msg("connected to NATS")

	return &NATSBus{nc: nc, subject: cfg.Subject, logger: log}, nil
}

func (b *NATSBus) Publish(_ context.Context, event models.Event) error {
	if b.nc.IsClosed() {
		return ErrBusClosed
	}

	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	return b.nc.Publish(b.subject, data)
}

// Subscribe delivers every event on the subject, including the ones this
// process published itself.
func (b *NATSBus) Subscribe(h Handler) (func(), error) {
	if b.nc.IsClosed() {
		return nil, ErrBusClosed
	}

	ctx := b.logger.WithContext(context.Background())
	sub, err := b.nc.Subscribe(b.subject, func(msg *nats.Msg) {
		event, err := decodeEvent(msg.Data)
		if err != nil {
			b.logger.Err(err).Str("subject", msg.Subject).Msg("skipping malformed event")
			return
		}
		h(ctx, event)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe to %s: %w", b.subject, err)
	}

	return func() {
		if err := sub.Unsubscribe(); err != nil {
			b.logger.Debug().Err(err).Msg("unsubscribe")
		}
	}, nil
}

// Close flushes pending publishes and closes the connection.
func (b *NATSBus) Close() error {
	if b.nc.IsClosed() {
		return nil
	}
	return b.nc.Drain()
}

func encodeEvent(event models.Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingEvent, err)
	}
	return data, nil
}

func decodeEvent(data []byte) (models.Event, error) {
	var event models.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return models.Event{}, fmt.Errorf("%w: %w", ErrEncodingEvent, err)
	}
	if event.Kind == "" {
		return models.Event{}, fmt.Errorf("%w: event kind is empty", ErrEncodingEvent)
	}
	return event, nil
}

// New returns a NATS bus when cfg names a server and a local bus otherwise.
func New(cfg config.Broker, log *logger.Logger) (Bus, error) {
	if cfg.NATSURL == "" {
		return NewLocalBus(log), nil
	}
	return NewNATSBus(cfg, log)
}
