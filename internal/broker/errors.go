package broker

import "errors"

var (
	// ErrBusClosed is returned when publishing to or subscribing on a closed bus.
	ErrBusClosed = errors.New("bus is closed")
	// ErrConnecting is returned when the NATS server cannot be reached.
	ErrConnecting = errors.New("error connecting to NATS")
	// ErrEncodingEvent is returned when an event cannot be (de)serialised.
	ErrEncodingEvent = errors.New("error encoding event")
)
