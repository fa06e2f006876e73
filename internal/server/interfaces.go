package server

import "context"

// Server defines the lifecycle contract of the reveal server.
//
// Implementations block in [RunServer] until a termination signal arrives or
// a component fails, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving and blocks until the server stops. It returns
	// the error of the component that failed, or nil after a signal.
	RunServer() error

	// Shutdown gracefully stops the listener and disconnects websocket
	// clients.
	Shutdown()
}

// Runner is the background work run next to the listener.
type Runner interface {
	Run(ctx context.Context) error
}
