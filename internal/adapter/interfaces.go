// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets the terminal client talk to the reveal server.
//
// [ServerAdapter] hides the REST endpoints and the websocket push channel
// behind plain method calls. Failed calls are mapped from HTTP status codes
// to the sentinel errors in errors.go, so callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/keeper-reveal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the terminal client's view of the reveal server.
type ServerAdapter interface {
	// SetToken stores the commissioner token attached to commissioner calls.
	SetToken(token string)

	// Token returns the stored commissioner token, or "".
	Token() string

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)

	// Board fetches the deadline, the countdown and every sealed or revealed
	// submission.
	Board(ctx context.Context) (models.Board, error)

	// StartCountdown asks the server to start the reveal countdown if the
	// deadline has been reached. The outcome tells whether it started, joined
	// an existing one, or had nothing to do.
	StartCountdown(ctx context.Context) (models.OutcomeResponse, error)

	// Submit seals a team's keeper selection.
	Submit(ctx context.Context, req models.SubmitRequest) (models.Submission, error)

	// Reveal opens the submission of team with its password once the deadline
	// has passed and no countdown runs.
	Reveal(ctx context.Context, team, password string) (models.Submission, error)

	// Login exchanges the commissioner password for a token and stores it via
	// SetToken.
	Login(ctx context.Context, password string) (models.TokenResponse, error)

	// ForceReveal starts the countdown regardless of the deadline.
	// Requires a commissioner token.
	ForceReveal(ctx context.Context) (models.OutcomeResponse, error)

	// RevealAll reveals every sealed submission right away. When some teams
	// fail the report is returned together with [ErrPartialReveal].
	// Requires a commissioner token.
	RevealAll(ctx context.Context) (models.RevealReport, error)

	// Watch subscribes to server pushes and calls fn for each of them, in
	// order, until ctx is cancelled or the server closes the connection. The
	// first push is always the full board.
	Watch(ctx context.Context, fn func(models.Push)) error
}
