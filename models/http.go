package models

import "time"

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginRequest carries the commissioner password.
type LoginRequest struct {
	Password string `json:"password"`
}

// TokenResponse returns a commissioner JWT. The same token is also sent in
// the Authorization header.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DeadlineRequest sets the submission deadline.
type DeadlineRequest struct {
	Deadline time.Time `json:"deadline"`
}

// OutcomeResponse reports what a countdown start attempt did, together with
// the countdown afterwards.
type OutcomeResponse struct {
	Outcome   CountdownOutcome `json:"outcome"`
	Countdown CountdownStatus  `json:"countdown"`
}
