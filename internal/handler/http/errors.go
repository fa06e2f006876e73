// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the commissioner auth middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned for a request body that does not decode.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrEmptyTeam is returned for a route whose {team} parameter is blank.
	ErrEmptyTeam = errors.New("team is required")
)
