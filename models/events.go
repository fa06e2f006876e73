// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventKind names the part of the shared store that changed.
type EventKind string

const (
	EventSubmissionsChanged EventKind = "submissions_changed"
	EventCountdownChanged   EventKind = "countdown_changed"
	EventDeadlineChanged    EventKind = "deadline_changed"
)

// Event is broadcast to every client after a successful store write.
// CountdownStartTime and Deadline carry the new value for their kinds; a nil
// value means the field was cleared.
type Event struct {
	Kind               EventKind  `json:"kind"`
	TeamID             string     `json:"team_id,omitempty"`
	Deadline           *time.Time `json:"deadline,omitempty"`
	CountdownStartTime *time.Time `json:"countdown_start_time,omitempty"`
	At                 time.Time  `json:"at"`
}

// PushKind names a websocket push message.
type PushKind string

const (
	// PushEvent forwards a store change event.
	PushEvent PushKind = "event"
	// PushCountdown carries the local countdown of the server after a phase
	// change.
	PushCountdown PushKind = "countdown"
	// PushBoard is the first message of every connection.
	PushBoard PushKind = "board"
)

// Push is one message sent to watching clients over the websocket.
type Push struct {
	Kind      PushKind         `json:"kind"`
	Event     *Event           `json:"event,omitempty"`
	Countdown *CountdownStatus `json:"countdown,omitempty"`
	Board     *Board           `json:"board,omitempty"`
}
