// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CountdownState is the single shared record every client observes.
// A nil CountdownStartTime means no reveal countdown is running.
type CountdownState struct {
	Deadline           *time.Time `json:"deadline"`
	CountdownStartTime *time.Time `json:"countdown_start_time"`
}

// DeadlineKind describes where the wall clock stands relative to the deadline.
type DeadlineKind string

const (
	// DeadlineNone means no deadline has been set.
	DeadlineNone DeadlineKind = "none"
	// DeadlinePending means the deadline lies in the future.
	DeadlinePending DeadlineKind = "pending"
	// DeadlineReached means the deadline passed within the auto-start window.
	DeadlineReached DeadlineKind = "reached"
	// DeadlineExpired means the deadline passed longer ago than the auto-start
	// window; no countdown is started for it any more.
	DeadlineExpired DeadlineKind = "expired"
)

// DeadlineStatus is the remaining time until the deadline broken into days,
// hours, minutes and seconds.
type DeadlineStatus struct {
	Kind     DeadlineKind `json:"kind"`
	Deadline *time.Time   `json:"deadline,omitempty"`
	Days     int          `json:"days"`
	Hours    int          `json:"hours"`
	Minutes  int          `json:"minutes"`
	Seconds  int          `json:"seconds"`
}

// CountdownPhase is the local state of a countdown coordinator.
type CountdownPhase string

const (
	CountdownIdle      CountdownPhase = "idle"
	CountdownCounting  CountdownPhase = "counting"
	CountdownRevealing CountdownPhase = "revealing"
)

// CountdownStatus is a point-in-time view of a coordinator.
type CountdownStatus struct {
	Phase            CountdownPhase `json:"phase"`
	Active           bool           `json:"active"`
	DryRun           bool           `json:"dry_run,omitempty"`
	RemainingSeconds int            `json:"remaining_seconds"`
	DurationSeconds  int            `json:"duration_seconds"`
	StartTime        *time.Time     `json:"start_time,omitempty"`
}

// CountdownOutcome tells the caller what a start attempt did.
type CountdownOutcome string

const (
	OutcomeStarted       CountdownOutcome = "started"
	OutcomeJoined        CountdownOutcome = "joined"
	OutcomeAlreadyActive CountdownOutcome = "already_active"
	OutcomeNoSubmissions CountdownOutcome = "no_submissions"
	OutcomeAllRevealed   CountdownOutcome = "all_revealed"
)

// Board is everything a watching client needs to render the reveal board.
type Board struct {
	Deadline    DeadlineStatus  `json:"deadline"`
	Countdown   CountdownStatus `json:"countdown"`
	Submissions []Submission    `json:"submissions"`
}
