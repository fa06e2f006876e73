// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RevealedTeam is a team whose keepers were decoded during a mass reveal.
type RevealedTeam struct {
	TeamID  string   `json:"team_id"`
	Keepers []string `json:"keepers"`
}

// RevealFailure is a team whose submission could not be decoded.
type RevealFailure struct {
	TeamID string `json:"team_id"`
	Reason string `json:"reason"`
}

// RevealReport is the result of a mass reveal. Failures of one team never
// prevent other teams from being revealed.
type RevealReport struct {
	Revealed []RevealedTeam  `json:"revealed"`
	Failures []RevealFailure `json:"failures"`
	Skipped  int             `json:"skipped"`
}

// HasFailures reports whether any team failed to reveal.
func (r RevealReport) HasFailures() bool {
	return len(r.Failures) > 0
}

// Export is the commissioner snapshot of every submission and the shared
// countdown record.
type Export struct {
	State       CountdownState        `json:"state"`
	Submissions map[string]Submission `json:"submissions"`
}
