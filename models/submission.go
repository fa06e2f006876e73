// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"strings"
	"time"
)

// KeeperSeparator joins keeper names inside the encoded keeper list.
const KeeperSeparator = "\n"

// Submission is the sealed keeper selection of a single team.
//
// Ciphertext, CostDataCiphertext and IntegrityDigest are produced on
// submission with the team's own password. PasswordCiphertext holds the same
// password encoded under the system key and is never rewritten.
// PlaintextKeepers is non-nil if and only if Revealed is true.
type Submission struct {
	TeamID             string    `json:"team_id"`
	TeamName           string    `json:"team_name"`
	Ciphertext         string    `json:"ciphertext"`
	PasswordCiphertext string    `json:"password_ciphertext"`
	CostDataCiphertext string    `json:"cost_data_ciphertext,omitempty"`
	IntegrityDigest    string    `json:"integrity_digest"`
	Revealed           bool      `json:"revealed"`
	PlaintextKeepers   *string   `json:"plaintext_keepers"`
	CostData           *string   `json:"cost_data"`
	CreatedAt          time.Time `json:"created_at"`
}

// KeeperList splits the revealed keeper list into names.
// It returns nil while the submission is sealed.
func (s Submission) KeeperList() []string {
	if !s.Revealed || s.PlaintextKeepers == nil {
		return nil
	}
	if *s.PlaintextKeepers == "" {
		return []string{}
	}

	return strings.Split(*s.PlaintextKeepers, KeeperSeparator)
}

// Sealed returns a copy of the submission that is safe to show to other
// teams: ciphertexts are kept, nothing is decoded.
func (s Submission) Sealed() Submission {
	s.PasswordCiphertext = ""
	return s
}

// Keeper is a single player a team keeps, together with the auction cost it
// is kept at.
type Keeper struct {
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

// CostData is the cost breakdown encoded next to the keeper list and revealed
// together with it.
type CostData struct {
	Keepers         []Keeper `json:"keepers"`
	TotalCost       int      `json:"totalCost"`
	RemainingBudget int      `json:"remainingBudget"`
}

// SubmitRequest carries a team's keeper selection before it is sealed.
type SubmitRequest struct {
	TeamName        string   `json:"team_name"`
	Keepers         []Keeper `json:"keepers"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirm_password"`
}

// KeeperNames returns the names of the requested keepers in order.
func (r SubmitRequest) KeeperNames() []string {
	names := make([]string, 0, len(r.Keepers))
	for _, k := range r.Keepers {
		names = append(names, strings.TrimSpace(k.Name))
	}
	return names
}

// TotalCost sums the cost of every requested keeper. The sum saturates at
// math.MaxInt instead of wrapping around.
func (r SubmitRequest) TotalCost() int {
	total := 0
	for _, k := range r.Keepers {
		if k.Cost > 0 && total > math.MaxInt-k.Cost {
			return math.MaxInt
		}
		total += k.Cost
	}
	return total
}

// EditRequest replaces an existing submission. CurrentPassword must unlock
// the stored one.
type EditRequest struct {
	CurrentPassword string        `json:"current_password"`
	Submission      SubmitRequest `json:"submission"`
}

// RevealRequest carries the password a team uses to reveal its own
// submission ahead of the countdown.
type RevealRequest struct {
	Password string `json:"password"`
}
