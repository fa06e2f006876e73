// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/keeper-reveal/models"
)

const (
	fieldTeam = iota
	fieldKeepers
	fieldPassword
	fieldConfirm
)

var errNoKeepers = errors.New("at least one keeper is required")

// submitFormModel collects a team's keeper selection. Keepers are entered as
// "Name:cost" pairs separated by commas.
type submitFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newSubmitFormModel() submitFormModel {
	team := textinput.New()
	team.Placeholder = "team name"
	team.CharLimit = 64
	team.Width = 40
	team.Focus()

	keepers := textinput.New()
	keepers.Placeholder = "Mahomes:45, Kelce:30"
	keepers.CharLimit = 512
	keepers.Width = 60

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	confirm := password
	confirm.Placeholder = "repeat password"

	return submitFormModel{inputs: []textinput.Model{team, keepers, password, confirm}}
}

// request builds the submit request. Budget, keeper count and password rules
// are checked by the server.
func (f submitFormModel) request() (models.SubmitRequest, error) {
	team := strings.TrimSpace(f.inputs[fieldTeam].Value())
	if team == "" {
		return models.SubmitRequest{}, errors.New("team name is required")
	}

	keepers, err := parseKeepers(f.inputs[fieldKeepers].Value())
	if err != nil {
		return models.SubmitRequest{}, err
	}

	return models.SubmitRequest{
		TeamName:        team,
		Keepers:         keepers,
		Password:        f.inputs[fieldPassword].Value(),
		ConfirmPassword: f.inputs[fieldConfirm].Value(),
	}, nil
}

func parseKeepers(raw string) ([]models.Keeper, error) {
	var keepers []models.Keeper

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, costText, hasCost := strings.Cut(part, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("keeper %q has no name", part)
		}

		cost := 0
		if hasCost {
			var err error
			cost, err = strconv.Atoi(strings.TrimSpace(costText))
			if err != nil || cost < 0 {
				return nil, fmt.Errorf("keeper %q has an invalid cost", name)
			}
		}

		keepers = append(keepers, models.Keeper{Name: name, Cost: cost})
	}

	if len(keepers) == 0 {
		return nil, errNoKeepers
	}
	return keepers, nil
}

func (f *submitFormModel) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *submitFormModel) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f submitFormModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Team      │ [")
	b.WriteString(f.inputs[fieldTeam].View())
	b.WriteString("]\n")
	b.WriteString("Keepers   │ [")
	b.WriteString(f.inputs[fieldKeepers].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(f.inputs[fieldPassword].View())
	b.WriteString("]\n")
	b.WriteString("Confirm   │ [")
	b.WriteString(f.inputs[fieldConfirm].View())
	b.WriteString("]\n")

	if f.submitting {
		b.WriteString("\n[Submitting...]\n")
	} else {
		b.WriteString("\n[Submit]\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SUBMIT KEEPERS", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: submit")
}
