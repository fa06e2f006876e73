package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type promptKind int

const (
	promptReveal promptKind = iota
	promptLogin
)

// promptModel asks for a single password: a team's own to reveal its
// submission early, or the commissioner's to log in.
type promptModel struct {
	kind       promptKind
	team       string
	input      textinput.Model
	submitting bool
	errMsg     string
}

func newPromptModel(kind promptKind, team string) promptModel {
	input := textinput.New()
	input.Placeholder = "password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return promptModel{kind: kind, team: team, input: input}
}

func (p promptModel) View() string {
	var b strings.Builder

	title := "COMMISSIONER LOGIN"
	if p.kind == promptReveal {
		title = "REVEAL " + strings.ToUpper(p.team)
		b.WriteString("Enter the password the team submitted with.\n\n")
	}

	b.WriteString("Password │ [")
	b.WriteString(p.input.View())
	b.WriteString("]\n")

	if p.submitting {
		b.WriteString("\n[Sending...]\n")
	} else {
		b.WriteString("\n[Confirm]\n")
	}

	if p.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + p.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ enter: confirm")
}
