package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/keeper-reveal/models"
)

const (
	teamColumnWidth    = 22
	keepersColumnWidth = 60
)

func (m boardModel) View() string {
	switch m.screen {
	case screenBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(m.info, m.serverVersion))
	case screenPrompt:
		return appStyle.Render(m.prompt.View())
	case screenSubmit:
		return appStyle.Render(m.form.View())
	case screenError:
		return appStyle.Render(m.boardView() + "\n\n" + m.overlay.View())
	}
	return appStyle.Render(m.boardView())
}

func (m boardModel) boardView() string {
	title := "KEEPER REVEAL"
	if m.commissioner {
		title += "  [commissioner]"
	}
	if m.loading || !m.connected {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	b.WriteString("Deadline:   ")
	b.WriteString(formatDeadline(m.deadline()))
	b.WriteString("\n")
	b.WriteString("Countdown:  ")
	b.WriteString(formatCountdown(m.board.Countdown, m.remaining()))
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.board.Submissions) == 0:
		b.WriteString("Loading...\n")
	case len(m.board.Submissions) == 0:
		b.WriteString("No submissions yet\n")
	default:
		b.WriteString(fmt.Sprintf("  %-*s %-9s %s\n", teamColumnWidth, "Team", "Status", "Keepers"))
		for i, sub := range m.board.Submissions {
			b.WriteString(m.submissionRow(i, sub))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if !m.connected && !m.loading {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("live updates paused"))
		b.WriteString("\n")
	}

	hotKeys := "↑/↓ select │ enter reveal │ n submit │ s start │ c copy │ r refresh │ v about │ q quit"
	if m.commissioner {
		hotKeys += "\nf force reveal │ a reveal all"
	} else {
		hotKeys += "\nl commissioner login"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m boardModel) submissionRow(i int, sub models.Submission) string {
	cursor := "  "
	if i == m.cursor {
		cursor = "> "
	}

	name := sub.TeamName
	if name == "" {
		name = sub.TeamID
	}
	name = fmt.Sprintf("%-*s", teamColumnWidth, fitText(name, teamColumnWidth))

	if !sub.Revealed {
		row := cursor + name + " " + sealedStyle.Render(fmt.Sprintf("%-9s", "sealed")) + " " + sealedStyle.Render("•••")
		if i == m.cursor {
			return selectedStyle.Render(row)
		}
		return row
	}

	keepers := fitText(strings.Join(sub.KeeperList(), ", "), keepersColumnWidth)
	row := cursor + name + " " + revealedStyle.Render(fmt.Sprintf("%-9s", "revealed")) + " " + keepers
	if i == m.cursor {
		return selectedStyle.Render(row)
	}
	return row
}
