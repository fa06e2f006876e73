package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/keeper-reveal/models"
)

const uiDivider = "──────────────────────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func formatMoment(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05 MST")
}

func formatDeadline(d models.DeadlineStatus) string {
	switch d.Kind {
	case models.DeadlinePending:
		return fmt.Sprintf("%s, %dd %02dh %02dm %02ds left",
			formatMoment(d.Deadline), d.Days, d.Hours, d.Minutes, d.Seconds)
	case models.DeadlineReached:
		return "reached at " + formatMoment(d.Deadline)
	case models.DeadlineExpired:
		return "passed at " + formatMoment(d.Deadline)
	default:
		return "not set"
	}
}

func formatCountdown(c models.CountdownStatus, remaining int) string {
	prefix := ""
	if c.DryRun {
		prefix = "(test) "
	}

	switch {
	case c.Phase == models.CountdownRevealing:
		return prefix + countdownStyle.Render("revealing...")
	case c.Active:
		return prefix + countdownStyle.Render(fmt.Sprintf("reveal in %ds", remaining))
	default:
		return "idle"
	}
}

func describeOutcome(o models.CountdownOutcome) string {
	switch o {
	case models.OutcomeStarted:
		return "countdown started"
	case models.OutcomeJoined:
		return "joined the running countdown"
	case models.OutcomeAlreadyActive:
		return "countdown already running"
	case models.OutcomeNoSubmissions:
		return "no submissions to reveal"
	case models.OutcomeAllRevealed:
		return "every team is already revealed"
	default:
		return string(o)
	}
}
