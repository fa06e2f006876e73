package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/keeper-reveal/models"
)

func (m boardModel) cmdLoadBoard() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		board, err := a.Board(ctx)
		return boardLoadedMsg{board: board, err: err}
	}
}

func (m boardModel) cmdVersion() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		v, err := a.Version(ctx)
		return versionMsg{version: v, err: err}
	}
}

func (m boardModel) cmdStartCountdown(auto bool) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		outcome, err := a.StartCountdown(ctx)
		return outcomeMsg{action: "Start countdown", outcome: outcome, auto: auto, err: err}
	}
}

func (m boardModel) cmdForceReveal() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		outcome, err := a.ForceReveal(ctx)
		return outcomeMsg{action: "Force reveal", outcome: outcome, err: err}
	}
}

func (m boardModel) cmdRevealAll() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		report, err := a.RevealAll(ctx)
		return revealAllDoneMsg{report: report, err: err}
	}
}

func (m boardModel) cmdReveal(team, password string) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		sub, err := a.Reveal(ctx, team, password)
		return revealDoneMsg{sub: sub, err: err}
	}
}

func (m boardModel) cmdLogin(password string) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		_, err := a.Login(ctx, password)
		return loginDoneMsg{err: err}
	}
}

func (m boardModel) cmdSubmit(req models.SubmitRequest) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		sub, err := a.Submit(ctx, req)
		return submitDoneMsg{sub: sub, err: err}
	}
}

// cmdCopy puts the revealed keepers of sub on the clipboard, one per line.
func (m boardModel) cmdCopy(sub models.Submission) tea.Cmd {
	write := m.copy
	return func() tea.Msg {
		err := write(strings.Join(sub.KeeperList(), "\n"))
		return copiedMsg{team: sub.TeamName, err: err}
	}
}
