package tui

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/keeper-reveal/internal/adapter"
	"github.com/MKhiriev/keeper-reveal/models"
)

type screen int

const (
	screenBoard screen = iota
	screenPrompt
	screenSubmit
	screenBuildInfo
	screenError
)

const (
	tickInterval  = time.Second
	statusTimeout = 4 * time.Second
)

// A pending deadline that passes while the board is open counts as reached
// until the server reports otherwise.
const anyWindow = time.Duration(math.MaxInt64)

// boardModel is the watch board: the deadline, the shared countdown and every
// team's submission, kept current by server pushes.
type boardModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	info    models.AppBuildInfo
	now     func() time.Time
	copy    func(string) error

	board         models.Board
	loading       bool
	connected     bool
	cursor        int
	spinner       spinner.Model
	status        string
	commissioner  bool
	serverVersion string
	autoStartFor  time.Time

	screen  screen
	prompt  promptModel
	form    submitFormModel
	overlay errorOverlayModel
}

func newBoardModel(ctx context.Context, a adapter.ServerAdapter, info models.AppBuildInfo) boardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return boardModel{
		ctx:     ctx,
		adapter: a,
		info:    info,
		now:     time.Now,
		copy:    clipboard.WriteAll,
		loading: true,
		spinner: s,
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadBoard(), m.cmdVersion(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tickMsg:
		var cmd tea.Cmd
		m, cmd = m.maybeAutoStart()
		return m, tea.Batch(tick(), cmd)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case boardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.setStatus("Board unavailable: " + humanizeServerUnavailableError(msg.err))
		}
		m.setBoard(msg.board)
		return m, nil

	case versionMsg:
		m.serverVersion = msg.version
		return m, nil

	case pushMsg:
		return m.applyPush(msg.push)

	case connectionMsg:
		m.connected = msg.connected
		if msg.err != nil {
			return m.setStatus("Connection lost, reconnecting: " + humanizeServerUnavailableError(msg.err))
		}
		return m, nil

	case outcomeMsg:
		return m.handleOutcome(msg)

	case revealDoneMsg:
		m.prompt.submitting = false
		if msg.err != nil {
			m.prompt.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.screen = screenBoard
		m.replaceSubmission(msg.sub)
		return m.setStatus(msg.sub.TeamName + " revealed")

	case loginDoneMsg:
		m.prompt.submitting = false
		if msg.err != nil {
			m.prompt.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.commissioner = true
		m.screen = screenBoard
		return m.setStatus("Logged in as commissioner")

	case submitDoneMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.screen = screenBoard
		m.replaceSubmission(msg.sub)
		return m.setStatus(msg.sub.TeamName + " submitted, keepers sealed")

	case revealAllDoneMsg:
		return m.handleRevealAll(msg)

	case copiedMsg:
		if msg.err != nil {
			return m.showError(fmt.Errorf("copy to clipboard: %w", msg.err))
		}
		return m.setStatus("Copied keepers of " + msg.team)

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	// cursor blink and other input internals
	var cmd tea.Cmd
	switch m.screen {
	case screenPrompt:
		m.prompt.input, cmd = m.prompt.input.Update(msg)
	case screenSubmit:
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	}
	return m, cmd
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenError, screenBuildInfo:
		if key.Matches(msg, keys.esc, keys.enter, keys.quit) {
			m.screen = screenBoard
		}
		return m, nil
	case screenPrompt:
		return m.updatePrompt(msg)
	case screenSubmit:
		return m.updateForm(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.board.Submissions)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.enter):
		sub, ok := m.selected()
		if !ok {
			return m, nil
		}
		if sub.Revealed {
			return m.setStatus(sub.TeamName + " is already revealed")
		}
		return m.openPrompt(promptReveal, sub.TeamID)
	case key.Matches(msg, keys.start):
		return m, m.cmdStartCountdown(false)
	case key.Matches(msg, keys.newItem):
		m.form = newSubmitFormModel()
		m.screen = screenSubmit
		return m, nil
	case key.Matches(msg, keys.login):
		return m.openPrompt(promptLogin, "")
	case key.Matches(msg, keys.forceReveal):
		if !m.commissioner {
			return m.openPrompt(promptLogin, "")
		}
		return m, m.cmdForceReveal()
	case key.Matches(msg, keys.revealAll):
		if !m.commissioner {
			return m.openPrompt(promptLogin, "")
		}
		return m, m.cmdRevealAll()
	case key.Matches(msg, keys.copy):
		sub, ok := m.selected()
		if !ok || !sub.Revealed {
			return m.setStatus("Nothing to copy: select a revealed team")
		}
		return m, m.cmdCopy(sub)
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadBoard()
	case key.Matches(msg, keys.info):
		m.screen = screenBuildInfo
	}

	return m, nil
}

func (m boardModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenBoard
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.prompt.submitting {
			return m, nil
		}

		password := m.prompt.input.Value()
		if password == "" {
			m.prompt.errMsg = "Password is required"
			return m, nil
		}

		m.prompt.errMsg = ""
		m.prompt.submitting = true
		if m.prompt.kind == promptReveal {
			return m, m.cmdReveal(m.prompt.team, password)
		}
		return m, m.cmdLogin(password)
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (m boardModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenBoard
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.submitting {
			return m, nil
		}

		req, err := m.form.request()
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}

		m.form.errMsg = ""
		m.form.submitting = true
		return m, m.cmdSubmit(req)
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m boardModel) openPrompt(kind promptKind, team string) (tea.Model, tea.Cmd) {
	m.prompt = newPromptModel(kind, team)
	m.screen = screenPrompt
	return m, nil
}

func (m boardModel) setStatus(status string) (boardModel, tea.Cmd) {
	m.status = status
	return m, clearStatusLater()
}

func (m boardModel) showError(err error) (boardModel, tea.Cmd) {
	m.overlay = errorOverlayModel{message: humanizeServerUnavailableError(err)}
	m.screen = screenError
	return m, nil
}

func (m boardModel) applyPush(p models.Push) (tea.Model, tea.Cmd) {
	switch p.Kind {
	case models.PushBoard:
		if p.Board != nil {
			m.loading = false
			m.connected = true
			m.setBoard(*p.Board)
		}
	case models.PushCountdown:
		if p.Countdown != nil {
			m.board.Countdown = *p.Countdown
		}
	case models.PushEvent:
		// the event names what changed; the board is reloaded as a whole
		return m, m.cmdLoadBoard()
	}
	return m, nil
}

func (m boardModel) handleOutcome(msg outcomeMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if msg.auto {
			return m.setStatus("Auto start failed: " + humanizeServerUnavailableError(msg.err))
		}
		return m.showError(fmt.Errorf("%s: %w", msg.action, msg.err))
	}

	m.board.Countdown = msg.outcome.Countdown
	return m.setStatus(msg.action + ": " + describeOutcome(msg.outcome.Outcome))
}

func (m boardModel) handleRevealAll(msg revealAllDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(msg.err, adapter.ErrPartialReveal):
		var b strings.Builder
		fmt.Fprintf(&b, "Revealed %d teams, %d failed:\n", len(msg.report.Revealed), len(msg.report.Failures))
		for _, f := range msg.report.Failures {
			fmt.Fprintf(&b, "\n  %s: %s", f.TeamID, f.Reason)
		}
		m.overlay = errorOverlayModel{message: b.String()}
		m.screen = screenError
		return m, m.cmdLoadBoard()
	case msg.err != nil:
		return m.showError(fmt.Errorf("reveal all: %w", msg.err))
	}

	m, cmd := m.setStatus(fmt.Sprintf("Revealed %d teams, %d already open", len(msg.report.Revealed), msg.report.Skipped))
	return m, tea.Batch(cmd, m.cmdLoadBoard())
}

// maybeAutoStart asks the server to start the countdown once per deadline,
// when the deadline is reached and no countdown runs yet.
func (m boardModel) maybeAutoStart() (boardModel, tea.Cmd) {
	d := m.deadline()
	if m.loading || d.Kind != models.DeadlineReached || d.Deadline == nil {
		return m, nil
	}
	if m.board.Countdown.Active || m.autoStartFor.Equal(*d.Deadline) {
		return m, nil
	}

	m.autoStartFor = *d.Deadline
	return m, m.cmdStartCountdown(true)
}

func (m *boardModel) setBoard(b models.Board) {
	m.board = b
	if m.cursor >= len(b.Submissions) {
		m.cursor = max(len(b.Submissions)-1, 0)
	}
}

func (m *boardModel) replaceSubmission(sub models.Submission) {
	for i := range m.board.Submissions {
		if m.board.Submissions[i].TeamID == sub.TeamID {
			m.board.Submissions[i] = sub
			return
		}
	}
	m.board.Submissions = append(m.board.Submissions, sub)
}

func (m boardModel) selected() (models.Submission, bool) {
	if m.cursor < 0 || m.cursor >= len(m.board.Submissions) {
		return models.Submission{}, false
	}
	return m.board.Submissions[m.cursor], true
}

// deadline is the server's deadline status advanced to the local clock.
func (m boardModel) deadline() models.DeadlineStatus {
	d := m.board.Deadline
	if d.Kind != models.DeadlinePending || d.Deadline == nil {
		return d
	}
	return models.DeadlineRemaining(m.now(), d.Deadline, anyWindow)
}

// remaining counts the shared countdown down locally from its start time.
func (m boardModel) remaining() int {
	c := m.board.Countdown
	if !c.Active || c.StartTime == nil {
		return c.RemainingSeconds
	}
	return models.CountdownRemaining(*c.StartTime, m.now(), time.Duration(c.DurationSeconds)*time.Second)
}
