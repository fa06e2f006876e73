package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/keeper-reveal/internal/adapter"
	"github.com/MKhiriev/keeper-reveal/internal/mock"
	"github.com/MKhiriev/keeper-reveal/models"
)

var epoch = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func newTestModel(t *testing.T) (boardModel, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)

	m := newBoardModel(context.Background(), a, models.NewAppBuildInfo("v1.0.0", "2026-08-30", "abc123"))
	m.now = func() time.Time { return epoch }
	return m, a
}

func sampleBoard() models.Board {
	return models.Board{
		Deadline:  models.DeadlineStatus{Kind: models.DeadlinePending, Deadline: ptr(epoch.Add(26*time.Hour + 3*time.Minute + 4*time.Second))},
		Countdown: models.CountdownStatus{Phase: models.CountdownIdle, DurationSeconds: 10},
		Submissions: []models.Submission{
			{TeamID: "gators", TeamName: "Gators", Ciphertext: "c1"},
			{TeamID: "owls", TeamName: "Owls", Revealed: true, PlaintextKeepers: ptr("Mahomes\nKelce")},
		},
	}
}

func loaded(t *testing.T) (boardModel, *mock.MockServerAdapter) {
	t.Helper()
	m, a := newTestModel(t)
	m = update(t, m, boardLoadedMsg{board: sampleBoard()})
	return m, a
}

func update(t *testing.T, m boardModel, msg tea.Msg) boardModel {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(boardModel)
	require.True(t, ok)
	return got
}

func updateCmd(t *testing.T, m boardModel, msg tea.Msg) (boardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(boardModel)
	require.True(t, ok)
	return got, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m boardModel, s string) boardModel {
	t.Helper()
	for _, r := range s {
		m = update(t, m, runes(string(r)))
	}
	return m
}

// ── loading and pushes ──────────────────────────────────────────────────────

func TestBoardModel_BoardLoaded(t *testing.T) {
	m, _ := loaded(t)

	assert.False(t, m.loading)
	require.Len(t, m.board.Submissions, 2)

	view := m.View()
	assert.Contains(t, view, "Gators")
	assert.Contains(t, view, "sealed")
	assert.Contains(t, view, "Mahomes, Kelce")
	assert.Contains(t, view, "1d 02h 03m 04s left")
	assert.Contains(t, view, "idle")
}

func TestBoardModel_BoardLoadFailed(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, boardLoadedMsg{err: fmt.Errorf("board request: dial tcp: connection refused")})

	assert.False(t, m.loading)
	assert.Contains(t, m.status, "No network or the server is unavailable")
}

func TestBoardModel_EmptyBoard(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, boardLoadedMsg{board: models.Board{Deadline: models.DeadlineStatus{Kind: models.DeadlineNone}}})

	view := m.View()
	assert.Contains(t, view, "No submissions yet")
	assert.Contains(t, view, "not set")
}

func TestBoardModel_PushBoardMarksConnected(t *testing.T) {
	m, _ := newTestModel(t)
	b := sampleBoard()

	m = update(t, m, pushMsg{push: models.Push{Kind: models.PushBoard, Board: &b}})

	assert.True(t, m.connected)
	assert.False(t, m.loading)
	assert.Len(t, m.board.Submissions, 2)
}

func TestBoardModel_PushCountdownCountsLocally(t *testing.T) {
	m, _ := loaded(t)
	start := epoch.Add(-4 * time.Second)

	m = update(t, m, pushMsg{push: models.Push{Kind: models.PushCountdown, Countdown: &models.CountdownStatus{
		Phase: models.CountdownCounting, Active: true, RemainingSeconds: 10, DurationSeconds: 10, StartTime: &start,
	}}})

	assert.Equal(t, 6, m.remaining())
	assert.Contains(t, m.View(), "reveal in 6s")

	m.now = func() time.Time { return epoch.Add(3 * time.Second) }
	assert.Equal(t, 3, m.remaining())
}

func TestBoardModel_PushEventReloadsBoard(t *testing.T) {
	m, a := loaded(t)
	b := sampleBoard()
	b.Submissions = b.Submissions[:1]
	a.EXPECT().Board(gomock.Any()).Return(b, nil)

	m, cmd := updateCmd(t, m, pushMsg{push: models.Push{Kind: models.PushEvent, Event: &models.Event{Kind: models.EventSubmissionsChanged}}})
	require.NotNil(t, cmd)

	m = update(t, m, cmd())
	assert.Len(t, m.board.Submissions, 1)
}

func TestBoardModel_ConnectionLost(t *testing.T) {
	m, _ := loaded(t)
	m = update(t, m, connectionMsg{connected: true})
	require.True(t, m.connected)

	m = update(t, m, connectionMsg{err: errors.New("watch read: unexpected EOF")})

	assert.False(t, m.connected)
	assert.Contains(t, m.status, "Connection lost")
	assert.Contains(t, m.View(), "live updates paused")
}

func TestBoardModel_CursorClampedOnSmallerBoard(t *testing.T) {
	m, _ := loaded(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, m.cursor)

	b := sampleBoard()
	b.Submissions = b.Submissions[:1]
	m = update(t, m, boardLoadedMsg{board: b})

	assert.Equal(t, 0, m.cursor)
}

// ── keys ────────────────────────────────────────────────────────────────────

func TestBoardModel_CursorMoves(t *testing.T) {
	m, _ := loaded(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	m = update(t, m, runes("j"))
	assert.Equal(t, 1, m.cursor)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)
}

func TestBoardModel_Quit(t *testing.T) {
	m, _ := loaded(t)

	_, cmd := updateCmd(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBoardModel_StartCountdown(t *testing.T) {
	m, a := loaded(t)
	start := epoch
	a.EXPECT().StartCountdown(gomock.Any()).Return(models.OutcomeResponse{
		Outcome:   models.OutcomeStarted,
		Countdown: models.CountdownStatus{Phase: models.CountdownCounting, Active: true, DurationSeconds: 10, StartTime: &start},
	}, nil)

	m, cmd := updateCmd(t, m, runes("s"))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	assert.True(t, m.board.Countdown.Active)
	assert.Equal(t, "Start countdown: countdown started", m.status)
	assert.Contains(t, m.View(), "reveal in 10s")
}

func TestBoardModel_StartCountdownFails(t *testing.T) {
	m, a := loaded(t)
	a.EXPECT().StartCountdown(gomock.Any()).Return(models.OutcomeResponse{}, adapter.ErrConflict)

	m, cmd := updateCmd(t, m, runes("s"))
	m = update(t, m, cmd())

	assert.Equal(t, screenError, m.screen)
	assert.Contains(t, m.View(), "Start countdown: conflict")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenBoard, m.screen)
}

func TestBoardModel_RevealOwnSubmission(t *testing.T) {
	m, a := loaded(t)
	a.EXPECT().Reveal(gomock.Any(), "gators", "hunter22").
		Return(models.Submission{TeamID: "gators", TeamName: "Gators", Revealed: true, PlaintextKeepers: ptr("Allen")}, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenPrompt, m.screen)
	assert.Contains(t, m.View(), "REVEAL GATORS")

	m = typeText(t, m, "hunter22")
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.prompt.submitting)

	m = update(t, m, cmd())

	assert.Equal(t, screenBoard, m.screen)
	assert.Equal(t, []string{"Allen"}, m.board.Submissions[0].KeeperList())
	assert.Equal(t, "Gators revealed", m.status)
}

func TestBoardModel_RevealWrongPassword(t *testing.T) {
	m, a := loaded(t)
	a.EXPECT().Reveal(gomock.Any(), "gators", "nope").
		Return(models.Submission{}, fmt.Errorf("%w: incorrect password", adapter.ErrUnauthorized))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(t, m, "nope")
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, cmd())

	assert.Equal(t, screenPrompt, m.screen)
	assert.False(t, m.prompt.submitting)
	assert.Contains(t, m.View(), "incorrect password")
}

func TestBoardModel_RevealPromptRequiresPassword(t *testing.T) {
	m, _ := loaded(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, "Password is required", m.prompt.errMsg)
}

func TestBoardModel_PromptKeepsQuitKeyAsText(t *testing.T) {
	m, _ := loaded(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(t, m, "q")

	assert.Equal(t, screenPrompt, m.screen)
	assert.Equal(t, "q", m.prompt.input.Value())
}

func TestBoardModel_EnterOnRevealedTeam(t *testing.T) {
	m, _ := loaded(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screenBoard, m.screen)
	assert.Equal(t, "Owls is already revealed", m.status)
}

func TestBoardModel_CopyRevealedKeepers(t *testing.T) {
	m, _ := loaded(t)
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, cmd := updateCmd(t, m, runes("c"))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	assert.Equal(t, "Mahomes\nKelce", copied)
	assert.Equal(t, "Copied keepers of Owls", m.status)
}

func TestBoardModel_CopySealedTeam(t *testing.T) {
	m, _ := loaded(t)
	m.copy = func(string) error {
		t.Fatal("sealed keepers must not be copied")
		return nil
	}

	m = update(t, m, runes("c"))

	assert.Contains(t, m.status, "Nothing to copy")
}

func TestBoardModel_CopyFails(t *testing.T) {
	m, _ := loaded(t)
	m.copy = func(string) error { return errors.New("no clipboard utility") }
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, cmd := updateCmd(t, m, runes("c"))
	m = update(t, m, cmd())

	assert.Equal(t, screenError, m.screen)
	assert.Contains(t, m.overlay.message, "no clipboard utility")
}

func TestBoardModel_BuildInfo(t *testing.T) {
	m, _ := loaded(t)
	m = update(t, m, versionMsg{version: "v1.1.0"})

	m = update(t, m, runes("v"))

	require.Equal(t, screenBuildInfo, m.screen)
	view := m.View()
	assert.Contains(t, view, "v1.0.0")
	assert.Contains(t, view, "abc123")
	assert.Contains(t, view, "Server version: v1.1.0")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenBoard, m.screen)
}

// ── commissioner ────────────────────────────────────────────────────────────

func TestBoardModel_ForceRevealNeedsLogin(t *testing.T) {
	m, a := loaded(t)
	a.EXPECT().Login(gomock.Any(), "commish").Return(models.TokenResponse{Token: "jwt"}, nil)
	a.EXPECT().ForceReveal(gomock.Any()).Return(models.OutcomeResponse{
		Outcome:   models.OutcomeStarted,
		Countdown: models.CountdownStatus{Phase: models.CountdownCounting, Active: true, DurationSeconds: 10, StartTime: ptr(epoch)},
	}, nil)

	m = update(t, m, runes("f"))
	require.Equal(t, screenPrompt, m.screen)
	assert.Equal(t, promptLogin, m.prompt.kind)
	assert.Contains(t, m.View(), "COMMISSIONER LOGIN")

	m = typeText(t, m, "commish")
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, cmd())

	require.True(t, m.commissioner)
	assert.Equal(t, screenBoard, m.screen)
	assert.Contains(t, m.View(), "[commissioner]")

	m, cmd = updateCmd(t, m, runes("f"))
	m = update(t, m, cmd())

	assert.Equal(t, "Force reveal: countdown started", m.status)
	assert.True(t, m.board.Countdown.Active)
}

func TestBoardModel_LoginFails(t *testing.T) {
	m, a := loaded(t)
	a.EXPECT().Login(gomock.Any(), "wrong").Return(models.TokenResponse{}, fmt.Errorf("%w: wrong password", adapter.ErrUnauthorized))

	m = update(t, m, runes("l"))
	m = typeText(t, m, "wrong")
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, cmd())

	assert.False(t, m.commissioner)
	assert.Equal(t, screenPrompt, m.screen)
	assert.Contains(t, m.prompt.errMsg, "wrong password")
}

func TestBoardModel_RevealAll(t *testing.T) {
	m, a := loaded(t)
	m.commissioner = true
	a.EXPECT().RevealAll(gomock.Any()).Return(models.RevealReport{
		Revealed: []models.RevealedTeam{{TeamID: "gators", Keepers: []string{"Allen"}}},
		Skipped:  1,
	}, nil)

	m, cmd := updateCmd(t, m, runes("a"))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	assert.Equal(t, "Revealed 1 teams, 1 already open", m.status)
}

func TestBoardModel_RevealAllPartial(t *testing.T) {
	m, a := loaded(t)
	m.commissioner = true
	a.EXPECT().RevealAll(gomock.Any()).Return(models.RevealReport{
		Revealed: []models.RevealedTeam{{TeamID: "gators", Keepers: []string{"Allen"}}},
		Failures: []models.RevealFailure{{TeamID: "owls", Reason: "malformed ciphertext"}},
	}, fmt.Errorf("%w: 1 of 2", adapter.ErrPartialReveal))

	m, cmd := updateCmd(t, m, runes("a"))
	m = update(t, m, cmd())

	require.Equal(t, screenError, m.screen)
	assert.Contains(t, m.overlay.message, "Revealed 1 teams, 1 failed")
	assert.Contains(t, m.overlay.message, "owls: malformed ciphertext")
}

// ── deadline and auto start ─────────────────────────────────────────────────

func TestBoardModel_DeadlinePassesWhileWatching(t *testing.T) {
	m, a := loaded(t)
	deadline := *m.board.Deadline.Deadline
	m.now = func() time.Time { return deadline.Add(time.Second) }

	a.EXPECT().StartCountdown(gomock.Any()).Return(models.OutcomeResponse{
		Outcome:   models.OutcomeStarted,
		Countdown: models.CountdownStatus{Phase: models.CountdownCounting, Active: true, DurationSeconds: 10, StartTime: ptr(deadline)},
	}, nil)

	require.Equal(t, models.DeadlineReached, m.deadline().Kind)
	assert.Contains(t, m.View(), "reached at")

	started, cmd := m.maybeAutoStart()
	require.NotNil(t, cmd)
	assert.True(t, started.autoStartFor.Equal(deadline))

	m = update(t, started, cmd())
	assert.True(t, m.board.Countdown.Active)

	// once per deadline
	_, cmd = m.maybeAutoStart()
	assert.Nil(t, cmd)
}

func TestBoardModel_NoAutoStart(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *boardModel)
	}{
		{name: "deadline pending", mutate: func(m *boardModel) {}},
		{name: "no deadline", mutate: func(m *boardModel) {
			m.board.Deadline = models.DeadlineStatus{Kind: models.DeadlineNone}
		}},
		{name: "deadline expired", mutate: func(m *boardModel) {
			m.board.Deadline = models.DeadlineStatus{Kind: models.DeadlineExpired, Deadline: ptr(epoch.Add(-48 * time.Hour))}
		}},
		{name: "countdown running", mutate: func(m *boardModel) {
			m.board.Deadline = models.DeadlineStatus{Kind: models.DeadlineReached, Deadline: ptr(epoch)}
			m.board.Countdown = models.CountdownStatus{Active: true, StartTime: ptr(epoch), DurationSeconds: 10}
		}},
		{name: "still loading", mutate: func(m *boardModel) {
			m.board.Deadline = models.DeadlineStatus{Kind: models.DeadlineReached, Deadline: ptr(epoch)}
			m.loading = true
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := loaded(t)
			tt.mutate(&m)

			_, cmd := m.maybeAutoStart()

			assert.Nil(t, cmd)
		})
	}
}

func TestBoardModel_AutoStartFailureOnlyInStatus(t *testing.T) {
	m, _ := loaded(t)

	m = update(t, m, outcomeMsg{action: "Start countdown", auto: true, err: adapter.ErrServiceUnavailable})

	assert.Equal(t, screenBoard, m.screen)
	assert.Contains(t, m.status, "Auto start failed")
}

func TestBoardModel_RevealingPhase(t *testing.T) {
	m, _ := loaded(t)

	m = update(t, m, pushMsg{push: models.Push{Kind: models.PushCountdown, Countdown: &models.CountdownStatus{
		Phase: models.CountdownRevealing, DryRun: true,
	}}})

	assert.Contains(t, m.View(), "(test)")
	assert.Contains(t, m.View(), "revealing...")
}
