// Package tui renders the terminal watch board with Bubble Tea.
//
// The board shows the submission deadline, the shared reveal countdown and
// every team's submission. It follows the server over the websocket push
// channel and lets a team submit or reveal its own keepers, and the
// commissioner force or complete the reveal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/keeper-reveal/internal/adapter"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/models"
)

const defaultReconnectDelay = 2 * time.Second

var errWatchClosed = errors.New("server closed the watch connection")

// sender is the part of *tea.Program the watcher needs.
type sender interface {
	Send(msg tea.Msg)
}

type TUI struct {
	adapter        adapter.ServerAdapter
	info           models.AppBuildInfo
	reconnectDelay time.Duration
	logger         *logger.Logger
}

func New(a adapter.ServerAdapter, info models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		adapter:        a,
		info:           info,
		reconnectDelay: defaultReconnectDelay,
		logger:         log.WithComponent("tui"),
	}
}

// Run shows the board until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(newBoardModel(ctx, t.adapter, t.info), tea.WithAltScreen(), tea.WithContext(ctx))
	go t.watch(ctx, program)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run board: %w", err)
	}
	return nil
}

// watch forwards server pushes to the board and reconnects after
// reconnectDelay whenever the connection drops.
func (t *TUI) watch(ctx context.Context, s sender) {
	for {
		err := t.adapter.Watch(ctx, func(p models.Push) {
			if p.Kind == models.PushBoard {
				s.Send(connectionMsg{connected: true})
			}
			s.Send(pushMsg{push: p})
		})
		if ctx.Err() != nil {
			return
		}
		if err == nil {
			err = errWatchClosed
		}

		t.logger.Warn().Err(err).Dur("retry_in", t.reconnectDelay).Msg("watch interrupted")
		s.Send(connectionMsg{err: err})

		select {
		case <-ctx.Done():
			return
		case <-time.After(t.reconnectDelay):
		}
	}
}
