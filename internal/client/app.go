package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/keeper-reveal/internal/adapter"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
)

var (
	errNoAdapter = errors.New("server adapter is required")
	errNoBoard   = errors.New("board is required")
)

var _ Client = (*App)(nil)

type App struct {
	adapter adapter.ServerAdapter
	board   Board
	logger  *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, board Board, log *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, errNoAdapter
	}
	if board == nil {
		return nil, errNoBoard
	}

	return &App{adapter: serverAdapter, board: board, logger: log.WithComponent("client")}, nil
}

// Run stops on SIGINT or SIGTERM as well as when the user quits the board.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("server is unavailable: %w", err)
	}
	a.logger.Info().Str("server_version", version).Msg("connected to server")

	if err = a.board.Run(ctx); err != nil {
		return fmt.Errorf("board: %w", err)
	}

	a.logger.Info().Msg("board closed")
	return nil
}
