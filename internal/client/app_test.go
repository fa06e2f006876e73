package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/mock"
)

type fakeBoard struct {
	runs int
	err  error
}

func (b *fakeBoard) Run(context.Context) error {
	b.runs++
	return b.err
}

func TestNewApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)

	_, err := NewApp(nil, &fakeBoard{}, logger.Nop())
	assert.ErrorIs(t, err, errNoAdapter)

	_, err = NewApp(a, nil, logger.Nop())
	assert.ErrorIs(t, err, errNoBoard)

	app, err := NewApp(a, &fakeBoard{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestApp_RunsBoardAfterVersionCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	a.EXPECT().Version(gomock.Any()).Return("v1.0.0", nil)

	board := &fakeBoard{}
	app, err := NewApp(a, board, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, 1, board.runs)
}

func TestApp_ServerUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	a.EXPECT().Version(gomock.Any()).Return("", errors.New("dial tcp: connection refused"))

	board := &fakeBoard{}
	app, err := NewApp(a, board, logger.Nop())
	require.NoError(t, err)

	err = app.run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "server is unavailable")
	assert.Zero(t, board.runs)
}

func TestApp_BoardError(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	a.EXPECT().Version(gomock.Any()).Return("v1.0.0", nil)

	boom := errors.New("terminal gone")
	app, err := NewApp(a, &fakeBoard{err: boom}, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, app.run(context.Background()), boom)
}
