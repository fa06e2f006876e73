package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/store"
	"github.com/MKhiriev/keeper-reveal/models"
)

// startWatchServer serves the full router and returns the websocket URL.
func startWatchServer(t *testing.T, h *Handler) string {
	t.Helper()

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string, header http.Header) *websocket.Conn {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
		resp.Body.Close()
	})

	return conn
}

func readPush(t *testing.T, conn *websocket.Conn) models.Push {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var push models.Push
	require.NoError(t, conn.ReadJSON(&push))
	return push
}

// ── connection lifecycle ──

func TestWatch_FirstMessageIsBoard(t *testing.T) {
	// Arrange
	h, m := newMockedHandler(t)
	m.status.EXPECT().Board(gomock.Any()).Return(models.Board{
		Deadline:    models.DeadlineStatus{Kind: models.DeadlinePending},
		Submissions: []models.Submission{sealedAlpha()},
	}, nil)

	// Act
	conn := dial(t, startWatchServer(t, h), nil)
	push := readPush(t, conn)

	// Assert
	require.Equal(t, models.PushBoard, push.Kind)
	require.NotNil(t, push.Board)
	assert.Equal(t, models.DeadlinePending, push.Board.Deadline.Kind)
	require.Len(t, push.Board.Submissions, 1)
	assert.Equal(t, 1, h.hub.Len())
}

func TestWatch_BroadcastReachesEveryClient(t *testing.T) {
	// Arrange
	h, m := newMockedHandler(t)
	m.status.EXPECT().Board(gomock.Any()).Return(models.Board{}, nil).Times(2)
	url := startWatchServer(t, h)

	first, second := dial(t, url, nil), dial(t, url, nil)
	readPush(t, first)
	readPush(t, second)

	start := epoch
	event := models.Event{Kind: models.EventCountdownChanged, CountdownStartTime: &start, At: epoch}

	// Act
	h.hub.Broadcast(models.Push{Kind: models.PushEvent, Event: &event})

	// Assert
	for _, conn := range []*websocket.Conn{first, second} {
		push := readPush(t, conn)
		require.Equal(t, models.PushEvent, push.Kind)
		require.NotNil(t, push.Event)
		assert.Equal(t, models.EventCountdownChanged, push.Event.Kind)
		require.NotNil(t, push.Event.CountdownStartTime)
		assert.True(t, epoch.Equal(*push.Event.CountdownStartTime))
	}
}

func TestWatch_HubCloseSendsCloseFrame(t *testing.T) {
	h, m := newMockedHandler(t)
	m.status.EXPECT().Board(gomock.Any()).Return(models.Board{}, nil)
	conn := dial(t, startWatchServer(t, h), nil)
	readPush(t, conn)

	h.hub.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
	assert.Eventually(t, func() bool { return h.hub.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestWatch_ClientDisconnectUnregisters(t *testing.T) {
	h, m := newMockedHandler(t)
	m.status.EXPECT().Board(gomock.Any()).Return(models.Board{}, nil)
	conn := dial(t, startWatchServer(t, h), nil)
	readPush(t, conn)
	require.Equal(t, 1, h.hub.Len())

	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
	conn.Close()

	assert.Eventually(t, func() bool { return h.hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}

// ── handshake failures ──

func TestWatch_BoardErrorRejectsUpgrade(t *testing.T) {
	h, m := newMockedHandler(t)
	m.status.EXPECT().Board(gomock.Any()).Return(models.Board{}, store.ErrStoreUnavailable)

	_, resp, err := websocket.DefaultDialer.Dial(startWatchServer(t, h), nil)

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, 0, h.hub.Len())
}

func TestWatch_ForeignOriginRejected(t *testing.T) {
	h, m := newMockedHandler(t)
	h.hub = NewHub([]string{"http://board.local"}, logger.Nop())
	m.status.EXPECT().Board(gomock.Any()).Return(models.Board{}, nil)

	_, resp, err := websocket.DefaultDialer.Dial(startWatchServer(t, h), http.Header{"Origin": {"http://evil.local"}})

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ── hub ──

func TestOriginChecker(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{"no origin header", []string{"http://board.local"}, "", true},
		{"empty allow list", nil, "http://any.local", true},
		{"wildcard", []string{"*"}, "http://any.local", true},
		{"listed origin", []string{"http://board.local"}, "http://board.local", true},
		{"unlisted origin", []string{"http://board.local"}, "http://evil.local", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			assert.Equal(t, tt.want, originChecker(tt.allowed)(req))
		})
	}
}

func TestHub_BroadcastWithoutClients(t *testing.T) {
	hub := NewHub(nil, logger.Nop())

	assert.NotPanics(t, func() {
		hub.Broadcast(models.Push{Kind: models.PushCountdown, Countdown: &models.CountdownStatus{}})
	})
	assert.Equal(t, 0, hub.Len())
}
