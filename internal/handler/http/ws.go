package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/utils"
	"github.com/MKhiriev/keeper-reveal/models"
)

const (
	wsWriteTimeout   = 10 * time.Second
	wsPongTimeout    = 60 * time.Second
	wsPingInterval   = 30 * time.Second
	wsMaxMessageSize = 512
	wsSendBuffer     = 64
)

// Hub keeps the websocket connections of every watching client and pushes
// store changes and countdown updates to them.
type Hub struct {
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	conns map[*wsConn]struct{}

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

type wsConn struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	hub  *Hub
	once sync.Once
}

// NewHub creates a hub accepting upgrades from allowedOrigins. An empty list
// or "*" accepts any origin.
func NewHub(allowedOrigins []string, log *logger.Logger) *Hub {
	h := &Hub{
		conns:  make(map[*wsConn]struct{}),
		ids:    utils.NewUUIDGenerator(),
		logger: log.WithComponent("ws-hub"),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}

	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 || slices.Contains(allowed, "*") {
			return true
		}
		return slices.Contains(allowed, origin)
	}
}

// Serve upgrades the request and registers the connection. first is sent
// before any broadcast reaches the new client.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, first models.Push) error {
	data, err := json.Marshal(first)
	if err != nil {
		return fmt.Errorf("error marshalling first push: %w", err)
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("error upgrading connection: %w", err)
	}

	c := &wsConn{
		id:   h.ids.Generate(),
		conn: conn,
		send: make(chan []byte, wsSendBuffer),
		done: make(chan struct{}),
		hub:  h,
	}
	c.send <- data

	h.mu.Lock()
	h.conns[c] = struct{}{}
	total := len(h.conns)
	h.mu.Unlock()

	go c.writePump()
	go c.readPump()

	h.logger.Info().Str("connection_id", c.id).Int("total_connections", total).Msg("websocket connection established")

	return nil
}

// Broadcast implements workers.Broadcaster. It never blocks: a client whose
// buffer is full is disconnected.
func (h *Hub) Broadcast(msg models.Push) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Err(err).Str("func", "*Hub.Broadcast").Msg("error marshalling push")
		return
	}

	h.mu.RLock()
	targets := make([]*wsConn, 0, len(h.conns))
	for c := range h.conns {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		select {
		case <-c.done:
		case c.send <- data:
		default:
			h.logger.Warn().Str("connection_id", c.id).Msg("send buffer full, closing connection")
			c.close()
		}
	}

	h.logger.Debug().Str("kind", string(msg.Kind)).Int("connections", len(targets)).Msg("push broadcast")
}

// Len returns the number of open connections.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.RLock()
	targets := make([]*wsConn, 0, len(h.conns))
	for c := range h.conns {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		c.close()
	}
}

// close unregisters the connection and stops its write pump, which then
// sends a close frame.
func (c *wsConn) close() {
	c.once.Do(func() {
		c.hub.mu.Lock()
		delete(c.hub.conns, c)
		c.hub.mu.Unlock()
		close(c.done)

		c.hub.logger.Info().Str("connection_id", c.id).Msg("websocket connection closed")
	})
}

func (c *wsConn) writePump() {
	ticker := time.NewTicker(wsPingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
		c.close()
	}()

	for {
		select {
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.hub.logger.Err(err).Str("connection_id", c.id).Msg("error writing websocket message")
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only keeps the connection alive; clients never send commands.
func (c *wsConn) readPump() {
	defer c.close()

	c.conn.SetReadLimit(wsMaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.hub.logger.Err(err).Str("connection_id", c.id).Msg("unexpected websocket close")
			}
			return
		}
	}
}
