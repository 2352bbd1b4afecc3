// Package spectate streams game snapshots to spectators over websockets.
package spectate

import (
	"io"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 64
)

// DefaultInterval limits how often one session's snapshots are forwarded.
const DefaultInterval = 50 * time.Millisecond

// Frame is one message on the spectator stream.
type Frame struct {
	Session  string           `json:"session"`
	Removed  bool             `json:"removed,omitempty"`
	Snapshot *engine.Snapshot `json:"snapshot,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // spectating is read-only and public
	},
}

type client struct {
	conn *websocket.Conn
	send chan Frame
}

type session struct {
	latest engine.Snapshot
	sentAt time.Time
}

// Hub fans snapshots of running games out to websocket spectators. It is
// safe for concurrent use; every game session publishes from its own
// goroutine.
type Hub struct {
	mu       sync.Mutex
	clients  map[*client]struct{}
	sessions map[string]*session
	closed   bool

	interval time.Duration
	now      func() time.Time
	logger   *log.Logger
}

// NewHub creates a hub. logger may be nil.
func NewHub(logger *log.Logger, interval time.Duration) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		clients:  make(map[*client]struct{}),
		sessions: make(map[string]*session),
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Publish records the latest snapshot of a session and forwards it to
// every spectator, at most once per interval unless the game just ended.
func (h *Hub) Publish(id string, snap engine.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[id]
	if !ok {
		s = &session{}
		h.sessions[id] = s
		h.logger.Debug("spectator stream opened", "session", id)
	}
	s.latest = snap

	now := h.now()
	if snap.Outcome == engine.OutcomePlaying && now.Sub(s.sentAt) < h.interval {
		return
	}
	s.sentAt = now
	h.broadcast(Frame{Session: id, Snapshot: &s.latest})
}

// Remove forgets a session and tells spectators it is gone.
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[id]; !ok {
		return
	}
	delete(h.sessions, id)
	h.logger.Debug("spectator stream closed", "session", id)
	h.broadcast(Frame{Session: id, Removed: true})
}

// Sessions lists the sessions currently streaming, sorted.
func (h *Hub) Sessions() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := make([]string, 0, len(h.sessions))
	for id := range h.sessions {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Spectators returns the number of connected spectators.
func (h *Hub) Spectators() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// broadcast must be called with h.mu held. Spectators that cannot keep up
// are dropped.
func (h *Hub) broadcast(f Frame) {
	if f.Snapshot != nil {
		snap := *f.Snapshot
		f.Snapshot = &snap
	}
	for c := range h.clients {
		select {
		case c.send <- f:
		default:
			h.drop(c)
		}
	}
}

func (h *Hub) drop(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// ServeHTTP upgrades the request to a websocket and streams frames to it,
// starting with the latest snapshot of every session.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan Frame, sendBuffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	for id, s := range h.sessions {
		snap := s.latest
		select {
		case c.send <- Frame{Session: id, Snapshot: &snap}:
		default:
		}
	}
	h.mu.Unlock()

	h.logger.Info("spectator connected", "remote", r.RemoteAddr)

	go h.writePump(c)
	h.readPump(c)

	h.logger.Info("spectator disconnected", "remote", r.RemoteAddr)
}

// readPump discards anything the spectator sends and notices when it goes
// away.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.mu.Lock()
		h.drop(c)
		h.mu.Unlock()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	//nolint:errcheck // deadline errors surface on the next read
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("spectator read error", "error", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case f, ok := <-c.send:
			//nolint:errcheck // deadline errors surface on the write
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				//nolint:errcheck // best-effort close frame
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(f); err != nil {
				h.logger.Debug("spectator write error", "error", err)
				return
			}

		case <-ticker.C:
			//nolint:errcheck // deadline errors surface on the write
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Close disconnects every spectator and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for c := range h.clients {
		h.drop(c)
	}
}
