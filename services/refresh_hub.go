package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the peer.
	refreshWriteWait = 10 * time.Second
	// Ping period keeps idle connections alive through proxies.
	refreshPingPeriod = 25 * time.Second
)

// WSClient is one connected dashboard for a user. All frames go through
// the buffered send channel: writePump is the only goroutine allowed to
// touch the connection's write side.
type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
	send   chan []byte
}

func NewWSClient(userID uint, conn *websocket.Conn) *WSClient {
	return &WSClient{
		UserID: userID,
		Conn:   conn,
		send:   make(chan []byte, 16),
	}
}

// writePump drains the send channel and emits pings on a ticker. It owns
// the connection's write side until the channel closes or a write fails.
func (c *WSClient) writePump() {
	ticker := time.NewTicker(refreshPingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.Conn.SetWriteDeadline(time.Now().Add(refreshWriteWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(refreshWriteWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// RefreshHub fans record-change events out to a user's open dashboards so
// they can refetch listings after a mutation instead of polling.
type RefreshHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRefreshHub() *RefreshHub {
	return &RefreshHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RefreshHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes the client and closes its send channel, stopping the
// writePump. Broadcasts only send to clients still in the map and do so
// under the read lock, so the channel is never closed mid-send.
func (h *RefreshHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		if _, ok := set[c]; ok {
			delete(set, c)
			close(c.send)
			if len(set) == 0 {
				delete(h.clients, c.UserID)
			}
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Serve runs a registered client until its peer goes away: the writePump
// carries broadcasts and pings, the read loop here only notices closure.
func (h *RefreshHub) Serve(c *WSClient) {
	h.Register(c)
	defer h.Unregister(c)
	go c.writePump()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

// RecordsChanged tells the user's dashboards that records of the given
// kind ("weight" or "meal") changed. A client whose send buffer is full
// is skipped rather than blocking the mutation path.
func (h *RefreshHub) RecordsChanged(userID uint, kind string) {
	msg, _ := json.Marshal(map[string]string{
		"event": "records_changed",
		"kind":  kind,
	})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		select {
		case c.send <- msg:
		default:
			logrus.WithField("user_id", userID).Warn("dropping refresh event for slow client")
		}
	}
}

// Refresh is the process-wide hub the controllers broadcast through.
var Refresh = NewRefreshHub()
