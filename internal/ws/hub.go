// internal/ws/hub.go
package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/agrikom/agrimarket-backend/internal/events"
	"github.com/agrikom/agrimarket-backend/internal/metrics"
)

const (
	writeWait    = 5 * time.Second
	pingInterval = 15 * time.Second
	sendBuffer   = 32
)

// Hub fans bus notifications out to connected websocket clients. Every
// client receives every notification; filtering by topic is left to the
// frontend, which already subscribes selectively.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan events.Notification
}

func NewHub(bus *events.Bus) *Hub {
	h := &Hub{clients: make(map[*client]struct{})}
	bus.SubscribeAll(h.broadcast)
	return h
}

func (h *Hub) broadcast(n events.Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- n:
		default:
			// Slow consumer: drop the notification rather than block the
			// publisher. The client still converges on the next read.
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Auth happens via JWT on the upgrade request, not via Origin.
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// Handler upgrades the request and serves the notification stream until
// the client disconnects.
func (h *Hub) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("ws: upgrade failed")
		return
	}

	cl := &client{conn: conn, send: make(chan events.Notification, sendBuffer)}
	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()
	metrics.IncrementWSClients()

	go h.writeLoop(cl)
	h.readLoop(cl)
}

func (h *Hub) writeLoop(cl *client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case n, ok := <-cl.send:
			if !ok {
				return
			}
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteJSON(n); err != nil {
				return
			}
		case <-ticker.C:
			if err := cl.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// readLoop discards inbound frames; the stream is one-way. It exists to
// notice disconnects and run the close path.
func (h *Hub) readLoop(cl *client) {
	defer func() {
		h.mu.Lock()
		delete(h.clients, cl)
		h.mu.Unlock()
		close(cl.send)
		cl.conn.Close()
		metrics.DecrementWSClients()
	}()

	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithError(err).Debug("ws: client closed abnormally")
			}
			return
		}
	}
}
