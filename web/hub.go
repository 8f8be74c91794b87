package web

import (
	"log"
	"net/http"
	"sync"

	"github.com/etnz/bondbook"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The server only listens on localhost; any origin is fine.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// event is the wire form of a notification lifecycle change.
type event struct {
	Type         string                 `json:"type"` // "notification" or "dismiss"
	Notification *bondbook.Notification `json:"notification,omitempty"`
	ID           string                 `json:"id,omitempty"`
}

// Hub broadcasts notification events to every connected browser.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHub creates a hub with no connections.
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]struct{})}
}

// Handle upgrades the request and keeps the connection registered until the
// peer goes away. Incoming messages are ignored: the socket is push-only,
// dismissal goes through the HTTP API.
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws-upgrade-failed err=%q", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.drop(conn)
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
}

// NotificationPosted pushes a freshly posted notification to all peers.
func (h *Hub) NotificationPosted(n bondbook.Notification) {
	h.broadcast(event{Type: "notification", Notification: &n})
}

// NotificationRemoved tells all peers a notification is gone, whether it
// expired or was dismissed.
func (h *Hub) NotificationRemoved(id string) {
	h.broadcast(event{Type: "dismiss", ID: id})
}

// broadcast writes the event to every peer. The lock is held across the
// writes: gorilla connections support one concurrent writer only.
func (h *Hub) broadcast(e event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(e); err != nil {
			log.Printf("ws-write-failed err=%q", err)
			delete(h.conns, conn)
			conn.Close()
		}
	}
}
