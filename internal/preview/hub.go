// Package preview streams rendered frames to browsers over websockets and
// feeds their control messages back into the scene.
package preview

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 2 * time.Second

// ControlSink receives control messages from connected clients.
type ControlSink interface {
	SetPrecipitation(v float64)
	SetPaused(paused bool)
}

// Control is the JSON message a client sends. Absent fields are left alone.
type Control struct {
	Precipitation *float64 `json:"precipitation,omitempty"`
	Paused        *bool    `json:"paused,omitempty"`
}

// Hub tracks websocket clients and broadcasts frames to them.
type Hub struct {
	upgrader websocket.Upgrader
	sink     ControlSink

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex
	latest  []byte
}

// NewHub returns a hub that forwards control messages to sink, which may be
// nil.
func NewHub(sink ControlSink) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sink:    sink,
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// ServeHTTP upgrades the request and serves the client until it
// disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	lock := h.register(conn)
	defer h.unregister(conn)

	h.mu.RLock()
	latest := h.latest
	h.mu.RUnlock()
	if latest != nil {
		if err := write(conn, lock, latest); err != nil {
			log.Printf("websocket initial frame: %v", err)
			return
		}
	}

	for {
		var msg Control
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket read: %v", err)
			}
			return
		}
		h.apply(msg)
	}
}

func (h *Hub) apply(msg Control) {
	if h.sink == nil {
		return
	}
	if msg.Precipitation != nil {
		h.sink.SetPrecipitation(*msg.Precipitation)
	}
	if msg.Paused != nil {
		h.sink.SetPaused(*msg.Paused)
	}
}

func (h *Hub) register(conn *websocket.Conn) *sync.Mutex {
	lock := &sync.Mutex{}
	h.mu.Lock()
	h.clients[conn] = lock
	h.mu.Unlock()
	return lock
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	if ok {
		conn.Close()
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends frame as a binary message to every client. Clients whose
// write fails are dropped.
func (h *Hub) Broadcast(frame []byte) {
	h.mu.Lock()
	h.latest = frame
	targets := make(map[*websocket.Conn]*sync.Mutex, len(h.clients))
	for conn, lock := range h.clients {
		targets[conn] = lock
	}
	h.mu.Unlock()

	for conn, lock := range targets {
		if err := write(conn, lock, frame); err != nil {
			log.Printf("websocket write: %v; dropping client", err)
			h.unregister(conn)
		}
	}
}

func write(conn *websocket.Conn, lock *sync.Mutex, frame []byte) error {
	lock.Lock()
	defer lock.Unlock()
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.BinaryMessage, frame)
}
