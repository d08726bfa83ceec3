package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

// Event describes a successful entity mutation pushed to connected clients
// so the frontend tables can refresh without polling.
type Event struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	ID       uint   `json:"id"`
}

// EventHub broadcasts mutation events to every connected websocket client.
type EventHub struct {
	mu        sync.Mutex
	clients   map[*websocket.Conn]bool
	events    chan Event
	closeOnce sync.Once
}

func NewEventHub() *EventHub {
	hub := &EventHub{
		clients: make(map[*websocket.Conn]bool),
		events:  make(chan Event, 100), // Buffered channel to prevent blocking
	}
	go hub.run()
	return hub
}

// Publish never blocks a request handler: when the buffer is full the event
// is dropped.
func (h *EventHub) Publish(resource, action string, id uint) {
	select {
	case h.events <- Event{Resource: resource, Action: action, ID: id}:
	default:
	}
}

// Close stops the broadcast loop and disconnects the remaining clients.
// Publish must not be called after Close.
func (h *EventHub) Close() {
	h.closeOnce.Do(func() {
		close(h.events)
	})
}

func (h *EventHub) run() {
	for event := range h.events {
		payload, err := json.Marshal(event)
		if err != nil {
			continue
		}
		h.mu.Lock()
		for client := range h.clients {
			if err := client.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(h.clients, client)
			}
		}
		h.mu.Unlock()
	}

	h.mu.Lock()
	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
	h.mu.Unlock()
}

func (h *EventHub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Handler upgrades the connection and keeps the client registered until its
// read loop fails.
func (h *EventHub) Handler() fiber.Handler {
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Error upgrading:", err)
			return
		}
		defer conn.Close()

		h.mu.Lock()
		h.clients[conn] = true
		h.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				break
			}
		}
	})
}
