package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// FeedEvent is pushed to every connected client whenever the feed actor
// mutates state, so a client can re-render from a fresh snapshot.
type FeedEvent struct {
	Type    string      `json:"type"` // "post.created", "comment.added", "reaction.toggled"
	PostID  string      `json:"postId"`
	Payload interface{} `json:"payload,omitempty"`
}

// Hub maintains the set of active clients and broadcasts feed events.
type Hub struct {
	// Registered clients.
	Clients map[*Client]bool

	// Inbound events to fan out to every client.
	Broadcast chan []byte

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	// Mutex to protect concurrent access to the clients map.
	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		Broadcast:  make(chan []byte, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Clients:    make(map[*Client]bool),
	}
}

// BroadcastEvent serializes the event and queues it for fan-out. It never
// blocks the caller: if the broadcast buffer is full the event is dropped,
// since clients always re-read full snapshots anyway.
func (h *Hub) BroadcastEvent(event FeedEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Hub: failed to marshal feed event %q: %v", event.Type, err)
		return
	}
	select {
	case h.Broadcast <- payload:
	default:
		log.Printf("Hub: broadcast buffer full, dropping %q event", event.Type)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.Clients)
}

// Run starts the hub's processing loop.
func (h *Hub) Run() {
	log.Println("WebSocket Hub started.")
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client] = true
			log.Printf("WebSocket client %s registered. Total connections: %d", client.ID, len(h.Clients))
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				log.Printf("WebSocket client %s unregistered. Total connections: %d", client.ID, len(h.Clients))
			}
			h.mu.Unlock()

		case message := <-h.Broadcast:
			h.mu.Lock()
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					// Slow consumer; drop it rather than stalling the hub.
					close(client.Send)
					delete(h.Clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}
