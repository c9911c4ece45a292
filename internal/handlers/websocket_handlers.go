package handlers

import (
	"log"
	"net/http"

	ws "github.com/AkshatKumar38/Study-Hub/internal/websocket"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin filtering happens in the CORS middleware; the feed events
	// carry no per-user data.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades the connection and subscribes it to feed events.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.Hub == nil {
		http.Error(w, "websocket disabled", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := ws.NewClient(s.Hub, conn)
	s.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
