package server

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"
)

// Server serves the spectator board page and its WebSocket feed.
type Server struct {
	hub      *Hub
	handlers *Handlers
	port     int
	static   embed.FS
}

func New(port int, static embed.FS) *Server {
	hub := NewHub()
	return &Server{
		hub:      hub,
		handlers: NewHandlers(hub),
		port:     port,
		static:   static,
	}
}

// Hub returns the spectator hub so the game session can publish state.
func (s *Server) Hub() *Hub {
	return s.hub
}

func (s *Server) Start() error {
	go s.hub.Run()

	mux := http.NewServeMux()

	sub, err := fs.Sub(s.static, "web/static")
	if err != nil {
		return fmt.Errorf("static fs: %w", err)
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	mux.HandleFunc("/api/qr", s.handlers.HandleQR)
	mux.HandleFunc("/ws", s.handlers.HandleWS)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("spectator board on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}
