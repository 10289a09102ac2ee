package server

import (
	"encoding/json"
	"log"
	"sync"

	"colosseum/internal/engine"
	"colosseum/internal/protocol"
)

// Hub fans game state out to spectator WebSocket connections. It holds no
// game of its own: the hotseat session publishes a fresh snapshot after
// every applied action, and newly connected spectators get the latest one.
type Hub struct {
	mu         sync.Mutex
	clients    map[*Client]bool
	lastState  []byte
	register   chan *Client
	unregister chan *Client
	quit       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			last := h.lastState
			h.mu.Unlock()
			if last != nil {
				client.Send(last)
			}

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case <-h.quit:
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.quit)
}

// Publish broadcasts the events and the board snapshot they produced.
// Safe to call from any goroutine.
func (h *Hub) Publish(view engine.PublicView, events []engine.Event) {
	for _, ev := range events {
		h.broadcast(protocol.MustEnvelope(protocol.MsgEvent, ev))
	}
	env := protocol.MustEnvelope(protocol.MsgGameState, view)
	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("state marshal error: %v", err)
		return
	}

	h.mu.Lock()
	h.lastState = data
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			log.Printf("spectator buffer full, dropping state")
		}
	}
	h.mu.Unlock()

	if len(view.Scores) > 0 {
		h.broadcast(protocol.MustEnvelope(protocol.MsgScores, view.Scores))
	}
}

func (h *Hub) broadcast(env protocol.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("broadcast marshal error: %v", err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			log.Printf("spectator buffer full, dropping message")
		}
	}
}
