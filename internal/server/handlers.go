package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	qr "colosseum/internal/qrcode"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	Hub *Hub
}

func NewHandlers(hub *Hub) *Handlers {
	return &Handlers{Hub: hub}
}

// HandleQR generates a QR code PNG linking to the spectator board.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	url := fmt.Sprintf("http://%s/", r.Host)
	png, err := qr.Generate(url)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleWS upgrades a spectator connection and attaches it to the hub.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	client := NewClient(h.Hub, conn)
	h.Hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}
