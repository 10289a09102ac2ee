package protocol

// Message types: Server → Spectator. The board feed is one-way; spectator
// connections never carry game actions.
const (
	MsgGameState = "game_state"
	MsgEvent     = "event"
	MsgScores    = "scores"
	MsgError     = "error"
)

// ErrorMsg is sent to a spectator on error.
type ErrorMsg struct {
	Message string `json:"message"`
}
