package network

import (
	"encoding/json"

	"github.com/gravitas-games/hexboard/board"
)

// Message types - Client → Server
const (
	MsgTypeGenerate = "generate"
	MsgTypePing     = "ping"
)

// Message types - Server → Client
const (
	MsgTypeBoard = "board"
	MsgTypeDone  = "done"
	MsgTypeError = "error"
	MsgTypePong  = "pong"
)

// ClientMessage represents any message from client to server
type ClientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ServerMessage represents any message from server to client
type ServerMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// --- Client Message Payloads ---

// GeneratePayload requests one or more board layouts.
type GeneratePayload struct {
	// Board selects the shape: "standard" (default) or "56".
	Board    string `json:"board,omitempty"`
	UseFrame bool   `json:"use_frame,omitempty"`

	// Arrangement modes per axis: "beginner", "standard" (numbers only)
	// or "shuffle". Empty selects the variable setup (standard numbers,
	// shuffled terrain and ports).
	Terrain string `json:"terrain,omitempty"`
	Numbers string `json:"numbers,omitempty"`
	Ports   string `json:"ports,omitempty"`

	// Validators in textual form, e.g. "no_6_8" or "max_pip=11".
	Validators []string `json:"validators,omitempty"`

	// Seed pins the random source for reproducible generation.
	Seed *int64 `json:"seed,omitempty"`

	// Count streams this many boards over a WebSocket session. Ignored
	// for single-shot HTTP generation.
	Count int `json:"count,omitempty"`
}

// --- Server Message Payloads ---

// HexPayload is one land tile of a generated board.
type HexPayload struct {
	Q       int    `json:"q"`
	R       int    `json:"r"`
	Terrain string `json:"terrain"`
	Number  int    `json:"number,omitempty"`
	Pips    int    `json:"pips,omitempty"`
}

// PortPayload is one port of a generated board.
type PortPayload struct {
	Q        int      `json:"q"`
	R        int      `json:"r"`
	Resource string   `json:"resource"`
	Ratio    int      `json:"ratio"`
	Serves   [][2]int `json:"serves"`
}

// BoardPayload is a complete generated layout.
type BoardPayload struct {
	ID       string        `json:"id"`
	Attempts int           `json:"attempts"`
	Hexes    []HexPayload  `json:"hexes"`
	Ports    []PortPayload `json:"ports"`
	Cached   bool          `json:"cached,omitempty"`
}

// DonePayload closes a streamed generation session.
type DonePayload struct {
	Boards int `json:"boards"`
}

// ErrorPayload contains error information
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EncodeBoard converts a board into its wire form.
func EncodeBoard(id string, b *board.Board) BoardPayload {
	out := BoardPayload{ID: id, Attempts: b.Attempts}
	for _, h := range b.Hexes {
		out.Hexes = append(out.Hexes, HexPayload{
			Q:       h.Pos.Q,
			R:       h.Pos.R,
			Terrain: h.Terrain.String(),
			Number:  h.Number,
			Pips:    h.Pips(),
		})
	}
	for _, p := range b.Ports {
		pp := PortPayload{
			Q:        p.Pos.Q,
			R:        p.Pos.R,
			Resource: p.Resource.String(),
			Ratio:    p.Ratio(),
		}
		for _, s := range p.Serves {
			pp.Serves = append(pp.Serves, [2]int{s.Q, s.R})
		}
		out.Ports = append(out.Ports, pp)
	}
	return out
}
