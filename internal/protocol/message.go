package protocol

import (
	"encoding/json"

	"set-game/internal/game"
)

// Message types exchanged over the websocket.
const (
	TypeChoose   = "choose"
	TypeDealMore = "deal_more"
	TypeReset    = "reset"
	TypeHint     = "hint"
	TypePing     = "ping"

	TypeState = "state"
	TypePong  = "pong"
	TypeError = "error"
)

// Message represents a generic WebSocket message structure.
type Message struct {
	Type    string          `json:"type"`              // Type of the message (e.g., "choose", "deal_more")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

// --- Client -> Server Payload Structs ---

type ChoosePayload struct {
	CardID string `json:"card_id"`
}

// --- Server -> Client Payload Structs ---

// StatePayload is sent after every command.
type StatePayload = game.State

type HintPayload struct {
	Found   bool     `json:"found"`
	CardIDs []string `json:"card_ids,omitempty"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// NewMessage builds an encoded message. A nil payload is omitted.
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}
	return json.Marshal(msg)
}
