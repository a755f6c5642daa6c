package server

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"set-game/internal/game"
	"set-game/internal/protocol"
)

// Session is one player's game. The mutex serializes commands coming from
// the hub with snapshot reads coming from HTTP handlers.
type Session struct {
	ID   string
	game *game.Game
	mu   sync.Mutex
}

func newSession(cfg game.Config) *Session {
	g := game.NewGame(cfg)
	return &Session{ID: g.ID, game: g}
}

// Snapshot returns the current game state.
func (s *Session) Snapshot() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Apply runs a client command against the game and returns the encoded reply.
func (s *Session) Apply(msg protocol.Message) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch msg.Type {
	case protocol.TypeChoose:
		var payload protocol.ChoosePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return nil, fmt.Errorf("decode choose payload: %w", err)
		}
		s.game.Choose(payload.CardID)
	case protocol.TypeDealMore:
		s.game.DealMore()
	case protocol.TypeReset:
		s.game.Reset()
		log.Printf("Session %s: reset.", s.ID)
	case protocol.TypeHint:
		ids, found := s.game.Hint()
		payload := protocol.HintPayload{Found: found}
		if found {
			payload.CardIDs = ids[:]
		}
		return protocol.NewMessage(protocol.TypeHint, payload)
	default:
		return nil, fmt.Errorf("unknown message type %q", msg.Type)
	}

	return protocol.NewMessage(protocol.TypeState, s.game.Snapshot())
}

// stateMessage encodes the current state.
func (s *Session) stateMessage() ([]byte, error) {
	return protocol.NewMessage(protocol.TypeState, s.Snapshot())
}
