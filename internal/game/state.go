package game

import "set-game/internal/shared"

// State is a point-in-time copy of everything a presentation layer reads
// from a Game.
type State struct {
	GameID    string        `json:"game_id"`
	Visible   []shared.Card `json:"visible"`
	Selected  []string      `json:"selected"`
	DeckSize  int           `json:"deck_size"`
	CanDeal   bool          `json:"can_deal"`
	Matches   int           `json:"matches"`
	Complete  bool          `json:"complete"`
	Validity  Validity      `json:"validity"`
	Remaining int           `json:"remaining"`
	Over      bool          `json:"over"`
}

// Snapshot captures the current state of the game.
func (g *Game) Snapshot() State {
	selected := make([]string, 0, len(g.selected))
	for _, c := range g.SelectedCards() {
		selected = append(selected, c.ID)
	}
	return State{
		GameID:    g.ID,
		Visible:   g.Visible(),
		Selected:  selected,
		DeckSize:  g.DeckSize(),
		CanDeal:   g.CanDeal(),
		Matches:   g.MatchCount(),
		Complete:  g.IsCompleteSelection(),
		Validity:  g.Validity(),
		Remaining: g.Remaining(),
		Over:      g.IsOver(),
	}
}
