package game

import (
	"log"

	"set-game/internal/shared"

	"github.com/google/uuid"
)

// Validity describes the current selection. It is only known once a full
// set of cards is selected.
type Validity string

const (
	Unknown Validity = "unknown"
	Valid   Validity = "valid"
	Invalid Validity = "invalid"
)

// Game owns the deck, the visible cards, the selection and the match history.
//
// A completed selection is not judged when its third card is chosen. It is
// judged at the start of the next Choose or DealMore call, which then carries
// on with its own action. Game has no internal locking; callers sharing a Game
// across goroutines must serialize access.
type Game struct {
	ID       string
	cfg      Config
	deck     *shared.Deck
	visible  []shared.Card
	selected map[string]struct{}
	matches  []shared.Match
}

// NewGame creates a game and deals the starting cards.
func NewGame(cfg Config) *Game {
	if cfg.StartingCards <= 0 {
		cfg.StartingCards = DefaultStartingCards
	}
	g := &Game{
		ID:  uuid.New().String(),
		cfg: cfg,
	}
	g.Reset()
	return g
}

// Reset starts over with a freshly shuffled full deck.
func (g *Game) Reset() {
	g.deck = shared.NewDeck()
	g.deck.Shuffle(g.cfg.Rand)
	g.visible = g.deck.Draw(g.cfg.StartingCards)
	g.selected = make(map[string]struct{}, shared.CardsPerSet)
	g.matches = nil
}

// Choose toggles the selection of a visible card, after judging any
// completed selection. Unknown ids are ignored.
func (g *Game) Choose(cardID string) {
	g.evaluatePending()

	if g.indexOf(cardID) < 0 {
		return
	}
	if _, ok := g.selected[cardID]; ok {
		delete(g.selected, cardID)
		return
	}
	g.selected[cardID] = struct{}{}
}

// DealMore does nothing unless the deck still holds a full set of cards.
// A completed valid selection is replaced in place; otherwise three new
// cards are appended to the visible window.
func (g *Game) DealMore() {
	if g.deck.Len() < shared.CardsPerSet {
		return
	}
	if g.evaluatePending() {
		return
	}
	g.visible = append(g.visible, g.deck.Draw(shared.CardsPerSet)...)
}

// evaluatePending judges a completed selection and clears it. It reports
// whether a match was recorded.
func (g *Game) evaluatePending() bool {
	if len(g.selected) != shared.CardsPerSet {
		return false
	}
	cards := g.SelectedCards()
	if !shared.IsValidSet(cards) {
		g.clearSelection()
		return false
	}

	match, err := shared.NewMatch(cards)
	if err != nil {
		log.Panicf("Game %s: selection passed validation but match failed: %v", g.ID, err)
	}
	g.matches = append(g.matches, match)
	g.replaceSelected(g.deck.Draw(shared.CardsPerSet))
	return true
}

// replaceSelected swaps the selected cards for replacements, keeping each
// replacement at the position of the card it replaces. Selected cards left
// without a replacement are removed from the window.
func (g *Game) replaceSelected(replacements []shared.Card) {
	positions := make([]int, 0, len(g.selected))
	for i, c := range g.visible {
		if _, ok := g.selected[c.ID]; ok {
			positions = append(positions, i)
		}
	}

	// Walk from the highest position down so earlier indices stay valid.
	for n := 0; n < len(positions); n++ {
		pos := positions[len(positions)-1-n]
		if n < len(replacements) {
			g.visible[pos] = replacements[n]
			continue
		}
		g.visible = append(g.visible[:pos], g.visible[pos+1:]...)
	}
	g.clearSelection()
}

func (g *Game) clearSelection() {
	clear(g.selected)
}

func (g *Game) indexOf(cardID string) int {
	for i, c := range g.visible {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}

// --- Queries ---

// IsSelected reports whether the card is part of the current selection.
func (g *Game) IsSelected(cardID string) bool {
	_, ok := g.selected[cardID]
	return ok
}

// SelectedCards returns the selected cards in visible-window order.
func (g *Game) SelectedCards() []shared.Card {
	cards := make([]shared.Card, 0, len(g.selected))
	for _, c := range g.visible {
		if _, ok := g.selected[c.ID]; ok {
			cards = append(cards, c)
		}
	}
	if len(cards) != len(g.selected) {
		log.Panicf("Game %s: %d selected ids but only %d visible", g.ID, len(g.selected), len(cards))
	}
	return cards
}

// Visible returns a copy of the cards currently offered for selection.
func (g *Game) Visible() []shared.Card {
	out := make([]shared.Card, len(g.visible))
	copy(out, g.visible)
	return out
}

// DeckSize returns the number of undealt cards.
func (g *Game) DeckSize() int {
	return g.deck.Len()
}

// CanDeal reports whether DealMore would draw cards.
func (g *Game) CanDeal() bool {
	return g.deck.Len() >= shared.CardsPerSet
}

// Remaining returns the number of cards still in play, visible or undealt.
func (g *Game) Remaining() int {
	return len(g.visible) + g.deck.Len()
}

// Matches returns the match history, oldest first.
func (g *Game) Matches() []shared.Match {
	out := make([]shared.Match, len(g.matches))
	copy(out, g.matches)
	return out
}

// MatchCount returns the number of sets found so far.
func (g *Game) MatchCount() int {
	return len(g.matches)
}

// IsCompleteSelection reports whether a full set of cards is selected.
func (g *Game) IsCompleteSelection() bool {
	return len(g.selected) == shared.CardsPerSet
}

// Validity returns Unknown until a full set is selected, then whether it is a set.
func (g *Game) Validity() Validity {
	if !g.IsCompleteSelection() {
		return Unknown
	}
	if shared.IsValidSet(g.SelectedCards()) {
		return Valid
	}
	return Invalid
}

// Hint returns the ids of one set among the visible cards.
func (g *Game) Hint() ([shared.CardsPerSet]string, bool) {
	var ids [shared.CardsPerSet]string
	sets := shared.FindSets(g.visible)
	if len(sets) == 0 {
		return ids, false
	}
	for i, idx := range sets[0] {
		ids[i] = g.visible[idx].ID
	}
	return ids, true
}

// IsOver reports whether the deck is exhausted and no set is left to find.
func (g *Game) IsOver() bool {
	return g.deck.Len() == 0 && len(shared.FindSets(g.visible)) == 0
}
