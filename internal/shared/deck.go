package shared

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// DeckSize is the number of cards in a full deck, one per attribute combination.
const DeckSize = 81

// Deck holds the undealt cards. The top of the deck is the end of the slice.
type Deck struct {
	Cards []Card
}

// NewDeck creates the full, unshuffled 81-card deck. Every card gets a fresh ID.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, color := range Colors() {
		for _, rank := range Ranks() {
			for _, shape := range Shapes() {
				for _, shade := range Shades() {
					cards = append(cards, Card{
						ID:    uuid.NewString(),
						Color: color,
						Rank:  rank,
						Shape: shape,
						Shade: shade,
					})
				}
			}
		}
	}
	return &Deck{Cards: cards}
}

// Shuffle randomizes the order of cards in the deck using rng.
// A nil rng falls back to the global source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	swap := func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
	if rng == nil {
		rand.Shuffle(len(d.Cards), swap)
		return
	}
	rng.Shuffle(len(d.Cards), swap)
}

// Draw removes up to n cards from the top of the deck and returns them
// in the order they were drawn.
func (d *Deck) Draw(n int) []Card {
	if n > len(d.Cards) {
		n = len(d.Cards)
	}
	if n <= 0 {
		return nil
	}
	drawn := make([]Card, n)
	for i := range drawn {
		last := len(d.Cards) - 1
		drawn[i] = d.Cards[last]
		d.Cards = d.Cards[:last]
	}
	return drawn
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.Cards)
}
