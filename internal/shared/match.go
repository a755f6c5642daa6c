package shared

import (
	"errors"
	"fmt"
)

// CardsPerSet is the number of cards that make up a set.
const CardsPerSet = 3

// ErrInvalidMatchInput is returned when a Match is built from the wrong number
// of cards or from cards that do not form a set.
var ErrInvalidMatchInput = errors.New("invalid match input")

// Match is a confirmed set of three cards.
type Match struct {
	cards [CardsPerSet]Card
}

// NewMatch builds a Match. It is the only way to obtain one, so every Match
// holds a valid set.
func NewMatch(cards []Card) (Match, error) {
	if len(cards) != CardsPerSet {
		return Match{}, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidMatchInput, len(cards), CardsPerSet)
	}
	if !IsValidSet(cards) {
		return Match{}, fmt.Errorf("%w: cards %s, %s, %s do not form a set",
			ErrInvalidMatchInput, cards[0].ID, cards[1].ID, cards[2].ID)
	}
	var m Match
	copy(m.cards[:], cards)
	return m, nil
}

// Cards returns the three cards of the match.
func (m Match) Cards() []Card {
	out := make([]Card, CardsPerSet)
	copy(out, m.cards[:])
	return out
}

// IsValidSet reports whether cards form a set: for each attribute the three
// cards are either all the same or all different.
func IsValidSet(cards []Card) bool {
	if len(cards) != CardsPerSet {
		return false
	}
	for attr := 0; attr < len(cards[0].Attributes()); attr++ {
		distinct := map[string]struct{}{}
		for _, c := range cards {
			distinct[c.Attributes()[attr]] = struct{}{}
		}
		if n := len(distinct); n != 1 && n != CardsPerSet {
			return false
		}
	}
	return true
}

// FindSets returns the indices of every valid set among cards, in
// lexicographic order.
func FindSets(cards []Card) [][CardsPerSet]int {
	var sets [][CardsPerSet]int
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			for k := j + 1; k < len(cards); k++ {
				if IsValidSet([]Card{cards[i], cards[j], cards[k]}) {
					sets = append(sets, [CardsPerSet]int{i, j, k})
				}
			}
		}
	}
	return sets
}
