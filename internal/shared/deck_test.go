package shared

import (
	"math/rand/v2"
	"testing"
)

func TestNewDeck(t *testing.T) {
	d := NewDeck()
	if d.Len() != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, d.Len())
	}

	combos := map[[4]string]bool{}
	ids := map[string]bool{}
	for _, c := range d.Cards {
		if combos[c.Attributes()] {
			t.Errorf("duplicate card %v", c.Attributes())
		}
		combos[c.Attributes()] = true
		if c.ID == "" || ids[c.ID] {
			t.Errorf("card %v has empty or duplicate id %q", c.Attributes(), c.ID)
		}
		ids[c.ID] = true
	}
	if len(combos) != DeckSize {
		t.Errorf("expected %d distinct combinations, got %d", DeckSize, len(combos))
	}
}

func TestNewDeckFreshIDs(t *testing.T) {
	a, b := NewDeck(), NewDeck()
	seen := map[string]bool{}
	for _, c := range a.Cards {
		seen[c.ID] = true
	}
	for _, c := range b.Cards {
		if seen[c.ID] {
			t.Fatalf("id %s reused across decks", c.ID)
		}
	}
}

func TestShuffleSeeded(t *testing.T) {
	a, b := NewDeck(), NewDeck()
	a.Shuffle(rand.New(rand.NewPCG(7, 11)))
	b.Shuffle(rand.New(rand.NewPCG(7, 11)))
	for i := range a.Cards {
		if a.Cards[i].Attributes() != b.Cards[i].Attributes() {
			t.Fatalf("same seed gave different order at %d", i)
		}
	}
	if a.Len() != DeckSize {
		t.Fatalf("shuffle changed deck size to %d", a.Len())
	}

	c := NewDeck()
	c.Shuffle(nil)
	if c.Len() != DeckSize {
		t.Fatalf("shuffle with nil source changed deck size to %d", c.Len())
	}
}

func TestDraw(t *testing.T) {
	d := NewDeck()
	top := d.Cards[len(d.Cards)-1]

	drawn := d.Draw(3)
	if len(drawn) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(drawn))
	}
	if drawn[0] != top {
		t.Errorf("first drawn card should be the top of the deck")
	}
	if d.Len() != DeckSize-3 {
		t.Errorf("expected %d cards left, got %d", DeckSize-3, d.Len())
	}

	rest := d.Draw(100)
	if len(rest) != DeckSize-3 {
		t.Errorf("expected short draw of %d, got %d", DeckSize-3, len(rest))
	}
	if d.Len() != 0 {
		t.Errorf("deck should be empty, has %d", d.Len())
	}
	if got := d.Draw(3); len(got) != 0 {
		t.Errorf("drawing from empty deck returned %d cards", len(got))
	}
}
