package game

import "math/rand/v2"

// DefaultStartingCards is the size of the visible window after a reset.
const DefaultStartingCards = 12

// Config holds configuration for creating a new game.
type Config struct {
	StartingCards int        // cards dealt face up on reset (default 12)
	Rand          *rand.Rand // shuffle source; nil uses the global source
}

func DefaultConfig() Config {
	return Config{
		StartingCards: DefaultStartingCards,
	}
}
