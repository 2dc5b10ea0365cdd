package battleship

import "math/rand"

// Random is the source every sampling decision of the engine
// goes through. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
