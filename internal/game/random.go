package game

import (
	"math/rand"
	"time"
)

// RandomSource supplies every random decision in a game: coin flips,
// dice, shuffles and random picks.
type RandomSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Shuffle permutes n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// NewRandomSource returns a math/rand backed source. A zero seed picks one
// from the clock.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// rollDie returns a value in [1, sides].
func rollDie(r RandomSource, sides int) int {
	return r.Intn(sides) + 1
}
