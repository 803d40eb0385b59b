package game

import "golang.org/x/exp/rand"

// Entropy is every source of randomness the engine uses: board shuffles,
// dice, discards and theft.
type Entropy interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewEntropy returns a seeded source. Equal seeds replay equal games.
func NewEntropy(seed uint64) Entropy {
	return rand.New(rand.NewSource(seed))
}

func rollDie(e Entropy) int {
	return e.Intn(6) + 1
}
