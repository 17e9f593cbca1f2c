package curp

import (
	"math/rand/v2"
	"sync"
)

// Rand is the source of the two trailing random characters.
type Rand interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type seededRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededRand returns a deterministic Rand for a given seed.
// It is safe for concurrent use.
func NewSeededRand(seed uint64) Rand {
	return &seededRand{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededRand) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}
