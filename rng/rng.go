// Package rng abstracts the random source used for word and hint
// selection, so tests can substitute a deterministic sequence.
package rng

import (
	"math/rand"

	"lukechampine.com/frand"
)

// Source yields uniform random draws.
type Source interface {
	// Intn returns a random int in [0, n). It panics if n <= 0.
	Intn(n int) int
}

type frandSource struct{}

func (frandSource) Intn(n int) int {
	return frand.Intn(n)
}

// New returns the default source, backed by frand.
func New() Source {
	return frandSource{}
}

type seededSource struct {
	r *rand.Rand
}

func (s seededSource) Intn(n int) int {
	return s.r.Intn(n)
}

// NewSeeded returns a deterministic source for the given seed, for
// tests and reproducible sessions.
func NewSeeded(seed int64) Source {
	return seededSource{r: rand.New(rand.NewSource(seed))}
}
