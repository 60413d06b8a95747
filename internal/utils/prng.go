// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps math/rand so a seeded run is reproducible end to end.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a generator with the given seed.
// A zero seed means "use the current time".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a number in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// WeightedEntry is one option for ChooseWeighted.
type WeightedEntry[T any] struct {
	Value  T
	Weight int
}

// ChooseWeighted sums the weights, rolls inside that range and returns the entry
// the roll lands on. ok is false for an empty table. Non-positive totals fall back
// to the first entry.
func ChooseWeighted[T any](s *PRNGService, entries []WeightedEntry[T]) (v T, ok bool) {
	if len(entries) == 0 {
		return v, false
	}

	total := 0
	for _, e := range entries {
		total += e.Weight
	}
	if total <= 0 {
		return entries[0].Value, true
	}

	r := s.Intn(total)
	upto := 0
	for _, e := range entries {
		if upto+e.Weight > r {
			return e.Value, true
		}
		upto += e.Weight
	}
	return entries[len(entries)-1].Value, true
}
