package problemgen

import "math/rand/v2"

// Rand is the random source used by question and choice generation.
// Abstracting it lets tests drive the generator with a seeded source.
type Rand interface {
	// IntN returns a uniform integer in [min, max] inclusive.
	IntN(min, max int) int

	// Bool returns true with probability 1/2.
	Bool() bool
}

type systemRand struct{}

// NewRand returns a Rand backed by the process-global random source.
func NewRand() Rand {
	return systemRand{}
}

func (systemRand) IntN(min, max int) int {
	return min + rand.IntN(max-min+1)
}

func (systemRand) Bool() bool {
	return rand.IntN(2) == 0
}

type seededRand struct {
	r *rand.Rand
}

// NewSeededRand returns a deterministic Rand for tests.
func NewSeededRand(seed uint64) Rand {
	return &seededRand{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *seededRand) IntN(min, max int) int {
	return min + s.r.IntN(max-min+1)
}

func (s *seededRand) Bool() bool {
	return s.r.IntN(2) == 0
}
