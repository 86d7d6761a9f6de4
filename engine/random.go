package engine

import "math/rand"

// RandomSource is the engine's sole source of randomness. It is threaded
// explicitly through InsertionContext rather than read from a package-level
// generator, so that two runs seeded alike reproduce identical solutions —
// including under RegretJobMapReducer's worker-pool fan-out in bestPerActor,
// where RandomSource.Intn picks k on the owning goroutine before any worker
// is dispatched, and workers themselves never touch RandomSource.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type defaultRandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns the engine's default RandomSource, seeded
// explicitly for reproducibility.
func NewRandomSource(seed int64) RandomSource {
	return &defaultRandomSource{rng: rand.New(rand.NewSource(seed))}
}

func (r *defaultRandomSource) Float64() float64 {
	return r.rng.Float64()
}

func (r *defaultRandomSource) Intn(n int) int {
	return r.rng.Intn(n)
}

func (r *defaultRandomSource) Shuffle(n int, swap func(i, j int)) {
	r.rng.Shuffle(n, swap)
}
