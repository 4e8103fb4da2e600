package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Float32 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// NormFloat64 returns a normally distributed pseudo-random number.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// RandomVector generates a single random vector with components in [-1, 1).
func (r *RNG) RandomVector(dimension int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := make([]float32, dimension)
	for i := range v {
		v[i] = r.rand.Float32()*2 - 1
	}
	return v
}

// RandomVectors generates num random vectors of the given dimension.
func (r *RNG) RandomVectors(num, dimension int) [][]float32 {
	vectors := make([][]float32, num)
	for i := range vectors {
		vectors[i] = r.RandomVector(dimension)
	}
	return vectors
}

// EmbeddingVector generates a smooth embedding-like vector: a handful of
// low-frequency cosine components plus small gaussian noise. Real text
// embeddings are far from white noise, and spectral compressors behave
// very differently on the two, so tests should prefer this generator.
func (r *RNG) EmbeddingVector(dimension int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := make([]float32, dimension)
	numComponents := 3 + r.rand.Intn(5)
	for c := 0; c < numComponents; c++ {
		freq := 1 + r.rand.Float64()*float64(dimension)/16
		amp := r.rand.NormFloat64()
		phase := r.rand.Float64() * 2 * math.Pi
		for i := range v {
			v[i] += float32(amp * math.Cos(2*math.Pi*freq*float64(i)/float64(dimension)+phase))
		}
	}
	for i := range v {
		v[i] += float32(r.rand.NormFloat64() * 0.01)
	}
	return v
}

// EmbeddingVectors generates num embedding-like vectors.
func (r *RNG) EmbeddingVectors(num, dimension int) [][]float32 {
	vectors := make([][]float32, num)
	for i := range vectors {
		vectors[i] = r.EmbeddingVector(dimension)
	}
	return vectors
}

// Sinusoid generates a pure sine wave with the given number of cycles
// over the vector length.
func Sinusoid(length int, cycles float64) []float32 {
	v := make([]float32, length)
	for i := range v {
		v[i] = float32(math.Sin(2 * math.Pi * cycles * float64(i) / float64(length)))
	}
	return v
}

// Constant generates a vector with every component equal to value.
func Constant(length int, value float32) []float32 {
	v := make([]float32, length)
	for i := range v {
		v[i] = value
	}
	return v
}
