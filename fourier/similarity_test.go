package fourier

import (
	"math"
	"testing"

	"github.com/PMeeske/ouroboros-foundation-sub005/testutil"
)

func TestSimilarity_Self(t *testing.T) {
	rng := testutil.NewRNG(21)
	v := rng.EmbeddingVector(256)
	c, err := Compress(v, 32, StrategyHighestMagnitude)
	if err != nil {
		t.Fatal(err)
	}
	if sim := Similarity(c, c); math.Abs(sim-1) > 1e-6 {
		t.Errorf("self-similarity = %f, want 1", sim)
	}
}

func TestSimilarity_SimilarVectors(t *testing.T) {
	rng := testutil.NewRNG(22)
	a := rng.EmbeddingVector(256)
	b := make([]float32, len(a))
	copy(b, a)
	for i := range b {
		b[i] += float32(rng.NormFloat64() * 0.01)
	}

	ca, err := Compress(a, 32, StrategyHighestMagnitude)
	if err != nil {
		t.Fatal(err)
	}
	cb, err := Compress(b, 32, StrategyHighestMagnitude)
	if err != nil {
		t.Fatal(err)
	}
	if sim := Similarity(ca, cb); sim < 0.9 {
		t.Errorf("similarity of near-identical vectors = %f, want > 0.9", sim)
	}
}

func TestSimilarity_NoOverlap(t *testing.T) {
	// Disjoint index support contributes nothing: the result is exactly 0.
	a := &Compressed{
		Components:     []float32{1, 0, 2, 0},
		Indices:        []int32{1, 2},
		OriginalLength: 16,
		Strategy:       StrategyHighestMagnitude,
	}
	b := &Compressed{
		Components:     []float32{3, 0, 4, 0},
		Indices:        []int32{5, 6},
		OriginalLength: 16,
		Strategy:       StrategyHighestMagnitude,
	}
	if sim := Similarity(a, b); sim != 0 {
		t.Errorf("similarity = %f, want 0 for disjoint indices", sim)
	}
}

func TestSimilarity_ZeroNorm(t *testing.T) {
	a := &Compressed{
		Components:     []float32{0, 0},
		Indices:        []int32{1},
		OriginalLength: 16,
		Strategy:       StrategyHighestMagnitude,
	}
	b := &Compressed{
		Components:     []float32{3, 4},
		Indices:        []int32{1},
		OriginalLength: 16,
		Strategy:       StrategyHighestMagnitude,
	}
	if sim := Similarity(a, b); sim != 0 {
		t.Errorf("similarity = %f, want 0 for zero-norm operand", sim)
	}
}

func TestSimilarity_IgnoresNonSharedBins(t *testing.T) {
	// Adding a bin to one side must not change the result: non-overlapping
	// support is ignored entirely by contract.
	shared := &Compressed{
		Components:     []float32{1, 1, 2, -1},
		Indices:        []int32{2, 7},
		OriginalLength: 32,
		Strategy:       StrategyHighestMagnitude,
	}
	extended := &Compressed{
		Components:     []float32{1, 1, 2, -1, 9, 9},
		Indices:        []int32{2, 7, 11},
		OriginalLength: 32,
		Strategy:       StrategyHighestMagnitude,
	}
	base := Similarity(shared, shared)
	withExtra := Similarity(shared, extended)
	if math.Abs(base-withExtra) > 1e-12 {
		t.Errorf("non-shared bin changed similarity: %f vs %f", base, withExtra)
	}
}
