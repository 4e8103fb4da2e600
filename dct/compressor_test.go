package dct

import (
	"errors"
	"math"
	"testing"

	"github.com/PMeeske/ouroboros-foundation-sub005/distance"
	"github.com/PMeeske/ouroboros-foundation-sub005/testutil"
)

func TestCompress_Adaptive512(t *testing.T) {
	rng := testutil.NewRNG(51)
	v := rng.EmbeddingVector(512)

	c, err := Compress(v, 0, 0.95)
	if err != nil {
		t.Fatal(err)
	}
	if c.EnergyRetained < 0.95 {
		t.Errorf("energy retained = %f, want >= 0.95", c.EnergyRetained)
	}
	if len(c.Coefficients) >= 512 {
		t.Errorf("adaptive kept all %d coefficients", len(c.Coefficients))
	}

	back, err := c.Decompress()
	if err != nil {
		t.Fatal(err)
	}
	if sim := distance.Cosine(v, back); sim < 0.9 {
		t.Errorf("reconstruction cosine = %f, want > 0.9", sim)
	}
}

func TestCompress_FixedCount(t *testing.T) {
	rng := testutil.NewRNG(52)
	v := rng.EmbeddingVector(256)

	c, err := Compress(v, 32, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Coefficients) != 32 {
		t.Errorf("kept %d coefficients, want 32", len(c.Coefficients))
	}
	if got, want := c.CompressionRatio, 8.0; got != want {
		t.Errorf("ratio = %f, want %f", got, want)
	}

	// Requesting more coefficients than dimensions clamps to n.
	c, err = Compress(v, 1000, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Coefficients) != 256 {
		t.Errorf("kept %d coefficients, want 256", len(c.Coefficients))
	}
	if c.EnergyRetained != 1.0 {
		t.Errorf("full retention energy = %f, want 1.0", c.EnergyRetained)
	}
}

func TestCompress_EnergyMonotonicity(t *testing.T) {
	rng := testutil.NewRNG(53)
	v := rng.EmbeddingVector(128)

	prev := -1.0
	for _, keep := range []int{1, 4, 16, 64, 128} {
		c, err := Compress(v, keep, 0)
		if err != nil {
			t.Fatal(err)
		}
		if c.EnergyRetained < prev {
			t.Errorf("keep=%d: energy %f below previous %f", keep, c.EnergyRetained, prev)
		}
		prev = c.EnergyRetained
	}
}

func TestCompress_RoundTripBound(t *testing.T) {
	// cosine(v, decompress(compress(v))) >= energyRetained - epsilon
	rng := testutil.NewRNG(54)
	for _, dim := range []int{32, 100, 512} {
		v := rng.EmbeddingVector(dim)
		c, err := Compress(v, 0, 0.9)
		if err != nil {
			t.Fatal(err)
		}
		back, err := c.Decompress()
		if err != nil {
			t.Fatal(err)
		}
		sim := distance.Cosine(v, back)
		if sim < c.EnergyRetained-1e-3 {
			t.Errorf("dim=%d: cosine %f below energy retained %f", dim, sim, c.EnergyRetained)
		}
	}
}

func TestCompress_ZeroVector(t *testing.T) {
	c, err := Compress(make([]float32, 64), 0, 0.95)
	if err != nil {
		t.Fatal(err)
	}
	if c.EnergyRetained != 1.0 {
		t.Errorf("zero signal energy = %f, want 1.0", c.EnergyRetained)
	}
	if len(c.Coefficients) != 1 {
		t.Errorf("zero signal kept %d coefficients, want 1", len(c.Coefficients))
	}
}

func TestCompress_InvalidInput(t *testing.T) {
	if _, err := Compress(nil, 0, 0.95); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("empty vector: got %v", err)
	}
	if _, err := Compress([]float32{1}, -1, 0.95); err == nil {
		t.Error("expected error for negative keep count")
	}
}

func TestSimilarity(t *testing.T) {
	rng := testutil.NewRNG(55)
	v := rng.EmbeddingVector(256)

	c, err := Compress(v, 64, 0)
	if err != nil {
		t.Fatal(err)
	}
	if sim := Similarity(c, c); math.Abs(sim-1) > 1e-6 {
		t.Errorf("self-similarity = %f, want 1", sim)
	}

	// Different prefix lengths: the overlap drives the dot product, the
	// longer side's tail only its own norm.
	longer, err := Compress(v, 128, 0)
	if err != nil {
		t.Fatal(err)
	}
	if sim := Similarity(c, longer); sim < 0.9 {
		t.Errorf("similarity across prefix lengths = %f, want > 0.9", sim)
	}

	zero := &Compressed{Coefficients: []float32{0, 0}, OriginalLength: 4}
	if sim := Similarity(c, zero); sim != 0 {
		t.Errorf("zero-norm similarity = %f, want 0", sim)
	}
}

func TestSimilarity_TracksFullPrecision(t *testing.T) {
	rng := testutil.NewRNG(56)
	a := rng.EmbeddingVector(256)
	b := rng.EmbeddingVector(256)

	ca, err := Compress(a, 0, 0.99)
	if err != nil {
		t.Fatal(err)
	}
	cb, err := Compress(b, 0, 0.99)
	if err != nil {
		t.Fatal(err)
	}

	exact := distance.Cosine(a, b)
	approx := Similarity(ca, cb)
	if math.Abs(exact-approx) > 0.1 {
		t.Errorf("compressed similarity %f drifts from exact %f", approx, exact)
	}
}

func BenchmarkCompress512(b *testing.B) {
	rng := testutil.NewRNG(1)
	v := rng.EmbeddingVector(512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compress(v, 0, 0.95); err != nil {
			b.Fatal(err)
		}
	}
}
