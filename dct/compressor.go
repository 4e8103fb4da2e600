package dct

import (
	"errors"
	"fmt"
	"math"

	"github.com/PMeeske/ouroboros-foundation-sub005/transform"
)

var (
	// ErrDimensionMismatch is returned when a compressed vector's
	// coefficients disagree with its declared original length.
	ErrDimensionMismatch = errors.New("dct: dimension mismatch")

	// ErrDegenerateInput is returned when quantization is attempted on an
	// empty coefficient set.
	ErrDegenerateInput = errors.New("dct: degenerate input")
)

// DefaultEnergyThreshold is the adaptive-mode energy fraction used when
// the caller does not supply one.
const DefaultEnergyThreshold = 0.95

// Compressed is a DCT-compressed vector: the leading coefficients of the
// orthonormal DCT-II, low frequency first. Position 0 is the DC term.
//
// EnergyRetained and CompressionRatio are accounting fields populated at
// compression time; they are not part of the wire payload, so a vector
// decoded from bytes reports EnergyRetained 0.
type Compressed struct {
	Coefficients     []float32
	OriginalLength   int
	EnergyRetained   float64
	CompressionRatio float64
}

// Compress truncates vector's DCT spectrum to keepCoefficients entries.
// keepCoefficients 0 selects adaptive mode: the shortest prefix whose
// cumulative squared energy reaches energyThreshold of the total (at
// least one coefficient is always kept).
func Compress(vector []float32, keepCoefficients int, energyThreshold float64) (*Compressed, error) {
	n := len(vector)
	if n < 1 {
		return nil, fmt.Errorf("%w: empty vector", ErrDimensionMismatch)
	}
	if keepCoefficients < 0 {
		return nil, fmt.Errorf("dct: negative coefficient count %d", keepCoefficients)
	}
	if energyThreshold <= 0 || energyThreshold > 1 {
		energyThreshold = DefaultEnergyThreshold
	}

	x := make([]float64, n)
	for i, v := range vector {
		x[i] = float64(v)
	}
	coeffs := transform.DCTII(x)

	var total float64
	for _, c := range coeffs {
		total += c * c
	}

	keep := keepCoefficients
	if keep == 0 {
		keep = adaptiveCount(coeffs, total, energyThreshold)
	} else if keep > n {
		keep = n
	}

	var retained float64
	for _, c := range coeffs[:keep] {
		retained += c * c
	}
	energy := 1.0
	if total > 1e-12 {
		energy = retained / total
	}

	kept := make([]float32, keep)
	for i := 0; i < keep; i++ {
		kept[i] = float32(coeffs[i])
	}
	return &Compressed{
		Coefficients:     kept,
		OriginalLength:   n,
		EnergyRetained:   energy,
		CompressionRatio: float64(n) / float64(keep),
	}, nil
}

// adaptiveCount returns the smallest prefix length whose cumulative
// squared sum reaches threshold*total. A zero-energy signal keeps a
// single coefficient.
func adaptiveCount(coeffs []float64, total, threshold float64) int {
	if total <= 1e-12 {
		return 1
	}
	target := threshold * total
	var cum float64
	for i, c := range coeffs {
		cum += c * c
		if cum >= target {
			return i + 1
		}
	}
	return len(coeffs)
}

// Validate checks the structural invariants of c.
func (c *Compressed) Validate() error {
	if c.OriginalLength < 1 {
		return fmt.Errorf("%w: original length %d", ErrDimensionMismatch, c.OriginalLength)
	}
	if len(c.Coefficients) == 0 || len(c.Coefficients) > c.OriginalLength {
		return fmt.Errorf("%w: %d coefficients for length %d", ErrDimensionMismatch, len(c.Coefficients), c.OriginalLength)
	}
	return nil
}

// Decompress reconstructs an approximation of the original vector by
// zero-padding the kept coefficients back to the original length and
// running the inverse DCT-III.
func (c *Compressed) Decompress() ([]float32, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	padded := make([]float64, c.OriginalLength)
	for i, v := range c.Coefficients {
		padded[i] = float64(v)
	}
	x := transform.DCTIII(padded)
	out := make([]float32, c.OriginalLength)
	for i := range out {
		out[i] = float32(x[i])
	}
	return out, nil
}

// Similarity approximates the cosine similarity of the two original
// vectors from their coefficient prefixes (Parseval). The dot product
// runs over the overlapping prefix only; coefficients beyond the overlap
// contribute to their own side's norm but never to the dot product.
// Returns 0 if either norm is zero.
func Similarity(a, b *Compressed) float64 {
	overlap := len(a.Coefficients)
	if len(b.Coefficients) < overlap {
		overlap = len(b.Coefficients)
	}

	var dot, normA, normB float64
	for i := 0; i < overlap; i++ {
		dot += float64(a.Coefficients[i]) * float64(b.Coefficients[i])
	}
	for _, c := range a.Coefficients {
		normA += float64(c) * float64(c)
	}
	for _, c := range b.Coefficients {
		normB += float64(c) * float64(c)
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SizeBytes returns the serialized payload size of c.
func (c *Compressed) SizeBytes() int {
	return compressedFixedLen + 4*len(c.Coefficients)
}
