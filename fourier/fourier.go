package fourier

import (
	"errors"
	"fmt"
	"math/cmplx"
	"sort"

	"github.com/PMeeske/ouroboros-foundation-sub005/transform"
)

// Strategy selects which frequency bins a compressed vector retains.
type Strategy int32

const (
	// StrategyLowFrequency keeps the first targetDimension bins.
	StrategyLowFrequency Strategy = iota
	// StrategyHighestMagnitude keeps the targetDimension bins with the
	// largest spectral magnitude.
	StrategyHighestMagnitude
	// StrategyHighestVariance uses a shared index set learned from a
	// dataset sample (see LearnIndices). On a single vector without
	// learned indices it behaves like StrategyHighestMagnitude.
	StrategyHighestVariance
	// StrategyAdaptive accumulates bins by descending magnitude until
	// the retained energy reaches AdaptiveEnergyTarget or targetDimension
	// bins are used, whichever comes first.
	StrategyAdaptive
)

// AdaptiveEnergyTarget is the cumulative squared-magnitude fraction at
// which StrategyAdaptive stops adding bins. It is part of the numeric
// contract, not a tuning knob.
const AdaptiveEnergyTarget = 0.95

func (s Strategy) String() string {
	switch s {
	case StrategyLowFrequency:
		return "LowFrequency"
	case StrategyHighestMagnitude:
		return "HighestMagnitude"
	case StrategyHighestVariance:
		return "HighestVariance"
	case StrategyAdaptive:
		return "Adaptive"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(s))
	}
}

// ErrDimensionMismatch is returned when a compressed vector's components
// disagree with its index set or declared original length.
var ErrDimensionMismatch = errors.New("fourier: dimension mismatch")

// Compressed is an FFT-compressed vector: a subset of frequency bins of
// the zero-padded spectrum. Components holds (real, imag) pairs in the
// order of Indices; Indices is strictly ascending within the padded
// spectrum length.
type Compressed struct {
	Components     []float32
	Indices        []int32
	OriginalLength int
	Strategy       Strategy

	// EnergyRetained is the fraction of total squared spectral magnitude
	// the kept bins carry. Populated at compression time, not serialized:
	// a vector decoded from bytes reports 0.
	EnergyRetained float64
}

// Validate checks the structural invariants of c.
func (c *Compressed) Validate() error {
	if c.OriginalLength < 1 {
		return fmt.Errorf("%w: original length %d", ErrDimensionMismatch, c.OriginalLength)
	}
	if len(c.Components) != 2*len(c.Indices) {
		return fmt.Errorf("%w: %d components for %d indices", ErrDimensionMismatch, len(c.Components), len(c.Indices))
	}
	switch c.Strategy {
	case StrategyLowFrequency, StrategyHighestMagnitude, StrategyHighestVariance, StrategyAdaptive:
	default:
		return fmt.Errorf("%w: unknown strategy tag %d", ErrDimensionMismatch, int32(c.Strategy))
	}
	padded := int32(transform.NextPowerOfTwo(c.OriginalLength))
	for i, idx := range c.Indices {
		if idx < 0 || idx >= padded {
			return fmt.Errorf("%w: index %d out of range [0,%d)", ErrDimensionMismatch, idx, padded)
		}
		if i > 0 && idx <= c.Indices[i-1] {
			return fmt.Errorf("%w: indices not strictly ascending at %d", ErrDimensionMismatch, i)
		}
	}
	return nil
}

// SizeBytes returns the serialized payload size of c.
func (c *Compressed) SizeBytes() int {
	return payloadFixedLen + 4*len(c.Indices) + 4*len(c.Components)
}

// CompressionRatio returns originalBytes / compressedBytes. When every
// padded bin is kept (the no-op case for short vectors) the ratio falls
// below 1: each bin stores a complex pair, so the spectral form is
// larger than the real-valued input it preserves.
func (c *Compressed) CompressionRatio() float64 {
	return float64(4*c.OriginalLength) / float64(c.SizeBytes())
}

// Compress reduces vector to targetDimension frequency bins under the
// given strategy. If len(vector) <= targetDimension, every padded bin is
// kept and the compression is a no-op apart from the domain change.
func Compress(vector []float32, targetDimension int, strategy Strategy) (*Compressed, error) {
	n := len(vector)
	if n < 1 {
		return nil, fmt.Errorf("%w: empty vector", ErrDimensionMismatch)
	}
	if targetDimension < 1 {
		return nil, fmt.Errorf("fourier: target dimension must be >= 1, got %d", targetDimension)
	}

	spectrum, err := forwardSpectrum(vector)
	if err != nil {
		return nil, err
	}

	var indices []int32
	if n <= targetDimension {
		indices = make([]int32, len(spectrum))
		for i := range indices {
			indices[i] = int32(i)
		}
	} else {
		indices = selectIndices(spectrum, targetDimension, strategy)
	}

	return build(spectrum, indices, n, strategy), nil
}

// forwardSpectrum zero-pads vector to the next power of two and returns
// its forward FFT.
func forwardSpectrum(vector []float32) ([]complex128, error) {
	x := make([]float64, len(vector))
	for i, v := range vector {
		x[i] = float64(v)
	}
	return transform.ForwardReal(x)
}

// selectIndices picks the retained bins for a single vector.
func selectIndices(spectrum []complex128, target int, strategy Strategy) []int32 {
	if target > len(spectrum) {
		target = len(spectrum)
	}
	switch strategy {
	case StrategyLowFrequency:
		indices := make([]int32, target)
		for i := range indices {
			indices[i] = int32(i)
		}
		return indices
	case StrategyAdaptive:
		return selectAdaptive(spectrum, target)
	default:
		// HighestMagnitude; HighestVariance degrades to it without a
		// learned index set.
		return selectTopMagnitude(spectrum, target)
	}
}

func selectTopMagnitude(spectrum []complex128, target int) []int32 {
	order := magnitudeOrder(spectrum)
	indices := make([]int32, target)
	for i := 0; i < target; i++ {
		indices[i] = int32(order[i])
	}
	sortAscending(indices)
	return indices
}

func selectAdaptive(spectrum []complex128, target int) []int32 {
	order := magnitudeOrder(spectrum)
	var total float64
	for _, c := range spectrum {
		m := cmplx.Abs(c)
		total += m * m
	}

	var retained float64
	var indices []int32
	for _, k := range order {
		if len(indices) >= target {
			break
		}
		m := cmplx.Abs(spectrum[k])
		indices = append(indices, int32(k))
		retained += m * m
		if total > 0 && retained/total >= AdaptiveEnergyTarget {
			break
		}
	}
	sortAscending(indices)
	return indices
}

// magnitudeOrder returns bin positions sorted by descending magnitude.
// Ties break on the lower index to keep selection deterministic.
func magnitudeOrder(spectrum []complex128) []int {
	order := make([]int, len(spectrum))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return cmplx.Abs(spectrum[order[a]]) > cmplx.Abs(spectrum[order[b]])
	})
	return order
}

func sortAscending(indices []int32) {
	sort.Slice(indices, func(a, b int) bool { return indices[a] < indices[b] })
}

// build materializes a Compressed from the retained bins of spectrum.
func build(spectrum []complex128, indices []int32, originalLength int, strategy Strategy) *Compressed {
	var total float64
	for _, c := range spectrum {
		m := cmplx.Abs(c)
		total += m * m
	}

	components := make([]float32, 0, 2*len(indices))
	var retained float64
	for _, idx := range indices {
		c := spectrum[idx]
		components = append(components, float32(real(c)), float32(imag(c)))
		m := cmplx.Abs(c)
		retained += m * m
	}

	energy := 1.0
	if total > 1e-12 {
		energy = retained / total
	}
	return &Compressed{
		Components:     components,
		Indices:        indices,
		OriginalLength: originalLength,
		Strategy:       strategy,
		EnergyRetained: energy,
	}
}

// Decompress reconstructs an approximation of the original vector.
// Missing bins are zero-filled; each kept index idx is mirrored to
// paddedLength-idx as the complex conjugate so the inverse transform
// stays real-valued.
func (c *Compressed) Decompress() ([]float32, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	padded := transform.NextPowerOfTwo(c.OriginalLength)
	spectrum := make([]complex128, padded)
	kept := make(map[int32]struct{}, len(c.Indices))
	for _, idx := range c.Indices {
		kept[idx] = struct{}{}
	}
	for i, idx := range c.Indices {
		spectrum[idx] = complex(float64(c.Components[2*i]), float64(c.Components[2*i+1]))
	}
	for i, idx := range c.Indices {
		if idx == 0 {
			continue
		}
		mirror := int32(padded) - idx
		if mirror == idx {
			continue
		}
		if _, ok := kept[mirror]; ok {
			continue
		}
		spectrum[mirror] = cmplx.Conj(complex(float64(c.Components[2*i]), float64(c.Components[2*i+1])))
	}

	if err := transform.IFFT(spectrum); err != nil {
		return nil, err
	}
	out := make([]float32, c.OriginalLength)
	for i := range out {
		out[i] = float32(real(spectrum[i]))
	}
	return out, nil
}
