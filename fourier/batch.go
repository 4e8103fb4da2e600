package fourier

import (
	"context"
	"fmt"
	"math/cmplx"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/PMeeske/ouroboros-foundation-sub005/transform"
)

// LearnIndices implements the first phase of HighestVariance compression:
// it computes the per-bin variance of spectral magnitude across a dataset
// sample and returns the targetDimension highest-variance bins, ascending.
//
// The returned set is shared by every vector compressed with
// CompressWithIndices, which keeps compressed representations of the
// whole batch directly comparable.
func LearnIndices(ctx context.Context, sample [][]float32, targetDimension int) ([]int32, error) {
	if len(sample) == 0 {
		return nil, fmt.Errorf("fourier: empty sample")
	}
	if targetDimension < 1 {
		return nil, fmt.Errorf("fourier: target dimension must be >= 1, got %d", targetDimension)
	}

	maxLen := 0
	for _, v := range sample {
		if len(v) == 0 {
			return nil, fmt.Errorf("%w: empty vector in sample", ErrDimensionMismatch)
		}
		if len(v) > maxLen {
			maxLen = len(v)
		}
	}
	padded := transform.NextPowerOfTwo(maxLen)

	// Per-vector magnitude spectra, computed in parallel. Each row is
	// written by exactly one goroutine.
	mags := make([][]float64, len(sample))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, v := range sample {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			buf := make([]complex128, padded)
			for j, f := range v {
				buf[j] = complex(float64(f), 0)
			}
			if err := transform.FFT(buf); err != nil {
				return err
			}
			row := make([]float64, padded)
			for k, c := range buf {
				row[k] = cmplx.Abs(c)
			}
			mags[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	variance := binVariance(mags, padded)
	if targetDimension > padded {
		targetDimension = padded
	}

	order := make([]int, padded)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return variance[order[a]] > variance[order[b]] })

	indices := make([]int32, targetDimension)
	for i := 0; i < targetDimension; i++ {
		indices[i] = int32(order[i])
	}
	sortAscending(indices)
	return indices, nil
}

func binVariance(mags [][]float64, padded int) []float64 {
	n := float64(len(mags))
	mean := make([]float64, padded)
	for _, row := range mags {
		for k, m := range row {
			mean[k] += m
		}
	}
	for k := range mean {
		mean[k] /= n
	}
	variance := make([]float64, padded)
	for _, row := range mags {
		for k, m := range row {
			d := m - mean[k]
			variance[k] += d * d
		}
	}
	for k := range variance {
		variance[k] /= n
	}
	return variance
}

// CompressWithIndices implements the second phase of HighestVariance
// compression: it keeps exactly the learned bins of vector's spectrum.
// Every index must lie within the vector's padded spectrum.
func CompressWithIndices(vector []float32, indices []int32) (*Compressed, error) {
	if len(vector) < 1 {
		return nil, fmt.Errorf("%w: empty vector", ErrDimensionMismatch)
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("fourier: empty index set")
	}

	spectrum, err := forwardSpectrum(vector)
	if err != nil {
		return nil, err
	}
	for i, idx := range indices {
		if idx < 0 || int(idx) >= len(spectrum) {
			return nil, fmt.Errorf("%w: learned index %d outside padded spectrum [0,%d)", ErrDimensionMismatch, idx, len(spectrum))
		}
		if i > 0 && idx <= indices[i-1] {
			return nil, fmt.Errorf("%w: learned indices not strictly ascending", ErrDimensionMismatch)
		}
	}

	return build(spectrum, indices, len(vector), StrategyHighestVariance), nil
}
