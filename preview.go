package ovc

import (
	"fmt"
	"strings"

	"github.com/PMeeske/ouroboros-foundation-sub005/dct"
	"github.com/PMeeske/ouroboros-foundation-sub005/fourier"
)

// Preview compares the codec's methods on a single vector without
// committing to any of them. It is a read-only projection: no state is
// mutated and no event is emitted.
type Preview struct {
	OriginalBytes     int
	DCTBytes          int
	FFTBytes          int
	QuantizedBytes    int
	DCTEnergyRetained float64
	FFTEnergyRetained float64
	PeriodicityScore  float64
	Recommended       Method
}

// Preview runs DCT, FFT and quantized-DCT compression on vector purely to
// report sizes, retained energy and a method recommendation.
func (c *Codec) Preview(vector []float32) (Preview, error) {
	if len(vector) == 0 {
		return Preview{}, ErrEmptyVector
	}

	p := Preview{
		OriginalBytes:    4 * len(vector),
		PeriodicityScore: periodicityScore(vector),
	}

	dctCompressed, err := dct.Compress(vector, c.opts.keepCoefficients, c.opts.energyThreshold)
	if err != nil {
		return Preview{}, fmt.Errorf("preview DCT: %w", err)
	}
	p.DCTBytes = envelopeHeaderLen + dctCompressed.SizeBytes()
	p.DCTEnergyRetained = dctCompressed.EnergyRetained

	bits := c.opts.quantizationBits
	if bits == 0 {
		bits = 8
	}
	quantized, err := dct.Quantize(dctCompressed, bits)
	if err != nil {
		return Preview{}, fmt.Errorf("preview quantization: %w", err)
	}
	p.QuantizedBytes = envelopeHeaderLen + quantized.SizeBytes()

	fftCompressed, err := fourier.Compress(vector, c.opts.targetDimension, c.opts.strategy)
	if err != nil {
		return Preview{}, fmt.Errorf("preview FFT: %w", err)
	}
	p.FFTBytes = envelopeHeaderLen + fftCompressed.SizeBytes()
	p.FFTEnergyRetained = fftCompressed.EnergyRetained

	p.Recommended = p.recommend(c.opts.quantizationBits > 0)
	return p, nil
}

// recommend follows the adaptive selection heuristic, then prefers the
// quantized encoding when it is both enabled and smaller.
func (p Preview) recommend(quantizationEnabled bool) Method {
	if p.PeriodicityScore > periodicityThreshold {
		return MethodFFT
	}
	if quantizationEnabled && p.QuantizedBytes < p.DCTBytes {
		return MethodDCTQuantized
	}
	return MethodDCT
}

// String returns a human-readable comparison report.
func (p Preview) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "original=%dB\n", p.OriginalBytes)
	fmt.Fprintf(&b, "dct=%dB (energy %.4f)\n", p.DCTBytes, p.DCTEnergyRetained)
	fmt.Fprintf(&b, "quantized_dct=%dB\n", p.QuantizedBytes)
	fmt.Fprintf(&b, "fft=%dB (energy %.4f)\n", p.FFTBytes, p.FFTEnergyRetained)
	fmt.Fprintf(&b, "periodicity=%.4f\n", p.PeriodicityScore)
	fmt.Fprintf(&b, "recommended=%s", p.Recommended)
	return b.String()
}
