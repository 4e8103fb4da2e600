package dct

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Quantized is a DCT-compressed vector whose coefficients have been
// uniformly quantized to Bits levels. Bytes packs one byte per
// coefficient at 8 bits, two little-endian bytes at 16.
type Quantized struct {
	Bytes          []byte
	Min            float32
	Max            float32
	OriginalLength int
	Bits           int
}

// quantEpsilon is the min/max spread below which the coefficient set is
// treated as constant and quantized to all zeros.
const quantEpsilon = 1e-9

// Quantize maps each coefficient of c through the affine transform
// (v - min) / (max - min) scaled to [0, 2^bits-1], rounded and clamped.
// bits must be 8 or 16. A constant coefficient set (max == min within
// epsilon) produces an all-zero buffer; Dequantize restores the constant
// exactly.
func Quantize(c *Compressed, bits int) (*Quantized, error) {
	if bits != 8 && bits != 16 {
		return nil, fmt.Errorf("dct: unsupported bit depth %d (want 8 or 16)", bits)
	}
	if len(c.Coefficients) == 0 {
		return nil, fmt.Errorf("%w: no coefficients to quantize", ErrDegenerateInput)
	}

	minV, maxV := c.Coefficients[0], c.Coefficients[0]
	for _, v := range c.Coefficients[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	q := &Quantized{
		Min:            minV,
		Max:            maxV,
		OriginalLength: c.OriginalLength,
		Bits:           bits,
	}

	count := len(c.Coefficients)
	if bits == 8 {
		q.Bytes = make([]byte, count)
	} else {
		q.Bytes = make([]byte, 2*count)
	}

	spread := float64(maxV) - float64(minV)
	if spread < quantEpsilon {
		// Degenerate constant signal: all levels are 0 and Min carries
		// the constant.
		return q, nil
	}

	levels := float64(int(1)<<bits - 1)
	for i, v := range c.Coefficients {
		normalized := (float64(v) - float64(minV)) / spread
		level := math.Round(normalized * levels)
		if level < 0 {
			level = 0
		} else if level > levels {
			level = levels
		}
		if bits == 8 {
			q.Bytes[i] = byte(level)
		} else {
			binary.LittleEndian.PutUint16(q.Bytes[2*i:], uint16(level))
		}
	}
	return q, nil
}

// CoefficientCount returns the number of quantized coefficients.
func (q *Quantized) CoefficientCount() int {
	if q.Bits == 16 {
		return len(q.Bytes) / 2
	}
	return len(q.Bytes)
}

// MaxError returns the worst-case per-coefficient quantization error,
// (max-min) / (2 * (2^bits - 1)).
func (q *Quantized) MaxError() float64 {
	levels := float64(int(1)<<q.Bits - 1)
	return (float64(q.Max) - float64(q.Min)) / (2 * levels)
}

// Dequantize inverts the affine map exactly, returning a Compressed
// vector ready for the standard decompressor.
func (q *Quantized) Dequantize() (*Compressed, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	count := q.CoefficientCount()
	coeffs := make([]float32, count)
	if float64(q.Max)-float64(q.Min) < quantEpsilon {
		for i := range coeffs {
			coeffs[i] = q.Min
		}
	} else {
		levels := float64(int(1)<<q.Bits - 1)
		spread := float64(q.Max) - float64(q.Min)
		for i := range coeffs {
			var level float64
			if q.Bits == 8 {
				level = float64(q.Bytes[i])
			} else {
				level = float64(binary.LittleEndian.Uint16(q.Bytes[2*i:]))
			}
			coeffs[i] = float32(float64(q.Min) + level/levels*spread)
		}
	}

	return &Compressed{
		Coefficients:     coeffs,
		OriginalLength:   q.OriginalLength,
		CompressionRatio: float64(q.OriginalLength) / float64(count),
	}, nil
}

// Validate checks the structural invariants of q.
func (q *Quantized) Validate() error {
	if q.Bits != 8 && q.Bits != 16 {
		return fmt.Errorf("%w: bit depth %d", ErrDimensionMismatch, q.Bits)
	}
	if q.Bits == 16 && len(q.Bytes)%2 != 0 {
		return fmt.Errorf("%w: odd byte count %d for 16-bit quantization", ErrDimensionMismatch, len(q.Bytes))
	}
	count := q.CoefficientCount()
	if count == 0 {
		return fmt.Errorf("%w: empty quantized buffer", ErrDegenerateInput)
	}
	if q.OriginalLength < 1 || count > q.OriginalLength {
		return fmt.Errorf("%w: %d coefficients for length %d", ErrDimensionMismatch, count, q.OriginalLength)
	}
	if q.Min > q.Max {
		return fmt.Errorf("%w: min %f > max %f", ErrDimensionMismatch, q.Min, q.Max)
	}
	return nil
}

// SizeBytes returns the serialized payload size of q.
func (q *Quantized) SizeBytes() int {
	return quantizedFixedLen + len(q.Bytes)
}

// CompressionRatio returns originalBytes / compressedBytes.
func (q *Quantized) CompressionRatio() float64 {
	return float64(4*q.OriginalLength) / float64(q.SizeBytes())
}
