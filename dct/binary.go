package dct

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	// compressedFixedLen is originalLength + coeffCount, each an int32.
	compressedFixedLen = 8
	// quantizedFixedLen is originalLength, bits, min, max and qLen,
	// each 4 bytes.
	quantizedFixedLen = 20
)

// MarshalBinary implements encoding.BinaryMarshaler.
// Format (little-endian): [originalLength:i32][coeffCount:i32][coeff:f32 x coeffCount]
func (c *Compressed) MarshalBinary() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, c.SizeBytes())
	binary.LittleEndian.PutUint32(buf[0:4], uint32(c.OriginalLength))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(c.Coefficients)))
	off := compressedFixedLen
	for _, f := range c.Coefficients {
		binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(f))
		off += 4
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *Compressed) UnmarshalBinary(data []byte) error {
	if len(data) < compressedFixedLen {
		return fmt.Errorf("%w: payload too short (%d bytes)", ErrDimensionMismatch, len(data))
	}
	originalLength := int(int32(binary.LittleEndian.Uint32(data[0:4])))
	coeffCount := int(int32(binary.LittleEndian.Uint32(data[4:8])))
	if coeffCount < 0 {
		return fmt.Errorf("%w: negative coefficient count", ErrDimensionMismatch)
	}
	if want := compressedFixedLen + 4*coeffCount; len(data) != want {
		return fmt.Errorf("%w: payload is %d bytes, want %d for %d coefficients", ErrDimensionMismatch, len(data), want, coeffCount)
	}

	coeffs := make([]float32, coeffCount)
	off := compressedFixedLen
	for i := range coeffs {
		coeffs[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[off : off+4]))
		off += 4
	}

	decoded := Compressed{
		Coefficients:   coeffs,
		OriginalLength: originalLength,
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	decoded.CompressionRatio = float64(originalLength) / float64(coeffCount)
	*c = decoded
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
// Format (little-endian):
//
//	[originalLength:i32][bits:i32][min:f32][max:f32][qLen:i32][quantizedBytes]
func (q *Quantized) MarshalBinary() ([]byte, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, q.SizeBytes())
	binary.LittleEndian.PutUint32(buf[0:4], uint32(q.OriginalLength))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(q.Bits))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(q.Min))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(q.Max))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(len(q.Bytes)))
	copy(buf[quantizedFixedLen:], q.Bytes)
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (q *Quantized) UnmarshalBinary(data []byte) error {
	if len(data) < quantizedFixedLen {
		return fmt.Errorf("%w: payload too short (%d bytes)", ErrDimensionMismatch, len(data))
	}
	decoded := Quantized{
		OriginalLength: int(int32(binary.LittleEndian.Uint32(data[0:4]))),
		Bits:           int(int32(binary.LittleEndian.Uint32(data[4:8]))),
		Min:            math.Float32frombits(binary.LittleEndian.Uint32(data[8:12])),
		Max:            math.Float32frombits(binary.LittleEndian.Uint32(data[12:16])),
	}
	qLen := int(int32(binary.LittleEndian.Uint32(data[16:20])))
	if qLen < 0 || len(data) != quantizedFixedLen+qLen {
		return fmt.Errorf("%w: payload is %d bytes, want %d for qLen %d", ErrDimensionMismatch, len(data), quantizedFixedLen+qLen, qLen)
	}
	decoded.Bytes = make([]byte, qLen)
	copy(decoded.Bytes, data[quantizedFixedLen:])

	if err := decoded.Validate(); err != nil {
		return err
	}
	*q = decoded
	return nil
}
