package fourier

import (
	"encoding/binary"
	"fmt"
	"math"
)

// payloadFixedLen is the fixed prefix of the serialized payload:
// originalLength, strategy and indexCount, each an int32.
const payloadFixedLen = 12

// MarshalBinary implements encoding.BinaryMarshaler.
// Format (little-endian):
//
//	[originalLength:i32][strategy:i32][indexCount:i32]
//	[index:i32 x indexCount][(real,imag):f32 x indexCount*2]
func (c *Compressed) MarshalBinary() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, c.SizeBytes())
	binary.LittleEndian.PutUint32(buf[0:4], uint32(c.OriginalLength))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(c.Strategy))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(len(c.Indices)))

	off := payloadFixedLen
	for _, idx := range c.Indices {
		binary.LittleEndian.PutUint32(buf[off:off+4], uint32(idx))
		off += 4
	}
	for _, f := range c.Components {
		binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(f))
		off += 4
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The decoded
// vector is re-validated so malformed payloads are rejected before use.
func (c *Compressed) UnmarshalBinary(data []byte) error {
	if len(data) < payloadFixedLen {
		return fmt.Errorf("%w: payload too short (%d bytes)", ErrDimensionMismatch, len(data))
	}
	originalLength := int(int32(binary.LittleEndian.Uint32(data[0:4])))
	strategy := Strategy(int32(binary.LittleEndian.Uint32(data[4:8])))
	indexCount := int(int32(binary.LittleEndian.Uint32(data[8:12])))
	if indexCount < 0 {
		return fmt.Errorf("%w: negative index count", ErrDimensionMismatch)
	}
	want := payloadFixedLen + 4*indexCount + 8*indexCount
	if len(data) != want {
		return fmt.Errorf("%w: payload is %d bytes, want %d for %d indices", ErrDimensionMismatch, len(data), want, indexCount)
	}

	indices := make([]int32, indexCount)
	off := payloadFixedLen
	for i := range indices {
		indices[i] = int32(binary.LittleEndian.Uint32(data[off : off+4]))
		off += 4
	}
	components := make([]float32, 2*indexCount)
	for i := range components {
		components[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[off : off+4]))
		off += 4
	}

	decoded := Compressed{
		Components:     components,
		Indices:        indices,
		OriginalLength: originalLength,
		Strategy:       strategy,
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*c = decoded
	return nil
}
