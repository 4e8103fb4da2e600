package fourier

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/PMeeske/ouroboros-foundation-sub005/testutil"
)

func TestBinary_RoundTrip(t *testing.T) {
	rng := testutil.NewRNG(31)
	v := rng.EmbeddingVector(200)
	c, err := Compress(v, 24, StrategyAdaptive)
	if err != nil {
		t.Fatal(err)
	}

	data, err := c.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != c.SizeBytes() {
		t.Errorf("payload is %d bytes, SizeBytes says %d", len(data), c.SizeBytes())
	}

	var back Compressed
	if err := back.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if back.OriginalLength != c.OriginalLength || back.Strategy != c.Strategy {
		t.Errorf("header mismatch: %+v vs %+v", back, c)
	}
	if len(back.Indices) != len(c.Indices) {
		t.Fatalf("index count mismatch")
	}
	for i := range c.Indices {
		if back.Indices[i] != c.Indices[i] {
			t.Fatalf("index %d mismatch", i)
		}
	}
	for i := range c.Components {
		if back.Components[i] != c.Components[i] {
			t.Fatalf("component %d mismatch", i)
		}
	}
}

func TestBinary_Truncated(t *testing.T) {
	v := testutil.Sinusoid(64, 2)
	c, err := Compress(v, 8, StrategyHighestMagnitude)
	if err != nil {
		t.Fatal(err)
	}
	data, err := c.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var back Compressed
	if err := back.UnmarshalBinary(data[:len(data)-3]); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("truncated payload: got %v, want ErrDimensionMismatch", err)
	}
	if err := back.UnmarshalBinary(data[:4]); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("short payload: got %v, want ErrDimensionMismatch", err)
	}
	if err := back.UnmarshalBinary(nil); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("empty payload: got %v, want ErrDimensionMismatch", err)
	}
}

func TestBinary_UnknownStrategy(t *testing.T) {
	v := testutil.Sinusoid(64, 2)
	c, err := Compress(v, 8, StrategyHighestMagnitude)
	if err != nil {
		t.Fatal(err)
	}
	data, err := c.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	// Strategy is the second i32 of the payload.
	binary.LittleEndian.PutUint32(data[4:8], 99)

	var back Compressed
	if err := back.UnmarshalBinary(data); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("strategy tag 99: got %v, want ErrDimensionMismatch", err)
	}
}
