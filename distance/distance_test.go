package distance

import (
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 2}, 0},
		{"scaled", []float32{1, 2, 3}, []float32{2, 4, 6}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cosine(tt.a, tt.b); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Cosine = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestNormalizeL2InPlace(t *testing.T) {
	v := []float32{3, 4}
	if !NormalizeL2InPlace(v) {
		t.Fatal("expected normalization to succeed")
	}
	if math.Abs(float64(v[0])-0.6) > 1e-6 || math.Abs(float64(v[1])-0.8) > 1e-6 {
		t.Errorf("normalized = %v, want [0.6 0.8]", v)
	}

	if NormalizeL2InPlace([]float32{0, 0}) {
		t.Error("expected false for zero vector")
	}
	if NormalizeL2InPlace(nil) {
		t.Error("expected false for empty vector")
	}
}

func TestNormalizeL2Copy(t *testing.T) {
	src := []float32{3, 4}
	dst, ok := NormalizeL2Copy(src)
	if !ok {
		t.Fatal("expected normalization to succeed")
	}
	if src[0] != 3 || src[1] != 4 {
		t.Error("source modified")
	}
	if math.Abs(float64(dst[0])-0.6) > 1e-6 {
		t.Errorf("copy not normalized: %v", dst)
	}
}
