package fourier

import (
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// Similarity approximates the cosine similarity of the two original
// vectors directly from their compressed spectra.
//
// Only bins present in both index sets contribute: each shared bin is
// treated as a magnitude/phase pair, accumulating |A|*|B|*cos(phaseA-phaseB)
// into the dot product and |A|^2, |B|^2 into the norms. Bins kept by only
// one side contribute nothing at all; this deliberate approximation is
// part of the numeric contract. Returns 0 when no indices overlap or
// either restricted norm is zero.
func Similarity(a, b *Compressed) float64 {
	shared := intersect(a.Indices, b.Indices)
	if shared.IsEmpty() {
		return 0
	}

	var dot, normA, normB float64
	it := shared.Iterator()
	for it.HasNext() {
		idx := int32(it.Next())
		ra, ia := a.component(idx)
		rb, ib := b.component(idx)

		magA := math.Hypot(ra, ia)
		magB := math.Hypot(rb, ib)
		phaseA := math.Atan2(ia, ra)
		phaseB := math.Atan2(ib, rb)

		dot += magA * magB * math.Cos(phaseA-phaseB)
		normA += magA * magA
		normB += magB * magB
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// intersect returns the bitmap intersection of two ascending index sets.
func intersect(a, b []int32) *roaring.Bitmap {
	ba := roaring.New()
	for _, idx := range a {
		ba.Add(uint32(idx))
	}
	bb := roaring.New()
	for _, idx := range b {
		bb.Add(uint32(idx))
	}
	ba.And(bb)
	return ba
}

// component returns the (real, imag) pair stored for index idx.
// Indices are ascending, so position lookup is a binary search.
func (c *Compressed) component(idx int32) (float64, float64) {
	pos := sort.Search(len(c.Indices), func(i int) bool { return c.Indices[i] >= idx })
	if pos == len(c.Indices) || c.Indices[pos] != idx {
		return 0, 0
	}
	return float64(c.Components[2*pos]), float64(c.Components[2*pos+1])
}
