package ovc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PMeeske/ouroboros-foundation-sub005/testutil"
)

func TestPreview(t *testing.T) {
	codec := New()
	rng := testutil.NewRNG(201)
	vector := rng.EmbeddingVector(512)

	p, err := codec.Preview(vector)
	require.NoError(t, err)

	assert.Equal(t, 4*512, p.OriginalBytes)
	assert.Greater(t, p.DCTBytes, 0)
	assert.Greater(t, p.FFTBytes, 0)
	assert.Greater(t, p.QuantizedBytes, 0)
	assert.Less(t, p.DCTBytes, p.OriginalBytes)
	assert.Less(t, p.QuantizedBytes, p.DCTBytes, "8-bit coefficients must beat float32 coefficients")
	assert.GreaterOrEqual(t, p.DCTEnergyRetained, 0.95)
	assert.Greater(t, p.FFTEnergyRetained, 0.0)
}

func TestPreview_DoesNotMutate(t *testing.T) {
	codec := New()
	rng := testutil.NewRNG(202)
	vector := rng.EmbeddingVector(256)
	original := make([]float32, len(vector))
	copy(original, vector)

	_, err := codec.Preview(vector)
	require.NoError(t, err)
	assert.Equal(t, original, vector)
}

func TestPreview_RecommendsFFTForPeriodic(t *testing.T) {
	codec := New()
	p, err := codec.Preview(testutil.Sinusoid(256, 4))
	require.NoError(t, err)
	assert.Greater(t, p.PeriodicityScore, periodicityThreshold)
	assert.Equal(t, MethodFFT, p.Recommended)
}

func TestPreview_RecommendsDCTForNoise(t *testing.T) {
	codec := New()
	rng := testutil.NewRNG(203)
	p, err := codec.Preview(rng.RandomVector(256))
	require.NoError(t, err)
	assert.Equal(t, MethodDCT, p.Recommended)
}

func TestPreview_RecommendsQuantizedWhenEnabled(t *testing.T) {
	codec := New(WithQuantizationBits(8))
	rng := testutil.NewRNG(204)
	p, err := codec.Preview(rng.RandomVector(256))
	require.NoError(t, err)
	assert.Equal(t, MethodDCTQuantized, p.Recommended)
}

func TestPreview_EmptyVector(t *testing.T) {
	codec := New()
	_, err := codec.Preview(nil)
	assert.ErrorIs(t, err, ErrEmptyVector)
}

func TestPreview_String(t *testing.T) {
	codec := New()
	rng := testutil.NewRNG(205)
	p, err := codec.Preview(rng.EmbeddingVector(128))
	require.NoError(t, err)

	s := p.String()
	assert.Contains(t, s, "original=512B")
	assert.Contains(t, s, "recommended=")
}
