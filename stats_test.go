package ovc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Zero(t, stats.TotalCompressions)
	assert.Zero(t, stats.OverallRatio)
	assert.Empty(t, stats.PerMethod)
	assert.True(t, stats.FirstEvent.IsZero())
}

func TestComputeStats_Fold(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Method: MethodDCT, OriginalBytes: 2048, CompressedBytes: 512, EnergyRetained: 0.96, Timestamp: t0},
		{Method: MethodDCT, OriginalBytes: 2048, CompressedBytes: 256, EnergyRetained: 0.94, Timestamp: t0.Add(time.Minute)},
		{Method: MethodFFT, OriginalBytes: 4096, CompressedBytes: 1024, EnergyRetained: 0.90, Timestamp: t0.Add(2 * time.Minute)},
	}

	stats := ComputeStats(events)
	assert.Equal(t, 3, stats.TotalCompressions)
	assert.Equal(t, int64(8192), stats.TotalOriginalBytes)
	assert.Equal(t, int64(1792), stats.TotalCompressedBytes)
	assert.InDelta(t, (0.96+0.94+0.90)/3, stats.AverageEnergyRetained, 1e-12)
	assert.InDelta(t, 8192.0/1792.0, stats.OverallRatio, 1e-12)
	assert.Equal(t, t0, stats.FirstEvent)
	assert.Equal(t, t0.Add(2*time.Minute), stats.LastEvent)

	require.Len(t, stats.PerMethod, 2)
	dctStats := stats.PerMethod[MethodDCT]
	assert.Equal(t, 2, dctStats.Count)
	assert.Equal(t, int64(4096), dctStats.OriginalBytes)
	assert.Equal(t, int64(768), dctStats.CompressedBytes)
	assert.InDelta(t, 0.95, dctStats.AverageEnergyRetained, 1e-12)

	fftStats := stats.PerMethod[MethodFFT]
	assert.Equal(t, 1, fftStats.Count)
	assert.InDelta(t, 0.90, fftStats.AverageEnergyRetained, 1e-12)
}

func TestComputeStats_OrderIndependent(t *testing.T) {
	t0 := time.Now()
	events := []Event{
		{Method: MethodDCT, OriginalBytes: 100, CompressedBytes: 10, EnergyRetained: 0.9, Timestamp: t0.Add(time.Hour)},
		{Method: MethodFFT, OriginalBytes: 200, CompressedBytes: 20, EnergyRetained: 0.8, Timestamp: t0},
	}
	reversed := []Event{events[1], events[0]}

	a := ComputeStats(events)
	b := ComputeStats(reversed)
	assert.Equal(t, a, b, "stats must be a pure fold, independent of event order")
	assert.Equal(t, t0, a.FirstEvent)
	assert.Equal(t, t0.Add(time.Hour), a.LastEvent)
}

func TestComputeStats_Replayable(t *testing.T) {
	// Folding the same events twice yields identical results: there is no
	// hidden running state.
	events := []Event{
		{Method: MethodDCT, OriginalBytes: 400, CompressedBytes: 40, EnergyRetained: 0.99, Timestamp: time.Now()},
	}
	assert.Equal(t, ComputeStats(events), ComputeStats(events))
}

func TestStats_String(t *testing.T) {
	stats := ComputeStats([]Event{
		{Method: MethodDCT, OriginalBytes: 1000, CompressedBytes: 100, EnergyRetained: 0.95, Timestamp: time.Now()},
	})
	s := stats.String()
	assert.Contains(t, s, "compressions=1")
	assert.Contains(t, s, "DCT")
}
