package ovc

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational
// metrics. Implement this interface to integrate with monitoring systems
// like Prometheus. This is ambient observability; the canonical
// statistics API is the pure ComputeStats fold over Events.
type MetricsCollector interface {
	// RecordCompress is called after each compress operation.
	RecordCompress(method Method, duration time.Duration, err error)

	// RecordDecompress is called after each decompress operation.
	RecordDecompress(duration time.Duration, err error)

	// RecordSimilarity is called after each compressed-similarity
	// operation.
	RecordSimilarity(duration time.Duration, err error)

	// RecordBatchCompress is called after each batch compress operation.
	// count is the number of items attempted, failed the number that
	// failed.
	RecordBatchCompress(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCompress(Method, time.Duration, error) {}
func (NoopMetricsCollector) RecordDecompress(time.Duration, error)       {}
func (NoopMetricsCollector) RecordSimilarity(time.Duration, error)       {}
func (NoopMetricsCollector) RecordBatchCompress(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CompressCount       atomic.Int64
	CompressErrors      atomic.Int64
	CompressTotalNanos  atomic.Int64
	DecompressCount     atomic.Int64
	DecompressErrors    atomic.Int64
	SimilarityCount     atomic.Int64
	SimilarityErrors    atomic.Int64
	BatchCompressCount  atomic.Int64
	BatchCompressItems  atomic.Int64
	BatchCompressFailed atomic.Int64
}

// RecordCompress implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompress(method Method, duration time.Duration, err error) {
	b.CompressCount.Add(1)
	b.CompressTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CompressErrors.Add(1)
	}
}

// RecordDecompress implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecompress(duration time.Duration, err error) {
	b.DecompressCount.Add(1)
	if err != nil {
		b.DecompressErrors.Add(1)
	}
}

// RecordSimilarity implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSimilarity(duration time.Duration, err error) {
	b.SimilarityCount.Add(1)
	if err != nil {
		b.SimilarityErrors.Add(1)
	}
}

// RecordBatchCompress implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchCompress(count, failed int, duration time.Duration) {
	b.BatchCompressCount.Add(1)
	b.BatchCompressItems.Add(int64(count))
	b.BatchCompressFailed.Add(int64(failed))
}

// CompressAvgNanos returns the average compress latency in nanoseconds.
func (b *BasicMetricsCollector) CompressAvgNanos() int64 {
	count := b.CompressCount.Load()
	if count == 0 {
		return 0
	}
	return b.CompressTotalNanos.Load() / count
}
