package ovc

import (
	"log/slog"
	"runtime"

	"github.com/PMeeske/ouroboros-foundation-sub005/fourier"
)

type options struct {
	defaultMethod    Method
	targetDimension  int
	strategy         fourier.Strategy
	keepCoefficients int
	energyThreshold  float64
	quantizationBits int
	batchWorkers     int
	logger           *Logger
	metrics          MetricsCollector
}

// Option configures Codec behavior at construction time.
type Option func(*options)

// WithDefaultMethod sets the method used by Compress when none is given
// explicitly. The default is MethodAdaptive.
func WithDefaultMethod(m Method) Option {
	return func(o *options) {
		o.defaultMethod = m
	}
}

// WithTargetDimension sets the number of frequency bins the FFT
// compressor retains. The default is 64.
func WithTargetDimension(d int) Option {
	return func(o *options) {
		if d > 0 {
			o.targetDimension = d
		}
	}
}

// WithStrategy sets the FFT bin-selection strategy.
// The default is fourier.StrategyHighestMagnitude.
func WithStrategy(s fourier.Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithKeepCoefficients sets a fixed DCT coefficient count.
// 0 (the default) selects energy-adaptive truncation.
func WithKeepCoefficients(k int) Option {
	return func(o *options) {
		if k >= 0 {
			o.keepCoefficients = k
		}
	}
}

// WithEnergyThreshold sets the cumulative energy fraction adaptive DCT
// truncation aims for. The default is 0.95.
func WithEnergyThreshold(t float64) Option {
	return func(o *options) {
		if t > 0 && t <= 1 {
			o.energyThreshold = t
		}
	}
}

// WithQuantizationBits enables scalar quantization of DCT coefficients
// at 8 or 16 bits. 0 (the default) disables quantization; MethodAdaptive
// then never selects MethodDCTQuantized. Enabling it changes adaptive
// selection too, not just CompressQuantized: non-periodic vectors
// resolve to MethodDCTQuantized instead of MethodDCT.
func WithQuantizationBits(bits int) Option {
	return func(o *options) {
		if bits == 0 || bits == 8 || bits == 16 {
			o.quantizationBits = bits
		}
	}
}

// WithBatchWorkers sets the worker count for BatchCompress.
// The default is runtime.GOMAXPROCS(0).
func WithBatchWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.batchWorkers = n
		}
	}
}

// WithLogger configures structured logging for codec operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		defaultMethod:    MethodAdaptive,
		targetDimension:  64,
		strategy:         fourier.StrategyHighestMagnitude,
		keepCoefficients: 0,
		energyThreshold:  0.95,
		quantizationBits: 0,
		batchWorkers:     runtime.GOMAXPROCS(0),
		logger:           NoopLogger(),
		metrics:          NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
