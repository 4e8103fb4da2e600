package ovc

import (
	"context"
	"fmt"
	"time"

	"github.com/PMeeske/ouroboros-foundation-sub005/dct"
	"github.com/PMeeske/ouroboros-foundation-sub005/distance"
	"github.com/PMeeske/ouroboros-foundation-sub005/fourier"
)

// Codec is the compression service: the single entry point for
// compressing, decompressing and comparing embedding vectors. It holds
// configuration only; every operation is a pure function of its inputs,
// so a Codec is safe for concurrent use.
type Codec struct {
	opts options
}

// New creates a Codec with the given options.
func New(optFns ...Option) *Codec {
	return &Codec{opts: applyOptions(optFns)}
}

// Compress compresses vector with the codec's default method and returns
// the framed envelope bytes plus the immutable event describing the
// operation.
func (c *Codec) Compress(vector []float32) ([]byte, Event, error) {
	return c.CompressMethod(vector, c.opts.defaultMethod)
}

// CompressMethod compresses vector with an explicit method.
// MethodAdaptive resolves to MethodFFT for strongly periodic vectors and
// MethodDCT (or MethodDCTQuantized, if quantization is enabled) otherwise.
func (c *Codec) CompressMethod(vector []float32, method Method) ([]byte, Event, error) {
	start := time.Now()
	data, event, err := c.compress(vector, method)
	c.opts.metrics.RecordCompress(event.Method, time.Since(start), err)
	c.opts.logger.LogCompress(context.Background(), event.Method, len(vector), event, err)
	return data, event, err
}

func (c *Codec) compress(vector []float32, method Method) ([]byte, Event, error) {
	if len(vector) == 0 {
		return nil, Event{}, ErrEmptyVector
	}
	resolved := c.resolveMethod(vector, method)

	var (
		payload []byte
		energy  float64
		err     error
	)
	switch resolved {
	case MethodFFT:
		var compressed *fourier.Compressed
		compressed, err = fourier.Compress(vector, c.opts.targetDimension, c.opts.strategy)
		if err == nil {
			energy = compressed.EnergyRetained
			payload, err = compressed.MarshalBinary()
		}
	case MethodDCT:
		var compressed *dct.Compressed
		compressed, err = dct.Compress(vector, c.opts.keepCoefficients, c.opts.energyThreshold)
		if err == nil {
			energy = compressed.EnergyRetained
			payload, err = compressed.MarshalBinary()
		}
	case MethodDCTQuantized:
		payload, energy, err = c.compressQuantized(vector)
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownMethod, resolved)
	}
	if err != nil {
		return nil, Event{Method: resolved}, err
	}

	data := wrapEnvelope(resolved, payload)
	event := Event{
		Method:          resolved,
		OriginalBytes:   4 * len(vector),
		CompressedBytes: len(data),
		EnergyRetained:  energy,
		Timestamp:       time.Now(),
	}
	return data, event, nil
}

// CompressQuantized compresses vector with DCT truncation followed by
// scalar quantization, regardless of the codec's default method. Bit
// depth comes from WithQuantizationBits (8 if unset).
func (c *Codec) CompressQuantized(vector []float32) ([]byte, Event, error) {
	return c.CompressMethod(vector, MethodDCTQuantized)
}

func (c *Codec) compressQuantized(vector []float32) ([]byte, float64, error) {
	compressed, err := dct.Compress(vector, c.opts.keepCoefficients, c.opts.energyThreshold)
	if err != nil {
		return nil, 0, err
	}
	bits := c.opts.quantizationBits
	if bits == 0 {
		bits = 8
	}
	quantized, err := dct.Quantize(compressed, bits)
	if err != nil {
		return nil, 0, err
	}
	payload, err := quantized.MarshalBinary()
	if err != nil {
		return nil, 0, err
	}
	return payload, compressed.EnergyRetained, nil
}

// Decompress reconstructs an approximation of the original vector from
// envelope bytes. The header is validated eagerly; the method tag routes
// to the matching payload decoder.
func (c *Codec) Decompress(data []byte) ([]float32, error) {
	start := time.Now()
	vector, method, err := decompress(data)
	c.opts.metrics.RecordDecompress(time.Since(start), err)
	c.opts.logger.LogDecompress(context.Background(), method, len(vector), err)
	return vector, err
}

func decompress(data []byte) ([]float32, Method, error) {
	method, payload, err := unwrapEnvelope(data)
	if err != nil {
		return nil, 0, err
	}

	switch method {
	case MethodFFT:
		var compressed fourier.Compressed
		if err := compressed.UnmarshalBinary(payload); err != nil {
			return nil, method, fmt.Errorf("decode FFT payload: %w", err)
		}
		vector, err := compressed.Decompress()
		return vector, method, err
	case MethodDCT:
		var compressed dct.Compressed
		if err := compressed.UnmarshalBinary(payload); err != nil {
			return nil, method, fmt.Errorf("decode DCT payload: %w", err)
		}
		vector, err := compressed.Decompress()
		return vector, method, err
	case MethodDCTQuantized:
		var quantized dct.Quantized
		if err := quantized.UnmarshalBinary(payload); err != nil {
			return nil, method, fmt.Errorf("decode quantized payload: %w", err)
		}
		compressed, err := quantized.Dequantize()
		if err != nil {
			return nil, method, err
		}
		vector, err := compressed.Decompress()
		return vector, method, err
	default:
		return nil, method, fmt.Errorf("%w: %v", ErrUnknownMethod, method)
	}
}

// CompressedSimilarity approximates the cosine similarity of two
// compressed vectors directly from their envelope bytes. Same-method
// operands use the compressed-domain computation; operands with
// different methods fall back to full decompression of both followed by
// an exact cosine, trading speed for correctness.
func (c *Codec) CompressedSimilarity(a, b []byte) (float64, error) {
	start := time.Now()
	sim, err := compressedSimilarity(a, b)
	c.opts.metrics.RecordSimilarity(time.Since(start), err)
	return sim, err
}

func compressedSimilarity(a, b []byte) (float64, error) {
	methodA, payloadA, err := unwrapEnvelope(a)
	if err != nil {
		return 0, fmt.Errorf("operand a: %w", err)
	}
	methodB, payloadB, err := unwrapEnvelope(b)
	if err != nil {
		return 0, fmt.Errorf("operand b: %w", err)
	}

	if methodA != methodB {
		return mixedMethodSimilarity(a, b)
	}

	switch methodA {
	case MethodFFT:
		var ca, cb fourier.Compressed
		if err := ca.UnmarshalBinary(payloadA); err != nil {
			return 0, fmt.Errorf("decode FFT payload: %w", err)
		}
		if err := cb.UnmarshalBinary(payloadB); err != nil {
			return 0, fmt.Errorf("decode FFT payload: %w", err)
		}
		return fourier.Similarity(&ca, &cb), nil
	case MethodDCT:
		var ca, cb dct.Compressed
		if err := ca.UnmarshalBinary(payloadA); err != nil {
			return 0, fmt.Errorf("decode DCT payload: %w", err)
		}
		if err := cb.UnmarshalBinary(payloadB); err != nil {
			return 0, fmt.Errorf("decode DCT payload: %w", err)
		}
		return dct.Similarity(&ca, &cb), nil
	case MethodDCTQuantized:
		var qa, qb dct.Quantized
		if err := qa.UnmarshalBinary(payloadA); err != nil {
			return 0, fmt.Errorf("decode quantized payload: %w", err)
		}
		if err := qb.UnmarshalBinary(payloadB); err != nil {
			return 0, fmt.Errorf("decode quantized payload: %w", err)
		}
		ca, err := qa.Dequantize()
		if err != nil {
			return 0, err
		}
		cb, err := qb.Dequantize()
		if err != nil {
			return 0, err
		}
		return dct.Similarity(ca, cb), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownMethod, methodA)
	}
}

// mixedMethodSimilarity handles operands compressed with different
// methods by reconstructing both and computing a plain cosine.
func mixedMethodSimilarity(a, b []byte) (float64, error) {
	va, _, err := decompress(a)
	if err != nil {
		return 0, fmt.Errorf("operand a: %w", err)
	}
	vb, _, err := decompress(b)
	if err != nil {
		return 0, fmt.Errorf("operand b: %w", err)
	}
	if len(va) != len(vb) {
		return 0, fmt.Errorf("operand dimensions differ: %d vs %d", len(va), len(vb))
	}
	return distance.Cosine(va, vb), nil
}
