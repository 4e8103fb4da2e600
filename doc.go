// Package ovc is a lossy spectral codec for high-dimensional embedding
// vectors. It shrinks an embedding's storage footprint via FFT or DCT
// coefficient truncation (optionally with scalar quantization), frames
// every compressed payload in a small self-describing binary envelope,
// and supports computing approximate cosine similarity directly on the
// compressed bytes without full reconstruction.
//
// The Codec is the single entry point:
//
//	codec := ovc.New()
//	data, event, err := codec.Compress(vector)
//	restored, err := codec.Decompress(data)
//	sim, err := codec.CompressedSimilarity(dataA, dataB)
//
// Compression is lossy with bounded, quantifiable information loss: each
// compression reports the fraction of spectral energy retained, and the
// aggregate statistics are a pure fold over the immutable events the
// Codec returns, so they can be replayed or audited at any time.
package ovc
