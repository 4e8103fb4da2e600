// Package transform provides the spectral transform kernels used by the
// compressors: an in-place iterative radix-2 FFT and a closed-form
// orthonormal DCT-II/DCT-III pair.
//
// The kernels operate on float64/complex128 buffers for numerical headroom;
// the compressor packages convert from/to float32 embeddings at their
// boundaries. All functions are pure and safe for concurrent use.
package transform
