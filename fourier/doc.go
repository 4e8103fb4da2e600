// Package fourier implements FFT-based lossy compression of embedding
// vectors. A compressed vector keeps a strategy-selected subset of
// frequency bins; reconstruction restores real-signal conjugate symmetry
// before the inverse transform, and similarity can be computed directly
// on the retained bins without full reconstruction.
package fourier
