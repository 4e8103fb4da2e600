package transform

import (
	"fmt"
	"math"
)

// NextPowerOfTwo returns the smallest power of two >= n.
// Returns 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// FFT performs an in-place forward radix-2 Cooley-Tukey FFT on buf.
// len(buf) must be a power of two.
func FFT(buf []complex128) error {
	if !IsPowerOfTwo(len(buf)) {
		return fmt.Errorf("fft: length %d is not a power of two", len(buf))
	}
	fft(buf, false)
	return nil
}

// IFFT performs an in-place inverse FFT on buf, scaling every output
// by 1/len(buf) so that IFFT(FFT(x)) == x up to floating-point error.
// len(buf) must be a power of two.
func IFFT(buf []complex128) error {
	if !IsPowerOfTwo(len(buf)) {
		return fmt.Errorf("ifft: length %d is not a power of two", len(buf))
	}
	fft(buf, true)
	scale := complex(1/float64(len(buf)), 0)
	for i := range buf {
		buf[i] *= scale
	}
	return nil
}

// fft runs bit-reversal permutation followed by log2(n) butterfly stages.
// The inverse transform conjugates the twiddle rotation; scaling is the
// caller's responsibility.
func fft(buf []complex128, inverse bool) {
	n := len(buf)
	if n <= 1 {
		return
	}

	// Bit-reversal permutation
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j ^= bit
			bit >>= 1
		}
		j ^= bit
		if i < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}

	// Butterfly stages
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		angleStep := sign * 2 * math.Pi / float64(size)
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				angle := angleStep * float64(k)
				w := complex(math.Cos(angle), math.Sin(angle))
				a := start + k
				b := a + half
				t := w * buf[b]
				buf[b] = buf[a] - t
				buf[a] += t
			}
		}
	}
}

// ForwardReal pads x with zeros to the next power of two, runs the forward
// FFT, and returns the spectrum. The input slice is not modified.
func ForwardReal(x []float64) ([]complex128, error) {
	padded := NextPowerOfTwo(len(x))
	buf := make([]complex128, padded)
	for i, v := range x {
		buf[i] = complex(v, 0)
	}
	if err := FFT(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
