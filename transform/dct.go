package transform

import "math"

// DCTII computes the forward orthonormal DCT-II of x:
//
//	X[k] = s(k) * sum_i x[i] * cos(pi * k * (2i+1) / (2n))
//
// with s(0) = sqrt(1/n) and s(k>0) = sqrt(2/n). The orthonormal scaling
// makes DCTIII the exact inverse and preserves squared-coefficient energy
// (Parseval), which the compressors rely on for energy accounting.
func DCTII(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	s0 := math.Sqrt(1 / float64(n))
	sk := math.Sqrt(2 / float64(n))
	factor := math.Pi / (2 * float64(n))
	for k := 0; k < n; k++ {
		var sum float64
		for i := 0; i < n; i++ {
			sum += x[i] * math.Cos(factor*float64(k)*float64(2*i+1))
		}
		if k == 0 {
			out[k] = s0 * sum
		} else {
			out[k] = sk * sum
		}
	}
	return out
}

// DCTIII computes the inverse of DCTII (the orthonormal DCT-III):
//
//	x[i] = sum_k s(k) * X[k] * cos(pi * k * (2i+1) / (2n))
//
// For the orthonormal form the inverse is the transpose of the forward
// matrix, so DCTIII(DCTII(x)) == x up to floating-point error.
func DCTIII(coeffs []float64) []float64 {
	n := len(coeffs)
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	s0 := math.Sqrt(1 / float64(n))
	sk := math.Sqrt(2 / float64(n))
	factor := math.Pi / (2 * float64(n))
	for i := 0; i < n; i++ {
		sum := s0 * coeffs[0]
		for k := 1; k < n; k++ {
			sum += sk * coeffs[k] * math.Cos(factor*float64(k)*float64(2*i+1))
		}
		out[i] = sum
	}
	return out
}
