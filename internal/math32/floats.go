// Package math32 provides float32 vector kernels shared by the distance
// package. This is an internal package - external users should use the
// distance package.
package math32

// Dot calculates the dot product of two vectors.
func Dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}
	return ret
}

// SquaredL2 calculates the squared L2 distance.
func SquaredL2(a, b []float32) float32 {
	var distance float32
	for i := range a {
		distance += (a[i] - b[i]) * (a[i] - b[i])
	}
	return distance
}

// ScaleInPlace multiplies all elements of a by scalar.
func ScaleInPlace(a []float32, scalar float32) {
	for i := range a {
		a[i] *= scalar
	}
}
