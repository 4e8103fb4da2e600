package ovc

// periodicityThreshold is the autocorrelation score above which a vector
// is treated as periodic and routed to the FFT compressor.
const periodicityThreshold = 0.7

// periodicityScore measures how periodic a vector is via a single-lag
// autocorrelation at lag n/4, normalized by variance. Strongly periodic
// signals score near 1; white-noise-like signals score near 0. The score
// is deterministic for identical input.
func periodicityScore(v []float32) float64 {
	n := len(v)
	lag := n / 4
	if lag < 1 {
		return 0
	}

	var mean float64
	for _, x := range v {
		mean += float64(x)
	}
	mean /= float64(n)

	var variance float64
	for _, x := range v {
		d := float64(x) - mean
		variance += d * d
	}
	variance /= float64(n)
	if variance == 0 {
		return 0
	}

	var autocorr float64
	for i := 0; i < n-lag; i++ {
		autocorr += (float64(v[i]) - mean) * (float64(v[i+lag]) - mean)
	}
	autocorr /= float64(n - lag)

	return autocorr / variance
}

// resolveMethod turns a selection directive into a concrete wire method.
func (c *Codec) resolveMethod(vector []float32, method Method) Method {
	if method.concrete() {
		return method
	}
	if periodicityScore(vector) > periodicityThreshold {
		return MethodFFT
	}
	if c.opts.quantizationBits > 0 {
		return MethodDCTQuantized
	}
	return MethodDCT
}
