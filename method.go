package ovc

import "fmt"

// Method identifies a compression method. The zero value MethodAdaptive
// is a selection directive resolved at compression time; envelopes on the
// wire always carry one of the concrete methods.
type Method uint8

const (
	// MethodAdaptive picks DCT or FFT per vector from a periodicity
	// heuristic (see periodicityScore). Never appears in an envelope.
	MethodAdaptive Method = iota
	// MethodDCT keeps a truncated DCT-II coefficient prefix.
	MethodDCT
	// MethodFFT keeps a strategy-selected subset of FFT bins.
	MethodFFT
	// MethodDCTQuantized is MethodDCT with coefficients additionally
	// quantized to 8 or 16 bits each.
	MethodDCTQuantized
)

func (m Method) String() string {
	switch m {
	case MethodAdaptive:
		return "Adaptive"
	case MethodDCT:
		return "DCT"
	case MethodFFT:
		return "FFT"
	case MethodDCTQuantized:
		return "DCTQuantized"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(m))
	}
}

// concrete reports whether m is a wire method (not a selection directive).
func (m Method) concrete() bool {
	switch m {
	case MethodDCT, MethodFFT, MethodDCTQuantized:
		return true
	default:
		return false
	}
}

// methodFromTag maps an envelope method tag to a Method. The switch is
// exhaustive over the wire contract: anything else is ErrUnknownMethod.
func methodFromTag(tag uint8) (Method, error) {
	switch Method(tag) {
	case MethodDCT:
		return MethodDCT, nil
	case MethodFFT:
		return MethodFFT, nil
	case MethodDCTQuantized:
		return MethodDCTQuantized, nil
	default:
		return 0, fmt.Errorf("%w: tag %d", ErrUnknownMethod, tag)
	}
}
