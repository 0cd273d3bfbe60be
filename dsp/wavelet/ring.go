package wavelet

// ring maps unbounded indices onto a power-of-two sized region.
type ring struct {
	mask int
}

// newRing returns a ring over size samples. size must be a power of two.
func newRing(size int) ring {
	return ring{mask: size - 1}
}

// at wraps i into [0, size). Negative i wraps from the end.
func (r ring) at(i int) int {
	return i & r.mask
}

// centre returns the index of the first tap for a filter of n taps so that
// its support is centred on each output pair. The result is already
// wrapped, so it can be used as a non-negative running offset.
func (r ring) centre(n int) int {
	return r.at(-((n - 1) >> 1))
}
