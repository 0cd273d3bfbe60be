package wavelet

// Extension selects how samples outside a window are synthesised.
type Extension int

const (
	// ExtendPeriodic repeats the window, matching the circular boundary of
	// Forward and Inverse.
	ExtendPeriodic Extension = iota
	// ExtendSymmetric mirrors the window about its edges, repeating the
	// edge sample (half-sample symmetry).
	ExtendSymmetric
	// ExtendZero pads with zeros.
	ExtendZero
)

// String returns the extension mode name.
func (e Extension) String() string {
	switch e {
	case ExtendPeriodic:
		return "periodic"
	case ExtendSymmetric:
		return "symmetric"
	case ExtendZero:
		return "zero"
	default:
		return "unknown"
	}
}

// Extend writes src into dst[guard:guard+len(src)] and fills guard samples
// on both sides according to mode. dst must hold len(src)+2*guard samples
// and src must not be empty. It returns dst.
func Extend(dst, src []float32, guard int, mode Extension) []float32 {
	n := len(src)
	dst = dst[:n+2*guard]
	copy(dst[guard:], src)

	for i := 0; i < guard; i++ {
		lo := -guard + i
		hi := n + i
		switch mode {
		case ExtendPeriodic:
			dst[i] = src[wrapIndex(lo, n)]
			dst[guard+n+i] = src[wrapIndex(hi, n)]
		case ExtendSymmetric:
			dst[i] = src[mirrorIndex(lo, n)]
			dst[guard+n+i] = src[mirrorIndex(hi, n)]
		default:
			dst[i] = 0
			dst[guard+n+i] = 0
		}
	}
	return dst
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func mirrorIndex(i, n int) int {
	i = wrapIndex(i, 2*n)
	if i >= n {
		i = 2*n - 1 - i
	}
	return i
}
