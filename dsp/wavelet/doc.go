// Package wavelet implements one-dimensional orthogonal discrete wavelet
// transforms with compactly supported Daubechies filters.
//
// The package keeps a fixed catalogue of nine scaling filters (4 to 20
// taps). [Coefficients] derives the matching wavelet filter by the
// quadrature mirror relation and returns both as a [Pair].
//
// # Pyramid transforms
//
// [Forward] and [Inverse] run the full pyramid algorithm in place on a
// single float32 buffer with circular boundaries:
//
//	p, err := wavelet.Coefficients(wavelet.Daub8)
//	if err != nil {
//		return err
//	}
//	wavelet.Forward(buf, len(buf), p)
//	// buf[0:2] smooth, then detail bands from coarsest to finest
//	wavelet.Inverse(buf, len(buf), p)
//
// [Forward4] and [Inverse4] are unrolled equivalents for the 4-tap filter.
//
// # Windowed single-level transforms
//
// [ForwardLevel] and [InverseLevel] compute exactly one level between
// separate buffers and never wrap. The caller supplies [Guard] valid samples
// on each side of the window, typically via [Extend], which makes them
// suitable for block streaming.
//
// # Preconditions
//
// The transform kernels do not validate their arguments. Buffer lengths
// must be powers of two >= 4 for the pyramid functions and windows must
// carry enough guard samples; violating this gives wrong results or an
// index panic, not an error. Validated entry points live in package
// subband.
//
// All functions are safe for concurrent use on distinct buffers.
package wavelet
