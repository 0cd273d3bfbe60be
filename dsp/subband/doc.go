// Package subband splits signals into octave sub-bands with an orthogonal
// Daubechies wavelet transform and operates on the resulting bands.
//
// It is the validated front end to package wavelet: lengths are checked,
// float64 signals are converted to the engine's float32 buffers, and the
// pyramid layout is exposed as a list of [Band] ranges.
//
//	a := subband.New(subband.WithFilter(wavelet.Daub12))
//	d, err := a.Decompose(signal) // len(signal) a power of two >= 4
//	if err != nil {
//		return err
//	}
//	energies := d.Energies()
//	_ = d.Scale(len(d.Bands())-1, 0) // drop the finest detail band
//	out := d.Reconstruct()
//
// Because the transform is orthogonal, band energies sum to the signal
// energy and an unmodified decomposition reconstructs the input to within
// single-precision rounding.
package subband
