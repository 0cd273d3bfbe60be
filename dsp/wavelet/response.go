package wavelet

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Response returns the magnitude responses of the scaling (low) and wavelet
// (high) filters of p over size/2+1 bins from DC to Nyquist. size must be a
// power of two and at least the tap count.
//
// For an orthonormal pair low[0] is sqrt(2), high[0] is 0 and
// low[k]^2 + high[k]^2 == 2 for every bin.
func Response(p Pair, size int) (low, high []float64, err error) {
	if p.Taps() == 0 || len(p.CR) != p.Taps() {
		return nil, nil, ErrEmptyFilter
	}
	if err := validateResponseSize(size, p.Taps()); err != nil {
		return nil, nil, err
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, nil, fmt.Errorf("wavelet: failed to create FFT plan: %w", err)
	}

	low, err = magnitudeResponse(plan, p.CC, size)
	if err != nil {
		return nil, nil, err
	}
	high, err = magnitudeResponse(plan, p.CR, size)
	if err != nil {
		return nil, nil, err
	}
	return low, high, nil
}

func magnitudeResponse(plan *algofft.Plan[complex128], taps []float32, size int) ([]float64, error) {
	in := make([]complex128, size)
	for i, c := range taps {
		in[i] = complex(float64(c), 0)
	}

	spec := make([]complex128, size)
	if err := plan.Forward(spec, in); err != nil {
		return nil, fmt.Errorf("wavelet: forward FFT failed: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(spec[k])
		im[k] = imag(spec[k])
	}

	out := make([]float64, bins)
	vecmath.Magnitude(out, re, im)
	return out, nil
}

// Crossover returns the normalised frequency (cycles per sample, 0..0.5)
// where the low-pass response falls to the high-pass response, linearly
// interpolated between bins. low and high must come from the same
// [Response] call.
func Crossover(low, high []float64) float64 {
	bins := len(low)
	if bins < 2 || len(high) != bins {
		return 0
	}
	nyquistBin := float64(bins - 1)
	for k := 1; k < bins; k++ {
		d0 := low[k-1] - high[k-1]
		d1 := low[k] - high[k]
		if d1 <= 0 {
			t := 0.0
			if d0 > 0 {
				t = d0 / (d0 - d1)
			}
			return 0.5 * (float64(k-1) + t) / nyquistBin
		}
	}
	return 0.5
}
