package subband

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

// Analyzer decomposes signals with a fixed wavelet filter. The coefficient
// pair is derived once, so an Analyzer is safe for concurrent use.
type Analyzer struct {
	filter wavelet.Filter
	pair   wavelet.Pair
}

// New returns an Analyzer configured by opts. The default filter is
// Daubechies 4.
func New(opts ...Option) *Analyzer {
	cfg := applyOptions(opts)
	return &Analyzer{
		filter: cfg.filter,
		pair:   wavelet.MustCoefficients(cfg.filter),
	}
}

// Filter returns the filter used by a.
func (a *Analyzer) Filter() wavelet.Filter { return a.filter }

// Pair returns a copy of the coefficient pair used by a.
func (a *Analyzer) Pair() wavelet.Pair {
	return wavelet.Pair{
		CC: append([]float32(nil), a.pair.CC...),
		CR: append([]float32(nil), a.pair.CR...),
	}
}

// Decompose computes the full wavelet pyramid of signal. len(signal) must
// be a power of two >= 4.
func (a *Analyzer) Decompose(signal []float64) (*Decomposition, error) {
	n := len(signal)
	if err := validateLength(n); err != nil {
		return nil, err
	}

	bands, err := Bands(n)
	if err != nil {
		return nil, err
	}

	coeffs := make([]float32, n)
	for i, v := range signal {
		coeffs[i] = float32(v)
	}
	a.forward(coeffs)

	return &Decomposition{analyzer: a, coeffs: coeffs, bands: bands}, nil
}

func (a *Analyzer) forward(buf []float32) {
	if a.filter == wavelet.Daub4 {
		wavelet.Forward4(buf, len(buf))
		return
	}
	wavelet.Forward(buf, len(buf), a.pair)
}

func (a *Analyzer) inverse(buf []float32) {
	if a.filter == wavelet.Daub4 {
		wavelet.Inverse4(buf, len(buf))
		return
	}
	wavelet.Inverse(buf, len(buf), a.pair)
}

// Decomposition holds the pyramid coefficients of one signal.
type Decomposition struct {
	analyzer *Analyzer
	coeffs   []float32
	bands    []Band
}

// Len returns the signal length.
func (d *Decomposition) Len() int { return len(d.coeffs) }

// Bands returns the band layout, smooth band first.
func (d *Decomposition) Bands() []Band {
	return append([]Band(nil), d.bands...)
}

// Coefficients returns a copy of the raw pyramid buffer.
func (d *Decomposition) Coefficients() []float32 {
	return append([]float32(nil), d.coeffs...)
}

// Band returns a copy of the coefficients of band i.
func (d *Decomposition) Band(i int) ([]float64, error) {
	b, err := d.band(i)
	if err != nil {
		return nil, err
	}
	return toFloat64(d.coeffs[b.Start:b.End]), nil
}

// Energies returns the sum of squared coefficients of every band. For an
// orthogonal filter they add up to the energy of the decomposed signal.
func (d *Decomposition) Energies() []float64 {
	out := make([]float64, len(d.bands))
	for i, b := range d.bands {
		x := toFloat64(d.coeffs[b.Start:b.End])
		out[i] = vecmath.DotProduct(x, x)
	}
	return out
}

// Scale multiplies the coefficients of band i by gain.
func (d *Decomposition) Scale(i int, gain float64) error {
	b, err := d.band(i)
	if err != nil {
		return err
	}
	x := toFloat64(d.coeffs[b.Start:b.End])
	vecmath.ScaleBlock(x, x, gain)
	fromFloat64(d.coeffs[b.Start:b.End], x)
	return nil
}

// Add accumulates the coefficients of other into d. Both decompositions
// must have the same length and filter; since the transform is linear the
// reconstruction of the sum is the sum of the signals.
func (d *Decomposition) Add(other *Decomposition) error {
	if other == nil {
		return fmt.Errorf("%w: nil decomposition", ErrLengthMismatch)
	}
	if other.Len() != d.Len() || other.analyzer.filter != d.analyzer.filter {
		return fmt.Errorf("%w: %d (%v) vs %d (%v)", ErrLengthMismatch,
			d.Len(), d.analyzer.filter, other.Len(), other.analyzer.filter)
	}
	dst := toFloat64(d.coeffs)
	vecmath.AddBlockInPlace(dst, toFloat64(other.coeffs))
	fromFloat64(d.coeffs, dst)
	return nil
}

// Reconstruct returns the signal synthesised from the current
// coefficients. d itself is left unchanged.
func (d *Decomposition) Reconstruct() []float64 {
	buf := d.Coefficients()
	d.analyzer.inverse(buf)
	return toFloat64(buf)
}

func (d *Decomposition) band(i int) (Band, error) {
	if i < 0 || i >= len(d.bands) {
		return Band{}, fmt.Errorf("%w: %d not in [0,%d)", ErrBandOutOfRange, i, len(d.bands))
	}
	return d.bands[i], nil
}

func toFloat64(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}

func fromFloat64(dst []float32, x []float64) {
	for i, v := range x {
		dst[i] = float32(v)
	}
}
