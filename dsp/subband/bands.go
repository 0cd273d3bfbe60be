package subband

import "math/bits"

// Band is a contiguous range of a pyramid-layout coefficient buffer.
type Band struct {
	// Start and End delimit the band as buf[Start:End].
	Start, End int
	// Level is the decomposition depth: 1 for the finest detail band,
	// increasing towards the coarsest. The smooth band shares the level of
	// the coarsest detail band.
	Level int
	// Smooth marks the low-pass residue at the front of the buffer.
	Smooth bool
}

// Len returns the number of coefficients in b.
func (b Band) Len() int { return b.End - b.Start }

// Levels returns the number of decomposition levels the pyramid performs on
// a buffer of n samples.
func Levels(n int) int {
	if n < 4 {
		return 0
	}
	return bits.Len(uint(n)) - 2
}

// Bands returns the band layout of an n-sample pyramid, ordered from the
// smooth band through the detail bands from coarsest to finest.
func Bands(n int) ([]Band, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	levels := Levels(n)
	out := make([]Band, 0, levels+1)
	out = append(out, Band{Start: 0, End: 2, Level: levels, Smooth: true})
	for start, level := 2, levels; level >= 1; start, level = start*2, level-1 {
		out = append(out, Band{Start: start, End: start * 2, Level: level})
	}
	return out, nil
}
