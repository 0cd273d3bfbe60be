package testutil

import (
	"math"
	"math/rand"
)

// Float is the sample type constraint shared by the helpers.
type Float interface {
	~float32 | ~float64
}

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine[F Float](freqHz, sampleRate, amplitude float64, length int) []F {
	out := make([]F, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = F(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise[F Float](seed int64, amplitude float64, length int) []F {
	out := make([]F, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = F((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse[F Float](length, pos int) []F {
	out := make([]F, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Clone returns a copy of x.
func Clone[F Float](x []F) []F {
	return append([]F(nil), x...)
}

// Energy returns the sum of squares of x accumulated in float64.
func Energy[F Float](x []F) float64 {
	sum := 0.0
	for _, v := range x {
		sum += float64(v) * float64(v)
	}
	return sum
}
