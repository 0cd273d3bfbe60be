package wavelet

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func TestForward4Golden(t *testing.T) {
	tests := []struct {
		in   []float32
		want []float32
	}{
		{
			in:   []float32{0, 0, 0, 0},
			want: []float32{0, 0, 0, 0},
		},
		{
			in:   []float32{1, 0, 0, 0},
			want: []float32{daub4C1, daub4C3, -daub4C2, -daub4C0},
		},
		{
			in:   []float32{0, 1, 0, 0},
			want: []float32{daub4C2, daub4C0, daub4C1, daub4C3},
		},
	}
	for _, tt := range tests {
		buf := testutil.Clone(tt.in)
		Forward4(buf, len(buf))
		testutil.RequireSliceNearlyEqual(t, buf, tt.want, 1e-7)

		Inverse4(buf, len(buf))
		testutil.RequireSliceNearlyEqual(t, buf, tt.in, 1e-6)
	}
}

func TestForward4MatchesGeneric(t *testing.T) {
	p := MustCoefficients(Daub4)
	for _, n := range append(testLengths, 128, 1024) {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			x := testutil.DeterministicNoise[float32](int64(n), 1, n)

			fast := testutil.Clone(x)
			Forward4(fast, n)
			generic := testutil.Clone(x)
			Forward(generic, n, p)
			testutil.RequireRelativeError(t, fast, generic, 1e-5)

			Inverse4(fast, n)
			Inverse(generic, n, p)
			testutil.RequireRelativeError(t, fast, generic, 1e-5)
		})
	}
}

func TestForward4RoundTrip(t *testing.T) {
	for _, n := range testLengths {
		x := testutil.DeterministicSine[float32](1, float64(n), 1, n)
		buf := testutil.Clone(x)

		Forward4(buf, n)
		Inverse4(buf, n)

		testutil.RequireRelativeError(t, buf, x, 1e-4)
	}
}

func TestForward4PreservesEnergy(t *testing.T) {
	for _, n := range testLengths {
		x := testutil.DeterministicNoise[float32](int64(3*n), 1, n)
		buf := testutil.Clone(x)
		Forward4(buf, n)

		want := testutil.Energy(x)
		got := testutil.Energy(buf)
		if d := got - want; d > 1e-4*want || d < -1e-4*want {
			t.Fatalf("n=%d: energy %v, want %v", n, got, want)
		}
	}
}
