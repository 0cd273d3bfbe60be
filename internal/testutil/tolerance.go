package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[F Float](t *testing.T, got, want []F, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[F Float](t *testing.T, data []F) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[F Float](a, b []F) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// RequireRelativeError fails t if the maximum absolute difference between
// got and want exceeds rel times the peak magnitude of want (or rel itself
// when want is all zeros).
func RequireRelativeError[F Float](t *testing.T, got, want []F, rel float64) {
	t.Helper()
	diff, err := MaxAbsDiff(got, want)
	if err != nil {
		t.Fatal(err)
	}
	peak := 0.0
	for _, v := range want {
		peak = math.Max(peak, math.Abs(float64(v)))
	}
	if peak == 0 {
		peak = 1
	}
	if diff > rel*peak {
		t.Fatalf("max diff %v exceeds %v relative to peak %v", diff, rel, peak)
	}
}
