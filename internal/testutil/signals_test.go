package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine[float32](1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise[float32](42, 1.0, 64)
	b := DeterministicNoise[float32](42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoisePrecisionsAgree(t *testing.T) {
	a := DeterministicNoise[float64](7, 0.5, 32)
	b := DeterministicNoise[float32](7, 0.5, 32)
	for i := range a {
		if float32(a[i]) != b[i] {
			t.Fatalf("index %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise[float64](1, 1.0, 16)
	b := DeterministicNoise[float64](2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse[float32](8, 3)
	for i, v := range imp {
		want := float32(0)
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("imp[%d] = %v, want %v", i, v, want)
		}
	}
	if out := Impulse[float64](4, 10); Energy(out) != 0 {
		t.Fatalf("out-of-range impulse not silent: %v", out)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	src := []float32{1, 2, 3}
	c := Clone(src)
	c[0] = 9
	if src[0] != 1 {
		t.Fatal("Clone aliases its input")
	}
}

func TestEnergy(t *testing.T) {
	if got := Energy([]float32{3, 4}); math.Abs(got-25) > 1e-12 {
		t.Fatalf("Energy = %v, want 25", got)
	}
}
