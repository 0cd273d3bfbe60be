package subband

import (
	"errors"
	"testing"
)

func TestLevels(t *testing.T) {
	tests := []struct{ n, want int }{{0, 0}, {2, 0}, {4, 1}, {8, 2}, {1024, 9}}
	for _, tt := range tests {
		if got := Levels(tt.n); got != tt.want {
			t.Errorf("Levels(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestBandsLayout(t *testing.T) {
	bands, err := Bands(16)
	if err != nil {
		t.Fatal(err)
	}
	want := []Band{
		{Start: 0, End: 2, Level: 3, Smooth: true},
		{Start: 2, End: 4, Level: 3},
		{Start: 4, End: 8, Level: 2},
		{Start: 8, End: 16, Level: 1},
	}
	if len(bands) != len(want) {
		t.Fatalf("len = %d, want %d", len(bands), len(want))
	}
	for i := range want {
		if bands[i] != want[i] {
			t.Errorf("band %d = %+v, want %+v", i, bands[i], want[i])
		}
	}
}

func TestBandsCoverBuffer(t *testing.T) {
	for n := 4; n <= 4096; n *= 2 {
		bands, err := Bands(n)
		if err != nil {
			t.Fatal(err)
		}
		next := 0
		for _, b := range bands {
			if b.Start != next || b.Len() <= 0 {
				t.Fatalf("n=%d: band %+v does not continue at %d", n, b, next)
			}
			next = b.End
		}
		if next != n {
			t.Fatalf("n=%d: bands end at %d", n, next)
		}
	}
}

func TestBandsInvalidLength(t *testing.T) {
	if _, err := Bands(0); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Bands(0) error = %v", err)
	}
	for _, n := range []int{1, 2, 3, 6, 12, 100} {
		if _, err := Bands(n); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("Bands(%d) error = %v", n, err)
		}
	}
}
