package wavelet

import "testing"

func TestRingWrap(t *testing.T) {
	r := newRing(8)
	tests := []struct{ in, want int }{
		{0, 0}, {7, 7}, {8, 0}, {9, 1}, {-1, 7}, {-8, 0}, {-9, 7}, {8*20 - 3, 5},
	}
	for _, tt := range tests {
		if got := r.at(tt.in); got != tt.want {
			t.Errorf("at(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRingCentre(t *testing.T) {
	tests := []struct{ size, taps, want int }{
		{4, 4, 3},
		{8, 4, 7},
		{16, 6, 14},
		{4, 20, 3},
		{64, 20, 55},
	}
	for _, tt := range tests {
		if got := newRing(tt.size).centre(tt.taps); got != tt.want {
			t.Errorf("centre(size=%d, taps=%d) = %d, want %d", tt.size, tt.taps, got, tt.want)
		}
	}
}
