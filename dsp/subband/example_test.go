package subband_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/subband"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

func ExampleBands() {
	bands, _ := subband.Bands(16)
	for _, b := range bands {
		fmt.Println(b.Start, b.End, b.Level, b.Smooth)
	}
	// Output:
	// 0 2 3 true
	// 2 4 3 false
	// 4 8 2 false
	// 8 16 1 false
}

func ExampleDecomposition_Energies() {
	a := subband.New(subband.WithFilter(wavelet.Daub6))
	d, err := a.Decompose([]float64{1, 1, 1, 1, 1, 1, 1, 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range d.Energies() {
		fmt.Printf("%.3f\n", e)
	}
	// Output:
	// 8.000
	// 0.000
	// 0.000
}
