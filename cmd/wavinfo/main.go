// Command wavinfo prints numerical properties of the Daubechies wavelet
// filters in the wavelet catalogue.
//
// Usage:
//
//	wavinfo [flags] [filter-name ...]
//
// Without arguments it prints info for all filters. Filter names are the
// tap counts (4, 6, ... 20) or the display names.
//
// Examples:
//
//	wavinfo
//	wavinfo 4 12 20
//	wavinfo -size 4096 "Daubechies 16"
//	wavinfo -list
//	wavinfo -cpu
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-wavelet/dsp/subband"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

func main() {
	size := flag.Int("size", 1024, "signal and response length in samples (power of two)")
	list := flag.Bool("list", false, "list available filter names")
	showCPU := flag.Bool("cpu", false, "print the vector features used by the sub-band kernels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wavinfo [flags] [filter-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints numerical properties of Daubechies wavelet filters.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all filters.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wavinfo 4 12 20\n")
		fmt.Fprintf(os.Stderr, "  wavinfo -size 4096 \"Daubechies 16\"\n")
		fmt.Fprintf(os.Stderr, "  wavinfo -list\n")
	}
	flag.Parse()

	if err := validateSize(*size); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if *list {
		for _, n := range wavelet.Names() {
			fmt.Println(n)
		}
		return
	}

	if *showCPU {
		printCPU(cpu.DetectFeatures())
		return
	}

	filters := resolveFilters(flag.Args())
	if len(filters) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching filters\n")
		os.Exit(1)
	}

	if err := printAnalysis(os.Stdout, filters, *size); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// validateSize checks the -size flag. Sub-band decomposition needs a power
// of two of at least 4 samples.
func validateSize(size int) error {
	if size < 4 || size&(size-1) != 0 {
		return fmt.Errorf("-size must be a power of two >= 4, got %d", size)
	}
	return nil
}

// responseSize returns the FFT length used for the response columns: size,
// grown to the next power of two that holds all taps.
func responseSize(size, taps int) int {
	n := size
	for n < taps {
		n <<= 1
	}
	return n
}

func printCPU(f cpu.Features) {
	fmt.Printf("architecture: %s\n", f.Architecture)
	fmt.Printf("sse2: %t\n", f.HasSSE2)
	fmt.Printf("avx2: %t\n", f.HasAVX2)
	fmt.Printf("neon: %t\n", f.HasNEON)
}

// resolveFilters maps command-line names to filter IDs. Unlike
// wavelet.FilterByName it rejects unknown names instead of falling back.
func resolveFilters(names []string) []wavelet.Filter {
	if len(names) == 0 {
		out := make([]wavelet.Filter, 0, wavelet.MaxFilter+1)
		for f := wavelet.Daub4; f <= wavelet.MaxFilter; f++ {
			out = append(out, f)
		}
		return out
	}

	var out []wavelet.Filter
	for _, name := range names {
		f, ok := lookupFilter(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown filter %q (use -list to see available)\n", name)
			continue
		}
		out = append(out, f)
	}
	return out
}

func lookupFilter(name string) (wavelet.Filter, bool) {
	name = strings.TrimSpace(name)
	if taps, err := strconv.Atoi(name); err == nil {
		for f := wavelet.Daub4; f <= wavelet.MaxFilter; f++ {
			if f.Taps() == taps {
				return f, true
			}
		}
		return 0, false
	}
	for i, n := range wavelet.Names() {
		if strings.EqualFold(strings.Join(strings.Fields(n), " "), strings.Join(strings.Fields(name), " ")) {
			return wavelet.Filter(i), true
		}
	}
	return 0, false
}

// filterStats holds the numbers printed per filter.
type filterStats struct {
	dcGain      float64
	energy      float64
	orthoError  float64
	roundTrip   float64
	crossover   float64
	detailShare float64
}

func analyze(f wavelet.Filter, size int) (filterStats, error) {
	p, err := wavelet.Coefficients(f)
	if err != nil {
		return filterStats{}, err
	}

	var st filterStats
	for _, c := range p.CC {
		st.dcGain += float64(c)
		st.energy += float64(c) * float64(c)
	}
	n := p.Taps()
	for shift := 2; shift < n; shift += 2 {
		dot := 0.0
		for k := 0; k+shift < n; k++ {
			dot += float64(p.CC[k]) * float64(p.CC[k+shift])
		}
		st.orthoError = math.Max(st.orthoError, math.Abs(dot))
	}

	low, high, err := wavelet.Response(p, responseSize(size, n))
	if err != nil {
		return filterStats{}, err
	}
	st.crossover = wavelet.Crossover(low, high)

	signal := testSignal(size)
	d, err := subband.New(subband.WithFilter(f)).Decompose(signal)
	if err != nil {
		return filterStats{}, err
	}
	for i, v := range d.Reconstruct() {
		st.roundTrip = math.Max(st.roundTrip, math.Abs(v-signal[i]))
	}

	energies := d.Energies()
	total := 0.0
	for _, e := range energies {
		total += e
	}
	if total > 0 {
		st.detailShare = (total - energies[0]) / total
	}
	return st, nil
}

// testSignal returns a low tone plus a weaker tone at 0.3 of the sample
// rate, which lands in the finest detail band.
func testSignal(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(n)
		out[i] = math.Sin(2*math.Pi*3*t) + 0.25*math.Sin(2*math.Pi*0.3*float64(n)*t)
	}
	return out
}

// printAnalysis writes one row per filter. A filter that fails gets an
// error row; the remaining rows are still written and the row errors are
// returned after the table is flushed.
func printAnalysis(w io.Writer, filters []wavelet.Filter, size int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Filter\tTaps\tDC Gain\tEnergy\tOrtho Err\tCrossover\tRound Trip\tDetail Share\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t-------\t------\t---------\t---------\t----------\t------------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	var errs []error
	for _, f := range filters {
		st, err := analyze(f, size)
		if err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", f, err))
			if _, werr := fmt.Fprintf(tw, "%s\t%d\terror: %v\n", f, f.Taps(), err); werr != nil {
				return fmt.Errorf("failed to write output row: %w", werr)
			}
			continue
		}
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.9f\t%.9f\t%.2e\t%.4f\t%.2e\t%.4f\n",
			f,
			f.Taps(),
			st.dcGain,
			st.energy,
			st.orthoError,
			st.crossover,
			st.roundTrip,
			st.detailShare,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return errors.Join(errs...)
}
