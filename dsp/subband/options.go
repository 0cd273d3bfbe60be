package subband

import "github.com/cwbudde/algo-wavelet/dsp/wavelet"

// Option configures an Analyzer.
type Option func(*config)

type config struct {
	filter wavelet.Filter
}

func defaultConfig() config {
	return config{filter: wavelet.Daub4}
}

// WithFilter selects the wavelet filter. Invalid IDs are ignored.
func WithFilter(f wavelet.Filter) Option {
	return func(cfg *config) {
		if f.Valid() {
			cfg.filter = f
		}
	}
}

// WithFilterName selects the wavelet filter by display name. Unknown names
// select Daubechies 4, as [wavelet.FilterByName] does.
func WithFilterName(name string) Option {
	return func(cfg *config) {
		cfg.filter = wavelet.FilterByName(name)
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
