package wavelet

import (
	"errors"
	"fmt"
)

// Errors returned by wavelet functions.
var (
	ErrUnknownFilter = errors.New("wavelet: unknown filter")
	ErrEmptyFilter   = errors.New("wavelet: empty coefficient pair")
)

func validateResponseSize(size, taps int) error {
	if size < 2 || size&(size-1) != 0 {
		return fmt.Errorf("wavelet: response size must be a power of two >= 2: %d", size)
	}
	if size < taps {
		return fmt.Errorf("wavelet: response size %d shorter than filter (%d taps)", size, taps)
	}
	return nil
}
