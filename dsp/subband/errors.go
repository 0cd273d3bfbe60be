package subband

import (
	"errors"
	"fmt"
)

// Errors returned by sub-band functions.
var (
	ErrEmptyInput     = errors.New("subband: empty input")
	ErrInvalidLength  = errors.New("subband: length must be a power of two >= 4")
	ErrBandOutOfRange = errors.New("subband: band index out of range")
	ErrLengthMismatch = errors.New("subband: decomposition length mismatch")
)

func validateLength(n int) error {
	if n == 0 {
		return ErrEmptyInput
	}
	if n < 4 || n&(n-1) != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	return nil
}
