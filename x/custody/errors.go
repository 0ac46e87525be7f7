package custody

import (
	"github.com/iov-one/keep/errors"
)

// Error codes
// x/custody reserves 1200 ~ 1209.

var (
	// ErrInvalidThreshold is returned when an account is created
	// with a signature threshold below the multi-sig minimum.
	ErrInvalidThreshold = errors.Register(1200, "signature threshold too low")

	// ErrInsufficientSignatures is returned when a withdrawal does
	// not present enough signatures to clear the account threshold.
	ErrInsufficientSignatures = errors.Register(1201, "insufficient signatures")
)
