package utils

import (
	"github.com/iov-one/keep"
	"github.com/iov-one/keep/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ keep.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx keep.Context, store keep.KVStore, tx keep.Tx, next keep.Checker) (_ *keep.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx keep.Context, store keep.KVStore, tx keep.Tx, next keep.Deliverer) (_ *keep.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
