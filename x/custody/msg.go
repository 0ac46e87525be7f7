package custody

import (
	"github.com/iov-one/keep"
	"github.com/iov-one/keep/errors"
)

const (
	pathCreateAccountMsg = "custody/create_account"
	pathDepositMsg       = "custody/deposit"
	pathWithdrawMsg      = "custody/withdraw"
)

var _ keep.Msg = (*CreateAccountMsg)(nil)
var _ keep.Msg = (*DepositMsg)(nil)
var _ keep.Msg = (*WithdrawMsg)(nil)

// Path fulfills keep.Msg interface to allow routing
func (CreateAccountMsg) Path() string {
	return pathCreateAccountMsg
}

// Path fulfills keep.Msg interface to allow routing
func (DepositMsg) Path() string {
	return pathDepositMsg
}

// Path fulfills keep.Msg interface to allow routing
func (WithdrawMsg) Path() string {
	return pathWithdrawMsg
}

// Validate makes sure that this is sensible.
// The signature threshold is checked when the account is created so
// that a too low value aborts the transaction.
func (m *CreateAccountMsg) Validate() error {
	return keep.Address(m.Owner).Validate()
}

// Validate makes sure that this is sensible. A non-positive amount is
// not a validation error, it is a business level rejection.
func (m *DepositMsg) Validate() error {
	if m.Amount == nil {
		return errors.Wrap(errors.ErrEmpty, "amount")
	}
	return keep.Address(m.Owner).Validate()
}

// Validate makes sure that this is sensible. Signature count and
// amount bounds are verified against the account state.
func (m *WithdrawMsg) Validate() error {
	if m.Amount == nil {
		return errors.Wrap(errors.ErrEmpty, "amount")
	}
	return keep.Address(m.Owner).Validate()
}
