package custody

import (
	"github.com/iov-one/keep"
	"github.com/iov-one/keep/errors"
	"github.com/iov-one/keep/x"
)

const (
	createAccountCost int64 = 100
	depositCost       int64 = 50
	withdrawCost      int64 = 50
)

// Deliver results report the business outcome in the first data byte.
var (
	resultAccepted = []byte{1}
	resultRejected = []byte{0}
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r keep.Registry, auth x.Authenticator, control Controller) {
	r.Handle(&CreateAccountMsg{}, CreateAccountHandler{auth, control})
	r.Handle(&DepositMsg{}, DepositHandler{auth, control})
	r.Handle(&WithdrawMsg{}, WithdrawHandler{auth, control})
}

// CreateAccountHandler opens custody accounts.
type CreateAccountHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ keep.Handler = CreateAccountHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateAccountHandler) Check(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &keep.CheckResult{GasAllocated: createAccountCost}, nil
}

// Deliver creates the custody account if none exists for the owner.
func (h CreateAccountHandler) Deliver(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	height, err := blockHeight(ctx)
	if err != nil {
		return nil, err
	}

	created, err := h.control.CreateAccount(db, height, msg.Owner, msg.RequiredSignatures, msg.Insured)
	if err != nil {
		return nil, err
	}
	if !created {
		return &keep.DeliverResult{
			Data: resultRejected,
			Log:  "custody account already exists for this address",
		}, nil
	}
	return &keep.DeliverResult{
		Data: resultAccepted,
		Log:  "custody account created",
	}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateAccountHandler) validate(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*CreateAccountMsg, error) {
	var msg CreateAccountMsg
	if err := keep.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return &msg, nil
}

// DepositHandler adds assets to custody accounts.
type DepositHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ keep.Handler = DepositHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h DepositHandler) Check(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &keep.CheckResult{GasAllocated: depositCost}, nil
}

// Deliver adds the deposited amount to the account balance.
func (h DepositHandler) Deliver(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	height, err := blockHeight(ctx)
	if err != nil {
		return nil, err
	}

	deposited, err := h.control.Deposit(db, height, msg.Owner, *msg.Amount)
	if err != nil {
		return nil, err
	}
	if !deposited {
		return &keep.DeliverResult{
			Data: resultRejected,
			Log:  "deposit rejected",
		}, nil
	}
	return &keep.DeliverResult{
		Data: resultAccepted,
		Log:  "assets deposited",
	}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h DepositHandler) validate(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*DepositMsg, error) {
	var msg DepositMsg
	if err := keep.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return &msg, nil
}

// WithdrawHandler removes assets from custody accounts after
// multi-signature verification.
type WithdrawHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ keep.Handler = WithdrawHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h WithdrawHandler) Check(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &keep.CheckResult{GasAllocated: withdrawCost}, nil
}

// Deliver subtracts the withdrawn amount from the account balance.
func (h WithdrawHandler) Deliver(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	height, err := blockHeight(ctx)
	if err != nil {
		return nil, err
	}

	withdrawn, err := h.control.Withdraw(db, height, msg.Owner, *msg.Amount, msg.Signatures)
	if err != nil {
		return nil, err
	}
	if !withdrawn {
		return &keep.DeliverResult{
			Data: resultRejected,
			Log:  "withdrawal rejected",
		}, nil
	}
	return &keep.DeliverResult{
		Data: resultAccepted,
		Log:  "assets withdrawn",
	}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h WithdrawHandler) validate(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*WithdrawMsg, error) {
	var msg WithdrawMsg
	if err := keep.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return &msg, nil
}

func blockHeight(ctx keep.Context) (int64, error) {
	height, ok := keep.GetHeight(ctx)
	if !ok {
		return 0, errors.Wrap(errors.ErrState, "block height missing in context")
	}
	return height, nil
}
