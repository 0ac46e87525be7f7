package custody

import (
	"github.com/iov-one/keep"
	"github.com/iov-one/keep/amount"
	"github.com/iov-one/keep/errors"
)

var _ keep.Initializer = (*Initializer)(nil)

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

// FromGenesis will parse initial custody accounts from genesis and
// save them in the database.
func (*Initializer) FromGenesis(opts keep.Options, db keep.KVStore) error {
	var accounts []struct {
		Owner              keep.Address  `json:"owner"`
		RequiredSignatures uint32        `json:"required_signatures"`
		Insured            bool          `json:"insured"`
		Balance            amount.Amount `json:"balance"`
	}
	if err := opts.ReadOptions("custody", &accounts); err != nil {
		return err
	}

	bucket := NewAccountBucket()
	seq := bucket.Sequence("accounts")
	for i, a := range accounts {
		if a.Balance.IsNegative() {
			return errors.Wrapf(errors.ErrAmount, "account %d has a negative balance", i)
		}
		balance := a.Balance
		acct := &CustodyAccount{
			RequiredSignatures: a.RequiredSignatures,
			Insured:            a.Insured,
			Active:             true,
			Balance:            &balance,
		}
		if err := bucket.Save(db, a.Owner, acct); err != nil {
			return errors.Wrapf(err, "invalid account at position %d", i)
		}
		if _, err := seq.NextInt(db); err != nil {
			return errors.Wrap(err, "cannot update account counter")
		}
	}
	return nil
}
