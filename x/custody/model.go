package custody

import (
	"github.com/iov-one/keep"
	"github.com/iov-one/keep/amount"
	"github.com/iov-one/keep/errors"
	"github.com/iov-one/keep/orm"
)

// minSignatures is the lowest threshold an account can be
// created with. Anything below is not multi-sig.
const minSignatures uint32 = 2

var _ orm.CloneableData = (*CustodyAccount)(nil)

// Validate ensures the account is consistent before it is
// written to the database.
func (a *CustodyAccount) Validate() error {
	if a.Active && a.RequiredSignatures < minSignatures {
		return errors.Wrapf(ErrInvalidThreshold, "have %d, minimum %d", a.RequiredSignatures, minSignatures)
	}
	if a.Balance == nil {
		return errors.Wrap(errors.ErrEmpty, "balance")
	}
	if a.Balance.IsNegative() {
		return errors.Wrapf(errors.ErrAmount, "negative balance %s", a.Balance)
	}
	return nil
}

// Copy makes a new account with the same settings and balance.
func (a *CustodyAccount) Copy() orm.CloneableData {
	return &CustodyAccount{
		RequiredSignatures: a.RequiredSignatures,
		Insured:            a.Insured,
		Active:             a.Active,
		Balance:            a.Balance.Clone(),
	}
}

// AsAccount extracts a *CustodyAccount value or nil from the object.
// Must be called on a Bucket result that is a *CustodyAccount,
// will panic on bad type.
func AsAccount(obj orm.Object) *CustodyAccount {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*CustodyAccount)
}

// NewAccount creates a custody account orm.Object stored under
// the owner address.
func NewAccount(owner keep.Address, requiredSigs uint32, insured bool) orm.Object {
	acct := &CustodyAccount{
		RequiredSignatures: requiredSigs,
		Insured:            insured,
		Active:             true,
		Balance:            &amount.Amount{},
	}
	return orm.NewSimpleObj(owner, acct)
}

// AccountBucket is a type-safe wrapper around the custody keyspace.
type AccountBucket struct {
	orm.Bucket
}

// NewAccountBucket initializes an AccountBucket.
func NewAccountBucket() AccountBucket {
	return AccountBucket{
		Bucket: orm.NewBucket("custody", orm.NewSimpleObj(nil, &CustodyAccount{})),
	}
}

// Get returns the account of the given owner, or nil if none exists.
func (b AccountBucket) Get(db keep.ReadOnlyKVStore, owner keep.Address) (*CustodyAccount, error) {
	obj, err := b.Bucket.Get(db, owner)
	if err != nil {
		return nil, err
	}
	return AsAccount(obj), nil
}

// Save persists an account under the owner address.
func (b AccountBucket) Save(db keep.KVStore, owner keep.Address, acct *CustodyAccount) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(owner, acct))
}
