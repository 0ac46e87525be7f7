package custody

import (
	"github.com/iov-one/keep"
	"github.com/iov-one/keep/amount"
	"github.com/iov-one/keep/errors"
	"github.com/iov-one/keep/orm"
)

// RetentionPolicy controls how the retention window of the custody
// keyspace is refreshed. When the window ends less than Threshold
// blocks in the future, a successful mutation raises it to the
// current height plus Extension.
type RetentionPolicy struct {
	Threshold int64
	Extension int64
}

// DefaultRetentionPolicy keeps actively used custody state alive for
// at least 5000 blocks past the last mutation.
var DefaultRetentionPolicy = RetentionPolicy{
	Threshold: 5000,
	Extension: 5000,
}

// Controller implements the custody account business logic on top of
// a bucket. Authorization of the owner is the callers concern, the
// controller only enforces account level rules.
//
// Operations report a business rejection as false with a nil error.
// State is guaranteed untouched in that case. A non-nil error means
// the transaction must be aborted and any writes rolled back.
type Controller struct {
	bucket AccountBucket
	seq    orm.Sequence
	life   orm.Lifespan
	policy RetentionPolicy
}

// NewController returns a controller with the default retention
// policy.
func NewController() Controller {
	return NewControllerWithPolicy(DefaultRetentionPolicy)
}

// NewControllerWithPolicy returns a controller with a custom
// retention policy.
func NewControllerWithPolicy(policy RetentionPolicy) Controller {
	bucket := NewAccountBucket()
	return Controller{
		bucket: bucket,
		seq:    bucket.Sequence("accounts"),
		life:   orm.NewLifespan(bucket.Name()),
		policy: policy,
	}
}

// CreateAccount opens a new custody account for the owner. It
// returns false when the owner already holds an account. A threshold
// below the multi-sig minimum aborts with ErrInvalidThreshold.
func (c Controller) CreateAccount(db keep.KVStore, height int64, owner keep.Address, requiredSigs uint32, insured bool) (bool, error) {
	existing, err := c.bucket.Get(db, owner)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	if requiredSigs < minSignatures {
		return false, errors.Wrapf(ErrInvalidThreshold, "have %d, minimum %d", requiredSigs, minSignatures)
	}

	if err := c.bucket.Bucket.Save(db, NewAccount(owner, requiredSigs, insured)); err != nil {
		return false, err
	}
	if _, err := c.seq.NextInt(db); err != nil {
		return false, errors.Wrap(err, "cannot update account counter")
	}
	return true, c.extend(db, height)
}

// Deposit adds the given amount to the owner custody account. A
// non-positive amount or an inactive account is rejected with false.
// A missing account aborts with ErrNotFound.
func (c Controller) Deposit(db keep.KVStore, height int64, owner keep.Address, amt amount.Amount) (bool, error) {
	if !amt.IsPositive() {
		return false, nil
	}

	acct, err := c.bucket.Get(db, owner)
	if err != nil {
		return false, err
	}
	if acct == nil {
		return false, errors.Wrapf(errors.ErrNotFound, "custody account %s", owner)
	}
	if !acct.Active {
		return false, nil
	}

	balance, err := acct.Balance.Add(amt)
	if err != nil {
		return false, err
	}
	acct.Balance = &balance

	if err := c.bucket.Save(db, owner, acct); err != nil {
		return false, err
	}
	return true, c.extend(db, height)
}

// Withdraw removes the given amount from the owner custody account.
// A non-positive amount, an inactive account or an insufficient
// balance is rejected with false. A missing account aborts with
// ErrNotFound. A signature count below the account threshold aborts
// with ErrInsufficientSignatures. The signature check runs before the
// balance check, so an under-signed withdrawal always aborts.
func (c Controller) Withdraw(db keep.KVStore, height int64, owner keep.Address, amt amount.Amount, signatures uint32) (bool, error) {
	if !amt.IsPositive() {
		return false, nil
	}

	acct, err := c.bucket.Get(db, owner)
	if err != nil {
		return false, err
	}
	if acct == nil {
		return false, errors.Wrapf(errors.ErrNotFound, "custody account %s", owner)
	}
	if !acct.Active {
		return false, nil
	}

	if signatures < acct.RequiredSignatures {
		return false, errors.Wrapf(ErrInsufficientSignatures, "required %d, provided %d", acct.RequiredSignatures, signatures)
	}

	if acct.Balance.Compare(amt) < 0 {
		return false, nil
	}

	balance, err := acct.Balance.Subtract(amt)
	if err != nil {
		return false, err
	}
	acct.Balance = &balance

	if err := c.bucket.Save(db, owner, acct); err != nil {
		return false, err
	}
	return true, c.extend(db, height)
}

// Account returns the custody account of the owner. When the owner
// never created one, an inactive zero value account is returned
// instead of an error, so a caller cannot distinguish a missing
// account from a deactivated one.
func (c Controller) Account(db keep.ReadOnlyKVStore, owner keep.Address) (*CustodyAccount, error) {
	acct, err := c.bucket.Get(db, owner)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		acct = &CustodyAccount{
			RequiredSignatures: 0,
			Insured:            false,
			Active:             false,
			Balance:            &amount.Amount{},
		}
	}
	return acct, nil
}

// TotalAccounts returns how many custody accounts were ever created.
func (c Controller) TotalAccounts(db keep.ReadOnlyKVStore) (int64, error) {
	total, _, err := c.seq.Latest(db)
	return total, err
}

func (c Controller) extend(db keep.KVStore, height int64) error {
	return c.life.Extend(db, height, c.policy.Threshold, c.policy.Extension)
}
