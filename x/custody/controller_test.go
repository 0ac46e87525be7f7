package custody

import (
	"testing"

	"github.com/iov-one/keep/amount"
	"github.com/iov-one/keep/errors"
	"github.com/iov-one/keep/keeptest"
	"github.com/iov-one/keep/orm"
	"github.com/iov-one/keep/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccount(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	owner := keeptest.NewCondition().Address()

	created, err := control.CreateAccount(db, 100, owner, 2, true)
	require.NoError(t, err)
	assert.True(t, created)

	acct, err := control.Account(db, owner)
	require.NoError(t, err)
	assert.True(t, acct.Active)
	assert.True(t, acct.Insured)
	assert.Equal(t, uint32(2), acct.RequiredSignatures)
	assert.True(t, acct.Balance.IsZero())

	total, err := control.TotalAccounts(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestCreateAccountDuplicate(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	owner := keeptest.NewCondition().Address()

	created, err := control.CreateAccount(db, 100, owner, 2, true)
	require.NoError(t, err)
	require.True(t, created)

	// second creation must be rejected without touching the account
	created, err = control.CreateAccount(db, 101, owner, 5, false)
	require.NoError(t, err)
	assert.False(t, created)

	acct, err := control.Account(db, owner)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), acct.RequiredSignatures)
	assert.True(t, acct.Insured)

	total, err := control.TotalAccounts(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestCreateAccountThresholdTooLow(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	owner := keeptest.NewCondition().Address()

	for _, sigs := range []uint32{0, 1} {
		_, err := control.CreateAccount(db, 100, owner, sigs, false)
		assert.True(t, ErrInvalidThreshold.Is(err), "threshold %d", sigs)
	}

	// nothing was written
	acct, err := control.Account(db, owner)
	require.NoError(t, err)
	assert.False(t, acct.Active)

	total, err := control.TotalAccounts(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestDeposit(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	owner := keeptest.NewCondition().Address()

	_, err := control.CreateAccount(db, 100, owner, 2, false)
	require.NoError(t, err)

	deposited, err := control.Deposit(db, 101, owner, amount.New(100))
	require.NoError(t, err)
	assert.True(t, deposited)

	acct, err := control.Account(db, owner)
	require.NoError(t, err)
	assert.True(t, amount.New(100).Equals(*acct.Balance))

	// deposits accumulate
	deposited, err = control.Deposit(db, 102, owner, amount.New(23))
	require.NoError(t, err)
	assert.True(t, deposited)

	acct, err = control.Account(db, owner)
	require.NoError(t, err)
	assert.True(t, amount.New(123).Equals(*acct.Balance))
}

func TestDepositNonPositiveAmount(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	owner := keeptest.NewCondition().Address()

	_, err := control.CreateAccount(db, 100, owner, 2, false)
	require.NoError(t, err)

	for _, amt := range []amount.Amount{amount.New(0), amount.New(-5)} {
		deposited, err := control.Deposit(db, 101, owner, amt)
		require.NoError(t, err)
		assert.False(t, deposited, "amount %s", amt)
	}

	acct, err := control.Account(db, owner)
	require.NoError(t, err)
	assert.True(t, acct.Balance.IsZero())
}

func TestDepositUnknownAccount(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	owner := keeptest.NewCondition().Address()

	_, err := control.Deposit(db, 100, owner, amount.New(100))
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestWithdraw(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	owner := keeptest.NewCondition().Address()

	_, err := control.CreateAccount(db, 100, owner, 2, true)
	require.NoError(t, err)
	_, err = control.Deposit(db, 101, owner, amount.New(100))
	require.NoError(t, err)

	// more than the balance is rejected, state untouched
	withdrawn, err := control.Withdraw(db, 102, owner, amount.New(150), 2)
	require.NoError(t, err)
	assert.False(t, withdrawn)

	acct, err := control.Account(db, owner)
	require.NoError(t, err)
	assert.True(t, amount.New(100).Equals(*acct.Balance))

	// too few signatures abort, even though the balance is sufficient
	_, err = control.Withdraw(db, 103, owner, amount.New(50), 1)
	assert.True(t, ErrInsufficientSignatures.Is(err))

	// enough signatures and balance
	withdrawn, err = control.Withdraw(db, 104, owner, amount.New(50), 2)
	require.NoError(t, err)
	assert.True(t, withdrawn)

	acct, err = control.Account(db, owner)
	require.NoError(t, err)
	assert.True(t, amount.New(50).Equals(*acct.Balance))

	// withdrawing the exact balance leaves zero
	withdrawn, err = control.Withdraw(db, 105, owner, amount.New(50), 3)
	require.NoError(t, err)
	assert.True(t, withdrawn)

	acct, err = control.Account(db, owner)
	require.NoError(t, err)
	assert.True(t, acct.Balance.IsZero())
}

func TestWithdrawSignaturesCheckedBeforeBalance(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	owner := keeptest.NewCondition().Address()

	_, err := control.CreateAccount(db, 100, owner, 3, false)
	require.NoError(t, err)

	// balance is zero, so this withdrawal would be rejected, but the
	// signature verification aborts first
	_, err = control.Withdraw(db, 101, owner, amount.New(10), 2)
	assert.True(t, ErrInsufficientSignatures.Is(err))
}

func TestWithdrawNonPositiveAmount(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	owner := keeptest.NewCondition().Address()

	_, err := control.CreateAccount(db, 100, owner, 2, false)
	require.NoError(t, err)

	for _, amt := range []amount.Amount{amount.New(0), amount.New(-5)} {
		withdrawn, err := control.Withdraw(db, 101, owner, amt, 2)
		require.NoError(t, err)
		assert.False(t, withdrawn, "amount %s", amt)
	}
}

func TestWithdrawUnknownAccount(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	owner := keeptest.NewCondition().Address()

	_, err := control.Withdraw(db, 100, owner, amount.New(10), 2)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestAccountUnknownOwner(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	owner := keeptest.NewCondition().Address()

	// viewing a never created account returns an inactive zero record
	acct, err := control.Account(db, owner)
	require.NoError(t, err)
	assert.False(t, acct.Active)
	assert.False(t, acct.Insured)
	assert.Equal(t, uint32(0), acct.RequiredSignatures)
	assert.True(t, acct.Balance.IsZero())
}

func TestTotalAccountsCountsOwners(t *testing.T) {
	db := store.MemStore()
	control := NewController()

	total, err := control.TotalAccounts(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	for i := 1; i <= 3; i++ {
		owner := keeptest.NewCondition().Address()
		created, err := control.CreateAccount(db, 100, owner, 2, false)
		require.NoError(t, err)
		require.True(t, created)

		total, err := control.TotalAccounts(db)
		require.NoError(t, err)
		assert.Equal(t, int64(i), total)
	}
}

func TestMutationsExtendRetention(t *testing.T) {
	db := store.MemStore()
	control := NewControllerWithPolicy(RetentionPolicy{Threshold: 1000, Extension: 5000})
	owner := keeptest.NewCondition().Address()

	life := orm.NewLifespan("custody")

	_, err := control.CreateAccount(db, 100, owner, 2, false)
	require.NoError(t, err)

	until, err := life.LiveUntil(db)
	require.NoError(t, err)
	assert.Equal(t, int64(5100), until)

	// a mutation well within the window does not extend
	_, err = control.Deposit(db, 200, owner, amount.New(10))
	require.NoError(t, err)

	until, err = life.LiveUntil(db)
	require.NoError(t, err)
	assert.Equal(t, int64(5100), until)

	// a mutation close to the window end extends it
	_, err = control.Withdraw(db, 4500, owner, amount.New(5), 2)
	require.NoError(t, err)

	until, err = life.LiveUntil(db)
	require.NoError(t, err)
	assert.Equal(t, int64(9500), until)
}

func TestRejectionsDoNotExtendRetention(t *testing.T) {
	db := store.MemStore()
	control := NewControllerWithPolicy(RetentionPolicy{Threshold: 1000, Extension: 5000})
	owner := keeptest.NewCondition().Address()

	_, err := control.CreateAccount(db, 100, owner, 2, false)
	require.NoError(t, err)

	life := orm.NewLifespan("custody")

	// a rejected deposit close to the window end must not extend it
	deposited, err := control.Deposit(db, 4500, owner, amount.New(-1))
	require.NoError(t, err)
	require.False(t, deposited)

	until, err := life.LiveUntil(db)
	require.NoError(t, err)
	assert.Equal(t, int64(5100), until)
}
