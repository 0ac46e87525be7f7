package custody

import (
	"testing"

	"github.com/iov-one/keep/amount"
	"github.com/iov-one/keep/errors"
	"github.com/iov-one/keep/keeptest"
	"github.com/iov-one/keep/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustodyAccountValidate(t *testing.T) {
	cases := map[string]struct {
		acct    *CustodyAccount
		wantErr *errors.Error
	}{
		"valid active account": {
			acct: &CustodyAccount{RequiredSignatures: 2, Active: true, Balance: amount.Newp(10)},
		},
		"active account below threshold": {
			acct:    &CustodyAccount{RequiredSignatures: 1, Active: true, Balance: amount.Newp(0)},
			wantErr: ErrInvalidThreshold,
		},
		"missing balance": {
			acct:    &CustodyAccount{RequiredSignatures: 2, Active: true},
			wantErr: errors.ErrEmpty,
		},
		"negative balance": {
			acct:    &CustodyAccount{RequiredSignatures: 2, Active: true, Balance: amount.Newp(-1)},
			wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.acct.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err))
			}
		})
	}
}

func TestCustodyAccountCopy(t *testing.T) {
	acct := &CustodyAccount{
		RequiredSignatures: 2,
		Insured:            true,
		Active:             true,
		Balance:            amount.Newp(100),
	}
	cpy := acct.Copy().(*CustodyAccount)

	// mutating the copy must not leak into the original
	balance, err := cpy.Balance.Add(amount.New(1))
	require.NoError(t, err)
	cpy.Balance = &balance
	cpy.Insured = false

	assert.True(t, amount.New(100).Equals(*acct.Balance))
	assert.True(t, acct.Insured)
}

func TestAccountBucketRoundTrip(t *testing.T) {
	db := store.MemStore()
	bucket := NewAccountBucket()
	owner := keeptest.NewCondition().Address()

	acct := &CustodyAccount{
		RequiredSignatures: 3,
		Insured:            true,
		Active:             true,
		Balance:            amount.Newp(42),
	}
	require.NoError(t, bucket.Save(db, owner, acct))

	got, err := bucket.Get(db, owner)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint32(3), got.RequiredSignatures)
	assert.True(t, got.Insured)
	assert.True(t, got.Active)
	assert.True(t, amount.New(42).Equals(*got.Balance))

	missing, err := bucket.Get(db, keeptest.NewCondition().Address())
	require.NoError(t, err)
	assert.Nil(t, missing)
}
