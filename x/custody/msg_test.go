package custody

import (
	"testing"

	"github.com/iov-one/keep/amount"
	"github.com/iov-one/keep/errors"
	"github.com/iov-one/keep/keeptest"
	"github.com/stretchr/testify/assert"
)

func TestMsgPaths(t *testing.T) {
	assert.Equal(t, "custody/create_account", CreateAccountMsg{}.Path())
	assert.Equal(t, "custody/deposit", DepositMsg{}.Path())
	assert.Equal(t, "custody/withdraw", WithdrawMsg{}.Path())
}

func TestCreateAccountMsgValidate(t *testing.T) {
	owner := keeptest.NewCondition().Address()

	msg := &CreateAccountMsg{Owner: owner, RequiredSignatures: 2}
	assert.NoError(t, msg.Validate())

	// the threshold is not a message level concern
	msg = &CreateAccountMsg{Owner: owner, RequiredSignatures: 0}
	assert.NoError(t, msg.Validate())

	msg = &CreateAccountMsg{Owner: []byte{1, 2, 3}, RequiredSignatures: 2}
	assert.Error(t, msg.Validate())
}

func TestDepositMsgValidate(t *testing.T) {
	owner := keeptest.NewCondition().Address()

	msg := &DepositMsg{Owner: owner, Amount: amount.Newp(10)}
	assert.NoError(t, msg.Validate())

	// a non-positive amount is handled by the controller, not here
	msg = &DepositMsg{Owner: owner, Amount: amount.Newp(-10)}
	assert.NoError(t, msg.Validate())

	msg = &DepositMsg{Owner: owner}
	assert.True(t, errors.ErrEmpty.Is(msg.Validate()))

	msg = &DepositMsg{Owner: []byte("too short"), Amount: amount.Newp(10)}
	assert.Error(t, msg.Validate())
}

func TestWithdrawMsgValidate(t *testing.T) {
	owner := keeptest.NewCondition().Address()

	msg := &WithdrawMsg{Owner: owner, Amount: amount.Newp(10), Signatures: 2}
	assert.NoError(t, msg.Validate())

	// the signature count is verified against the account state
	msg = &WithdrawMsg{Owner: owner, Amount: amount.Newp(10), Signatures: 0}
	assert.NoError(t, msg.Validate())

	msg = &WithdrawMsg{Owner: owner, Signatures: 2}
	assert.True(t, errors.ErrEmpty.Is(msg.Validate()))
}
