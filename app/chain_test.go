package app

import (
	"context"
	"testing"

	"github.com/iov-one/keep/errors"
	"github.com/iov-one/keep/keeptest"
	"github.com/iov-one/keep/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	c1 := &keeptest.Decorator{}
	c2 := &keeptest.Decorator{}
	c3 := &keeptest.Decorator{}
	h := &keeptest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		c2,
		c3,
	).WithHandler(h)

	bg := context.Background()

	_, err := stack.Check(bg, nil, &keeptest.Tx{})
	require.NoError(t, err)
	_, err = stack.Deliver(bg, nil, &keeptest.Tx{})
	require.NoError(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainFailingDecorator(t *testing.T) {
	boom := errors.Wrap(errors.ErrHuman, "boom")
	c1 := &keeptest.Decorator{}
	c2 := &keeptest.Decorator{CheckErr: boom, DeliverErr: boom}
	c3 := &keeptest.Decorator{}
	h := &keeptest.Handler{}

	stack := ChainDecorators(c1, c2, c3).WithHandler(h)

	bg := context.Background()
	_, err := stack.Check(bg, nil, &keeptest.Tx{})
	assert.True(t, errors.ErrHuman.Is(err))
	_, err = stack.Deliver(bg, nil, &keeptest.Tx{})
	assert.True(t, errors.ErrHuman.Is(err))

	// the failure cuts the chain before c3 and the handler
	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 0, c3.CallCount())
	assert.Equal(t, 0, h.CallCount())
}

func TestChainSkipsNilDecorators(t *testing.T) {
	c1 := &keeptest.Decorator{}
	h := &keeptest.Handler{}

	stack := ChainDecorators(nil, c1, (*keeptest.Decorator)(nil)).WithHandler(h)

	_, err := stack.Check(context.Background(), nil, &keeptest.Tx{})
	require.NoError(t, err)
	assert.Equal(t, 1, c1.CallCount())
	assert.Equal(t, 1, h.CallCount())
}
