package keeptest

import "github.com/iov-one/keep"

// Handler is a mock implementation of the keep.Handler interface.
//
// Each method call is counted and the configured result returned.
type Handler struct {
	checkCall   int
	CheckResult keep.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult keep.DeliverResult
	DeliverErr    error
}

var _ keep.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
