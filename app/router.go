package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/keep"
	"github.com/iov-one/keep/errors"
)

var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the registered handler.
type Router struct {
	routes map[string]keep.Handler
}

var _ keep.Registry = Router{}
var _ keep.Handler = Router{}

// NewRouter initializes a router with no routes
func NewRouter() Router {
	return Router{
		routes: make(map[string]keep.Handler),
	}
}

// Handle adds a new Handler for the given message type. Path of the message
// must be unique within the router. Handle panics on a duplicated or
// malformed path, as this is a setup time issue.
func (r Router) Handle(m keep.Msg, h keep.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %q", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this message path.
// If no path is found, returns a noSuchPathHandler.
func (r Router) handler(m keep.Msg) keep.Handler {
	path := m.Path()
	if h, ok := r.routes[path]; ok {
		return h
	}
	return noSuchPathHandler{path}
}

// Check dispatches to the proper handler based on the message path
func (r Router) Check(ctx keep.Context, store keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on the message path
func (r Router) Deliver(ctx keep.Context, store keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Deliver(ctx, store, tx)
}

// noSuchPathHandler always returns ErrNotFound carrying the path,
// for helpful debugging of misconfigured routers
type noSuchPathHandler struct {
	path string
}

var _ keep.Handler = noSuchPathHandler{}

// Check always returns a path not found error
func (h noSuchPathHandler) Check(ctx keep.Context, store keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}

// Deliver always returns a path not found error
func (h noSuchPathHandler) Deliver(ctx keep.Context, store keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}
