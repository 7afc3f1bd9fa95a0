// Package app assembles message handlers and decorators into one
// dispatcher that routes transactions by message path.
package app

import (
	"fmt"
	"regexp"

	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

// isPath is the RegExp to ensure the routes make sense
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]{4,32}$`).MatchString

// Router maps message paths to handlers.
type Router struct {
	routes map[string]msig.Handler
}

var _ msig.Registry = Router{}
var _ msig.Handler = Router{}

// NewRouter initializes a router with no routes
func NewRouter() Router {
	return Router{
		routes: make(map[string]msig.Handler),
	}
}

// Handle adds a route. Panics on invalid path or duplicate
// registration, so all registrations fail fast at startup.
func (r Router) Handle(path string, h msig.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("duplicate route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path. If no path is
// found, returns a noSuchPathHandler that errors on all calls.
func (r Router) Handler(path string) msig.Handler {
	h, ok := r.routes[path]
	if !ok {
		return noSuchPathHandler{path}
	}
	return h
}

// Check dispatches to the proper handler based on the message path.
func (r Router) Check(ctx msig.Context, store msig.KVStore, tx msig.Tx) (*msig.CheckResult, error) {
	return r.Handler(msig.GetPath(tx)).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on the message path.
func (r Router) Deliver(ctx msig.Context, store msig.KVStore, tx msig.Tx) (*msig.DeliverResult, error) {
	return r.Handler(msig.GetPath(tx)).Deliver(ctx, store, tx)
}

type noSuchPathHandler struct {
	path string
}

var _ msig.Handler = noSuchPathHandler{}

func (h noSuchPathHandler) Check(msig.Context, msig.KVStore, msig.Tx) (*msig.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for %q", h.path)
}

func (h noSuchPathHandler) Deliver(msig.Context, msig.KVStore, msig.Tx) (*msig.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for %q", h.path)
}
