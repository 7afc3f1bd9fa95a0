package msigtest

import (
	"sync"

	msig "github.com/vortex-hue/multisig-dao-wallet"
)

// Handler is a mock handler that returns canned results and counts
// its calls. Safe for concurrent use.
type Handler struct {
	mu sync.Mutex

	checkCall   int
	deliverCall int

	// CheckResult is returned by Check, unless CheckErr is set.
	CheckResult msig.CheckResult
	// CheckErr, if set, is returned by Check.
	CheckErr error

	// DeliverResult is returned by Deliver, unless DeliverErr is set.
	DeliverResult msig.DeliverResult
	// DeliverErr, if set, is returned by Deliver.
	DeliverErr error
}

var _ msig.Handler = (*Handler)(nil)

func (h *Handler) Check(msig.Context, msig.KVStore, msig.Tx) (*msig.CheckResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(msig.Context, msig.KVStore, msig.Tx) (*msig.DeliverResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// CheckCallCount returns the number of times Check was called.
func (h *Handler) CheckCallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.checkCall
}

// DeliverCallCount returns the number of times Deliver was called.
func (h *Handler) DeliverCallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.deliverCall
}

// CallCount returns the total number of Check and Deliver calls.
func (h *Handler) CallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.checkCall + h.deliverCall
}
