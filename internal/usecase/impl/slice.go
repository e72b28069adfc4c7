// Package impl contains the store implementations. Each store owns one
// state subtree behind a mutex and applies backend responses through the
// shared slice helper, which enforces the three-phase operation contract
// and drops stale responses.
package impl

import (
	"sync"

	"storefront/internal/usecase"
)

// notifier fans out change notifications to subscribers. Callbacks run
// synchronously on the goroutine that settled the operation and must not
// call back into the store's operations.
type notifier struct {
	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// Subscribe registers fn to run after every state change. The returned
// cancel func removes the subscription.
func (n *notifier) Subscribe(fn func()) (cancel func()) {
	n.subMu.Lock()
	defer n.subMu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	id := n.nextSub
	n.nextSub++
	n.subs[id] = fn

	return func() {
		n.subMu.Lock()
		defer n.subMu.Unlock()

		delete(n.subs, id)
	}
}

func (n *notifier) notify() {
	n.subMu.Lock()
	callbacks := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		callbacks = append(callbacks, fn)
	}
	n.subMu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// slice is the shared state-synchronization core embedded by every
// store: one status, one mutex guarding status and the embedding store's
// subtree, and a monotonic sequence counter per operation kind. Only the
// response to the most recently dispatched request of a kind is applied;
// everything else is dropped, so rapid repeated dispatches cannot
// interleave out of order.
type slice struct {
	notifier

	mu     sync.RWMutex
	status usecase.Status
	seq    map[string]uint64
}

// begin enters the pending phase: loading set, prior outcome cleared.
// The returned token identifies this dispatch for settle-time fencing.
func (s *slice) begin(kind string) uint64 {
	s.mu.Lock()
	if s.seq == nil {
		s.seq = make(map[string]uint64)
	}
	s.seq[kind]++
	token := s.seq[kind]
	s.status = usecase.Status{Loading: true}
	s.mu.Unlock()

	s.notify()

	return token
}

// fulfill enters the fulfilled phase when token is still the latest
// dispatch of its kind: apply runs under the lock to replace the subtree,
// then the status becomes a terminal success. Stale responses are
// dropped without touching state.
func (s *slice) fulfill(kind string, token uint64, success string, apply func()) bool {
	s.mu.Lock()
	if s.seq[kind] != token {
		s.mu.Unlock()

		return false
	}
	if apply != nil {
		apply()
	}
	s.status = usecase.Status{Success: success}
	s.mu.Unlock()

	s.notify()

	return true
}

// reject enters the rejected phase when token is still the latest
// dispatch of its kind. The subtree is left untouched.
func (s *slice) reject(kind string, token uint64, message string) bool {
	s.mu.Lock()
	if s.seq[kind] != token {
		s.mu.Unlock()

		return false
	}
	s.status = usecase.Status{Error: message}
	s.mu.Unlock()

	s.notify()

	return true
}

// Status returns the current operation status.
func (s *slice) Status() usecase.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.status
}
