// Package store holds the portal's client-side state: one injectable store
// per domain entity, each with its own loading flag, last error and data
// slice. Stores follow a single template: mark loading synchronously, await
// the mock API, then either splice results into local state or record the
// failure message. Failed writes leave prior state untouched.
package store

import "sync"

// State is the read-only view every store exposes for aggregation.
type State interface {
	// Loading reports whether an action is currently in flight.
	Loading() bool
	// Err returns the message of the most recent failure, or "".
	Err() string
	// Ready reports whether the store has loaded data at least once.
	Ready() bool
}

// tracker implements the shared loading/error bookkeeping plus a generation
// counter: each new action bumps the generation, and a resolution belonging
// to an older generation is discarded rather than overwriting newer state.
type tracker struct {
	mu        sync.Mutex
	loading   bool
	lastError string
	ready     bool
	gen       uint64
}

// begin marks the store loading, clears the previous error and claims a new
// generation. It must be called synchronously at the start of every action.
func (t *tracker) begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = true
	t.lastError = ""
	t.gen++
	return t.gen
}

// complete settles an action. When the generation no longer matches, a newer
// action owns the state and the result is dropped; the return value reports
// whether the result was applied. apply runs under the store lock.
func (t *tracker) complete(gen uint64, err error, apply func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.gen {
		return false
	}
	t.loading = false
	if err != nil {
		t.lastError = err.Error()
		return true
	}
	t.lastError = ""
	if apply != nil {
		apply()
	}
	t.ready = true
	return true
}

// fail records an error outcome without touching data. Used by write actions
// that also return the error to their caller.
func (t *tracker) fail(gen uint64, err error) {
	t.complete(gen, err, nil)
}

// Loading implements State.
func (t *tracker) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// Err implements State.
func (t *tracker) Err() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastError
}

// Ready implements State.
func (t *tracker) Ready() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ready
}
