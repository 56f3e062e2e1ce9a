package mockapi

import (
	"math/rand"
	"net/http"
	"sync"
	"time"
)

// OpClass groups API operations by how aggressively faults are injected.
type OpClass int

const (
	// OpRead covers list and detail calls.
	OpRead OpClass = iota
	// OpMutation covers non-monetary writes.
	OpMutation
	// OpMoneyMovement covers transfer-style operations, which fail more often.
	OpMoneyMovement
)

// FaultInjector decides whether a simulated call should fail before its
// business logic runs. Keeping this behind an interface keeps rand out of the
// domain code paths and lets tests swap in NoFaults.
type FaultInjector interface {
	Check(class OpClass) *Error
}

// NoFaults never injects a failure.
type NoFaults struct{}

// Check implements FaultInjector.
func (NoFaults) Check(OpClass) *Error { return nil }

// RandomFaults injects transient failures at configurable per-class rates,
// choosing uniformly among timeout, unavailable and rate-limited errors.
type RandomFaults struct {
	mu           sync.Mutex
	rng          *rand.Rand
	readRate     float64
	mutationRate float64
	transferRate float64
}

// NewRandomFaults builds an injector with the given rates in [0,1]. A zero
// seed falls back to an unpredictable source.
func NewRandomFaults(seed int64, readRate, mutationRate, transferRate float64) *RandomFaults {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rand.NewSource(seed)
	return &RandomFaults{
		rng:          rand.New(src),
		readRate:     clampRate(readRate),
		mutationRate: clampRate(mutationRate),
		transferRate: clampRate(transferRate),
	}
}

// Check implements FaultInjector.
func (f *RandomFaults) Check(class OpClass) *Error {
	f.mu.Lock()
	defer f.mu.Unlock()

	rate := f.readRate
	switch class {
	case OpMutation:
		rate = f.mutationRate
	case OpMoneyMovement:
		rate = f.transferRate
	}

	if f.rng.Float64() >= rate {
		return nil
	}

	switch f.rng.Intn(3) {
	case 0:
		return NewError(http.StatusRequestTimeout, CodeTimeout, "request timed out")
	case 1:
		return NewError(http.StatusServiceUnavailable, CodeServiceUnavailable, "service temporarily unavailable")
	default:
		return NewError(http.StatusTooManyRequests, CodeRateLimited, "too many requests")
	}
}

func clampRate(rate float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > 1 {
		return 1
	}
	return rate
}
