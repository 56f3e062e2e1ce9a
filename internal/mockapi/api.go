// Package mockapi emulates the remote portal backend: every call carries an
// artificial latency envelope and an injectable failure budget, then runs
// synchronous logic against freshly generated fixture data. No network I/O
// happens anywhere in this package.
package mockapi

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/ecm-digital/bankingapp-sub000/internal/fixtures"
)

// Latency describes the simulated delay envelope per operation kind. Jitter is
// applied as ± around the base. Zero values disable the delay, which tests
// rely on.
type Latency struct {
	List           time.Duration
	ListJitter     time.Duration
	Detail         time.Duration
	DetailJitter   time.Duration
	Mutation       time.Duration
	MutationJitter time.Duration
}

// DefaultLatency mirrors the envelope of the original prototype.
func DefaultLatency() Latency {
	return Latency{
		List:           500 * time.Millisecond,
		ListJitter:     100 * time.Millisecond,
		Detail:         300 * time.Millisecond,
		DetailJitter:   50 * time.Millisecond,
		Mutation:       time.Second,
		MutationJitter: 200 * time.Millisecond,
	}
}

// Config assembles the knobs of the simulated API.
type Config struct {
	Latency Latency
	Faults  FaultInjector
	// Seed drives the latency jitter RNG. Zero picks the current time.
	Seed int64
}

// API is the mock remote service. It is safe for concurrent use.
type API struct {
	logger  *slog.Logger
	latency Latency
	faults  FaultInjector

	mu              sync.Mutex
	rng             *rand.Rand
	nextQueueNumber int
	txSeq           int
}

// New constructs the mock API. A nil fault injector disables fault injection.
func New(logger *slog.Logger, cfg Config) *API {
	if logger == nil {
		logger = slog.Default()
	}
	faults := cfg.Faults
	if faults == nil {
		faults = NoFaults{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &API{
		logger:          logger,
		latency:         cfg.Latency,
		faults:          faults,
		rng:             rand.New(rand.NewSource(seed)),
		nextQueueNumber: fixtures.MaxSeedQueueNumber + 1,
	}
}

type opKind int

const (
	opList opKind = iota
	opDetail
	opMutation
)

// simulate applies the latency envelope and the fault budget shared by every
// endpoint. It returns early when the context is cancelled.
func (a *API) simulate(ctx context.Context, kind opKind, class OpClass) error {
	var base, jitter time.Duration
	switch kind {
	case opList:
		base, jitter = a.latency.List, a.latency.ListJitter
	case opDetail:
		base, jitter = a.latency.Detail, a.latency.DetailJitter
	default:
		base, jitter = a.latency.Mutation, a.latency.MutationJitter
	}

	if delay := a.jittered(base, jitter); delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if apiErr := a.faults.Check(class); apiErr != nil {
		a.logger.Debug("injected fault", "status", apiErr.Status, "code", apiErr.Code)
		return apiErr
	}
	return nil
}

func (a *API) jittered(base, jitter time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	if jitter <= 0 {
		return base
	}
	a.mu.Lock()
	offset := time.Duration(a.rng.Int63n(int64(2*jitter))) - jitter
	a.mu.Unlock()
	if d := base + offset; d > 0 {
		return d
	}
	return 0
}
