// Package breaker implements the per-(tenant, operation class) circuit
// breaker of spec §4.7: a rolling window of failure timestamps rather
// than a naive generation-reset counter (per the teacher-adjacent
// design note), so a transient spike followed by quiet time does not
// immediately trip. The public shape — State, Counts,
// StateChangeListener — mirrors the teacher's pkg/mcircuitbreaker
// adapter contract so a host can later swap in lib-commons' breaker
// without touching callers.
package breaker

import (
	"sync"
	"time"
)

// State is one of Closed, Open, HalfOpen.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
	StateUnknown State = -1
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Counts mirrors the teacher's pkg/mcircuitbreaker.Counts shape.
type Counts struct {
	Requests             uint32
	TotalSuccesses       uint32
	TotalFailures        uint32
	ConsecutiveSuccesses uint32
	ConsecutiveFailures  uint32
}

// StateChangeEvent is delivered to a StateChangeListener on every
// transition.
type StateChangeEvent struct {
	Tenant    string
	Operation string
	FromState State
	ToState   State
	Counts    Counts
}

// StateChangeListener receives circuit breaker transitions, e.g. to
// export them as the §4.7 "health signal" or publish a circuit.opened
// event (§6).
type StateChangeListener interface {
	OnCircuitBreakerStateChange(event StateChangeEvent)
}

// Config tunes the breaker's thresholds (spec §4.7 defaults).
type Config struct {
	FailureThreshold int           // failures within FailureWindow before CLOSED -> OPEN
	FailureWindow    time.Duration
	ResetTimeout     time.Duration // OPEN -> HALF_OPEN after this elapses
	SuccessThreshold int           // consecutive successes HALF_OPEN -> CLOSED
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		FailureWindow:    60 * time.Second,
		ResetTimeout:     30 * time.Second,
		SuccessThreshold: 3,
	}
}

// Breaker guards one (tenant, operation class) pair.
type Breaker struct {
	tenant    string
	operation string
	cfg       Config
	listener  StateChangeListener

	mu                  sync.Mutex
	state               State
	failureTimestamps   []time.Time
	openedAt            time.Time
	consecutiveSuccess  uint32
	consecutiveFailures uint32
	totalSuccesses      uint32
	totalFailures       uint32
	requests            uint32
}

// New builds a Breaker for the given tenant and operation class.
func New(tenant, operation string, cfg Config, listener StateChangeListener) *Breaker {
	return &Breaker{
		tenant:    tenant,
		operation: operation,
		cfg:       cfg,
		listener:  listener,
		state:     StateClosed,
	}
}

// State returns the breaker's current state, resolving OPEN ->
// HALF_OPEN transitions lazily based on elapsed time.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.stateLocked()
}

func (b *Breaker) stateLocked() State {
	if b.state == StateOpen && time.Since(b.openedAt) >= b.cfg.ResetTimeout {
		b.transition(StateHalfOpen)
	}

	return b.state
}

// Allow reports whether a call should be attempted. When it returns
// false the caller must not touch the protected store and should
// surface CircuitOpenError (or degrade to the decision cache, per
// §4.3).
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.stateLocked() != StateOpen
}

// RecordSuccess reports a successful call.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.requests++
	b.totalSuccesses++
	b.consecutiveSuccess++
	b.consecutiveFailures = 0

	switch b.stateLocked() {
	case StateHalfOpen:
		if b.consecutiveSuccess >= uint32(b.cfg.SuccessThreshold) {
			b.transition(StateClosed)
			b.failureTimestamps = nil
		}
	case StateClosed:
		b.pruneWindow(time.Now())
	}
}

// RecordFailure reports a transient/infrastructural failure. Only
// these count per §4.7 — authorization denials and validation errors
// must never be passed here.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.requests++
	b.totalFailures++
	b.consecutiveFailures++
	b.consecutiveSuccess = 0

	switch b.stateLocked() {
	case StateHalfOpen:
		b.transition(StateOpen)
		b.openedAt = now
	case StateClosed:
		b.failureTimestamps = append(b.failureTimestamps, now)
		b.pruneWindow(now)

		if len(b.failureTimestamps) >= b.cfg.FailureThreshold {
			b.transition(StateOpen)
			b.openedAt = now
		}
	}
}

// pruneWindow drops failure timestamps older than FailureWindow.
// Caller must hold b.mu.
func (b *Breaker) pruneWindow(now time.Time) {
	cutoff := now.Add(-b.cfg.FailureWindow)

	i := 0
	for ; i < len(b.failureTimestamps); i++ {
		if b.failureTimestamps[i].After(cutoff) {
			break
		}
	}

	b.failureTimestamps = b.failureTimestamps[i:]
}

// transition moves to next and notifies the listener. Caller must hold b.mu.
func (b *Breaker) transition(next State) {
	if next == b.state {
		return
	}

	from := b.state
	b.state = next

	if b.listener == nil {
		return
	}

	event := StateChangeEvent{
		Tenant:    b.tenant,
		Operation: b.operation,
		FromState: from,
		ToState:   next,
		Counts: Counts{
			Requests:             b.requests,
			TotalSuccesses:       b.totalSuccesses,
			TotalFailures:        b.totalFailures,
			ConsecutiveSuccesses: b.consecutiveSuccess,
			ConsecutiveFailures:  b.consecutiveFailures,
		},
	}

	b.listener.OnCircuitBreakerStateChange(event)
}

// OpenDuration returns how long the breaker has been continuously
// OPEN/HALF_OPEN, for the §4.7 health-signal export. Zero if CLOSED.
func (b *Breaker) OpenDuration() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateClosed {
		return 0
	}

	return time.Since(b.openedAt)
}
