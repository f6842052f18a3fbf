package backend

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

var (
	ErrCircuitOpen = errors.New("backend circuit breaker is open")
)

// BreakerState is the state of the backend circuit breaker
type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

type BreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

// CircuitBreaker counts consecutive backend failures and stops sending requests
// once MaxFailures is reached, until ResetTimeout has passed.
type CircuitBreaker struct {
	mu                sync.RWMutex
	config            BreakerConfig
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewCircuitBreaker(config BreakerConfig) *CircuitBreaker {
	if config.HalfOpenMaxSucc <= 0 {
		config.HalfOpenMaxSucc = 1
	}
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    time.Now,
	}
}

// Allow reports whether a request may be sent, moving an expired open circuit to half-open
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.state = StateHalfOpen
		cb.halfOpenSuccesses = 0
	}

	return cb.state != StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.state = StateClosed
			cb.failures = 0
			cb.halfOpenSuccesses = 0
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateHalfOpen:
		cb.state = StateOpen
		cb.halfOpenSuccesses = 0
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.state = StateOpen
		}
	}
}

func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// BreakerTransport fails fast with ErrCircuitOpen while the breaker is open.
// Transport errors and 5xx responses count as failures; a cancelled caller does not.
type BreakerTransport struct {
	base    http.RoundTripper
	breaker *CircuitBreaker
	logger  *slog.Logger
}

func (t *BreakerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !t.breaker.Allow() {
		return nil, ErrCircuitOpen
	}

	resp, err := t.base.RoundTrip(req)
	switch {
	case err != nil:
		if req.Context().Err() == nil {
			t.recordFailure(req)
		}
		return nil, err
	case resp.StatusCode >= http.StatusInternalServerError:
		t.recordFailure(req)
	default:
		t.breaker.RecordSuccess()
	}

	return resp, nil
}

func (t *BreakerTransport) recordFailure(req *http.Request) {
	before := t.breaker.State()
	t.breaker.RecordFailure()
	if after := t.breaker.State(); after == StateOpen && before != StateOpen {
		t.logger.Warn("backend circuit breaker opened",
			"method", req.Method,
			"url", req.URL.String(),
		)
	}
}
