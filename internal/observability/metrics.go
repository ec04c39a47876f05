package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics keeps per-route request and error counters in memory. Counters are
// keyed by path, method and outcome so the dashboard can break traffic down
// without an external metrics backend.
type Metrics struct {
	mu       sync.Mutex
	requests map[string]int64
	errors   map[string]int64
}

// NewMetrics returns an empty counter set.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[string]int64),
		errors:   make(map[string]int64),
	}
}

// RecordRequest counts one completed request.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := counterKey(path, method, strconv.Itoa(status))
	m.mu.Lock()
	m.requests[key]++
	m.mu.Unlock()
}

// RecordError counts one request that ended in a domain error.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := counterKey(path, method, code)
	m.mu.Lock()
	m.errors[key]++
	m.mu.Unlock()
}

func counterKey(path, method, outcome string) string {
	return path + "|" + method + "|" + outcome
}
