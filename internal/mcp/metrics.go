package mcp

import (
	"sync"
	"time"
)

// CallMetrics tracks python_outline calls served by the MCP server.
// All methods are thread-safe and can be called concurrently.
type CallMetrics struct {
	lastCallTime     time.Time
	lastCallDuration time.Duration
	lastCallError    string
	totalCalls       int64
	successfulCalls  int64
	failedCalls      int64
	mu               sync.RWMutex
}

// MetricsSnapshot is an immutable snapshot of call metrics at a point in time.
type MetricsSnapshot struct {
	LastCallTime     time.Time     `json:"last_call_time"`
	LastCallDuration time.Duration `json:"last_call_duration_ms"`
	LastCallError    string        `json:"last_call_error,omitempty"`
	TotalCalls       int64         `json:"total_calls"`
	SuccessfulCalls  int64         `json:"successful_calls"`
	FailedCalls      int64         `json:"failed_calls"`
}

// NewCallMetrics creates a new CallMetrics instance with zero values.
func NewCallMetrics() *CallMetrics {
	return &CallMetrics{}
}

// RecordCall records the outcome of one tool call. A nil receiver is a no-op.
func (m *CallMetrics) RecordCall(duration time.Duration, err error) {
	if m == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastCallTime = time.Now()
	m.lastCallDuration = duration
	m.totalCalls++

	if err != nil {
		m.failedCalls++
		m.lastCallError = err.Error()
	} else {
		m.successfulCalls++
		m.lastCallError = ""
	}
}

// GetMetrics returns an immutable snapshot of current metrics.
func (m *CallMetrics) GetMetrics() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return MetricsSnapshot{
		LastCallTime:     m.lastCallTime,
		LastCallDuration: m.lastCallDuration,
		LastCallError:    m.lastCallError,
		TotalCalls:       m.totalCalls,
		SuccessfulCalls:  m.successfulCalls,
		FailedCalls:      m.failedCalls,
	}
}
