package textsecure

import (
	"sync"
	"sync/atomic"
)

// MetricsCollector defines the interface for collecting client metrics.
// Applications can plug in custom implementations (Prometheus, StatsD,
// logging) for production monitoring.
//
// All methods must be safe for concurrent use and non-blocking.
type MetricsCollector interface {
	// IncrementMessageType counts a decoded envelope by its type.
	IncrementMessageType(messageType MessageType)

	// IncrementPushRegistrationFailure counts a failed push registration by kind.
	IncrementPushRegistrationFailure(kind PushRegistrationError)

	// IncrementRouteFormatted counts a successfully composed request URL.
	IncrementRouteFormatted(route Route)

	// IncrementError counts an error by category (e.g. "envelope", "route").
	IncrementError(errorType string)
}

// InMemoryMetrics provides a simple in-memory implementation of MetricsCollector.
// Suitable for development, testing, and applications that want basic metrics
// without an external system.
type InMemoryMetrics struct {
	// index = MessageType, anything out of range lands on UnknownMessageType
	messageTypes [maxMessageType + 1]uint64

	// index = PushRegistrationError
	pushFailures [PushRegistrationErrorRequest + 1]uint64

	mu           sync.RWMutex
	routes       map[Route]uint64
	errorsByType map[string]uint64
}

// NewInMemoryMetrics creates a new in-memory metrics collector.
func NewInMemoryMetrics() *InMemoryMetrics {
	return &InMemoryMetrics{
		routes:       make(map[Route]uint64),
		errorsByType: make(map[string]uint64),
	}
}

// IncrementMessageType increments the counter for the envelope type.
func (m *InMemoryMetrics) IncrementMessageType(messageType MessageType) {
	atomic.AddUint64(&m.messageTypes[ParseMessageType(int64(messageType))], 1)
}

// IncrementPushRegistrationFailure increments the counter for the failure kind.
// Invalid kinds are ignored.
func (m *InMemoryMetrics) IncrementPushRegistrationFailure(kind PushRegistrationError) {
	if !kind.IsValid() {
		return
	}
	atomic.AddUint64(&m.pushFailures[kind], 1)
}

// IncrementRouteFormatted increments the counter for the route.
func (m *InMemoryMetrics) IncrementRouteFormatted(route Route) {
	m.mu.Lock()
	m.routes[route]++
	m.mu.Unlock()
}

// IncrementError increments the error counter for the given error type.
func (m *InMemoryMetrics) IncrementError(errorType string) {
	m.mu.Lock()
	m.errorsByType[errorType]++
	m.mu.Unlock()
}

// MessageTypes returns the count of decoded envelopes of the given type.
func (m *InMemoryMetrics) MessageTypes(messageType MessageType) uint64 {
	return atomic.LoadUint64(&m.messageTypes[ParseMessageType(int64(messageType))])
}

// PushRegistrationFailures returns the count of failures of the given kind.
func (m *InMemoryMetrics) PushRegistrationFailures(kind PushRegistrationError) uint64 {
	if !kind.IsValid() {
		return 0
	}
	return atomic.LoadUint64(&m.pushFailures[kind])
}

// RoutesFormatted returns how many URLs were composed for the route.
func (m *InMemoryMetrics) RoutesFormatted(route Route) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.routes[route]
}

// Errors returns the total count of errors by type.
func (m *InMemoryMetrics) Errors(errorType string) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.errorsByType[errorType]
}

// AllErrors returns a copy of all error counts by type.
func (m *InMemoryMetrics) AllErrors() map[string]uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]uint64, len(m.errorsByType))
	for k, v := range m.errorsByType {
		result[k] = v
	}
	return result
}

// Reset clears all metrics. Useful for testing.
func (m *InMemoryMetrics) Reset() {
	for i := range m.messageTypes {
		atomic.StoreUint64(&m.messageTypes[i], 0)
	}
	for i := range m.pushFailures {
		atomic.StoreUint64(&m.pushFailures[i], 0)
	}

	m.mu.Lock()
	m.routes = make(map[Route]uint64)
	m.errorsByType = make(map[string]uint64)
	m.mu.Unlock()
}
