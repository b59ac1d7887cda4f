package textsecure

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// String returns the failure kind name: "network", "authentication" or "request".
func (k PushRegistrationError) String() string {
	return getPushRegistrationErrorName(k)
}

// IsValid reports whether k is one of the three failure kinds.
func (k PushRegistrationError) IsValid() bool {
	return k >= PushRegistrationErrorNetwork && k <= PushRegistrationErrorRequest
}

// PushRegistrationFailure is the error delivered when a registration attempt fails.
type PushRegistrationFailure struct {
	AttemptID uuid.UUID
	Kind      PushRegistrationError
	Err       error
}

func (e *PushRegistrationFailure) Error() string {
	return fmt.Sprintf("textsecure: push registration %s failed (%s): %v", e.AttemptID, e.Kind, e.Err)
}

func (e *PushRegistrationFailure) Unwrap() error {
	return e.Err
}

// RegistrationResult is the settled outcome of a RegistrationAttempt.
// Failure is nil when the attempt succeeded.
type RegistrationResult struct {
	AttemptID uuid.UUID
	Failure   *PushRegistrationFailure
}

// Succeeded reports whether the attempt completed without failure.
func (r RegistrationResult) Succeeded() bool {
	return r.Failure == nil
}

// Err returns the failure as an error, or nil on success.
func (r RegistrationResult) Err() error {
	if r.Failure == nil {
		return nil
	}
	return r.Failure
}

// RegistrationAttempt tracks one push-registration request and delivers its
// outcome exactly once, through the callbacks and through Done.
//
// Fail and Succeed may be called from any goroutine; only the first call
// settles the attempt.
type RegistrationAttempt struct {
	id        uuid.UUID
	callbacks PushRegistrationCallbacks
	metrics   MetricsCollector

	once   sync.Once
	mu     sync.RWMutex
	result *RegistrationResult
	done   chan RegistrationResult
}

// AttemptOption configures a RegistrationAttempt.
type AttemptOption func(*RegistrationAttempt)

// WithAttemptMetrics reports failures of the attempt to the collector.
func WithAttemptMetrics(m MetricsCollector) AttemptOption {
	return func(a *RegistrationAttempt) {
		a.metrics = m
	}
}

// WithAttemptID overrides the generated correlation ID.
func WithAttemptID(id uuid.UUID) AttemptOption {
	return func(a *RegistrationAttempt) {
		a.id = id
	}
}

// NewRegistrationAttempt starts tracking a push-registration request.
func NewRegistrationAttempt(callbacks PushRegistrationCallbacks, opts ...AttemptOption) *RegistrationAttempt {
	a := &RegistrationAttempt{
		id:        uuid.New(),
		callbacks: callbacks,
		done:      make(chan RegistrationResult, 1),
	}
	for _, opt := range opts {
		opt(a)
	}
	log.WithField("attempt", a.id.String()).Debug("push registration attempt started")
	return a
}

// ID returns the correlation ID of the attempt.
func (a *RegistrationAttempt) ID() uuid.UUID {
	return a.id
}

// Fail classifies err and delivers the failure. It returns false if the
// attempt was already settled, in which case nothing is delivered.
func (a *RegistrationAttempt) Fail(err error) bool {
	kind := ClassifyPushRegistrationError(err)
	if err == nil {
		err = ErrMalformedRequest
	}
	return a.settle(RegistrationResult{
		AttemptID: a.id,
		Failure: &PushRegistrationFailure{
			AttemptID: a.id,
			Kind:      kind,
			Err:       err,
		},
	})
}

// Succeed settles the attempt without a failure. It returns false if the
// attempt was already settled.
func (a *RegistrationAttempt) Succeed() bool {
	return a.settle(RegistrationResult{AttemptID: a.id})
}

// Done returns a channel that receives the result once the attempt settles
// and its callback has returned. The channel is closed after the result has
// been sent. A callback must not wait on Done.
func (a *RegistrationAttempt) Done() <-chan RegistrationResult {
	return a.done
}

// Result returns the settled result, or false while the attempt is pending.
// The result is visible here before the callback runs, so callbacks may
// read it.
func (a *RegistrationAttempt) Result() (RegistrationResult, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.result == nil {
		return RegistrationResult{}, false
	}
	return *a.result, true
}

func (a *RegistrationAttempt) settle(res RegistrationResult) bool {
	settled := false
	a.once.Do(func() {
		settled = true
		a.mu.Lock()
		a.result = &res
		a.mu.Unlock()
	})
	if !settled {
		Debug("push registration attempt %s already settled, ignoring", a.id)
		return false
	}

	// Callbacks run outside once.Do so a callback may safely touch the attempt.
	if res.Failure != nil {
		log.WithField("attempt", a.id.String()).Warnf("push registration failed: %s: %v", res.Failure.Kind, res.Failure.Err)
		if a.metrics != nil {
			a.metrics.IncrementPushRegistrationFailure(res.Failure.Kind)
		}
		if a.callbacks.OnFailure != nil {
			a.callbacks.OnFailure(a, res.Failure.Kind)
		}
	} else {
		log.WithField("attempt", a.id.String()).Debug("push registration succeeded")
		if a.callbacks.OnSuccess != nil {
			a.callbacks.OnSuccess(a)
		}
	}

	a.done <- res
	close(a.done)
	return true
}
