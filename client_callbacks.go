package textsecure

// PushRegistrationCallbacks receives the outcome of a RegistrationAttempt.
// Each attempt invokes at most one of the callbacks, at most once.
type PushRegistrationCallbacks struct {
	OnFailure func(attempt *RegistrationAttempt, kind PushRegistrationError)
	OnSuccess func(attempt *RegistrationAttempt)
}
