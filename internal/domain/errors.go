package domain

// ValidationError reports untrusted input that could not become a domain value.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
