package repo

// StoreTokenError labels a failure while persisting a confirmation token.
type StoreTokenError struct {
	Cause error
}

func (e *StoreTokenError) Error() string {
	return "A database error was encountered while trying to store a subscription token."
}

func (e *StoreTokenError) Unwrap() error { return e.Cause }
