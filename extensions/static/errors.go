package static

// BindError is returned by Start when the listening socket cannot be opened.
// It is fatal: the server never retries or falls back to another port.
type BindError struct {
	Address string
	Cause   error
}

func (e *BindError) Error() string {
	return "bind " + e.Address + ": " + e.Cause.Error()
}

func (e *BindError) Unwrap() error {
	return e.Cause
}
