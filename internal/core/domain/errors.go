package domain

import "errors"

// ErrSessionInvalidated signals that the session was torn down, either by the
// pre-flight expiry check or by a 401 from the backend. Callers must not
// expect a response value; the boundary layer decides how to re-authenticate.
var ErrSessionInvalidated = errors.New("session invalidated")

// ErrInvalidTransition is returned when a status update would violate the
// application review lifecycle.
var ErrInvalidTransition = errors.New("invalid status transition")

// RequestError carries the backend-provided message for a non-2xx response
// that is not a session failure. The message is suitable for inline display.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

// AsRequestError unwraps err into a *RequestError when possible.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
