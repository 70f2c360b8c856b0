package domain

import "errors"

var (
	ErrAuth     = errors.New("authentication failed")
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

var (
	ErrValidation = errors.New("validation error")
)

var (
	ErrNetwork = errors.New("network error")
	ErrServer  = errors.New("server error")
)

// Messenger is implemented by errors that carry text safe to show the
// user verbatim (the remote API's {message} payload).
type Messenger interface {
	UserMessage() string
}

// UserMessage extracts the server-provided message from err, falling back
// to the given string when there is none.
func UserMessage(err error, fallback string) string {
	var m Messenger
	if errors.As(err, &m) && m.UserMessage() != "" {
		return m.UserMessage()
	}
	return fallback
}
