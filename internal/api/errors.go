package api

import (
	"fmt"
	"net/http"

	"github.com/dev-9820/eventease-frontend/internal/domain"
)

// StatusError carries a non-2xx response: the HTTP status plus the
// server's {message} payload, surfaced to the caller unchanged.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// UserMessage is the text a screen may show verbatim.
func (e *StatusError) UserMessage() string {
	return e.Message
}

// Unwrap maps the status onto the domain error taxonomy so callers can
// dispatch with errors.Is.
func (e *StatusError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return domain.ErrAuth
	case e.Status == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Status == http.StatusConflict:
		return domain.ErrConflict
	case e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	default:
		return domain.ErrServer
	}
}
