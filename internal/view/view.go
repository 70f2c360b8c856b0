// Package view holds the screen controllers: each fetches a collection or
// entity through the API gateway, keeps a local copy, derives filtered
// subsets without re-fetching, and exposes the user-triggered actions.
package view

import (
	"errors"

	"github.com/dev-9820/eventease-frontend/internal/domain"
)

// Route is where a screen asks the shell to navigate next.
type Route string

const (
	RouteNone       Route = ""
	RouteLogin      Route = "/login"
	RouteMyBookings Route = "/my-bookings"
)

var (
	// ErrInFlight rejects a duplicate submission while the previous one
	// is still outstanding.
	ErrInFlight = errors.New("request already in flight")

	// ErrConfirmationRequired guards destructive admin actions.
	ErrConfirmationRequired = errors.New("confirmation required")
)

// identitySource is the slice of the session store the views need.
type identitySource interface {
	Current() *domain.User
}
