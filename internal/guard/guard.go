// Package guard gates navigation to protected screens based on the
// current session: authenticated-only and admin-only capabilities.
package guard

import (
	"net/http"

	"github.com/dev-9820/eventease-frontend/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

type Capability string

const (
	Authenticated Capability = "authenticated"
	Admin         Capability = "admin"
)

type Decision int

const (
	// Defer: the session store is still restoring; render a placeholder
	// instead of prematurely redirecting.
	Defer Decision = iota
	Allow
	RedirectLogin
	RedirectHome
)

// SessionState is the slice of the session store the guard reads.
type SessionState interface {
	Loading() bool
	Current() *domain.User
}

// Decide resolves a capability check against the session state.
func Decide(state SessionState, cap Capability) Decision {
	if state.Loading() {
		return Defer
	}

	user := state.Current()
	if user == nil {
		return RedirectLogin
	}
	if cap == Admin && !user.IsAdmin() {
		return RedirectHome
	}
	return Allow
}

// Middleware applies Decide to a route group.
func Middleware(state SessionState, cap Capability) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		switch Decide(state, cap) {
		case Allow:
			c.Next()
		case Defer:
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				ginext.H{"status": "loading"},
			)
		case RedirectLogin:
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
		case RedirectHome:
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
		}
	}
}
