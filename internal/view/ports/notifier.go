package ports

import (
	"github.com/dev-9820/eventease-frontend/internal/domain"
)

// Notifier decouples "something happened" from the screen showing it.
type Notifier interface {
	Notify(message string, kind domain.NotificationKind) string
}
