package ports

import (
	"context"

	"github.com/dev-9820/eventease-frontend/internal/domain"
)

type EventGateway interface {
	ListEvents(ctx context.Context, limit int) ([]*domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListAttendees(ctx context.Context, eventID string) ([]*domain.Attendee, error)
}
