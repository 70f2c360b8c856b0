package ports

import (
	"context"

	"github.com/dev-9820/eventease-frontend/internal/domain"
)

type BookingGateway interface {
	CreateBooking(ctx context.Context, eventID string, seats int) (*domain.Booking, error)
	ListMyBookings(ctx context.Context) ([]*domain.Booking, error)
	ListAllBookings(ctx context.Context) ([]*domain.Booking, error)
	CancelBooking(ctx context.Context, id string) error
}
