package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"

	// BookingStatusCompleted is a display label derived from the event
	// date, never stored or sent over the wire.
	BookingStatusCompleted BookingStatus = "completed"
)

// Seats per booking are capped client-side; the server stays authoritative.
const (
	MinSeats = 1
	MaxSeats = 2
)

type Booking struct {
	ID        string        `json:"id"`
	Event     *Event        `json:"event"`
	Seats     int           `json:"seats"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// CanCancel reports whether the booking may still be cancelled: the event
// has not started yet and the booking is not already cancelled.
func (b *Booking) CanCancel(now time.Time) bool {
	if b.Status == BookingStatusCancelled {
		return false
	}
	return b.Event != nil && b.Event.StartDate.After(now)
}

// DisplayStatus derives the user-facing status label. Cancelled wins over
// everything; a past event reads as completed regardless of stored status.
func (b *Booking) DisplayStatus(now time.Time) BookingStatus {
	if b.Status == BookingStatusCancelled {
		return BookingStatusCancelled
	}
	if b.Event != nil && !b.Event.StartDate.After(now) {
		return BookingStatusCompleted
	}
	return b.Status
}

// ValidSeats reports whether a requested seat count is bookable.
func ValidSeats(seats int) bool {
	return seats >= MinSeats && seats <= MaxSeats
}
