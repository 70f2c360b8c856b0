package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/dev-9820/eventease-frontend/internal/domain"
	"github.com/dev-9820/eventease-frontend/internal/view/ports"
	"github.com/wb-go/wbf/logger"
)

// EventDetail is the single-event screen with the booking action.
type EventDetail struct {
	events   ports.EventGateway
	bookings ports.BookingGateway
	notify   ports.Notifier
	identity identitySource
	log      logger.Logger

	mu      sync.Mutex
	seq     int
	event   *domain.Event
	failed  bool
	booking bool
}

func NewEventDetail(
	events ports.EventGateway,
	bookings ports.BookingGateway,
	notify ports.Notifier,
	identity identitySource,
	log logger.Logger,
) *EventDetail {
	return &EventDetail{
		events:   events,
		bookings: bookings,
		notify:   notify,
		identity: identity,
		log:      log,
	}
}

func (v *EventDetail) Load(ctx context.Context, id string) error {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	v.mu.Unlock()

	event, err := v.events.GetEvent(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.seq {
		return nil
	}

	if err != nil {
		v.event = nil
		v.failed = true
		v.notify.Notify(domain.UserMessage(err, "Event not found"), domain.NotifyError)
		return fmt.Errorf("load event %s: %w", id, err)
	}

	v.event = event
	v.failed = false
	return nil
}

func (v *EventDetail) Event() *domain.Event {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.event
}

func (v *EventDetail) Failed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.failed
}

// Book reserves seats on the loaded event. Anonymous users are sent to the
// login screen without any API call; an out-of-range seat count is blocked
// before dispatch; a second submission while one is outstanding is refused.
func (v *EventDetail) Book(ctx context.Context, seats int) (Route, error) {
	if v.identity.Current() == nil {
		v.notify.Notify("Please login to book events", domain.NotifyWarning)
		return RouteLogin, nil
	}

	if !domain.ValidSeats(seats) {
		v.notify.Notify("You can only book 1-2 seats per event", domain.NotifyError)
		return RouteNone, fmt.Errorf("%w: seats must be between %d and %d",
			domain.ErrValidation, domain.MinSeats, domain.MaxSeats)
	}

	v.mu.Lock()
	if v.booking {
		v.mu.Unlock()
		return RouteNone, ErrInFlight
	}
	event := v.event
	if event == nil {
		v.mu.Unlock()
		return RouteNone, fmt.Errorf("%w: no event loaded", domain.ErrNotFound)
	}
	v.booking = true
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.booking = false
		v.mu.Unlock()
	}()

	booking, err := v.bookings.CreateBooking(ctx, event.ID, seats)
	if err != nil {
		v.notify.Notify(domain.UserMessage(err, "Booking failed. Please try again."), domain.NotifyError)
		return RouteNone, fmt.Errorf("book event %s: %w", event.ID, err)
	}

	v.log.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", event.ID),
		logger.Int("seats", seats),
	)

	v.notify.Notify("Booking confirmed! Check your email for tickets.", domain.NotifySuccess)
	return RouteMyBookings, nil
}
