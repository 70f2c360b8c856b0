package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dev-9820/eventease-frontend/internal/domain"
	"github.com/dev-9820/eventease-frontend/internal/view/ports"
	"github.com/wb-go/wbf/logger"
)

type Tab string

const (
	TabCreate Tab = "create"
	TabManage Tab = "manage"
)

// AdminEvents is the management screen: event creation, deletion (behind
// an explicit confirmation), and the per-event attendees modal.
type AdminEvents struct {
	gateway ports.EventGateway
	notify  ports.Notifier
	log     logger.Logger
	now     func() time.Time

	mu           sync.Mutex
	seq          int
	loaded       bool
	failed       bool
	items        []*domain.Event
	tab          Tab
	busy         bool
	attendeesFor string
	attendees    []*domain.Attendee
}

func NewAdminEvents(gateway ports.EventGateway, notify ports.Notifier, log logger.Logger) *AdminEvents {
	return &AdminEvents{
		gateway: gateway,
		notify:  notify,
		log:     log,
		now:     time.Now,
		tab:     TabManage,
	}
}

func (v *AdminEvents) Load(ctx context.Context) error {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	v.mu.Unlock()

	events, err := v.gateway.ListEvents(ctx, 0)

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.seq {
		return nil
	}

	if err != nil {
		v.failed = true
		v.notify.Notify(domain.UserMessage(err, "Failed to load events"), domain.NotifyError)
		return fmt.Errorf("load events: %w", err)
	}

	v.items = events
	v.loaded = true
	v.failed = false
	return nil
}

func (v *AdminEvents) Events() []*domain.Event {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]*domain.Event, len(v.items))
	copy(out, v.items)
	return out
}

func (v *AdminEvents) ActiveTab() Tab {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tab
}

func (v *AdminEvents) SetTab(tab Tab) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tab = tab
}

// Create submits a new event. On success the list is re-fetched and the
// screen switches to the manage tab.
func (v *AdminEvents) Create(ctx context.Context, input domain.CreateEventInput) error {
	if err := validateCreateEvent(input, v.now()); err != nil {
		v.notify.Notify(domain.UserMessage(err, err.Error()), domain.NotifyError)
		return err
	}

	v.mu.Lock()
	if v.busy {
		v.mu.Unlock()
		return ErrInFlight
	}
	v.busy = true
	v.mu.Unlock()

	defer v.clearBusy()

	event, err := v.gateway.CreateEvent(ctx, input)
	if err != nil {
		v.notify.Notify(domain.UserMessage(err, "Create failed"), domain.NotifyError)
		return fmt.Errorf("create event: %w", err)
	}

	v.log.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("title", event.Title),
	)
	v.notify.Notify("Event created", domain.NotifySuccess)

	if err := v.Load(ctx); err != nil {
		return err
	}

	v.mu.Lock()
	v.tab = TabManage
	v.mu.Unlock()
	return nil
}

// Delete removes an event. The caller must pass confirmed=true, which the
// shell only does after the user acknowledged the confirmation step.
func (v *AdminEvents) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	v.mu.Lock()
	if v.busy {
		v.mu.Unlock()
		return ErrInFlight
	}
	v.busy = true
	v.mu.Unlock()

	defer v.clearBusy()

	if err := v.gateway.DeleteEvent(ctx, id); err != nil {
		v.notify.Notify(domain.UserMessage(err, "Delete failed"), domain.NotifyError)
		return fmt.Errorf("delete event %s: %w", id, err)
	}

	v.log.Info("event deleted", logger.String("event_id", id))
	v.notify.Notify("Event deleted", domain.NotifySuccess)

	return v.Load(ctx)
}

// Attendees fetches the attendee list for one event. The result is cached
// for the currently open modal only: asking for a different event clears
// the previous cache.
func (v *AdminEvents) Attendees(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	v.mu.Lock()
	if v.attendeesFor == eventID && v.attendees != nil {
		cached := v.attendees
		v.mu.Unlock()
		return cached, nil
	}
	v.attendeesFor = eventID
	v.attendees = nil
	v.mu.Unlock()

	attendees, err := v.gateway.ListAttendees(ctx, eventID)
	if err != nil {
		v.notify.Notify(domain.UserMessage(err, "Failed to load attendees"), domain.NotifyError)
		return nil, fmt.Errorf("list attendees for %s: %w", eventID, err)
	}

	v.mu.Lock()
	if v.attendeesFor == eventID {
		v.attendees = attendees
	}
	v.mu.Unlock()

	return attendees, nil
}

func (v *AdminEvents) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}

func (v *AdminEvents) Failed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.failed
}

func (v *AdminEvents) clearBusy() {
	v.mu.Lock()
	v.busy = false
	v.mu.Unlock()
}

func validateCreateEvent(input domain.CreateEventInput, now time.Time) error {
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", domain.ErrValidation)
	}
	if input.StartDate.Before(now) {
		return fmt.Errorf("%w: start date must be in the future", domain.ErrValidation)
	}
	switch input.LocationType {
	case domain.LocationOnline, domain.LocationInPerson:
	default:
		return fmt.Errorf("%w: location type must be %s or %s",
			domain.ErrValidation, domain.LocationOnline, domain.LocationInPerson)
	}
	return nil
}
