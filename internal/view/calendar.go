package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/dev-9820/eventease-frontend/internal/domain"
	"github.com/dev-9820/eventease-frontend/internal/view/ports"
	"github.com/wb-go/wbf/logger"
)

type Granularity string

const (
	GranMonth Granularity = "month"
	GranWeek  Granularity = "week"
	GranDay   Granularity = "day"
	GranList  Granularity = "list"
)

// Status colors matching the web client's calendar.
const (
	colorConfirmed = "#10b981"
	colorPending   = "#f59e0b"
	colorCancelled = "#ef4444"
	colorCompleted = "#6b7280"
	colorDefault   = "#3b82f6"
)

// Entry is one calendar-displayable booking.
type Entry struct {
	BookingID    string                `json:"booking_id"`
	Title        string                `json:"title"`
	Start        time.Time             `json:"start"`
	Seats        int                   `json:"seats"`
	Status       domain.BookingStatus  `json:"status"`
	Color        string                `json:"color"`
	Location     string                `json:"location"`
	LocationType domain.LocationType   `json:"location_type"`
	Description  string                `json:"description"`
}

// Calendar renders bookings on a time grid: the user's own, or every
// user's when the session carries the admin role. Switching granularity
// never re-fetches.
type Calendar struct {
	gateway  ports.BookingGateway
	identity identitySource
	notify   ports.Notifier
	log      logger.Logger
	now      func() time.Time

	mu     sync.Mutex
	seq    int
	loaded bool
	failed bool
	items  []*domain.Booking
	gran   Granularity
}

func NewCalendar(gateway ports.BookingGateway, identity identitySource, notify ports.Notifier, log logger.Logger) *Calendar {
	return &Calendar{
		gateway:  gateway,
		identity: identity,
		notify:   notify,
		log:      log,
		now:      time.Now,
		gran:     GranMonth,
	}
}

func (v *Calendar) Load(ctx context.Context) error {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	v.mu.Unlock()

	var (
		bookings []*domain.Booking
		err      error
	)
	if v.identity.Current().IsAdmin() {
		bookings, err = v.gateway.ListAllBookings(ctx)
	} else {
		bookings, err = v.gateway.ListMyBookings(ctx)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.seq {
		return nil
	}

	if err != nil {
		v.failed = true
		v.notify.Notify(domain.UserMessage(err, "Failed to load calendar"), domain.NotifyError)
		return fmt.Errorf("load calendar: %w", err)
	}

	v.items = bookings
	v.loaded = true
	v.failed = false
	return nil
}

func (v *Calendar) Granularity() Granularity {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.gran
}

func (v *Calendar) SetGranularity(g Granularity) error {
	switch g {
	case GranMonth, GranWeek, GranDay, GranList:
	default:
		return fmt.Errorf("%w: unknown granularity %q", domain.ErrValidation, g)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.gran = g
	return nil
}

// Entries maps the loaded bookings into displayable records. The color is
// derived from the display status at the current wall clock.
func (v *Calendar) Entries() []Entry {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	out := make([]Entry, 0, len(v.items))
	for _, b := range v.items {
		e := Entry{
			BookingID: b.ID,
			Title:     "Untitled Event",
			Seats:     b.Seats,
			Status:    b.DisplayStatus(now),
		}
		if b.Event != nil {
			e.Title = b.Event.Title
			e.Start = b.Event.StartDate
			e.Location = b.Event.Location
			e.LocationType = b.Event.LocationType
			e.Description = b.Event.Description
		}
		e.Color = statusColor(e.Status)
		out = append(out, e)
	}
	return out
}

func (v *Calendar) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}

func (v *Calendar) Failed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.failed
}

// ExportICS serializes the calendar as an iCalendar feed so bookings can
// be subscribed to from any external calendar app.
func (v *Calendar) ExportICS() string {
	entries := v.Entries()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//EventEase//booking calendar//EN")

	for _, e := range entries {
		ev := cal.AddEvent(e.BookingID)
		ev.SetSummary(e.Title)
		ev.SetStartAt(e.Start.UTC())
		// The API carries no duration; block out an hour.
		ev.SetEndAt(e.Start.Add(time.Hour).UTC())
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		switch e.Status {
		case domain.BookingStatusCancelled:
			ev.SetStatus(ics.ObjectStatusCancelled)
		case domain.BookingStatusConfirmed, domain.BookingStatusCompleted:
			ev.SetStatus(ics.ObjectStatusConfirmed)
		default:
			ev.SetStatus(ics.ObjectStatusTentative)
		}
	}

	return cal.Serialize()
}

func statusColor(status domain.BookingStatus) string {
	switch status {
	case domain.BookingStatusConfirmed:
		return colorConfirmed
	case domain.BookingStatusPending:
		return colorPending
	case domain.BookingStatusCancelled:
		return colorCancelled
	case domain.BookingStatusCompleted:
		return colorCompleted
	default:
		return colorDefault
	}
}
