package view

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dev-9820/eventease-frontend/internal/domain"
	"github.com/dev-9820/eventease-frontend/internal/view/ports"
	"github.com/wb-go/wbf/logger"
)

// Bucket is a status filter on the bookings screen. Upcoming and past are
// computed against the wall clock at filter time, never cached.
type Bucket string

const (
	BucketAll       Bucket = "all"
	BucketUpcoming  Bucket = "upcoming"
	BucketPast      Bucket = "past"
	BucketCancelled Bucket = "cancelled"
)

// MyBookings lists the user's own bookings and carries the cancel action.
type MyBookings struct {
	gateway ports.BookingGateway
	notify  ports.Notifier
	log     logger.Logger
	now     func() time.Time

	mu         sync.Mutex
	seq        int
	loaded     bool
	failed     bool
	items      []*domain.Booking
	bucket     Bucket
	search     string
	cancelling string
}

func NewMyBookings(gateway ports.BookingGateway, notify ports.Notifier, log logger.Logger) *MyBookings {
	return &MyBookings{
		gateway: gateway,
		notify:  notify,
		log:     log,
		now:     time.Now,
		bucket:  BucketAll,
	}
}

func (v *MyBookings) Load(ctx context.Context) error {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	v.mu.Unlock()

	bookings, err := v.gateway.ListMyBookings(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.seq {
		return nil
	}

	if err != nil {
		v.failed = true
		v.notify.Notify(domain.UserMessage(err, "Failed to load bookings"), domain.NotifyError)
		return fmt.Errorf("load bookings: %w", err)
	}

	v.items = bookings
	v.loaded = true
	v.failed = false
	return nil
}

func (v *MyBookings) SetBucket(b Bucket) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.bucket = b
}

func (v *MyBookings) SetSearch(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = term
}

// Filtered derives the visible subset for the active bucket and search
// term, evaluated against the current wall clock.
func (v *MyBookings) Filtered() []*domain.Booking {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	out := make([]*domain.Booking, 0, len(v.items))
	for _, b := range v.items {
		if v.matchesSearch(b) && inBucket(b, v.bucket, now) {
			out = append(out, b)
		}
	}
	return out
}

// Counts sizes every bucket for the filter bar badges.
func (v *MyBookings) Counts() map[Bucket]int {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	counts := map[Bucket]int{BucketAll: len(v.items)}
	for _, b := range v.items {
		for _, bucket := range []Bucket{BucketUpcoming, BucketPast, BucketCancelled} {
			if inBucket(b, bucket, now) {
				counts[bucket]++
			}
		}
	}
	return counts
}

// Cancel cancels one booking and then re-fetches the whole list, so local
// state never drifts from server truth. The cancellation invariant (not
// cancelled yet, event still in the future) is enforced before dispatch.
func (v *MyBookings) Cancel(ctx context.Context, id string) error {
	v.mu.Lock()
	if v.cancelling != "" {
		v.mu.Unlock()
		return ErrInFlight
	}

	var target *domain.Booking
	for _, b := range v.items {
		if b.ID == id {
			target = b
			break
		}
	}
	if target == nil {
		v.mu.Unlock()
		return fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
	}
	if !target.CanCancel(v.now()) {
		v.mu.Unlock()
		v.notify.Notify("This booking can no longer be cancelled", domain.NotifyError)
		return fmt.Errorf("%w: booking %s is not cancellable", domain.ErrValidation, id)
	}

	v.cancelling = id
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.cancelling = ""
		v.mu.Unlock()
	}()

	if err := v.gateway.CancelBooking(ctx, id); err != nil {
		v.notify.Notify(domain.UserMessage(err, "Cancellation failed"), domain.NotifyError)
		return fmt.Errorf("cancel booking %s: %w", id, err)
	}

	v.log.Info("booking cancelled", logger.String("booking_id", id))
	v.notify.Notify("Booking cancelled successfully", domain.NotifySuccess)

	// Sequenced strictly after the cancel response.
	return v.Load(ctx)
}

func (v *MyBookings) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}

func (v *MyBookings) Failed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.failed
}

func (v *MyBookings) matchesSearch(b *domain.Booking) bool {
	term := strings.ToLower(v.search)
	if term == "" {
		return true
	}
	if b.Event == nil {
		return false
	}
	return strings.Contains(strings.ToLower(b.Event.Title), term) ||
		strings.Contains(strings.ToLower(b.Event.Description), term)
}

func inBucket(b *domain.Booking, bucket Bucket, now time.Time) bool {
	switch bucket {
	case BucketUpcoming:
		return b.Event != nil && b.Event.StartDate.After(now)
	case BucketPast:
		return b.Event != nil && !b.Event.StartDate.After(now)
	case BucketCancelled:
		return b.Status == domain.BookingStatusCancelled
	default:
		return true
	}
}
