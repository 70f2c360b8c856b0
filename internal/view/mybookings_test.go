package view

import (
	"context"
	"testing"
	"time"

	"github.com/dev-9820/eventease-frontend/internal/domain"
	"github.com/dev-9820/eventease-frontend/internal/view/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var frozenNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func bookingFixtures() []*domain.Booking {
	return []*domain.Booking{
		{
			ID:     "b1",
			Status: domain.BookingStatusConfirmed,
			Event:  &domain.Event{ID: "e1", Title: "Summer Jazz Festival", StartDate: frozenNow.Add(72 * time.Hour)},
		},
		{
			ID:     "b2",
			Status: domain.BookingStatusConfirmed,
			Event:  &domain.Event{ID: "e2", Title: "Winter Gala", StartDate: frozenNow.Add(-72 * time.Hour)},
		},
		{
			ID:     "b3",
			Status: domain.BookingStatusCancelled,
			Event:  &domain.Event{ID: "e3", Title: "Tech Meetup", StartDate: frozenNow.Add(24 * time.Hour)},
		},
	}
}

func loadedMyBookings(t *testing.T) (*MyBookings, *mocks.MockBookingGateway, *mocks.MockNotifier) {
	t.Helper()
	gateway := mocks.NewMockBookingGateway(t)
	notify := mocks.NewMockNotifier(t)
	v := NewMyBookings(gateway, notify, newTestLogger(t))
	v.now = func() time.Time { return frozenNow }

	gateway.EXPECT().ListMyBookings(mock.Anything).Return(bookingFixtures(), nil).Once()
	require.NoError(t, v.Load(context.Background()))

	return v, gateway, notify
}

func TestMyBookings_Buckets(t *testing.T) {
	v, _, _ := loadedMyBookings(t)

	assert.Len(t, v.Filtered(), 3)

	v.SetBucket(BucketUpcoming)
	got := v.Filtered()
	require.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].ID)
	assert.Equal(t, "b3", got[1].ID)

	v.SetBucket(BucketPast)
	got = v.Filtered()
	require.Len(t, got, 1)
	assert.Equal(t, "b2", got[0].ID)

	v.SetBucket(BucketCancelled)
	got = v.Filtered()
	require.Len(t, got, 1)
	assert.Equal(t, "b3", got[0].ID)
}

func TestMyBookings_Counts(t *testing.T) {
	v, _, _ := loadedMyBookings(t)

	counts := v.Counts()
	assert.Equal(t, 3, counts[BucketAll])
	assert.Equal(t, 2, counts[BucketUpcoming])
	assert.Equal(t, 1, counts[BucketPast])
	assert.Equal(t, 1, counts[BucketCancelled])
}

func TestMyBookings_SearchWithinBucket(t *testing.T) {
	v, _, _ := loadedMyBookings(t)

	v.SetBucket(BucketUpcoming)
	v.SetSearch("jazz")
	got := v.Filtered()
	require.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].ID)
}

func TestMyBookings_Cancel_Success(t *testing.T) {
	v, gateway, notify := loadedMyBookings(t)

	gateway.EXPECT().CancelBooking(mock.Anything, "b1").Return(nil)
	notify.EXPECT().Notify("Booking cancelled successfully", domain.NotifySuccess).Return("n1")

	// The list is re-fetched after the cancel response.
	refreshed := bookingFixtures()
	refreshed[0].Status = domain.BookingStatusCancelled
	gateway.EXPECT().ListMyBookings(mock.Anything).Return(refreshed, nil).Once()

	require.NoError(t, v.Cancel(context.Background(), "b1"))

	v.SetBucket(BucketCancelled)
	assert.Len(t, v.Filtered(), 2)
}

func TestMyBookings_Cancel_AlreadyCancelled(t *testing.T) {
	v, _, notify := loadedMyBookings(t)

	notify.EXPECT().Notify("This booking can no longer be cancelled", domain.NotifyError).Return("n1")

	err := v.Cancel(context.Background(), "b3")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMyBookings_Cancel_PastEvent(t *testing.T) {
	v, _, notify := loadedMyBookings(t)

	notify.EXPECT().Notify("This booking can no longer be cancelled", domain.NotifyError).Return("n1")

	err := v.Cancel(context.Background(), "b2")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMyBookings_Cancel_Unknown(t *testing.T) {
	v, _, _ := loadedMyBookings(t)

	err := v.Cancel(context.Background(), "no-such-booking")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMyBookings_Cancel_GatewayError(t *testing.T) {
	v, gateway, notify := loadedMyBookings(t)

	gateway.EXPECT().CancelBooking(mock.Anything, "b1").Return(domain.ErrConflict)
	notify.EXPECT().Notify("Cancellation failed", domain.NotifyError).Return("n1")

	err := v.Cancel(context.Background(), "b1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestMyBookings_LoadFailure(t *testing.T) {
	gateway := mocks.NewMockBookingGateway(t)
	notify := mocks.NewMockNotifier(t)
	v := NewMyBookings(gateway, notify, newTestLogger(t))

	gateway.EXPECT().ListMyBookings(mock.Anything).Return(nil, domain.ErrServer)
	notify.EXPECT().Notify("Failed to load bookings", domain.NotifyError).Return("n1")

	err := v.Load(context.Background())
	require.Error(t, err)
	assert.True(t, v.Failed())
}
