package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/dev-9820/eventease-frontend/internal/domain"
	"github.com/dev-9820/eventease-frontend/internal/handler/dto"
	"github.com/dev-9820/eventease-frontend/internal/notification"
	"github.com/dev-9820/eventease-frontend/internal/session"
	smocks "github.com/dev-9820/eventease-frontend/internal/session/mocks"
	"github.com/dev-9820/eventease-frontend/internal/view"
	"github.com/dev-9820/eventease-frontend/internal/view/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fixture struct {
	auth          *smocks.MockAuthenticator
	events        *mocks.MockEventGateway
	bookings      *mocks.MockBookingGateway
	store         *session.Store
	notifications *notification.Channel
	router        http.Handler
}

// setup wires a handler over real views and a real session store; only the
// remote API and the authenticator are mocked. A non-nil user starts the
// shell with that identity already restored.
func setup(t *testing.T, user *domain.User) *fixture {
	t.Helper()
	log := newTestLogger(t)

	file := session.NewFile(filepath.Join(t.TempDir(), "ee_auth.json"))
	if user != nil {
		require.NoError(t, file.Save(&session.Blob{Token: "tok-test", User: user}))
	}

	auth := smocks.NewMockAuthenticator(t)
	store := session.NewStore(file, auth, log)
	store.Restore()

	eventGw := mocks.NewMockEventGateway(t)
	bookingGw := mocks.NewMockBookingGateway(t)
	notifications := notification.NewChannel(time.Minute, log)
	t.Cleanup(notifications.Close)

	events := view.NewEventList(eventGw, notifications, log)
	detail := view.NewEventDetail(eventGw, bookingGw, notifications, store, log)
	myBookings := view.NewMyBookings(bookingGw, notifications, log)
	admin := view.NewAdminEvents(eventGw, notifications, log)
	calendar := view.NewCalendar(bookingGw, store, notifications, log)

	h := NewHandler(store, events, detail, myBookings, admin, calendar, notifications)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/login", h.Login)
		api.POST("/auth/register", h.Register)
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/session", h.CurrentSession)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/book", h.BookEvent)
		api.GET("/my-bookings", h.ListMyBookings)
		api.DELETE("/my-bookings/:id", h.CancelBooking)
		api.GET("/calendar", h.Calendar)
		api.GET("/calendar/export.ics", h.ExportCalendar)
		api.GET("/admin/events", h.AdminEvents)
		api.POST("/admin/events", h.CreateEvent)
		api.DELETE("/admin/events/:id", h.DeleteEvent)
		api.GET("/admin/events/:id/attendees", h.ListAttendees)
		api.GET("/notifications", h.ListNotifications)
		api.DELETE("/notifications/:id", h.DismissNotification)
	}

	return &fixture{
		auth:          auth,
		events:        eventGw,
		bookings:      bookingGw,
		store:         store,
		notifications: notifications,
		router:        r,
	}
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_Login_Success(t *testing.T) {
	f := setup(t, nil)

	user := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}
	f.auth.EXPECT().Login(mock.Anything, "alice@example.com", "secret").
		Return(&domain.Session{Token: "tok", User: user}, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "alice@example.com", Password: "secret"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.ID)
	assert.Equal(t, "user", resp.Role)

	require.NotNil(t, f.store.Current())
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	f := setup(t, nil)

	f.auth.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").
		Return(nil, domain.ErrAuth)

	w := doJSON(t, f.router, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Login_MissingFields(t *testing.T) {
	f := setup(t, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/auth/login", ginext.H{"email": "a@b.c"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_Success(t *testing.T) {
	f := setup(t, nil)

	user := &domain.User{ID: "u2", Name: "Bob", Email: "bob@example.com", Role: domain.RoleUser}
	f.auth.EXPECT().Register(mock.Anything, domain.RegisterInput{
		Name: "Bob", Email: "bob@example.com", Password: "secret",
	}).Return(&domain.Session{Token: "tok", User: user}, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/auth/register",
		dto.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "secret"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_LogoutAndSession(t *testing.T) {
	user := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}
	f := setup(t, user)

	w := doJSON(t, f.router, http.MethodGet, "/api/auth/session", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var sess dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	require.NotNil(t, sess.User)
	assert.Equal(t, "u1", sess.User.ID)
	assert.False(t, sess.Loading)

	w = doJSON(t, f.router, http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, f.router, http.MethodGet, "/api/auth/session", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	assert.Nil(t, sess.User)
}

// --- Events ---

func TestHandler_ListEvents_WithFilters(t *testing.T) {
	f := setup(t, nil)

	f.events.EXPECT().ListEvents(mock.Anything, 0).Return([]*domain.Event{
		{ID: "e1", Title: "Live Music Night", Category: "Music", LocationType: domain.LocationInPerson},
		{ID: "e2", Title: "Tech Talk", Category: "Technology", LocationType: domain.LocationOnline},
	}, nil).Once()

	w := doJSON(t, f.router, http.MethodGet, "/api/events?search=music", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "e1", resp.Events[0].ID)
	assert.Equal(t, []string{"Music", "Technology"}, resp.Categories)

	// The collection is already loaded; the second request filters locally.
	w = doJSON(t, f.router, http.MethodGet, "/api/events?search=&category=Technology", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "e2", resp.Events[0].ID)
}

func TestHandler_ListEvents_UpstreamDown(t *testing.T) {
	f := setup(t, nil)

	f.events.EXPECT().ListEvents(mock.Anything, 0).Return(nil, domain.ErrNetwork)

	w := doJSON(t, f.router, http.MethodGet, "/api/events", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	f := setup(t, nil)

	f.events.EXPECT().GetEvent(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	w := doJSON(t, f.router, http.MethodGet, "/api/events/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Booking ---

func TestHandler_BookEvent_Anonymous(t *testing.T) {
	f := setup(t, nil)

	event := &domain.Event{ID: "e1", Title: "Concert", StartDate: time.Now().Add(24 * time.Hour)}
	f.events.EXPECT().GetEvent(mock.Anything, "e1").Return(event, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/events/e1/book", dto.BookRequest{Seats: 1})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.NavigateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/login", resp.Redirect)
}

func TestHandler_BookEvent_Success(t *testing.T) {
	user := &domain.User{ID: "u1", Role: domain.RoleUser}
	f := setup(t, user)

	event := &domain.Event{ID: "e1", Title: "Concert", StartDate: time.Now().Add(24 * time.Hour)}
	f.events.EXPECT().GetEvent(mock.Anything, "e1").Return(event, nil)
	f.bookings.EXPECT().CreateBooking(mock.Anything, "e1", 2).
		Return(&domain.Booking{ID: "b1", Seats: 2, Status: domain.BookingStatusConfirmed}, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/events/e1/book", dto.BookRequest{Seats: 2})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.NavigateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/my-bookings", resp.Redirect)

	// The success toast is queued.
	active := f.notifications.Active()
	require.NotEmpty(t, active)
	assert.Equal(t, domain.NotifySuccess, active[len(active)-1].Kind)
}

func TestHandler_BookEvent_TooManySeats(t *testing.T) {
	user := &domain.User{ID: "u1", Role: domain.RoleUser}
	f := setup(t, user)

	event := &domain.Event{ID: "e1", Title: "Concert", StartDate: time.Now().Add(24 * time.Hour)}
	f.events.EXPECT().GetEvent(mock.Anything, "e1").Return(event, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/events/e1/book", dto.BookRequest{Seats: 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookEvent_Conflict(t *testing.T) {
	user := &domain.User{ID: "u1", Role: domain.RoleUser}
	f := setup(t, user)

	event := &domain.Event{ID: "e1", Title: "Concert", StartDate: time.Now().Add(24 * time.Hour)}
	f.events.EXPECT().GetEvent(mock.Anything, "e1").Return(event, nil)
	f.bookings.EXPECT().CreateBooking(mock.Anything, "e1", 1).Return(nil, domain.ErrConflict)

	w := doJSON(t, f.router, http.MethodPost, "/api/events/e1/book", dto.BookRequest{Seats: 1})
	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- My bookings ---

func TestHandler_ListMyBookings(t *testing.T) {
	user := &domain.User{ID: "u1", Role: domain.RoleUser}
	f := setup(t, user)

	f.bookings.EXPECT().ListMyBookings(mock.Anything).Return([]*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusConfirmed,
			Event: &domain.Event{ID: "e1", Title: "Concert", StartDate: time.Now().Add(24 * time.Hour)}},
		{ID: "b2", Status: domain.BookingStatusCancelled,
			Event: &domain.Event{ID: "e2", Title: "Gala", StartDate: time.Now().Add(48 * time.Hour)}},
	}, nil).Once()

	w := doJSON(t, f.router, http.MethodGet, "/api/my-bookings?bucket=upcoming", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 2)
	assert.Equal(t, 2, resp.Counts[view.BucketAll])
	assert.Equal(t, 1, resp.Counts[view.BucketCancelled])

	for _, b := range resp.Bookings {
		if b.ID == "b1" {
			assert.True(t, b.CanCancel)
		}
		if b.ID == "b2" {
			assert.False(t, b.CanCancel)
		}
	}
}

func TestHandler_CancelBooking(t *testing.T) {
	user := &domain.User{ID: "u1", Role: domain.RoleUser}
	f := setup(t, user)

	f.bookings.EXPECT().ListMyBookings(mock.Anything).Return([]*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusConfirmed,
			Event: &domain.Event{ID: "e1", Title: "Concert", StartDate: time.Now().Add(24 * time.Hour)}},
	}, nil).Times(2)

	w := doJSON(t, f.router, http.MethodGet, "/api/my-bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	f.bookings.EXPECT().CancelBooking(mock.Anything, "b1").Return(nil)

	w = doJSON(t, f.router, http.MethodDelete, "/api/my-bookings/b1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Unknown id after the refreshed list.
	w = doJSON(t, f.router, http.MethodDelete, "/api/my-bookings/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Calendar ---

func TestHandler_Calendar(t *testing.T) {
	user := &domain.User{ID: "u1", Role: domain.RoleUser}
	f := setup(t, user)

	f.bookings.EXPECT().ListMyBookings(mock.Anything).Return([]*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusConfirmed,
			Event: &domain.Event{ID: "e1", Title: "Concert", StartDate: time.Now().Add(24 * time.Hour)}},
	}, nil).Once()

	w := doJSON(t, f.router, http.MethodGet, "/api/calendar?view=week", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CalendarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "week", resp.View)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "#10b981", resp.Entries[0].Color)

	w = doJSON(t, f.router, http.MethodGet, "/api/calendar?view=decade", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Calendar_AdminSeesAll(t *testing.T) {
	admin := &domain.User{ID: "u9", Role: domain.RoleAdmin}
	f := setup(t, admin)

	f.bookings.EXPECT().ListAllBookings(mock.Anything).Return(nil, nil).Once()

	w := doJSON(t, f.router, http.MethodGet, "/api/calendar", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ExportCalendar(t *testing.T) {
	user := &domain.User{ID: "u1", Role: domain.RoleUser}
	f := setup(t, user)

	f.bookings.EXPECT().ListMyBookings(mock.Anything).Return([]*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusConfirmed,
			Event: &domain.Event{ID: "e1", Title: "Concert", StartDate: time.Now().Add(24 * time.Hour)}},
	}, nil).Once()

	w := doJSON(t, f.router, http.MethodGet, "/api/calendar/export.ics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/calendar")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bookings.ics")
	assert.Contains(t, w.Body.String(), "BEGIN:VCALENDAR")
}

// --- Admin ---

func TestHandler_CreateEvent(t *testing.T) {
	admin := &domain.User{ID: "u9", Role: domain.RoleAdmin}
	f := setup(t, admin)

	start := time.Now().Add(7 * 24 * time.Hour).UTC().Truncate(time.Second)
	created := &domain.Event{ID: "e1", Title: "Launch Party"}
	f.events.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(created, nil)
	f.events.EXPECT().ListEvents(mock.Anything, 0).Return([]*domain.Event{created}, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/admin/events", dto.CreateEventRequest{
		Title:        "Launch Party",
		LocationType: "In-Person",
		StartDate:    start.Format(time.RFC3339),
		Capacity:     80,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AdminEventsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "manage", resp.ActiveTab)
	require.Len(t, resp.Events, 1)
}

func TestHandler_CreateEvent_BadDate(t *testing.T) {
	f := setup(t, &domain.User{ID: "u9", Role: domain.RoleAdmin})

	w := doJSON(t, f.router, http.MethodPost, "/api/admin/events", dto.CreateEventRequest{
		Title:        "X",
		LocationType: "Online",
		StartDate:    "next tuesday",
		Capacity:     10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteEvent_NeedsConfirmation(t *testing.T) {
	f := setup(t, &domain.User{ID: "u9", Role: domain.RoleAdmin})

	w := doJSON(t, f.router, http.MethodDelete, "/api/admin/events/e1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.events.EXPECT().DeleteEvent(mock.Anything, "e1").Return(nil)
	f.events.EXPECT().ListEvents(mock.Anything, 0).Return(nil, nil)

	w = doJSON(t, f.router, http.MethodDelete, "/api/admin/events/e1?confirm=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListAttendees(t *testing.T) {
	f := setup(t, &domain.User{ID: "u9", Role: domain.RoleAdmin})

	f.events.EXPECT().ListAttendees(mock.Anything, "e1").Return([]*domain.Attendee{
		{Name: "Alice", Email: "alice@example.com", BookingID: "b1"},
	}, nil).Once()

	w := doJSON(t, f.router, http.MethodGet, "/api/admin/events/e1/attendees", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
}

// --- Notifications ---

func TestHandler_Notifications(t *testing.T) {
	f := setup(t, nil)

	id := f.notifications.Notify("Hello", domain.NotifyInfo)

	w := doJSON(t, f.router, http.MethodGet, "/api/notifications", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello")

	w = doJSON(t, f.router, http.MethodDelete, "/api/notifications/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, f.router, http.MethodGet, "/api/notifications", nil)
	assert.NotContains(t, w.Body.String(), "Hello")
}
