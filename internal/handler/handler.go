package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/dev-9820/eventease-frontend/internal/domain"
	"github.com/dev-9820/eventease-frontend/internal/handler/dto"
	"github.com/dev-9820/eventease-frontend/internal/notification"
	"github.com/dev-9820/eventease-frontend/internal/session"
	"github.com/dev-9820/eventease-frontend/internal/view"
	"github.com/wb-go/wbf/ginext"
)

// Handler is the localhost JSON shell over the screen controllers. It
// binds requests, delegates to the views and translates their errors;
// any presentation can sit on top of it.
type Handler struct {
	session       *session.Store
	events        *view.EventList
	detail        *view.EventDetail
	myBookings    *view.MyBookings
	admin         *view.AdminEvents
	calendar      *view.Calendar
	notifications *notification.Channel
}

func NewHandler(
	sess *session.Store,
	events *view.EventList,
	detail *view.EventDetail,
	myBookings *view.MyBookings,
	admin *view.AdminEvents,
	calendar *view.Calendar,
	notifications *notification.Channel,
) *Handler {
	return &Handler{
		session:       sess,
		events:        events,
		detail:        detail,
		myBookings:    myBookings,
		admin:         admin,
		calendar:      calendar,
		notifications: notifications,
	}
}

// Auth

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.session.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.session.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Logout(c *ginext.Context) {
	h.session.Logout()
	c.JSON(http.StatusOK, ginext.H{"status": "logged out"})
}

func (h *Handler) CurrentSession(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.SessionResponse{
		User:    dto.ToUserResponse(h.session.Current()),
		Loading: h.session.Loading(),
	})
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	if !h.events.Loaded() || c.Query("reload") == "true" {
		if err := h.events.Load(c.Request.Context()); err != nil {
			h.handleError(c, err)
			return
		}
	}

	h.events.SetSearch(c.Query("search"))
	h.events.SetCategory(c.Query("category"))
	h.events.SetLocationType(domain.LocationType(c.Query("location_type")))

	c.JSON(http.StatusOK, dto.EventListResponse{
		Events:     dto.ToEventResponses(h.events.Filtered()),
		Categories: h.events.Categories(),
	})
}

func (h *Handler) GetEvent(c *ginext.Context) {
	if err := h.detail.Load(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(h.detail.Event()))
}

func (h *Handler) BookEvent(c *ginext.Context) {
	id := c.Param("id")

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// The booking always targets the event on screen.
	if event := h.detail.Event(); event == nil || event.ID != id {
		if err := h.detail.Load(c.Request.Context(), id); err != nil {
			h.handleError(c, err)
			return
		}
	}

	route, err := h.detail.Book(c.Request.Context(), req.Seats)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusCreated
	if route == view.RouteLogin {
		status = http.StatusOK
	}
	c.JSON(status, dto.NavigateResponse{Redirect: string(route)})
}

// My bookings

func (h *Handler) ListMyBookings(c *ginext.Context) {
	if !h.myBookings.Loaded() || c.Query("reload") == "true" {
		if err := h.myBookings.Load(c.Request.Context()); err != nil {
			h.handleError(c, err)
			return
		}
	}

	if bucket := c.Query("bucket"); bucket != "" {
		h.myBookings.SetBucket(view.Bucket(bucket))
	}
	h.myBookings.SetSearch(c.Query("search"))

	now := time.Now()
	filtered := h.myBookings.Filtered()
	bookings := make([]dto.BookingResponse, 0, len(filtered))
	for _, b := range filtered {
		bookings = append(bookings, dto.ToBookingResponse(b, now))
	}

	c.JSON(http.StatusOK, dto.BookingListResponse{
		Bookings: bookings,
		Counts:   h.myBookings.Counts(),
	})
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	if err := h.myBookings.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// Calendar

func (h *Handler) Calendar(c *ginext.Context) {
	if !h.calendar.Loaded() || c.Query("reload") == "true" {
		if err := h.calendar.Load(c.Request.Context()); err != nil {
			h.handleError(c, err)
			return
		}
	}

	if g := c.Query("view"); g != "" {
		if err := h.calendar.SetGranularity(view.Granularity(g)); err != nil {
			h.handleError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, dto.CalendarResponse{
		View:    string(h.calendar.Granularity()),
		Entries: h.calendar.Entries(),
	})
}

func (h *Handler) ExportCalendar(c *ginext.Context) {
	if !h.calendar.Loaded() {
		if err := h.calendar.Load(c.Request.Context()); err != nil {
			h.handleError(c, err)
			return
		}
	}

	c.Header("Content-Disposition", `attachment; filename="bookings.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(h.calendar.ExportICS()))
}

// Admin

func (h *Handler) AdminEvents(c *ginext.Context) {
	if !h.admin.Loaded() || c.Query("reload") == "true" {
		if err := h.admin.Load(c.Request.Context()); err != nil {
			h.handleError(c, err)
			return
		}
	}

	if tab := c.Query("tab"); tab != "" {
		h.admin.SetTab(view.Tab(tab))
	}

	c.JSON(http.StatusOK, dto.AdminEventsResponse{
		Events:    dto.ToEventResponses(h.admin.Events()),
		ActiveTab: string(h.admin.ActiveTab()),
	})
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		LocationType: domain.LocationType(req.LocationType),
		Location:     req.Location,
		StartDate:    startDate,
		Capacity:     req.Capacity,
	}

	if err := h.admin.Create(c.Request.Context(), input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AdminEventsResponse{
		Events:    dto.ToEventResponses(h.admin.Events()),
		ActiveTab: string(h.admin.ActiveTab()),
	})
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	confirmed := c.Query("confirm") == "true"

	if err := h.admin.Delete(c.Request.Context(), c.Param("id"), confirmed); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ListAttendees(c *ginext.Context) {
	attendees, err := h.admin.Attendees(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"attendees": dto.ToAttendeeResponses(attendees)})
}

// Notifications

func (h *Handler) ListNotifications(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"notifications": h.notifications.Active()})
}

func (h *Handler) DismissNotification(c *ginext.Context) {
	h.notifications.Dismiss(c.Param("id"))
	c.JSON(http.StatusOK, ginext.H{"status": "dismissed"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAuth):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, view.ErrInFlight):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, view.ErrConfirmationRequired):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNetwork),
		errors.Is(err, domain.ErrServer):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}
