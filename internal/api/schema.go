package api

import (
	"strings"
	"time"

	"github.com/dev-9820/eventease-frontend/internal/domain"
)

// Wire types mirror the remote API's payloads. The server is loose about
// shape (camelCase keys, `id` vs `_id`, upper- vs lower-case statuses),
// so everything is normalized here and nowhere else.

type wireUser struct {
	ID    string `json:"id"`
	AltID string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type wireEvent struct {
	ID           string    `json:"id"`
	AltID        string    `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	LocationType string    `json:"locationType"`
	Location     string    `json:"location"`
	StartDate    time.Time `json:"startDate"`
	Capacity     int       `json:"capacity"`
	Status       string    `json:"status"`
}

type wireBooking struct {
	ID        string     `json:"id"`
	AltID     string     `json:"_id"`
	Event     *wireEvent `json:"event"`
	Seats     int        `json:"seats"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

type wireAttendee struct {
	User struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
	BookingID string `json:"bookingId"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  wireUser `json:"user"`
}

type eventsResponse struct {
	Events []wireEvent `json:"events"`
}

type eventResponse struct {
	Event wireEvent `json:"event"`
}

type bookingsResponse struct {
	Bookings []wireBooking `json:"bookings"`
}

type attendeesResponse struct {
	Attendees []wireAttendee `json:"attendees"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createEventRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	LocationType string `json:"locationType"`
	Location     string `json:"location"`
	StartDate    string `json:"startDate"`
	Capacity     int    `json:"capacity"`
}

type createBookingRequest struct {
	Event string `json:"event"`
	Seats int    `json:"seats"`
}

// canonicalID unifies the server's inconsistent identifier fields:
// `id` wins, `_id` is the fallback.
func canonicalID(id, altID string) string {
	if id != "" {
		return id
	}
	return altID
}

func (w *wireUser) toDomain() *domain.User {
	role := domain.RoleUser
	if strings.EqualFold(w.Role, string(domain.RoleAdmin)) {
		role = domain.RoleAdmin
	}
	return &domain.User{
		ID:    canonicalID(w.ID, w.AltID),
		Name:  w.Name,
		Email: w.Email,
		Role:  role,
	}
}

func (w *wireEvent) toDomain() *domain.Event {
	return &domain.Event{
		ID:           canonicalID(w.ID, w.AltID),
		Title:        w.Title,
		Description:  w.Description,
		Category:     w.Category,
		LocationType: domain.LocationType(w.LocationType),
		Location:     w.Location,
		StartDate:    w.StartDate,
		Capacity:     w.Capacity,
		Status:       w.Status,
	}
}

func (w *wireBooking) toDomain() *domain.Booking {
	b := &domain.Booking{
		ID:        canonicalID(w.ID, w.AltID),
		Seats:     w.Seats,
		Status:    domain.BookingStatus(strings.ToLower(w.Status)),
		CreatedAt: w.CreatedAt,
	}
	if w.Event != nil {
		b.Event = w.Event.toDomain()
	}
	return b
}

func (w *wireAttendee) toDomain() *domain.Attendee {
	return &domain.Attendee{
		Name:      w.User.Name,
		Email:     w.User.Email,
		BookingID: w.BookingID,
	}
}
