package dto

import (
	"time"

	"github.com/dev-9820/eventease-frontend/internal/domain"
	"github.com/dev-9820/eventease-frontend/internal/view"
)

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type SessionResponse struct {
	User    *UserResponse `json:"user"`
	Loading bool          `json:"loading"`
}

type EventResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	LocationType string `json:"location_type"`
	Location     string `json:"location"`
	StartDate    string `json:"start_date"`
	Capacity     int    `json:"capacity"`
	Status       string `json:"status,omitempty"`
}

type EventListResponse struct {
	Events     []EventResponse `json:"events"`
	Categories []string        `json:"categories"`
}

type BookingResponse struct {
	ID        string         `json:"id"`
	Event     *EventResponse `json:"event,omitempty"`
	Seats     int            `json:"seats"`
	Status    string         `json:"status"`
	CanCancel bool           `json:"can_cancel"`
	CreatedAt string         `json:"created_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse   `json:"bookings"`
	Counts   map[view.Bucket]int `json:"counts"`
}

type AttendeeResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	BookingID string `json:"booking_id"`
}

type CalendarResponse struct {
	View    string       `json:"view"`
	Entries []view.Entry `json:"entries"`
}

type AdminEventsResponse struct {
	Events    []EventResponse `json:"events"`
	ActiveTab string          `json:"active_tab"`
}

type NavigateResponse struct {
	Redirect string `json:"redirect,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Category:     e.Category,
		LocationType: string(e.LocationType),
		Location:     e.Location,
		StartDate:    e.StartDate.Format(time.RFC3339),
		Capacity:     e.Capacity,
		Status:       e.Status,
	}
}

func ToEventResponses(events []*domain.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ToEventResponse(e))
	}
	return out
}

func ToBookingResponse(b *domain.Booking, now time.Time) BookingResponse {
	resp := BookingResponse{
		ID:        b.ID,
		Seats:     b.Seats,
		Status:    string(b.DisplayStatus(now)),
		CanCancel: b.CanCancel(now),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
	if b.Event != nil {
		event := ToEventResponse(b.Event)
		resp.Event = &event
	}
	return resp
}

func ToAttendeeResponses(attendees []*domain.Attendee) []AttendeeResponse {
	out := make([]AttendeeResponse, 0, len(attendees))
	for _, a := range attendees {
		out = append(out, AttendeeResponse{
			Name:      a.Name,
			Email:     a.Email,
			BookingID: a.BookingID,
		})
	}
	return out
}
