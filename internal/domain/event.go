package domain

import "time"

type LocationType string

const (
	LocationOnline   LocationType = "Online"
	LocationInPerson LocationType = "In-Person"
)

type Event struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	LocationType LocationType `json:"location_type"`
	Location     string       `json:"location"`
	StartDate    time.Time    `json:"start_date"`
	Capacity     int          `json:"capacity"`
	Status       string       `json:"status,omitempty"`
}

type CreateEventInput struct {
	Title        string
	Description  string
	Category     string
	LocationType LocationType
	Location     string
	StartDate    time.Time
	Capacity     int
}

// Attendee is one admin-visible booking holder for an event.
type Attendee struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	BookingID string `json:"booking_id"`
}
