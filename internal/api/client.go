package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dev-9820/eventease-frontend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TokenSource yields the current bearer token, if any. It is read on
// every outbound call so a logout takes effect immediately.
type TokenSource interface {
	Token() (string, bool)
}

// Client is the single HTTP gateway to the remote EventEase API. It does
// not retry: the server's verdict is surfaced to the caller as-is.
type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource
	log    logger.Logger
}

func New(base string, tokens TokenSource, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		http:   &http.Client{Timeout: timeout},
		tokens: tokens,
		log:    log,
	}
}

// Auth

func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &domain.Session{Token: resp.Token, User: resp.User.toDomain()}, nil
}

func (c *Client) Register(ctx context.Context, input domain.RegisterInput) (*domain.Session, error) {
	req := registerRequest{Name: input.Name, Email: input.Email, Password: input.Password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &domain.Session{Token: resp.Token, User: resp.User.toDomain()}, nil
}

// Events

func (c *Client) ListEvents(ctx context.Context, limit int) ([]*domain.Event, error) {
	path := "/events"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var resp eventsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	events := make([]*domain.Event, 0, len(resp.Events))
	for i := range resp.Events {
		events = append(events, resp.Events[i].toDomain())
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	var resp eventResponse
	if err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Event.toDomain(), nil
}

func (c *Client) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	req := createEventRequest{
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		LocationType: string(input.LocationType),
		Location:     input.Location,
		StartDate:    input.StartDate.UTC().Format(time.RFC3339),
		Capacity:     input.Capacity,
	}

	var resp wireEvent
	if err := c.do(ctx, http.MethodPost, "/events", req, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListAttendees(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	var resp attendeesResponse
	if err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(eventID)+"/attendees", nil, &resp); err != nil {
		return nil, err
	}

	attendees := make([]*domain.Attendee, 0, len(resp.Attendees))
	for i := range resp.Attendees {
		attendees = append(attendees, resp.Attendees[i].toDomain())
	}
	return attendees, nil
}

// Bookings

func (c *Client) CreateBooking(ctx context.Context, eventID string, seats int) (*domain.Booking, error) {
	var resp wireBooking
	if err := c.do(ctx, http.MethodPost, "/bookings", createBookingRequest{Event: eventID, Seats: seats}, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

func (c *Client) ListMyBookings(ctx context.Context) ([]*domain.Booking, error) {
	return c.listBookings(ctx, "/bookings/me")
}

func (c *Client) ListAllBookings(ctx context.Context) ([]*domain.Booking, error) {
	return c.listBookings(ctx, "/bookings")
}

func (c *Client) listBookings(ctx context.Context, path string) ([]*domain.Booking, error) {
	var resp bookingsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(resp.Bookings))
	for i := range resp.Bookings {
		bookings = append(bookings, resp.Bookings[i].toDomain())
	}
	return bookings, nil
}

func (c *Client) CancelBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/bookings/"+url.PathEscape(id), nil, nil)
}

// Ping checks that the remote API answers at all. Used once at startup;
// the cheapest read the contract offers.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/events?limit=1", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Debug("api error response",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", resp.StatusCode),
		)
		return &StatusError{Status: resp.StatusCode, Message: decodeMessage(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", domain.ErrServer, method, path, err)
	}
	return nil
}

// decodeMessage pulls {message} out of an error payload. Some endpoints
// answer {error} instead; an undecodable body yields an empty message and
// the caller's fallback wins.
func decodeMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
