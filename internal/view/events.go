package view

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dev-9820/eventease-frontend/internal/domain"
	"github.com/dev-9820/eventease-frontend/internal/view/ports"
	"github.com/wb-go/wbf/logger"
)

// EventList is the discovery screen: all events fetched once, then
// filtered locally on every keystroke without touching the network.
type EventList struct {
	gateway ports.EventGateway
	notify  ports.Notifier
	log     logger.Logger

	mu           sync.Mutex
	seq          int
	loaded       bool
	failed       bool
	events       []*domain.Event
	search       string
	category     string
	locationType domain.LocationType
}

func NewEventList(gateway ports.EventGateway, notify ports.Notifier, log logger.Logger) *EventList {
	return &EventList{
		gateway: gateway,
		notify:  notify,
		log:     log,
	}
}

// Load fetches the full collection. A response that arrives after a newer
// Load started is discarded.
func (v *EventList) Load(ctx context.Context) error {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	v.mu.Unlock()

	events, err := v.gateway.ListEvents(ctx, 0)

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.seq {
		return nil // stale response, a newer fetch owns the screen
	}

	if err != nil {
		v.failed = true
		v.notify.Notify(domain.UserMessage(err, "Failed to load events"), domain.NotifyError)
		return fmt.Errorf("load events: %w", err)
	}

	v.events = events
	v.loaded = true
	v.failed = false

	v.log.Debug("event list loaded", logger.Int("count", len(events)))
	return nil
}

func (v *EventList) SetSearch(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = term
}

func (v *EventList) SetCategory(category string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.category = category
}

func (v *EventList) SetLocationType(lt domain.LocationType) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.locationType = lt
}

func (v *EventList) ClearFilters() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = ""
	v.category = ""
	v.locationType = ""
}

// Filtered derives the visible subset: case-insensitive substring match on
// title or description, AND category, AND location type (when set).
func (v *EventList) Filtered() []*domain.Event {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]*domain.Event, 0, len(v.events))
	for _, e := range v.events {
		if v.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Categories lists the distinct categories present in the loaded
// collection, in first-seen order.
func (v *EventList) Categories() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	seen := make(map[string]struct{}, len(v.events))
	out := make([]string, 0, len(v.events))
	for _, e := range v.events {
		if e.Category == "" {
			continue
		}
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	return out
}

func (v *EventList) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}

// Failed reports that the primary fetch did not succeed, so the screen
// shows an explicit failure state instead of an empty list.
func (v *EventList) Failed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.failed
}

func (v *EventList) matches(e *domain.Event) bool {
	if term := strings.ToLower(v.search); term != "" {
		title := strings.ToLower(e.Title)
		desc := strings.ToLower(e.Description)
		if !strings.Contains(title, term) && !strings.Contains(desc, term) {
			return false
		}
	}
	if v.category != "" && e.Category != v.category {
		return false
	}
	if v.locationType != "" && e.LocationType != v.locationType {
		return false
	}
	return true
}
