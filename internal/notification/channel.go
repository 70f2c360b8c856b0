package notification

import (
	"sync"
	"time"

	"github.com/dev-9820/eventease-frontend/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// DefaultTTL matches the display duration of the web client's toasts.
const DefaultTTL = 5 * time.Second

// Sink receives a copy of every notification pushed into the channel.
type Sink interface {
	Deliver(n domain.Notification)
}

// Channel is the ephemeral, screen-independent message queue. Each entry
// gets its own expiry timer keyed by id, so a manual dismissal reliably
// cancels the pending auto-removal.
type Channel struct {
	ttl   time.Duration
	log   logger.Logger
	sinks []Sink

	mu     sync.Mutex
	items  []domain.Notification // oldest first
	timers map[string]*time.Timer
	closed bool
}

func NewChannel(ttl time.Duration, log logger.Logger, sinks ...Sink) *Channel {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Channel{
		ttl:    ttl,
		log:    log,
		sinks:  sinks,
		timers: make(map[string]*time.Timer),
	}
}

// Notify appends a notification with a fresh id and schedules its
// auto-removal. Returns the id so callers may dismiss early.
func (c *Channel) Notify(message string, kind domain.NotificationKind) string {
	n := domain.Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return n.ID
	}
	c.items = append(c.items, n)
	c.timers[n.ID] = time.AfterFunc(c.ttl, func() { c.remove(n.ID) })
	c.mu.Unlock()

	c.log.Debug("notification queued",
		logger.String("id", n.ID),
		logger.String("kind", string(kind)),
	)

	for _, sink := range c.sinks {
		go sink.Deliver(n)
	}

	return n.ID
}

// Dismiss removes a notification immediately. Dismissing an unknown or
// already-expired id is a no-op, as is the timer firing afterwards.
func (c *Channel) Dismiss(id string) {
	c.mu.Lock()
	if timer, ok := c.timers[id]; ok {
		timer.Stop()
	}
	c.mu.Unlock()

	c.remove(id)
}

// Active snapshots the currently visible notifications, oldest first.
func (c *Channel) Active() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Close stops every pending timer. Further Notify calls are dropped.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	for id, timer := range c.timers {
		timer.Stop()
		delete(c.timers, id)
	}
	c.items = nil
}

func (c *Channel) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.timers[id]; !ok {
		return
	}
	delete(c.timers, id)

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
}
