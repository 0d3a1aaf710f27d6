// ABOUTME: Notification centre holding transient toast messages
// ABOUTME: Messages auto-expire through a go-cache TTL store and can be dismissed early

package notify

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"library-admin/core/domain"
	"library-admin/core/interfaces"
)

// DefaultTTL is how long a toast stays visible
const DefaultTTL = 5 * time.Second

// Center implements interfaces.Notifier
type Center struct {
	store    *cache.Cache
	ttl      time.Duration
	logger   interfaces.Logger
	observer func(domain.Notification)
	now      func() time.Time
}

// Option configures a Center
type Option func(*Center)

// WithTTL overrides the expiry of new messages
func WithTTL(ttl time.Duration) Option {
	return func(c *Center) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithLogger mirrors every message to logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Center) {
		c.logger = logger
	}
}

// WithObserver calls fn for every new message
func WithObserver(fn func(domain.Notification)) Option {
	return func(c *Center) {
		c.observer = fn
	}
}

// NewCenter creates an empty notification centre
func NewCenter(opts ...Option) *Center {
	c := &Center{
		ttl: DefaultTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.store = cache.New(c.ttl, c.ttl)
	return c
}

// Notify records a message of the given kind and returns it
func (c *Center) Notify(message string, kind domain.NotificationKind) domain.Notification {
	kind = domain.ParseNotificationKind(string(kind))
	created := c.now()
	n := domain.Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Kind:      kind,
		CreatedAt: created,
		ExpiresAt: created.Add(c.ttl),
	}
	c.store.Set(n.ID, n, c.ttl)
	c.log(n)
	if c.observer != nil {
		c.observer(n)
	}
	return n
}

// Dismiss removes a message before it expires
func (c *Center) Dismiss(id string) bool {
	if _, found := c.store.Get(id); !found {
		return false
	}
	c.store.Delete(id)
	return true
}

// Active returns unexpired messages, oldest first
func (c *Center) Active() []domain.Notification {
	items := c.store.Items()
	out := make([]domain.Notification, 0, len(items))
	for _, item := range items {
		if n, ok := item.Object.(domain.Notification); ok {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Clear drops every message
func (c *Center) Clear() {
	c.store.Flush()
}

func (c *Center) log(n domain.Notification) {
	if c.logger == nil {
		return
	}
	fields := map[string]interface{}{
		"notification_id": n.ID,
		"kind":            string(n.Kind),
	}
	switch n.Kind {
	case domain.KindError:
		c.logger.Error(n.Message, fields)
	case domain.KindWarning:
		c.logger.Warn(n.Message, fields)
	default:
		c.logger.Info(n.Message, fields)
	}
}
