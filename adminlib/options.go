// ABOUTME: Configuration options for the library admin client
// ABOUTME: Provides functional options for the client and for table view requests

package adminlib

import (
	"net/http"
	"time"

	"library-admin/core/domain"
	"library-admin/core/interfaces"
	"library-admin/core/notify"
	"library-admin/core/tablesort"
	"library-admin/infrastructure/metrics"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// Config holds the configuration for the client
type Config struct {
	// BaseURL is the root of the backend REST API
	BaseURL string

	// Timeout bounds every backend call made by the default HTTP client
	Timeout time.Duration

	// HTTPClient overrides the default instrumented client
	HTTPClient interfaces.HTTPClient

	// Transport replaces the base transport of the default client
	Transport http.RoundTripper

	// Logger configuration
	Logger interfaces.Logger

	// Cache backs view-state persistence. Nil disables it.
	Cache interfaces.Cache

	// ViewStateTTL is how long saved table preferences live
	ViewStateTTL time.Duration

	// PageSize is the initial rows per page of every table
	PageSize int

	// ToastTTL is how long notifications stay active
	ToastTTL time.Duration

	// Metrics, when set, observes backend calls, the overlay and toasts
	Metrics *metrics.Metrics

	// OnBusy and OnNotify observe the overlay and new notifications
	OnBusy   func(visible bool)
	OnNotify func(domain.Notification)
}

// WithBaseURL sets the backend API root
func WithBaseURL(url string) Option {
	return func(c *Config) error {
		c.BaseURL = url
		return nil
	}
}

// WithTimeout sets the backend call timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout < 0 {
			return NewError(ErrorTypeConfiguration, "timeout cannot be negative")
		}
		c.Timeout = timeout
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithCache sets the cache used for view-state persistence
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithViewStateTTL sets the lifetime of saved table preferences
func WithViewStateTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		c.ViewStateTTL = ttl
		return nil
	}
}

// WithDefaultPageSize sets the initial rows per page
func WithDefaultPageSize(size int) Option {
	return func(c *Config) error {
		if size < 1 {
			return NewError(ErrorTypeConfiguration, "page size must be at least 1").
				WithContext("page_size", size)
		}
		c.PageSize = size
		return nil
	}
}

// WithToastTTL sets how long notifications stay active
func WithToastTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		c.ToastTTL = ttl
		return nil
	}
}

// WithMetrics records backend calls, overlay state and toasts in m
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = m
		return nil
	}
}

// WithBusyObserver calls fn whenever the overlay is shown or hidden
func WithBusyObserver(fn func(visible bool)) Option {
	return func(c *Config) error {
		c.OnBusy = fn
		return nil
	}
}

// WithNotificationObserver calls fn for every new notification
func WithNotificationObserver(fn func(domain.Notification)) Option {
	return func(c *Config) error {
		c.OnNotify = fn
		return nil
	}
}

// ViewOption adjusts a table before it is rendered
type ViewOption func(*ViewOptions)

// ViewOptions holds the table adjustments of one List call.
// Zero values leave the current state untouched.
type ViewOptions struct {
	Page     int
	PageSize int
	Query    *string
	Status   string
	SortKey  string
	SortDir  tablesort.Direction
	Refresh  bool
}

// WithPage selects a page
func WithPage(page int) ViewOption {
	return func(o *ViewOptions) {
		o.Page = page
	}
}

// WithRowsPerPage changes the page size of this table
func WithRowsPerPage(size int) ViewOption {
	return func(o *ViewOptions) {
		o.PageSize = size
	}
}

// WithQuery sets the search text. An empty query clears the search.
func WithQuery(query string) ViewOption {
	return func(o *ViewOptions) {
		o.Query = &query
	}
}

// WithStatus selects an option of the resource's filter, such as overdue
// borrowings or unpaid fines. Tables without a filter ignore it.
func WithStatus(value string) ViewOption {
	return func(o *ViewOptions) {
		o.Status = value
	}
}

// WithSort sorts by key. An empty dir toggles the direction like a header click.
func WithSort(key string, dir tablesort.Direction) ViewOption {
	return func(o *ViewOptions) {
		o.SortKey = key
		o.SortDir = dir
	}
}

// WithRefresh refetches the records even when they are already loaded
func WithRefresh() ViewOption {
	return func(o *ViewOptions) {
		o.Refresh = true
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		BaseURL:      "http://localhost:5000",
		Timeout:      30 * time.Second,
		ViewStateTTL: 7 * 24 * time.Hour,
		PageSize:     10,
		ToastTTL:     notify.DefaultTTL,
	}
}
