// ABOUTME: Main client for the library admin toolkit
// ABOUTME: Wires the request helper, feedback, screens and view state behind one API

package adminlib

import (
	"context"
	"io"
	"net/url"
	"strings"
	"sync"

	"library-admin/core/busy"
	"library-admin/core/dashboard"
	"library-admin/core/domain"
	"library-admin/core/interfaces"
	"library-admin/core/notify"
	"library-admin/core/records"
	"library-admin/core/request"
	"library-admin/core/screen"
	"library-admin/core/table"
	"library-admin/core/viewstate"
)

// Client is the main entry point for the admin toolkit
type Client struct {
	helper     *request.Helper
	notifier   *notify.Center
	overlay    *busy.Overlay
	screens    *screen.Set
	dashboard  *screen.Dashboard
	duplicates interfaces.DuplicateFinder
	store      *viewstate.Store

	config Config

	mu       sync.Mutex
	loaded   map[string]bool
	restored map[string]bool
	closed   bool
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	if config.Logger == nil {
		config.Logger = DefaultLogger()
	}
	if config.HTTPClient == nil {
		config.HTTPClient = buildHTTPClient(&config)
	}

	overlay := busy.NewOverlay(busyObserver(config))
	center := notify.NewCenter(
		notify.WithTTL(config.ToastTTL),
		notify.WithLogger(config.Logger),
		notify.WithObserver(notifyObserver(config)),
	)

	helper := request.NewHelper(config.BaseURL, interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Cache:      config.Cache,
		Logger:     config.Logger,
		Notifier:   center,
		Busy:       overlay,
	})

	client := &Client{
		helper:     helper,
		notifier:   center,
		overlay:    overlay,
		screens:    screen.NewSet(helper, center, config.Logger, screen.WithPageSize(config.PageSize)),
		dashboard:  screen.NewDashboard(dashboard.NewService(helper), center),
		duplicates: records.NewDuplicateService(helper),
		config:     config,
		loaded:     make(map[string]bool),
		restored:   make(map[string]bool),
	}
	if config.Cache != nil {
		client.store = viewstate.NewStore(config.Cache, config.ViewStateTTL, config.Logger)
	}

	return client, nil
}

func busyObserver(config Config) func(bool) {
	if config.Metrics == nil {
		return config.OnBusy
	}
	return func(visible bool) {
		config.Metrics.SetBusy(visible)
		if config.OnBusy != nil {
			config.OnBusy(visible)
		}
	}
}

func notifyObserver(config Config) func(domain.Notification) {
	if config.Metrics == nil {
		return config.OnNotify
	}
	return func(n domain.Notification) {
		config.Metrics.ObserveNotification(n)
		if config.OnNotify != nil {
			config.OnNotify(n)
		}
	}
}

// Close releases the view-state cache
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	if closer, ok := c.config.Cache.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c *Client) checkOpen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// Resources lists the registered resources
func (c *Client) Resources() []Resource {
	return domain.Resources()
}

// Screen returns the screen behind resource
func (c *Client) Screen(resource string) (*screen.Screen, error) {
	s, err := c.screens.Lookup(resource)
	if err != nil {
		return nil, classify(err)
	}
	return s, nil
}

// Screens returns every resource screen
func (c *Client) Screens() *screen.Set {
	return c.screens
}

// DashboardScreen returns the dashboard controller
func (c *Client) DashboardScreen() *screen.Dashboard {
	return c.dashboard
}

// DuplicateFinder returns the duplicate books lookup
func (c *Client) DuplicateFinder() interfaces.DuplicateFinder {
	return c.duplicates
}

// Notifier returns the notification centre shared by every screen
func (c *Client) Notifier() *notify.Center {
	return c.notifier
}

// Overlay returns the busy overlay toggled around backend calls
func (c *Client) Overlay() *busy.Overlay {
	return c.overlay
}

// ViewStateStore returns the preference store, or nil without a cache
func (c *Client) ViewStateStore() interfaces.ViewStateStore {
	if c.store == nil {
		return nil
	}
	return c.store
}

// Notifications returns the active toasts, oldest first
func (c *Client) Notifications() []Notification {
	return c.notifier.Active()
}

// Busy reports whether a backend call is in flight
func (c *Client) Busy() bool {
	return c.overlay.Visible()
}

// List renders a table of resource. Records are fetched on first use and
// whenever WithRefresh is given; saved preferences are restored once and
// updated when the options change them.
func (c *Client) List(ctx context.Context, resource string, opts ...ViewOption) (*TableView, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	s, err := c.Screen(resource)
	if err != nil {
		return nil, err
	}

	options := ViewOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	c.restore(ctx, s)

	if options.Refresh || !c.isLoaded(resource) {
		if err := s.Load(ctx); err != nil {
			return nil, classify(err)
		}
		c.markLoaded(resource)
	}

	if applyView(s.Table(), options) {
		c.persist(ctx, s)
	}

	view := s.View()
	return &view, nil
}

// applyView changes state according to options and reports whether the
// saved preferences changed
func applyView(state *table.State, options ViewOptions) bool {
	before := state.Prefs()

	if options.PageSize > 0 {
		state.SetPageSize(options.PageSize)
	}
	if options.Query != nil {
		state.SetQuery(strings.TrimSpace(*options.Query))
	}
	if options.Status != "" {
		state.SetStatus(options.Status)
	}
	switch {
	case options.SortKey != "" && options.SortDir != "":
		state.SetSort(options.SortKey, options.SortDir)
	case options.SortKey != "":
		state.ToggleSort(options.SortKey)
	}
	if options.Page > 0 {
		state.SetPage(options.Page)
	}

	return state.Prefs() != before
}

// Get loads one record for editing
func (c *Client) Get(ctx context.Context, resource string, id int) (Record, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	s, err := c.Screen(resource)
	if err != nil {
		return nil, err
	}
	record, err := s.Edit(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return record, nil
}

// Save validates form and creates the record, or updates record id when id
// is not 0. The table is reloaded afterwards.
func (c *Client) Save(ctx context.Context, resource string, id int, form Record) (*MutationResult, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	s, err := c.Screen(resource)
	if err != nil {
		return nil, err
	}
	outcome, err := s.Submit(ctx, id, form)
	if err != nil {
		return nil, classify(err)
	}
	c.setLoaded(resource, outcome.ReloadErr == nil)
	return outcome.Result, nil
}

// Delete removes record id once confirm accepts the prompt. A nil confirm
// deletes without asking. Returns false when the user declined.
func (c *Client) Delete(ctx context.Context, resource string, id int, confirm screen.ConfirmFunc) (bool, error) {
	if err := c.checkOpen(); err != nil {
		return false, err
	}
	s, err := c.Screen(resource)
	if err != nil {
		return false, err
	}
	outcome, err := s.Remove(ctx, id, confirm)
	if err != nil {
		return false, classify(err)
	}
	if outcome == nil {
		return false, nil
	}
	c.setLoaded(resource, outcome.ReloadErr == nil)
	return true, nil
}

// Options lists the choices of a foreign-key form field, such as the books
// with copies left for a new borrowing
func (c *Client) Options(ctx context.Context, resource, field string) ([]FieldOption, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	options, err := c.screens.Options(ctx, resource, field)
	if err != nil {
		return nil, classify(err)
	}
	return options, nil
}

// Dashboard fetches and renders the dashboard
func (c *Client) Dashboard(ctx context.Context) (*DashboardView, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	view, err := c.dashboard.Load(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return view, nil
}

// Duplicates lists books sharing a title and author
func (c *Client) Duplicates(ctx context.Context) ([]DuplicateGroup, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	groups, err := screen.Duplicates(ctx, c.duplicates, c.notifier)
	if err != nil {
		return nil, classify(err)
	}
	return groups, nil
}

func (c *Client) isLoaded(resource string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded[resource]
}

func (c *Client) markLoaded(resource string) {
	c.setLoaded(resource, true)
}

// setLoaded records whether the table holds fresh records. A failed reload
// clears it so the next List refetches.
func (c *Client) setLoaded(resource string, loaded bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded[resource] = loaded
}

func (c *Client) restore(ctx context.Context, s *screen.Screen) {
	if c.store == nil {
		return
	}
	name := s.Resource().Name

	c.mu.Lock()
	done := c.restored[name]
	c.restored[name] = true
	c.mu.Unlock()
	if done {
		return
	}

	prefs, err := c.store.Load(ctx, name)
	if err != nil {
		c.config.Logger.Warn("Failed to load view state", map[string]interface{}{
			"resource": name,
			"error":    err.Error(),
		})
		return
	}
	s.Table().ApplyPrefs(prefs)
}

func (c *Client) persist(ctx context.Context, s *screen.Screen) {
	if c.store == nil {
		return
	}
	name := s.Resource().Name
	if err := c.store.Save(ctx, name, s.Table().Prefs()); err != nil {
		c.config.Logger.Warn("Failed to save view state", map[string]interface{}{
			"resource": name,
			"error":    err.Error(),
		})
	}
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.BaseURL) == "" {
		return NewError(ErrorTypeConfiguration, "backend URL is required")
	}

	u, err := url.Parse(config.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return NewError(ErrorTypeConfiguration, "backend URL must be absolute").
			WithContext("url", config.BaseURL)
	}

	if config.PageSize < 1 {
		return NewError(ErrorTypeConfiguration, "page size must be at least 1")
	}

	if config.ToastTTL <= 0 {
		return NewError(ErrorTypeConfiguration, "toast TTL must be positive")
	}

	return nil
}
