// ABOUTME: Entity screen controller for one resource
// ABOUTME: Loads, edits, saves and deletes records, reporting outcomes through the notifier

package screen

import (
	"context"
	"fmt"
	"sync"
	"time"

	"library-admin/core/domain"
	coreerrors "library-admin/core/errors"
	"library-admin/core/interfaces"
	"library-admin/core/pagination"
	"library-admin/core/table"
)

// ConfirmFunc asks the user to confirm prompt
type ConfirmFunc func(prompt string) bool

// Outcome describes a completed mutation
type Outcome struct {
	// Result is the backend reply
	Result *domain.MutationResult

	// Notification is the toast the mutation produced
	Notification domain.Notification

	// ReloadErr is set when the table could not be refreshed afterwards.
	// The table then still holds the records from before the mutation.
	ReloadErr error
}

// Screen is the controller behind one resource page.
// Errors are reported through the notifier and returned; they are never fatal.
type Screen struct {
	service  interfaces.RecordService
	notifier interfaces.Notifier
	logger   interfaces.Logger
	table    *table.State
	now      func() time.Time

	mu        sync.Mutex
	currentID int
	editing   domain.Record
}

// Option configures a Screen
type Option func(*Screen)

// WithPageSize sets the table page size
func WithPageSize(size int) Option {
	return func(s *Screen) {
		s.table.SetPageSize(size)
	}
}

// WithLogger sets the logger
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Screen) {
		s.logger = logger
	}
}

// WithClock overrides the clock used for rendering
func WithClock(now func() time.Time) Option {
	return func(s *Screen) {
		s.now = now
	}
}

// New creates a screen for service's resource
func New(service interfaces.RecordService, notifier interfaces.Notifier, opts ...Option) *Screen {
	s := &Screen{
		service:  service,
		notifier: notifier,
		table:    table.NewState(service.Resource(), pagination.DefaultPageSize),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resource returns the screen's resource
func (s *Screen) Resource() domain.Resource {
	return s.service.Resource()
}

// Table returns the table state
func (s *Screen) Table() *table.State {
	return s.table
}

// View renders the table at the current time
func (s *Screen) View() table.View {
	return s.table.Render(s.now())
}

// Load fetches every record and replaces the table contents
func (s *Screen) Load(ctx context.Context) error {
	records, err := s.service.List(ctx)
	if err != nil {
		s.report(err, fmt.Sprintf("Failed to load %s", s.Resource().PluralNoun()))
		return err
	}
	s.table.SetRecords(records)
	return nil
}

// Edit fetches one record for the form and makes it the current record
func (s *Screen) Edit(ctx context.Context, id int) (domain.Record, error) {
	record, err := s.service.Get(ctx, id)
	if err != nil {
		s.report(err, fmt.Sprintf("Failed to load %s details", s.Resource().Singular))
		return nil, err
	}

	s.mu.Lock()
	s.currentID = id
	s.editing = record
	s.mu.Unlock()
	return record, nil
}

// Reset clears the current record so the next Save creates one
func (s *Screen) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentID = 0
	s.editing = nil
}

// Current returns the id of the record being edited
func (s *Screen) Current() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID, s.currentID != 0
}

// Save validates form, then creates or updates the current record and reloads
func (s *Screen) Save(ctx context.Context, form domain.Record) (*domain.MutationResult, error) {
	id, editing := s.Current()
	return s.save(ctx, id, editing, form)
}

// SaveRecord saves form as record id without going through Edit.
// An id of 0 creates a new record.
func (s *Screen) SaveRecord(ctx context.Context, id int, form domain.Record) (*domain.MutationResult, error) {
	outcome, err := s.Submit(ctx, id, form)
	if err != nil {
		return nil, err
	}
	return outcome.Result, nil
}

// Submit is SaveRecord reporting the produced toast and the reload result
func (s *Screen) Submit(ctx context.Context, id int, form domain.Record) (*Outcome, error) {
	return s.submit(ctx, id, id != 0, form)
}

func (s *Screen) save(ctx context.Context, id int, editing bool, form domain.Record) (*domain.MutationResult, error) {
	outcome, err := s.submit(ctx, id, editing, form)
	if err != nil {
		return nil, err
	}
	return outcome.Result, nil
}

func (s *Screen) submit(ctx context.Context, id int, editing bool, form domain.Record) (*Outcome, error) {
	resource := s.Resource()
	if err := Validate(resource, form); err != nil {
		s.notifier.Notify(InvalidFormMessage, domain.KindError)
		return nil, err
	}
	payload := Normalize(resource, form)

	var (
		result *domain.MutationResult
		err    error
		verb   string
	)
	if editing {
		result, err = s.service.Update(ctx, id, payload)
		verb = "updated"
	} else {
		result, err = s.service.Create(ctx, payload)
		verb = "added"
	}
	if err != nil {
		s.report(err, "")
		return nil, err
	}

	note := s.notifier.Notify(successMessage(result, resource.SingularTitle(), verb), domain.KindSuccess)
	s.Reset()
	return &Outcome{Result: result, Notification: note, ReloadErr: s.Load(ctx)}, nil
}

// Delete asks confirm and, when accepted, deletes the record and reloads.
// Returns false when the user declined.
func (s *Screen) Delete(ctx context.Context, id int, confirm ConfirmFunc) (bool, error) {
	outcome, err := s.Remove(ctx, id, confirm)
	return outcome != nil, err
}

// Remove is Delete reporting the produced toast and the reload result.
// A nil Outcome and error mean the user declined.
func (s *Screen) Remove(ctx context.Context, id int, confirm ConfirmFunc) (*Outcome, error) {
	resource := s.Resource()
	if confirm != nil && !confirm(fmt.Sprintf("Are you sure you want to delete this %s?", resource.Singular)) {
		return nil, nil
	}

	result, err := s.service.Delete(ctx, id)
	if err != nil {
		s.report(err, "")
		return nil, err
	}

	note := s.notifier.Notify(successMessage(result, resource.SingularTitle(), "deleted"), domain.KindSuccess)
	if current, ok := s.Current(); ok && current == id {
		s.Reset()
	}
	return &Outcome{Result: result, Notification: note, ReloadErr: s.Load(ctx)}, nil
}

// report notifies the user of err. An empty fallback shows err's own message.
func (s *Screen) report(err error, fallback string) {
	message := fallback
	if message == "" {
		message = coreerrors.Message(err)
	}
	s.notifier.Notify(message, domain.KindError)

	if s.logger != nil {
		s.logger.Error("Screen operation failed", map[string]interface{}{
			"resource": s.Resource().Name,
			"error":    err.Error(),
		})
	}
}

// successMessage prefers the server's message over the local wording
func successMessage(result *domain.MutationResult, title, verb string) string {
	if result != nil && result.Message != "" {
		return result.Message
	}
	return fmt.Sprintf("%s %s successfully", title, verb)
}
