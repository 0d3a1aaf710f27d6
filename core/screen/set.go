// ABOUTME: Screen set holding one entity screen per registered resource
// ABOUTME: Builds record services from the shared API client and looks screens up by name

package screen

import (
	"context"
	"fmt"

	"library-admin/core/domain"
	coreerrors "library-admin/core/errors"
	"library-admin/core/interfaces"
	"library-admin/core/records"
)

// Set is the collection of screens behind the panel, in registry order
type Set struct {
	screens map[string]*Screen
	order   []string
}

// NewSet creates a screen for every registered resource
func NewSet(api interfaces.APIClient, notifier interfaces.Notifier, logger interfaces.Logger, opts ...Option) *Set {
	set := &Set{screens: make(map[string]*Screen)}
	if logger != nil {
		opts = append([]Option{WithLogger(logger)}, opts...)
	}
	for _, resource := range domain.Resources() {
		service := records.NewService(resource, api, logger)
		set.Add(New(service, notifier, opts...))
	}
	return set
}

// Add registers s under its resource name, replacing any previous screen
func (set *Set) Add(s *Screen) {
	name := s.Resource().Name
	if _, exists := set.screens[name]; !exists {
		set.order = append(set.order, name)
	}
	set.screens[name] = s
}

// Lookup returns the screen for resource name
func (set *Set) Lookup(name string) (*Screen, error) {
	s, ok := set.screens[name]
	if !ok {
		return nil, &coreerrors.NotFoundError{Resource: "resource", ID: name}
	}
	return s, nil
}

// All returns every screen in registry order
func (set *Set) All() []*Screen {
	out := make([]*Screen, 0, len(set.order))
	for _, name := range set.order {
		out = append(out, set.screens[name])
	}
	return out
}

// Options lists the selectable values of the foreign-key field of resource,
// read from the referenced resource's records
func (set *Set) Options(ctx context.Context, resource, field string) ([]domain.Option, error) {
	s, err := set.Lookup(resource)
	if err != nil {
		return nil, err
	}
	f, ok := s.Resource().Field(field)
	if !ok || f.Source == nil {
		return nil, &coreerrors.NotFoundError{Resource: "option list", ID: resource + "." + field}
	}
	source, err := set.Lookup(f.Source.Resource)
	if err != nil {
		return nil, err
	}

	records, err := source.service.List(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("Failed to load options", map[string]interface{}{
				"resource": resource,
				"field":    field,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	idField := source.Resource().IDField
	options := make([]domain.Option, 0, len(records))
	for _, r := range records {
		if f.Source.Include != nil && !f.Source.Include(r) {
			continue
		}
		id, ok := r.ID(idField)
		if !ok {
			continue
		}
		label := fmt.Sprint(id)
		if f.Source.Label != nil {
			label = f.Source.Label(r)
		}
		options = append(options, domain.Option{Value: id, Label: label})
	}
	return options, nil
}
