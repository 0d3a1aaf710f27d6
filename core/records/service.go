// ABOUTME: Record service performs CRUD calls for one backend REST resource
// ABOUTME: Also exposes the duplicate books lookup

package records

import (
	"context"
	"fmt"
	"net/http"

	"library-admin/core/domain"
	"library-admin/core/interfaces"
)

// Service implements interfaces.RecordService for one resource
type Service struct {
	resource domain.Resource
	api      interfaces.APIClient
	logger   interfaces.Logger
}

// NewService creates a record service. logger may be nil.
func NewService(resource domain.Resource, api interfaces.APIClient, logger interfaces.Logger) *Service {
	return &Service{resource: resource, api: api, logger: logger}
}

// Resource returns the resource served
func (s *Service) Resource() domain.Resource {
	return s.resource
}

func (s *Service) collectionPath() string {
	return "/api/" + s.resource.Path
}

func (s *Service) itemPath(id int) string {
	return fmt.Sprintf("/api/%s/%d", s.resource.Path, id)
}

// List fetches every record of the resource
func (s *Service) List(ctx context.Context) ([]domain.Record, error) {
	var records []domain.Record
	if err := s.api.Get(ctx, s.collectionPath(), &records); err != nil {
		return nil, err
	}

	if dups := domain.DuplicateIDs(records, s.resource.IDField); len(dups) > 0 && s.logger != nil {
		s.logger.Warn("Backend returned duplicate record IDs", map[string]interface{}{
			"resource": s.resource.Name,
			"ids":      dups,
		})
	}

	return records, nil
}

// Get fetches one record
func (s *Service) Get(ctx context.Context, id int) (domain.Record, error) {
	var record domain.Record
	if err := s.api.Get(ctx, s.itemPath(id), &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Create posts a new record
func (s *Service) Create(ctx context.Context, record domain.Record) (*domain.MutationResult, error) {
	return s.mutate(ctx, s.collectionPath(), http.MethodPost, record)
}

// Update replaces the record with the given id
func (s *Service) Update(ctx context.Context, id int, record domain.Record) (*domain.MutationResult, error) {
	return s.mutate(ctx, s.itemPath(id), http.MethodPut, record)
}

// Delete removes the record with the given id
func (s *Service) Delete(ctx context.Context, id int) (*domain.MutationResult, error) {
	return s.mutate(ctx, s.itemPath(id), http.MethodDelete, nil)
}

func (s *Service) mutate(ctx context.Context, path, method string, body any) (*domain.MutationResult, error) {
	var result domain.MutationResult
	if err := s.api.Send(ctx, path, method, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DuplicateService implements interfaces.DuplicateFinder
type DuplicateService struct {
	api interfaces.APIClient
}

// NewDuplicateService creates a duplicate books lookup
func NewDuplicateService(api interfaces.APIClient) *DuplicateService {
	return &DuplicateService{api: api}
}

// Duplicates lists books sharing a title and author
func (d *DuplicateService) Duplicates(ctx context.Context) ([]domain.DuplicateGroup, error) {
	var groups []domain.DuplicateGroup
	if err := d.api.Get(ctx, "/api/books/duplicates", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

var (
	_ interfaces.RecordService   = (*Service)(nil)
	_ interfaces.DuplicateFinder = (*DuplicateService)(nil)
)
