// ABOUTME: View handlers for the panel API
// ABOUTME: Serves table views, resource metadata and record mutations for every resource

package handlers

import (
	"context"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"

	"library-admin/api/dto/mappers"
	"library-admin/api/dto/requests"
	"library-admin/api/dto/responses"
	"library-admin/core/domain"
	"library-admin/core/interfaces"
	"library-admin/core/screen"
	"library-admin/core/table"
	"library-admin/pkg/featureflags"
)

// ViewHandler handles the per-resource table and form endpoints
type ViewHandler struct {
	screens  *screen.Set
	notifier interfaces.Notifier
	store    interfaces.ViewStateStore
	flags    featureflags.Manager
	logger   interfaces.Logger

	mu       sync.Mutex
	loaded   map[string]bool
	restored map[string]bool
}

// NewViewHandler creates a new view handler. store and logger may be nil.
func NewViewHandler(screens *screen.Set, notifier interfaces.Notifier, store interfaces.ViewStateStore, flags featureflags.Manager, logger interfaces.Logger) *ViewHandler {
	if flags == nil {
		flags = featureflags.NewDefaultManager()
	}
	return &ViewHandler{
		screens:  screens,
		notifier: notifier,
		store:    store,
		flags:    flags,
		logger:   logger,
		loaded:   make(map[string]bool),
		restored: make(map[string]bool),
	}
}

// RegisterRoutes registers all view routes
func (h *ViewHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listResources",
		Method:      http.MethodGet,
		Path:        "/resources",
		Summary:     "List resources",
		Description: "Returns the registered resources with their columns and form fields",
		Tags:        []string{"Resources"},
	}, h.ListResources)

	huma.Register(api, huma.Operation{
		OperationID: "getTableView",
		Method:      http.MethodGet,
		Path:        "/views/{resource}",
		Summary:     "Render a table view",
		Description: "Applies search, filter, sort and page parameters and returns the rendered table",
		Tags:        []string{"Views"},
	}, h.GetView)

	huma.Register(api, huma.Operation{
		OperationID: "getFieldOptions",
		Method:      http.MethodGet,
		Path:        "/views/{resource}/options/{field}",
		Summary:     "List the choices of a form field",
		Description: "Returns the records of the referenced resource as value and label pairs",
		Tags:        []string{"Views"},
	}, h.GetOptions)

	huma.Register(api, huma.Operation{
		OperationID: "getRecord",
		Method:      http.MethodGet,
		Path:        "/views/{resource}/records/{id}",
		Summary:     "Load a record for editing",
		Tags:        []string{"Views"},
	}, h.GetRecord)

	huma.Register(api, huma.Operation{
		OperationID:   "createRecord",
		Method:        http.MethodPost,
		Path:          "/views/{resource}/records",
		Summary:       "Create a record",
		Description:   "Validates the form, creates the record and reloads the table",
		Tags:          []string{"Views"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateRecord)

	huma.Register(api, huma.Operation{
		OperationID: "updateRecord",
		Method:      http.MethodPut,
		Path:        "/views/{resource}/records/{id}",
		Summary:     "Update a record",
		Description: "Validates the form, updates the record and reloads the table",
		Tags:        []string{"Views"},
	}, h.UpdateRecord)

	huma.Register(api, huma.Operation{
		OperationID: "deleteRecord",
		Method:      http.MethodDelete,
		Path:        "/views/{resource}/records/{id}",
		Summary:     "Delete a record",
		Description: "Deletes the record once confirmed and reloads the table",
		Tags:        []string{"Views"},
	}, h.DeleteRecord)
}

// ListResourcesOutput defines the output for ListResources
type ListResourcesOutput struct {
	Body struct {
		Resources []responses.ResourceResponse `json:"resources" doc:"Registered resources"`
	}
}

// ListResources handles the GET /resources endpoint
func (h *ViewHandler) ListResources(ctx context.Context, input *struct{}) (*ListResourcesOutput, error) {
	output := &ListResourcesOutput{}
	output.Body.Resources = make([]responses.ResourceResponse, 0)
	for _, s := range h.screens.All() {
		output.Body.Resources = append(output.Body.Resources, mappers.ToResourceResponse(s.Resource()))
	}
	return output, nil
}

// GetViewInput defines the input for GetView
type GetViewInput struct {
	Resource string `path:"resource" doc:"Resource name, e.g. books"`
	requests.ViewParams
}

// GetViewOutput defines the output for GetView
type GetViewOutput struct {
	Body table.View
}

// GetView handles the GET /views/{resource} endpoint
func (h *ViewHandler) GetView(ctx context.Context, input *GetViewInput) (*GetViewOutput, error) {
	s, err := h.screens.Lookup(input.Resource)
	if err != nil {
		return nil, toHumaError(err)
	}

	h.restore(ctx, s)

	if input.Refresh || !h.isLoaded(input.Resource) {
		if err := s.Load(ctx); err != nil {
			return nil, toHumaError(err)
		}
		h.markLoaded(input.Resource)
	}

	if input.ViewParams.Apply(s.Table()) {
		h.persist(ctx, s)
	}

	return &GetViewOutput{Body: s.View()}, nil
}

// GetOptionsInput defines the input for GetOptions
type GetOptionsInput struct {
	Resource string `path:"resource" doc:"Resource name, e.g. borrowings"`
	Field    string `path:"field" doc:"Foreign-key form field, e.g. BookID"`
}

// GetOptionsOutput defines the output for GetOptions
type GetOptionsOutput struct {
	Body responses.OptionsResponse
}

// GetOptions handles the GET /views/{resource}/options/{field} endpoint
func (h *ViewHandler) GetOptions(ctx context.Context, input *GetOptionsInput) (*GetOptionsOutput, error) {
	options, err := h.screens.Options(ctx, input.Resource, input.Field)
	if err != nil {
		return nil, toHumaError(err)
	}

	s, err := h.screens.Lookup(input.Resource)
	if err != nil {
		return nil, toHumaError(err)
	}
	field, _ := s.Resource().Field(input.Field)
	return &GetOptionsOutput{Body: mappers.ToOptionsResponse(input.Resource, field, options)}, nil
}

// RecordInput identifies one record of a resource
type RecordInput struct {
	Resource string `path:"resource" doc:"Resource name, e.g. books"`
	ID       int    `path:"id" minimum:"1" doc:"Record identifier"`
}

// GetRecordOutput defines the output for GetRecord
type GetRecordOutput struct {
	Body domain.Record
}

// GetRecord handles the GET /views/{resource}/records/{id} endpoint
func (h *ViewHandler) GetRecord(ctx context.Context, input *RecordInput) (*GetRecordOutput, error) {
	s, err := h.screens.Lookup(input.Resource)
	if err != nil {
		return nil, toHumaError(err)
	}

	record, err := s.Edit(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &GetRecordOutput{Body: record}, nil
}

// CreateRecordInput defines the input for CreateRecord
type CreateRecordInput struct {
	Resource string        `path:"resource" doc:"Resource name, e.g. books"`
	Body     domain.Record `doc:"Form values keyed by field"`
}

// UpdateRecordInput defines the input for UpdateRecord
type UpdateRecordInput struct {
	Resource string        `path:"resource" doc:"Resource name, e.g. books"`
	ID       int           `path:"id" minimum:"1" doc:"Record identifier"`
	Body     domain.Record `doc:"Form values keyed by field"`
}

// MutationOutput defines the output for the mutation endpoints
type MutationOutput struct {
	Body responses.MutationResponse
}

// CreateRecord handles the POST /views/{resource}/records endpoint
func (h *ViewHandler) CreateRecord(ctx context.Context, input *CreateRecordInput) (*MutationOutput, error) {
	return h.save(ctx, input.Resource, 0, input.Body)
}

// UpdateRecord handles the PUT /views/{resource}/records/{id} endpoint
func (h *ViewHandler) UpdateRecord(ctx context.Context, input *UpdateRecordInput) (*MutationOutput, error) {
	return h.save(ctx, input.Resource, input.ID, input.Body)
}

func (h *ViewHandler) save(ctx context.Context, resource string, id int, form domain.Record) (*MutationOutput, error) {
	s, err := h.screens.Lookup(resource)
	if err != nil {
		return nil, toHumaError(err)
	}

	outcome, err := s.Submit(ctx, id, form)
	if err != nil {
		return nil, toHumaError(err)
	}
	h.setLoaded(resource, outcome.ReloadErr == nil)

	return &MutationOutput{Body: mappers.ToMutationResponse(outcome.Result, outcome.Notification)}, nil
}

// DeleteRecordInput defines the input for DeleteRecord
type DeleteRecordInput struct {
	Resource string `path:"resource" doc:"Resource name, e.g. books"`
	ID       int    `path:"id" minimum:"1" doc:"Record identifier"`
	Confirm  bool   `query:"confirm" doc:"Must be true to delete"`
}

// DeleteRecord handles the DELETE /views/{resource}/records/{id} endpoint
func (h *ViewHandler) DeleteRecord(ctx context.Context, input *DeleteRecordInput) (*MutationOutput, error) {
	s, err := h.screens.Lookup(input.Resource)
	if err != nil {
		return nil, toHumaError(err)
	}

	var prompt string
	outcome, err := s.Remove(ctx, input.ID, func(p string) bool {
		prompt = p
		return input.Confirm
	})
	if err != nil {
		return nil, toHumaError(err)
	}
	if outcome == nil {
		return nil, notConfirmed(prompt)
	}
	h.setLoaded(input.Resource, outcome.ReloadErr == nil)

	return &MutationOutput{Body: mappers.ToMutationResponse(outcome.Result, outcome.Notification)}, nil
}

func (h *ViewHandler) isLoaded(resource string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loaded[resource]
}

func (h *ViewHandler) markLoaded(resource string) {
	h.setLoaded(resource, true)
}

// setLoaded records whether the table holds the backend's current records.
// A failed reload leaves it stale so the next view refetches.
func (h *ViewHandler) setLoaded(resource string, loaded bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loaded[resource] = loaded
}

// restore applies saved preferences the first time a resource is viewed
func (h *ViewHandler) restore(ctx context.Context, s *screen.Screen) {
	if !h.viewStateEnabled(ctx) {
		return
	}

	name := s.Resource().Name
	h.mu.Lock()
	done := h.restored[name]
	h.restored[name] = true
	h.mu.Unlock()
	if done {
		return
	}

	prefs, err := h.store.Load(ctx, name)
	if err != nil {
		h.warn("Failed to load view state", name, err)
		return
	}
	s.Table().ApplyPrefs(prefs)
}

func (h *ViewHandler) persist(ctx context.Context, s *screen.Screen) {
	if !h.viewStateEnabled(ctx) {
		return
	}
	name := s.Resource().Name
	if err := h.store.Save(ctx, name, s.Table().Prefs()); err != nil {
		h.warn("Failed to save view state", name, err)
	}
}

func (h *ViewHandler) viewStateEnabled(ctx context.Context) bool {
	return h.store != nil && h.flags.IsEnabled(ctx, featureflags.ViewStateEnabled)
}

func (h *ViewHandler) warn(msg, resource string, err error) {
	if h.logger == nil {
		return
	}
	h.logger.Warn(msg, map[string]interface{}{
		"resource": resource,
		"error":    err.Error(),
	})
}
