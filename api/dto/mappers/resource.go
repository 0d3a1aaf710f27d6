// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"library-admin/api/dto/responses"
	"library-admin/core/domain"
)

// ToResourceResponse converts a domain Resource to a ResourceResponse DTO
func ToResourceResponse(r domain.Resource) responses.ResourceResponse {
	response := responses.ResourceResponse{
		Name:     r.Name,
		Label:    r.Label,
		Singular: r.Singular,
		IDField:  r.IDField,
		Columns:  make([]responses.ColumnResponse, 0, len(r.Columns)),
		Fields:   make([]responses.FieldResponse, 0, len(r.Fields)),
		Filter:   toFilterResponse(r.Filter),
	}

	for _, c := range r.Columns {
		response.Columns = append(response.Columns, responses.ColumnResponse{
			Key:   c.Key,
			Label: c.Label,
			Kind:  string(c.Kind),
		})
	}

	for _, f := range r.Fields {
		field := responses.FieldResponse{
			Key:      f.Key,
			Label:    f.Label,
			Kind:     string(f.Kind),
			Required: f.Required,
		}
		if f.Source != nil {
			field.Source = f.Source.Resource
		}
		response.Fields = append(response.Fields, field)
	}

	return response
}

func toFilterResponse(f *domain.Filter) *responses.FilterResponse {
	if f == nil {
		return nil
	}
	response := &responses.FilterResponse{
		Label:   f.Label,
		Default: f.Default(),
		Options: make([]responses.FilterOptionResponse, 0, len(f.Options)),
	}
	for _, o := range f.Options {
		response.Options = append(response.Options, responses.FilterOptionResponse{
			Value: o.Value,
			Label: o.Label,
		})
	}
	return response
}

// ToOptionsResponse wraps the option list of a foreign-key field
func ToOptionsResponse(resource string, field domain.Field, options []domain.Option) responses.OptionsResponse {
	response := responses.OptionsResponse{
		Resource: resource,
		Field:    field.Key,
		Options:  options,
	}
	if field.Source != nil {
		response.Source = field.Source.Resource
	}
	if response.Options == nil {
		response.Options = []domain.Option{}
	}
	return response
}

// ToMutationResponse converts a mutation result and the toast it produced
func ToMutationResponse(result *domain.MutationResult, note domain.Notification) responses.MutationResponse {
	response := responses.MutationResponse{Notification: note}
	if result != nil {
		response.Message = result.Message
		response.ID = result.ID
	}
	return response
}
