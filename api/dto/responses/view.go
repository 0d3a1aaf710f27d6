// ABOUTME: Response DTOs for the panel view endpoints
// ABOUTME: Wraps registry metadata, mutations and UI feedback state

package responses

import "library-admin/core/domain"

// ColumnResponse describes one table column
type ColumnResponse struct {
	Key   string `json:"key" doc:"Record field"`
	Label string `json:"label" doc:"Header text"`
	Kind  string `json:"kind" doc:"Rendering kind"`
}

// FieldResponse describes one form input
type FieldResponse struct {
	Key      string `json:"key" doc:"Record field"`
	Label    string `json:"label" doc:"Input label"`
	Kind     string `json:"kind" doc:"Input kind"`
	Required bool   `json:"required" doc:"Whether the field must be filled"`
	Source   string `json:"source,omitempty" doc:"Resource whose records fill the field's options"`
}

// FilterOptionResponse is one filter choice
type FilterOptionResponse struct {
	Value string `json:"value" doc:"Value for the status query parameter"`
	Label string `json:"label" doc:"Button text"`
}

// FilterResponse describes the filter shown above a table
type FilterResponse struct {
	Label   string                 `json:"label" doc:"Filter name"`
	Default string                 `json:"default" doc:"Value selected initially"`
	Options []FilterOptionResponse `json:"options" doc:"Mutually exclusive choices"`
}

// ResourceResponse describes one registered resource
type ResourceResponse struct {
	Name     string           `json:"name" doc:"Registry key"`
	Label    string           `json:"label" doc:"Display name"`
	Singular string           `json:"singular" doc:"Singular noun used in messages"`
	IDField  string           `json:"id_field" doc:"Identifier field"`
	Columns  []ColumnResponse `json:"columns" doc:"Table columns"`
	Fields   []FieldResponse  `json:"fields" doc:"Form fields"`
	Filter   *FilterResponse  `json:"filter,omitempty" doc:"Row filter, absent when the table has none"`
}

// OptionsResponse lists the choices of a foreign-key form field
type OptionsResponse struct {
	Resource string          `json:"resource" doc:"Resource owning the field"`
	Field    string          `json:"field" doc:"Form field"`
	Source   string          `json:"source" doc:"Resource the options are read from"`
	Options  []domain.Option `json:"options" doc:"Selectable identifiers with display labels"`
}

// MutationResponse is the reply to create, update and delete calls
type MutationResponse struct {
	Message      string              `json:"message" doc:"Backend message"`
	ID           int                 `json:"id,omitempty" doc:"Identifier of the created record"`
	Notification domain.Notification `json:"notification" doc:"Toast produced by this mutation"`
}

// BusyResponse reports the busy overlay
type BusyResponse struct {
	Visible bool `json:"visible" doc:"Whether the blocking overlay is shown"`
}

// NotificationsResponse lists active toasts
type NotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications" doc:"Unexpired toasts, oldest first"`
}
