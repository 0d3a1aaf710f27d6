// ABOUTME: Feedback handlers exposing toast notifications and the busy overlay
// ABOUTME: Lets thin clients poll and dismiss messages and mirror the loading state

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"library-admin/api/dto/responses"
	"library-admin/core/domain"
	"library-admin/core/interfaces"
)

// FeedbackHandler handles notification and busy state endpoints
type FeedbackHandler struct {
	notifier interfaces.Notifier
	busy     interfaces.BusyIndicator
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(notifier interfaces.Notifier, busy interfaces.BusyIndicator) *FeedbackHandler {
	return &FeedbackHandler{notifier: notifier, busy: busy}
}

// RegisterRoutes registers feedback routes
func (h *FeedbackHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listNotifications",
		Method:      http.MethodGet,
		Path:        "/notifications",
		Summary:     "List active notifications",
		Tags:        []string{"Feedback"},
	}, h.ListNotifications)

	huma.Register(api, huma.Operation{
		OperationID:   "dismissNotification",
		Method:        http.MethodDelete,
		Path:          "/notifications/{id}",
		Summary:       "Dismiss a notification",
		Tags:          []string{"Feedback"},
		DefaultStatus: http.StatusNoContent,
	}, h.DismissNotification)

	huma.Register(api, huma.Operation{
		OperationID: "getBusy",
		Method:      http.MethodGet,
		Path:        "/busy",
		Summary:     "Report the busy overlay",
		Tags:        []string{"Feedback"},
	}, h.GetBusy)
}

// NotificationsOutput defines the output for ListNotifications
type NotificationsOutput struct {
	Body responses.NotificationsResponse
}

// ListNotifications handles the GET /notifications endpoint
func (h *FeedbackHandler) ListNotifications(ctx context.Context, input *struct{}) (*NotificationsOutput, error) {
	active := h.notifier.Active()
	if active == nil {
		active = []domain.Notification{}
	}
	return &NotificationsOutput{Body: responses.NotificationsResponse{Notifications: active}}, nil
}

// DismissInput defines the input for DismissNotification
type DismissInput struct {
	ID string `path:"id" doc:"Notification identifier"`
}

// DismissNotification handles the DELETE /notifications/{id} endpoint
func (h *FeedbackHandler) DismissNotification(ctx context.Context, input *DismissInput) (*struct{}, error) {
	if !h.notifier.Dismiss(input.ID) {
		return nil, huma.Error404NotFound("Notification not found or already expired")
	}
	return nil, nil
}

// BusyOutput defines the output for GetBusy
type BusyOutput struct {
	Body responses.BusyResponse
}

// GetBusy handles the GET /busy endpoint
func (h *FeedbackHandler) GetBusy(ctx context.Context, input *struct{}) (*BusyOutput, error) {
	return &BusyOutput{Body: responses.BusyResponse{Visible: h.busy.Visible()}}, nil
}
