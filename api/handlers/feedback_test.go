package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"library-admin/core/busy"
	"library-admin/core/domain"
	"library-admin/core/notify"
)

func TestFeedbackHandler_ListAndDismiss(t *testing.T) {
	center := notify.NewCenter()
	h := NewFeedbackHandler(center, busy.NewOverlay(nil))
	_, api := humatest.New(t)
	h.RegisterRoutes(api)

	n := center.Notify("Member added successfully", domain.KindSuccess)
	center.Notify("Failed to load fines", domain.KindError)

	resp := api.Get("/notifications")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	var body struct {
		Notifications []domain.Notification `json:"notifications"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Notifications) != 2 {
		t.Fatalf("notifications = %d, want 2", len(body.Notifications))
	}

	if resp := api.Delete("/notifications/" + n.ID); resp.Code != http.StatusNoContent {
		t.Errorf("dismiss status = %d, want %d", resp.Code, http.StatusNoContent)
	}
	if resp := api.Delete("/notifications/" + n.ID); resp.Code != http.StatusNotFound {
		t.Errorf("second dismiss status = %d, want %d", resp.Code, http.StatusNotFound)
	}
	if got := len(center.Active()); got != 1 {
		t.Errorf("active = %d, want 1", got)
	}
}

func TestFeedbackHandler_EmptyNotifications(t *testing.T) {
	h := NewFeedbackHandler(notify.NewCenter(), busy.NewOverlay(nil))
	_, api := humatest.New(t)
	h.RegisterRoutes(api)

	var body struct {
		Notifications []domain.Notification `json:"notifications"`
	}
	resp := api.Get("/notifications")
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Notifications == nil {
		t.Error("notifications should encode as an empty list")
	}
}

func TestFeedbackHandler_GetBusy(t *testing.T) {
	overlay := busy.NewOverlay(nil)
	h := NewFeedbackHandler(notify.NewCenter(), overlay)
	_, api := humatest.New(t)
	h.RegisterRoutes(api)

	var body struct {
		Visible bool `json:"visible"`
	}
	_ = json.Unmarshal(api.Get("/busy").Body.Bytes(), &body)
	if body.Visible {
		t.Error("overlay visible before any request")
	}

	overlay.Show()
	_ = json.Unmarshal(api.Get("/busy").Body.Bytes(), &body)
	if !body.Visible {
		t.Error("overlay hidden while a request is in flight")
	}
}
