package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/steadypath/backend/internal/engine"
	"github.com/steadypath/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

var sosTechniques = map[string]bool{
	"breathing":  true,
	"grounding":  true,
	"cold_water": true,
	"delay":      true,
	"call":       true,
	"other":      true,
}

type SOSEventRequest struct {
	Technique string `json:"technique" example:"breathing"`
}

func (r *SOSEventRequest) Validate() error {
	if !sosTechniques[r.Technique] {
		return errors.New("unknown technique")
	}
	return nil
}

type SOSEventResponse struct {
	Event *store.SOSEvent `json:"event"`
	// Reaching for SOS always surfaces the helplines.
	Actions []string `json:"actions"`
}

type ReminderSettingsRequest struct {
	Enabled      *bool   `json:"enabled,omitempty"`
	Hour         *int    `json:"hour,omitempty" example:"20"`
	NotifyTarget *string `json:"notify_target,omitempty"`
}

func (r *ReminderSettingsRequest) Validate() error {
	if r.Hour != nil && (*r.Hour < 0 || *r.Hour > 23) {
		return errors.New("hour must be between 0 and 23")
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// logSOSEvent records that the user reached for an SOS technique.
// @Summary      Log SOS event
// @Tags         SOS
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string           true  "User identity"
// @Param        body       body    SOSEventRequest  true  "Technique used"
// @Success      201  {object}  SOSEventResponse
// @Failure      400  {object}  map[string]string
// @Router       /sos/events [post]
func (h *Handler) logSOSEvent(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req SOSEventRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	event := &store.SOSEvent{
		UserID:    uid,
		Technique: req.Technique,
		CreatedAt: time.Now(),
	}
	if err := h.store.LogSOSEvent(r.Context(), event); h.handleStoreError(w, err, "sos event") {
		return
	}
	respondJSON(w, http.StatusCreated, SOSEventResponse{
		Event:   event,
		Actions: []string{engine.ActionShowHelplines},
	})
}

// getReminderSettings returns the user's daily reminder configuration.
// @Summary      Get reminder settings
// @Tags         Reminders
// @Produce      json
// @Param        X-User-ID  header  string  true  "User identity"
// @Success      200  {object}  store.ReminderSettings
// @Router       /reminders/settings [get]
func (h *Handler) getReminderSettings(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	rs, err := h.store.GetReminderSettings(r.Context(), uid)
	if h.handleStoreError(w, err, "reminder settings") {
		return
	}
	respondJSON(w, http.StatusOK, rs)
}

// updateReminderSettings changes the user's daily reminder configuration.
// @Summary      Update reminder settings
// @Tags         Reminders
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string                   true  "User identity"
// @Param        body       body    ReminderSettingsRequest  true  "Fields to change"
// @Success      200  {object}  store.ReminderSettings
// @Failure      400  {object}  map[string]string
// @Router       /reminders/settings [put]
func (h *Handler) updateReminderSettings(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req ReminderSettingsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	err := h.store.UpdateReminderSettings(r.Context(), uid, req.Enabled, req.Hour, req.NotifyTarget)
	if h.handleStoreError(w, err, "reminder settings") {
		return
	}

	rs, err := h.store.GetReminderSettings(r.Context(), uid)
	if h.handleStoreError(w, err, "reminder settings") {
		return
	}
	respondJSON(w, http.StatusOK, rs)
}
