package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/steadypath/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type ThoughtRequest struct {
	Situation   string   `json:"situation" example:"Saw a betting ad on the tram"`
	Thought     string   `json:"thought" example:"One bet won't hurt"`
	Emotion     string   `json:"emotion" example:"restless"`
	Intensity   int      `json:"intensity" example:"7"`
	Distortions []string `json:"distortions,omitempty" example:"minimization"`
	Reframe     string   `json:"reframe,omitempty"`
}

func (r *ThoughtRequest) Validate() error {
	if r.Situation == "" {
		return errors.New("situation is required")
	}
	if r.Thought == "" {
		return errors.New("thought is required")
	}
	if r.Intensity < 0 || r.Intensity > 10 {
		return errors.New("intensity must be between 0 and 10")
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// addThought records one thought-diary entry.
// @Summary      Add thought entry
// @Tags         Diary
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string          true  "User identity"
// @Param        body       body    ThoughtRequest  true  "Thought record"
// @Success      201  {object}  store.ThoughtEntry
// @Failure      400  {object}  map[string]string
// @Router       /diary/thoughts [post]
func (h *Handler) addThought(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req ThoughtRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	entry := &store.ThoughtEntry{
		UserID:      uid,
		Situation:   req.Situation,
		Thought:     req.Thought,
		Emotion:     req.Emotion,
		Intensity:   req.Intensity,
		Distortions: req.Distortions,
		Reframe:     req.Reframe,
		CreatedAt:   time.Now(),
	}
	if err := h.store.AddThoughtEntry(r.Context(), entry); h.handleStoreError(w, err, "thought entry") {
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// listThoughts returns recent thought-diary entries, newest first.
// @Summary      List thought entries
// @Tags         Diary
// @Produce      json
// @Param        X-User-ID  header  string  true   "User identity"
// @Param        limit      query   int     false  "Max results (default 50)"
// @Success      200  {array}  store.ThoughtEntry
// @Router       /diary/thoughts [get]
func (h *Handler) listThoughts(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	entries, err := h.store.ListThoughtEntries(r.Context(), uid, queryLimit(r, 50))
	if h.handleStoreError(w, err, "thought entries") {
		return
	}
	respondJSON(w, http.StatusOK, entries)
}
