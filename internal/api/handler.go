// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/steadypath/backend/internal/engine"
	"github.com/steadypath/backend/internal/store"
)

const dateLayout = "2006-01-02"

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store  *store.SQLiteStore
	engine *engine.Engine
	loc    *time.Location
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(s *store.SQLiteStore, e *engine.Engine, loc *time.Location, logger *slog.Logger) *Handler {
	return &Handler{
		store:  s,
		engine: e,
		loc:    loc,
		logger: logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v. Returns false (and writes
// a 400) when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

type validator interface {
	Validate() error
}

// decodeAndValidate decodes the body and runs the request's own
// validation. Returns false when the caller should bail out.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, entity+" not found", http.StatusNotFound)
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	http.Error(w, "internal error", http.StatusInternalServerError)
	return true
}

// userID extracts the caller's identity from the X-User-ID header set by
// the auth proxy in front of this service. Returns 0 (and writes a 401)
// when the header is missing or malformed.
func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		http.Error(w, "missing X-User-ID header", http.StatusUnauthorized)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid X-User-ID header", http.StatusUnauthorized)
		return 0, false
	}
	return id, true
}

// dayStart returns local midnight of the day containing t.
func (h *Handler) dayStart(t time.Time) time.Time {
	y, m, d := t.In(h.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, h.loc)
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// queryLimit parses a list limit with a sane default and cap.
func queryLimit(r *http.Request, def int) int {
	v := queryInt(r, "limit")
	if v == nil || *v <= 0 {
		return def
	}
	if *v > 500 {
		return 500
	}
	return *v
}
