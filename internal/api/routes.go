// internal/api/routes.go
package api

import "net/http"

// RegisterRoutes wires every endpoint onto the mux. All routes expect
// the X-User-ID header; identity itself is handled upstream.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Tests
	mux.HandleFunc("GET /tests/next", h.nextTest)
	mux.HandleFunc("POST /tests/submit", h.submitTest)
	mux.HandleFunc("POST /tests/onboarding/track", h.selectTrack)
	mux.HandleFunc("GET /tests/profile", h.getProfile)
	mux.HandleFunc("GET /tests/history", h.listResults)

	// Check-ins and streaks
	mux.HandleFunc("POST /checkins", h.createCheckin)
	mux.HandleFunc("GET /checkins", h.listCheckins)
	mux.HandleFunc("GET /checkins/today", h.todayCheckin)
	mux.HandleFunc("GET /streaks", h.getStreak)

	// Money tracking
	mux.HandleFunc("GET /money/settings", h.getMoneySettings)
	mux.HandleFunc("PUT /money/settings", h.updateMoneySettings)
	mux.HandleFunc("POST /money/entries", h.addMoneyEntry)
	mux.HandleFunc("GET /money/entries", h.listMoneyEntries)
	mux.HandleFunc("GET /money/stats", h.getMoneyStats)

	// Thought diary
	mux.HandleFunc("POST /diary/thoughts", h.addThought)
	mux.HandleFunc("GET /diary/thoughts", h.listThoughts)

	// SOS and reminders
	mux.HandleFunc("POST /sos/events", h.logSOSEvent)
	mux.HandleFunc("GET /reminders/settings", h.getReminderSettings)
	mux.HandleFunc("PUT /reminders/settings", h.updateReminderSettings)
}
