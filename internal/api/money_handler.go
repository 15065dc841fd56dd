package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/steadypath/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type MoneySettingsRequest struct {
	DailyLimit *int   `json:"daily_limit,omitempty" example:"20"`
	Currency   string `json:"currency,omitempty" example:"EUR"`
}

func (r *MoneySettingsRequest) Validate() error {
	if r.DailyLimit != nil && *r.DailyLimit < 0 {
		return errors.New("daily_limit must not be negative")
	}
	return nil
}

type MoneyEntryRequest struct {
	Amount int    `json:"amount" example:"50"`
	Kind   string `json:"kind" example:"saved"`
	Note   string `json:"note,omitempty"`
}

func (r *MoneyEntryRequest) Validate() error {
	if r.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if r.Kind != store.MoneySaved && r.Kind != store.MoneyLost {
		return errors.New("kind must be saved or lost")
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getMoneySettings returns the user's money guardrails.
// @Summary      Get money settings
// @Tags         Money
// @Produce      json
// @Param        X-User-ID  header  string  true  "User identity"
// @Success      200  {object}  store.MoneySettings
// @Router       /money/settings [get]
func (h *Handler) getMoneySettings(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	ms, err := h.store.GetMoneySettings(r.Context(), uid)
	if h.handleStoreError(w, err, "money settings") {
		return
	}
	respondJSON(w, http.StatusOK, ms)
}

// updateMoneySettings upserts the user's money guardrails.
// @Summary      Update money settings
// @Tags         Money
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string                true  "User identity"
// @Param        body       body    MoneySettingsRequest  true  "New settings"
// @Success      200  {object}  store.MoneySettings
// @Failure      400  {object}  map[string]string
// @Router       /money/settings [put]
func (h *Handler) updateMoneySettings(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req MoneySettingsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}
	ms := &store.MoneySettings{
		UserID:     uid,
		DailyLimit: req.DailyLimit,
		Currency:   currency,
		UpdatedAt:  time.Now(),
	}
	if err := h.store.SaveMoneySettings(r.Context(), ms); h.handleStoreError(w, err, "money settings") {
		return
	}
	respondJSON(w, http.StatusOK, ms)
}

// addMoneyEntry records an amount saved or lost.
// @Summary      Add money entry
// @Tags         Money
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string             true  "User identity"
// @Param        body       body    MoneyEntryRequest  true  "Amount and kind"
// @Success      201  {object}  store.MoneyEntry
// @Failure      400  {object}  map[string]string
// @Router       /money/entries [post]
func (h *Handler) addMoneyEntry(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req MoneyEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	entry := &store.MoneyEntry{
		UserID:    uid,
		Amount:    req.Amount,
		Kind:      req.Kind,
		Note:      req.Note,
		CreatedAt: time.Now(),
	}
	if err := h.store.AddMoneyEntry(r.Context(), entry); h.handleStoreError(w, err, "money entry") {
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// listMoneyEntries returns recent money entries, newest first.
// @Summary      List money entries
// @Tags         Money
// @Produce      json
// @Param        X-User-ID  header  string  true   "User identity"
// @Param        limit      query   int     false  "Max results (default 50)"
// @Success      200  {array}  store.MoneyEntry
// @Router       /money/entries [get]
func (h *Handler) listMoneyEntries(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	entries, err := h.store.ListMoneyEntries(r.Context(), uid, queryLimit(r, 50))
	if h.handleStoreError(w, err, "money entries") {
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// getMoneyStats returns aggregate saved/lost totals.
// @Summary      Money stats
// @Tags         Money
// @Produce      json
// @Param        X-User-ID  header  string  true  "User identity"
// @Success      200  {object}  store.MoneyStats
// @Router       /money/stats [get]
func (h *Handler) getMoneyStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	stats, err := h.store.GetMoneyStats(r.Context(), uid)
	if h.handleStoreError(w, err, "money stats") {
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
