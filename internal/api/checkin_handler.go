package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/steadypath/backend/internal/domain/checkin"
	"github.com/steadypath/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateCheckinRequest struct {
	Urge       int    `json:"urge" example:"4"`
	Stress     int    `json:"stress" example:"6"`
	Mood       int    `json:"mood" example:"5"`
	Relapse    bool   `json:"relapse"`
	Note       string `json:"note,omitempty"`
	LossAmount *int   `json:"loss_amount,omitempty" example:"50"`
}

func (r *CreateCheckinRequest) Validate() error {
	for _, v := range []int{r.Urge, r.Stress, r.Mood} {
		if v < 0 || v > 10 {
			return errors.New("urge, stress and mood must be between 0 and 10")
		}
	}
	if r.LossAmount != nil && *r.LossAmount < 0 {
		return errors.New("loss_amount must not be negative")
	}
	return nil
}

type CheckinPayload struct {
	ID         int64  `json:"id"`
	Urge       int    `json:"urge"`
	Stress     int    `json:"stress"`
	Mood       int    `json:"mood"`
	Relapse    bool   `json:"relapse"`
	Note       string `json:"note,omitempty"`
	LossAmount *int   `json:"loss_amount,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type StreakPayload struct {
	Current         int    `json:"current"`
	Best            int    `json:"best"`
	LastCheckinDate string `json:"last_checkin_date,omitempty"`
}

type CreateCheckinResponse struct {
	Checkin CheckinPayload `json:"checkin"`
	Streak  StreakPayload  `json:"streak"`
	// NextTest carries any test the check-in's signals triggered, so the
	// client can offer it in the same flow.
	NextTest *TestPayload `json:"next_test,omitempty"`
}

type TodayCheckinResponse struct {
	CheckedIn bool            `json:"checked_in"`
	Checkin   *CheckinPayload `json:"checkin,omitempty"`
}

func toCheckinPayload(c *checkin.Checkin) CheckinPayload {
	return CheckinPayload{
		ID:         c.ID,
		Urge:       c.Urge,
		Stress:     c.Stress,
		Mood:       c.Mood,
		Relapse:    c.Relapse,
		Note:       c.Note,
		LossAmount: c.LossAmount,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createCheckin records a daily snapshot and everything that follows
// from it: the streak update, a money entry for a reported loss, and
// the next test the signals triggered.
// @Summary      Create check-in
// @Tags         Check-ins
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string                true  "User identity"
// @Param        body       body    CreateCheckinRequest  true  "Daily snapshot"
// @Success      201  {object}  CreateCheckinResponse
// @Failure      400  {object}  map[string]string
// @Router       /checkins [post]
func (h *Handler) createCheckin(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req CreateCheckinRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	now := time.Now().In(h.loc)
	c := &checkin.Checkin{
		UserID:     uid,
		Urge:       req.Urge,
		Stress:     req.Stress,
		Mood:       req.Mood,
		Relapse:    req.Relapse,
		Note:       req.Note,
		LossAmount: req.LossAmount,
		CreatedAt:  now,
	}
	// The follow-up is selected before the save: the engine reads the last
	// check-in timestamp, and a user returning after days away must still
	// get the re-engagement check, not be counted as just seen.
	def, selErr := h.engine.NextTest(r.Context(), uid, checkin.Context{
		Urge:    &req.Urge,
		Stress:  &req.Stress,
		Mood:    &req.Mood,
		Relapse: req.Relapse,
		Note:    req.Note,
	})

	if err := h.store.SaveCheckin(r.Context(), c); h.handleStoreError(w, err, "checkin") {
		return
	}

	st, err := h.store.GetStreak(r.Context(), uid)
	if h.handleStoreError(w, err, "streak") {
		return
	}
	st.Apply(now.Format(dateLayout), req.Relapse)
	if err := h.store.SaveStreak(r.Context(), st); h.handleStoreError(w, err, "streak") {
		return
	}

	if req.LossAmount != nil && *req.LossAmount > 0 {
		entry := &store.MoneyEntry{
			UserID:    uid,
			Amount:    *req.LossAmount,
			Kind:      store.MoneyLost,
			Note:      "reported with check-in",
			CreatedAt: now,
		}
		if err := h.store.AddMoneyEntry(r.Context(), entry); err != nil {
			h.logger.Error("loss entry failed", "error", err, "user_id", uid)
		}
	}

	resp := CreateCheckinResponse{
		Checkin: toCheckinPayload(c),
		Streak:  StreakPayload{Current: st.Current, Best: st.Best, LastCheckinDate: st.LastCheckinDate},
	}

	if selErr != nil {
		// The check-in itself succeeded; selection failure only costs the
		// inline follow-up.
		h.logger.Error("follow-up selection failed", "error", selErr, "user_id", uid)
	} else if def != nil {
		resp.NextTest = toTestPayload(def)
	}

	respondJSON(w, http.StatusCreated, resp)
}

// listCheckins returns the user's check-ins, newest first.
// @Summary      List check-ins
// @Tags         Check-ins
// @Produce      json
// @Param        X-User-ID  header  string  true   "User identity"
// @Param        limit      query   int     false  "Max results (default 30)"
// @Success      200  {array}  CheckinPayload
// @Router       /checkins [get]
func (h *Handler) listCheckins(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	checkins, err := h.store.ListCheckins(r.Context(), uid, queryLimit(r, 30))
	if h.handleStoreError(w, err, "checkins") {
		return
	}

	payload := make([]CheckinPayload, len(checkins))
	for i, c := range checkins {
		payload[i] = toCheckinPayload(c)
	}
	respondJSON(w, http.StatusOK, payload)
}

// todayCheckin reports whether the user has already checked in today.
// @Summary      Today's check-in
// @Tags         Check-ins
// @Produce      json
// @Param        X-User-ID  header  string  true  "User identity"
// @Success      200  {object}  TodayCheckinResponse
// @Router       /checkins/today [get]
func (h *Handler) todayCheckin(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	start := h.dayStart(time.Now())
	c, err := h.store.LatestCheckinBetween(r.Context(), uid, start, start.AddDate(0, 0, 1))
	if errors.Is(err, store.ErrNotFound) {
		respondJSON(w, http.StatusOK, TodayCheckinResponse{CheckedIn: false})
		return
	}
	if h.handleStoreError(w, err, "checkin") {
		return
	}

	payload := toCheckinPayload(c)
	respondJSON(w, http.StatusOK, TodayCheckinResponse{CheckedIn: true, Checkin: &payload})
}

// getStreak returns the user's current and best streaks.
// @Summary      Get streak
// @Tags         Check-ins
// @Produce      json
// @Param        X-User-ID  header  string  true  "User identity"
// @Success      200  {object}  StreakPayload
// @Router       /streaks [get]
func (h *Handler) getStreak(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	st, err := h.store.GetStreak(r.Context(), uid)
	if h.handleStoreError(w, err, "streak") {
		return
	}

	respondJSON(w, http.StatusOK, StreakPayload{
		Current:         st.Current,
		Best:            st.Best,
		LastCheckinDate: st.LastCheckinDate,
	})
}
