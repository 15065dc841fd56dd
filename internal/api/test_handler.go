package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/steadypath/backend/internal/domain/checkin"
	"github.com/steadypath/backend/internal/domain/profile"
	"github.com/steadypath/backend/internal/domain/questionnaire"
	"github.com/steadypath/backend/internal/registry"
)

// ── Request / Response types ────────────────────────────────────────────────

type QuestionPayload struct {
	Code          string   `json:"code" example:"B1_1_Q1"`
	Prompt        string   `json:"prompt"`
	AnswerType    string   `json:"answer_type" example:"scale_0_3"`
	ScaleLabels   []string `json:"scale_labels,omitempty"`
	Choices       []string `json:"choices,omitempty"`
	AllowMultiple bool     `json:"allow_multiple,omitempty"`
}

type TestPayload struct {
	Code         string            `json:"code" example:"B1_1"`
	Level        string            `json:"level" example:"B"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	IntroMessage string            `json:"intro_message,omitempty"`
	OutroMessage string            `json:"outro_message,omitempty"`
	Questions    []QuestionPayload `json:"questions"`
}

type NextTestResponse struct {
	Available bool         `json:"available"`
	Test      *TestPayload `json:"test,omitempty"`
}

type SubmitTestRequest struct {
	TestCode string         `json:"test_code" example:"B1_1"`
	Answers  map[string]any `json:"answers"`
}

func (r *SubmitTestRequest) Validate() error {
	if r.TestCode == "" {
		return errors.New("test_code is required")
	}
	if len(r.Answers) == 0 {
		return errors.New("answers are required")
	}
	return nil
}

type SelectTrackRequest struct {
	Track string `json:"track" example:"gambling"`
}

func (r *SelectTrackRequest) Validate() error {
	if !questionnaire.ValidTrack(questionnaire.Track(r.Track)) {
		return errors.New("track must be gambling, trading or digital")
	}
	return nil
}

type SelectTrackResponse struct {
	Track string `json:"track"`
}

type ProfileResponse struct {
	UserID                   int64  `json:"user_id"`
	Track                    string `json:"track"`
	OnboardingDay            int    `json:"onboarding_day"`
	OnboardingCompleted      bool   `json:"onboarding_completed"`
	RiskBehaviorScore        *int   `json:"risk_behavior_score,omitempty"`
	GamblingScore            *int   `json:"gambling_score,omitempty"`
	TradingScore             *int   `json:"trading_score,omitempty"`
	DigitalScore             *int   `json:"digital_score,omitempty"`
	EmotionalRegulationScore *int   `json:"emotional_regulation_score,omitempty"`
	RiskLevel                string `json:"risk_level"`
}

type ResultPayload struct {
	ID        int64          `json:"id"`
	TestCode  string         `json:"test_code"`
	Answers   map[string]any `json:"answers"`
	Score     int            `json:"score"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	CreatedAt string         `json:"created_at"`
}

func toTestPayload(d *questionnaire.Definition) *TestPayload {
	questions := make([]QuestionPayload, len(d.Questions))
	for i, q := range d.Questions {
		questions[i] = QuestionPayload{
			Code:          q.Code,
			Prompt:        q.Prompt,
			AnswerType:    string(q.AnswerType),
			ScaleLabels:   q.ScaleLabels,
			Choices:       q.Choices,
			AllowMultiple: q.AllowMultiple,
		}
	}
	return &TestPayload{
		Code:         d.Code,
		Level:        string(d.Level),
		Name:         d.Name,
		Description:  d.Description,
		IntroMessage: d.IntroMessage,
		OutroMessage: d.OutroMessage,
		Questions:    questions,
	}
}

// contextFromQuery reads the ephemeral check-in signals from the query
// string so clients can ask "what's next" without submitting anything.
func contextFromQuery(r *http.Request) checkin.Context {
	q := r.URL.Query()
	relapse, _ := strconv.ParseBool(q.Get("relapse"))
	return checkin.Context{
		Urge:      queryInt(r, "urge"),
		Stress:    queryInt(r, "stress"),
		Mood:      queryInt(r, "mood"),
		Relapse:   relapse,
		Note:      q.Get("note"),
		TimeOfDay: q.Get("time_of_day"),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// nextTest returns the single test a user should see right now.
// @Summary      Next test
// @Description  Returns the highest-priority test for the user given their current signals, or nothing when no test is due.
// @Tags         Tests
// @Produce      json
// @Param        X-User-ID  header  string  true   "User identity"
// @Param        urge       query   int     false  "Current urge (0-10)"
// @Param        stress     query   int     false  "Current stress (0-10)"
// @Param        mood       query   int     false  "Current mood (0-10)"
// @Param        relapse    query   bool    false  "Relapse reported"
// @Param        note       query   string  false  "Free-text note"
// @Success      200  {object}  NextTestResponse
// @Failure      401  {object}  map[string]string
// @Router       /tests/next [get]
func (h *Handler) nextTest(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	def, err := h.engine.NextTest(r.Context(), uid, contextFromQuery(r))
	if err != nil {
		h.logger.Error("next test selection failed", "error", err, "user_id", uid)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := NextTestResponse{}
	if def != nil {
		resp.Available = true
		resp.Test = toTestPayload(def)
	}
	respondJSON(w, http.StatusOK, resp)
}

// submitTest records a completed test.
// @Summary      Submit test answers
// @Description  Scores the submitted answers, stores the result and returns the interpretation plus any onboarding transition.
// @Tags         Tests
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string             true  "User identity"
// @Param        body       body    SubmitTestRequest  true  "Completed test"
// @Success      200  {object}  engine.Outcome
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string  "unknown test code"
// @Router       /tests/submit [post]
func (h *Handler) submitTest(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req SubmitTestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out, err := h.engine.SubmitResult(r.Context(), uid, req.TestCode, req.Answers, scoreAnswers(req.Answers))
	if errors.Is(err, registry.ErrUnknownTest) {
		http.Error(w, "test not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("submit failed", "error", err, "user_id", uid, "test_code", req.TestCode)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, out)
}

// scoreAnswers sums the raw answer values: numbers count face value,
// booleans count 3 for yes and 0 for no, multi-selects count one point
// per selection. Anything else scores 0.
func scoreAnswers(answers map[string]any) int {
	total := 0
	for _, v := range answers {
		switch val := v.(type) {
		case float64:
			total += int(val)
		case bool:
			if val {
				total += 3
			}
		case []any:
			total += len(val)
		case string:
			if n, err := strconv.Atoi(val); err == nil {
				total += n
			}
		}
	}
	return total
}

// selectTrack records the user's focus area during onboarding.
// @Summary      Select track
// @Description  Stores the user's chosen track (gambling, trading or digital). The next onboarding test follows the chosen track.
// @Tags         Tests
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string              true  "User identity"
// @Param        body       body    SelectTrackRequest  true  "Chosen track"
// @Success      200  {object}  SelectTrackResponse
// @Failure      400  {object}  map[string]string
// @Router       /tests/onboarding/track [post]
func (h *Handler) selectTrack(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req SelectTrackRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	// Make sure the profile row exists before updating it.
	if _, err := h.store.GetOrCreateProfile(r.Context(), uid); h.handleStoreError(w, err, "profile") {
		return
	}

	track := questionnaire.Track(req.Track)
	err := h.store.UpdateProfile(r.Context(), uid, profile.Updates{Track: &track})
	if h.handleStoreError(w, err, "profile") {
		return
	}

	respondJSON(w, http.StatusOK, SelectTrackResponse{Track: req.Track})
}

// getProfile returns the user's profile and screening scores.
// @Summary      Get profile
// @Tags         Tests
// @Produce      json
// @Param        X-User-ID  header  string  true  "User identity"
// @Success      200  {object}  ProfileResponse
// @Failure      401  {object}  map[string]string
// @Router       /tests/profile [get]
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	p, err := h.store.GetOrCreateProfile(r.Context(), uid)
	if h.handleStoreError(w, err, "profile") {
		return
	}

	respondJSON(w, http.StatusOK, ProfileResponse{
		UserID:                   p.UserID,
		Track:                    string(p.Track),
		OnboardingDay:            p.OnboardingDay,
		OnboardingCompleted:      p.OnboardingCompleted,
		RiskBehaviorScore:        p.RiskBehaviorScore,
		GamblingScore:            p.GamblingScore,
		TradingScore:             p.TradingScore,
		DigitalScore:             p.DigitalScore,
		EmotionalRegulationScore: p.EmotionalRegulationScore,
		RiskLevel:                string(p.RiskLevel),
	})
}

// listResults returns the user's recent test results, newest first.
// @Summary      Test history
// @Tags         Tests
// @Produce      json
// @Param        X-User-ID  header  string  true   "User identity"
// @Param        limit      query   int     false  "Max results (default 50)"
// @Success      200  {array}  ResultPayload
// @Router       /tests/history [get]
func (h *Handler) listResults(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	results, err := h.store.ListResults(r.Context(), uid, queryLimit(r, 50))
	if h.handleStoreError(w, err, "results") {
		return
	}

	payload := make([]ResultPayload, len(results))
	for i, res := range results {
		payload[i] = ResultPayload{
			ID:        res.ID,
			TestCode:  res.TestCode,
			Answers:   res.Answers,
			Score:     res.Score,
			Level:     res.Level,
			Message:   res.Message,
			CreatedAt: res.CreatedAt.Format(time.RFC3339),
		}
	}
	respondJSON(w, http.StatusOK, payload)
}
