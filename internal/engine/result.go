package engine

import (
	"context"

	"github.com/steadypath/backend/internal/domain/profile"
	"github.com/steadypath/backend/internal/domain/questionnaire"
	"github.com/steadypath/backend/internal/domain/testresult"
)

// Client-facing action hints attached to concerning results.
const (
	ActionOfferSOS         = "offer_sos"
	ActionShowHelplines    = "show_helplines"
	ActionSoftIntervention = "soft_intervention"
)

// Interpretation is the banded reading of a submitted score.
type Interpretation struct {
	Level    string `json:"level"`
	Message  string `json:"message"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
}

// Outcome is everything the client needs after a submission: the
// interpretation, a conversational follow-up, recommended actions, and
// any onboarding transition that the submission caused.
type Outcome struct {
	TestCode           string                `json:"test_code"`
	Interpretation     Interpretation        `json:"interpretation"`
	BotMessage         string                `json:"bot_message"`
	Actions            []string              `json:"actions,omitempty"`
	ProfileUpdates     *profile.Updates      `json:"profile_updates,omitempty"`
	ShowTrackSelection bool                  `json:"show_track_selection,omitempty"`
	TrackOptions       []questionnaire.Track `json:"track_options,omitempty"`
	OnboardingComplete bool                  `json:"onboarding_complete,omitempty"`
}

// Levels that warrant escalation in the submission response. Crisis
// levels get SOS and helplines; elevated levels get a soft nudge.
var (
	crisisLevels = map[string]bool{
		"high":             true,
		"red":              true,
		"problem_gambling": true,
		"vulnerable":       true,
		"critical":         true,
	}
	elevatedLevels = map[string]bool{
		"medium":        true,
		"yellow":        true,
		"elevated":      true,
		"moderate_risk": true,
	}
)

// SubmitResult records a completed test and applies its consequences.
// The result row is always appended, whatever the score; an unknown code
// is rejected before anything is persisted.
func (e *Engine) SubmitResult(ctx context.Context, userID int64, code string, answers map[string]any, score int) (*Outcome, error) {
	def, err := e.bank.Lookup(code)
	if err != nil {
		return nil, err
	}

	interp := interpret(def, score)
	res := &testresult.Result{
		UserID:    userID,
		TestCode:  def.Code,
		Answers:   answers,
		Score:     score,
		Level:     interp.Level,
		Message:   interp.Message,
		CreatedAt: e.clock().In(e.loc),
	}

	if def.Level == questionnaire.LevelOnboarding {
		return e.applyOnboarding(ctx, userID, def, res, interp)
	}

	if err := e.history.AppendResult(ctx, res); err != nil {
		return nil, err
	}

	bot := def.Response(interp.Level)
	if bot == "" {
		bot = interp.Message
	}
	return &Outcome{
		TestCode:       def.Code,
		Interpretation: interp,
		BotMessage:     bot,
		Actions:        recommendedActions(interp.Level),
	}, nil
}

// applyOnboarding advances the screening sequence. A1 stores the global
// risk score and asks for a track; A2/A3/A4 store the track score; A5
// closes onboarding and fixes the aggregate risk level.
func (e *Engine) applyOnboarding(ctx context.Context, userID int64, def *questionnaire.Definition, res *testresult.Result, interp Interpretation) (*Outcome, error) {
	// A submission can be the user's very first touch, so the profile row
	// must be provisioned before the partial update below.
	prof, err := e.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	var u profile.Updates
	out := &Outcome{TestCode: def.Code, Interpretation: interp}

	switch def.Code {
	case "A1":
		u.RiskBehaviorScore = &res.Score
		day := profile.DayTrackScreen
		u.OnboardingDay = &day
		out.ShowTrackSelection = true
		out.TrackOptions = def.TrackOptions
	case "A2", "A3", "A4":
		switch def.Code {
		case "A2":
			u.GamblingScore = &res.Score
		case "A3":
			u.TradingScore = &res.Score
		case "A4":
			u.DigitalScore = &res.Score
		}
		day := profile.DayEmotionalScreen
		u.OnboardingDay = &day
	case "A5":
		u.EmotionalRegulationScore = &res.Score
		day := profile.DayCompleted
		u.OnboardingDay = &day
		completed := true
		u.OnboardingCompleted = &completed
		level := profile.RiskLevelForTotal(prof.RiskBehavior() + prof.TrackScore() + res.Score)
		u.RiskLevel = &level
		out.OnboardingComplete = true
	}

	if err := e.profiles.UpdateProfile(ctx, userID, u); err != nil {
		return nil, err
	}
	if err := e.history.AppendResult(ctx, res); err != nil {
		return nil, err
	}

	out.ProfileUpdates = &u
	out.BotMessage = interp.Message
	out.Actions = recommendedActions(interp.Level)
	return out, nil
}

// interpret maps a score to its band. A score outside every range still
// produces a usable, recordable reading.
func interpret(def *questionnaire.Definition, score int) Interpretation {
	if band, ok := def.Interpret(score); ok {
		return Interpretation{Level: band.Level, Message: band.Message, Score: score, MaxScore: def.Interpretation.MaxScore}
	}
	return Interpretation{
		Level:    "unknown",
		Message:  "Your answers were recorded.",
		Score:    score,
		MaxScore: def.Interpretation.MaxScore,
	}
}

func recommendedActions(level string) []string {
	switch {
	case crisisLevels[level]:
		return []string{ActionOfferSOS, ActionShowHelplines}
	case elevatedLevels[level]:
		return []string{ActionSoftIntervention}
	}
	return nil
}
