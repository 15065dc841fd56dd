// Package questionnaire holds the typed model for psychometric test
// definitions. Definitions are immutable at runtime and validated once at
// load time, so a malformed range or duplicate code fails at startup
// instead of at lookup.
package questionnaire

import (
	"errors"
	"fmt"
)

// Level is the questionnaire category.
type Level string

const (
	LevelOnboarding Level = "A" // one-time screening sequence
	LevelDaily      Level = "B" // daily rotation
	LevelWeekly     Level = "C" // Sunday tests
	LevelEvent      Level = "D" // triggered by check-in signals
)

// Track is the user's chosen problem-behavior category.
type Track string

const (
	TrackGambling Track = "gambling"
	TrackTrading  Track = "trading"
	TrackDigital  Track = "digital"
)

// ValidTrack reports whether t is one of the known tracks.
func ValidTrack(t Track) bool {
	return t == TrackGambling || t == TrackTrading || t == TrackDigital
}

// RiskLevel is the derived classification from aggregated screening scores.
type RiskLevel string

const (
	RiskUnknown RiskLevel = "unknown"
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
)

// Frequency classifies how often a test may recur.
type Frequency string

const (
	FrequencyOnboarding    Frequency = "onboarding"
	FrequencyDaily         Frequency = "daily"
	FrequencyAlternateDays Frequency = "alternate_days"
	FrequencyWeekly1to2    Frequency = "weekly_1_2"
	FrequencyWeekly2to3    Frequency = "weekly_2_3"
	FrequencyWeekly2to4    Frequency = "weekly_2_4"
	FrequencyEvent         Frequency = "event"
)

// AnswerType describes how a question is answered and scored.
type AnswerType string

const (
	AnswerScale0to3  AnswerType = "scale_0_3"
	AnswerScale0to10 AnswerType = "scale_0_10"
	AnswerYesNo      AnswerType = "yes_no"
	AnswerChoice     AnswerType = "choice"
)

// Question is a single prompt inside a definition.
type Question struct {
	Code          string
	Prompt        string
	AnswerType    AnswerType
	ScaleLabels   []string
	Choices       []string
	AllowMultiple bool
	Weight        int
}

// InterpretationRange maps an inclusive score band to an outcome level.
type InterpretationRange struct {
	Min     int
	Max     int
	Level   string
	Message string
}

// Contains reports whether score falls inside the band.
func (r InterpretationRange) Contains(score int) bool {
	return score >= r.Min && score <= r.Max
}

// Interpretation is a test's ordered, disjoint score bands.
type Interpretation struct {
	MaxScore int
	Ranges   []InterpretationRange
}

// Definition is one test in the bank. Tracks empty means "all tracks".
type Definition struct {
	Code         string
	Level        Level
	Cluster      string
	Name         string
	Description  string
	Tracks       []Track
	Frequency    Frequency
	CooldownDays int
	MinRiskLevel RiskLevel

	ShowOnHighUrge   bool
	ShowAfterRelapse bool

	IntroMessage string
	OutroMessage string

	Questions      []Question
	Interpretation Interpretation

	// Responses maps an interpretation level to a follow-up message.
	Responses map[string]string

	// TrackOptions is set on the screen that prompts track selection.
	TrackOptions []Track
}

// AppliesTo reports whether the definition is available on the given track.
func (d *Definition) AppliesTo(t Track) bool {
	if len(d.Tracks) == 0 {
		return true
	}
	for _, dt := range d.Tracks {
		if dt == t {
			return true
		}
	}
	return false
}

// Interpret finds the band containing score. ok is false when the score
// falls outside every configured band; callers degrade to "unknown" then.
func (d *Definition) Interpret(score int) (InterpretationRange, bool) {
	for _, r := range d.Interpretation.Ranges {
		if r.Contains(score) {
			return r, true
		}
	}
	return InterpretationRange{}, false
}

// Response returns the follow-up message for an interpretation level,
// or "" when no template is configured for it.
func (d *Definition) Response(level string) string {
	return d.Responses[level]
}

// Validate checks the structural invariants the selection engine relies on.
func (d *Definition) Validate() error {
	if d.Code == "" {
		return errors.New("definition has no code")
	}
	switch d.Level {
	case LevelOnboarding, LevelDaily, LevelWeekly, LevelEvent:
	default:
		return fmt.Errorf("%s: invalid level %q", d.Code, d.Level)
	}
	if len(d.Questions) == 0 {
		return fmt.Errorf("%s: no questions", d.Code)
	}
	seen := make(map[string]bool, len(d.Questions))
	for _, q := range d.Questions {
		if q.Code == "" {
			return fmt.Errorf("%s: question has no code", d.Code)
		}
		if seen[q.Code] {
			return fmt.Errorf("%s: duplicate question code %s", d.Code, q.Code)
		}
		seen[q.Code] = true
	}
	for i, r := range d.Interpretation.Ranges {
		if r.Min > r.Max {
			return fmt.Errorf("%s: range %d is inverted (%d > %d)", d.Code, i, r.Min, r.Max)
		}
		if i > 0 && r.Min <= d.Interpretation.Ranges[i-1].Max {
			return fmt.Errorf("%s: range %d overlaps previous band", d.Code, i)
		}
	}
	return nil
}
