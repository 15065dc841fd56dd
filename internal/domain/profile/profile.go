// Package profile models per-user mutable state: onboarding progress,
// track selection, screening scores, and the derived risk level.
package profile

import (
	"github.com/steadypath/backend/internal/domain/questionnaire"
)

// Onboarding day states. Day 1 awaits the global screen, day 2 the
// track-specific screen, day 3 the emotional-regulation screen; day 4
// is terminal.
const (
	DayGlobalScreen    = 1
	DayTrackScreen     = 2
	DayEmotionalScreen = 3
	DayCompleted       = 4
)

// Risk aggregation thresholds over the sum of the three screening scores.
const (
	lowRiskCeiling    = 15
	mediumRiskCeiling = 30
)

// Profile is the one mutable row per user. Created on first engine touch,
// never deleted.
type Profile struct {
	UserID              int64
	Track               questionnaire.Track
	OnboardingDay       int
	OnboardingCompleted bool

	RiskBehaviorScore        *int // A1
	GamblingScore            *int // A2
	TradingScore             *int // A3
	DigitalScore             *int // A4
	EmotionalRegulationScore *int // A5

	RiskLevel questionnaire.RiskLevel
}

// New returns the default profile for a user seen for the first time.
func New(userID int64) *Profile {
	return &Profile{
		UserID:        userID,
		Track:         questionnaire.TrackGambling,
		OnboardingDay: DayGlobalScreen,
		RiskLevel:     questionnaire.RiskUnknown,
	}
}

// TrackScore returns the screening score matching the user's track,
// or 0 when that screen has not been completed.
func (p *Profile) TrackScore() int {
	var s *int
	switch p.Track {
	case questionnaire.TrackTrading:
		s = p.TradingScore
	case questionnaire.TrackDigital:
		s = p.DigitalScore
	default:
		s = p.GamblingScore
	}
	if s == nil {
		return 0
	}
	return *s
}

// RiskBehavior returns the A1 score, or 0 when unset.
func (p *Profile) RiskBehavior() int {
	if p.RiskBehaviorScore == nil {
		return 0
	}
	return *p.RiskBehaviorScore
}

// RiskLevelForTotal classifies the summed screening scores.
func RiskLevelForTotal(total int) questionnaire.RiskLevel {
	switch {
	case total <= lowRiskCeiling:
		return questionnaire.RiskLow
	case total <= mediumRiskCeiling:
		return questionnaire.RiskMedium
	default:
		return questionnaire.RiskHigh
	}
}

// Updates is a partial profile mutation; nil fields are left untouched.
type Updates struct {
	Track               *questionnaire.Track `json:"track,omitempty"`
	OnboardingDay       *int                 `json:"onboarding_day,omitempty"`
	OnboardingCompleted *bool                `json:"onboarding_completed,omitempty"`

	RiskBehaviorScore        *int `json:"risk_behavior_score,omitempty"`
	GamblingScore            *int `json:"gambling_score,omitempty"`
	TradingScore             *int `json:"trading_score,omitempty"`
	DigitalScore             *int `json:"digital_score,omitempty"`
	EmotionalRegulationScore *int `json:"emotional_regulation_score,omitempty"`

	RiskLevel *questionnaire.RiskLevel `json:"risk_level,omitempty"`
}

// IsZero reports whether the update carries no mutation.
func (u Updates) IsZero() bool {
	return u.Track == nil && u.OnboardingDay == nil && u.OnboardingCompleted == nil &&
		u.RiskBehaviorScore == nil && u.GamblingScore == nil && u.TradingScore == nil &&
		u.DigitalScore == nil && u.EmotionalRegulationScore == nil && u.RiskLevel == nil
}
