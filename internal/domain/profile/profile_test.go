package profile_test

import (
	"testing"

	"github.com/steadypath/backend/internal/domain/profile"
	"github.com/steadypath/backend/internal/domain/questionnaire"
)

func intPtr(v int) *int { return &v }

func TestNewDefaults(t *testing.T) {
	p := profile.New(42)

	if p.UserID != 42 {
		t.Errorf("expected user id 42, got %d", p.UserID)
	}
	if p.Track != questionnaire.TrackGambling {
		t.Errorf("expected default track gambling, got %q", p.Track)
	}
	if p.OnboardingDay != profile.DayGlobalScreen {
		t.Errorf("expected onboarding day %d, got %d", profile.DayGlobalScreen, p.OnboardingDay)
	}
	if p.OnboardingCompleted {
		t.Error("new profile should not be onboarded")
	}
	if p.RiskLevel != questionnaire.RiskUnknown {
		t.Errorf("expected unknown risk, got %q", p.RiskLevel)
	}
}

func TestTrackScoreFollowsTrack(t *testing.T) {
	p := profile.New(1)
	p.GamblingScore = intPtr(8)
	p.TradingScore = intPtr(12)
	p.DigitalScore = intPtr(4)

	cases := []struct {
		track questionnaire.Track
		want  int
	}{
		{questionnaire.TrackGambling, 8},
		{questionnaire.TrackTrading, 12},
		{questionnaire.TrackDigital, 4},
	}
	for _, tc := range cases {
		p.Track = tc.track
		if got := p.TrackScore(); got != tc.want {
			t.Errorf("track %q: score %d, want %d", tc.track, got, tc.want)
		}
	}
}

func TestTrackScoreZeroWhenUnset(t *testing.T) {
	p := profile.New(1)
	if got := p.TrackScore(); got != 0 {
		t.Errorf("expected 0 for missing screen, got %d", got)
	}
	if got := p.RiskBehavior(); got != 0 {
		t.Errorf("expected 0 for missing global screen, got %d", got)
	}
}

func TestRiskLevelForTotalBoundaries(t *testing.T) {
	cases := []struct {
		total int
		want  questionnaire.RiskLevel
	}{
		{0, questionnaire.RiskLow},
		{15, questionnaire.RiskLow},
		{16, questionnaire.RiskMedium},
		{25, questionnaire.RiskMedium},
		{30, questionnaire.RiskMedium},
		{31, questionnaire.RiskHigh},
	}
	for _, tc := range cases {
		if got := profile.RiskLevelForTotal(tc.total); got != tc.want {
			t.Errorf("total %d: got %q, want %q", tc.total, got, tc.want)
		}
	}
}

func TestUpdatesIsZero(t *testing.T) {
	var u profile.Updates
	if !u.IsZero() {
		t.Error("empty updates should be zero")
	}

	u.OnboardingDay = intPtr(2)
	if u.IsZero() {
		t.Error("updates with a field set should not be zero")
	}
}
