package registry_test

import (
	"errors"
	"testing"

	"github.com/steadypath/backend/internal/domain/questionnaire"
	"github.com/steadypath/backend/internal/registry"
)

func mustRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := registry.New()
	if err != nil {
		t.Fatalf("catalog failed validation: %v", err)
	}
	return r
}

func TestCatalogLevels(t *testing.T) {
	r := mustRegistry(t)

	cases := []struct {
		level questionnaire.Level
		want  int
	}{
		{questionnaire.LevelOnboarding, 5},
		{questionnaire.LevelDaily, 24},
		{questionnaire.LevelWeekly, 4},
		{questionnaire.LevelEvent, 4},
	}
	total := 0
	for _, tc := range cases {
		got := len(r.ListByLevel(tc.level))
		if got != tc.want {
			t.Errorf("level %s: %d tests, want %d", tc.level, got, tc.want)
		}
		total += got
	}
	if r.Len() != total {
		t.Errorf("Len() = %d, want %d", r.Len(), total)
	}
}

func TestLookup(t *testing.T) {
	r := mustRegistry(t)

	d, err := r.Lookup("B1_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Level != questionnaire.LevelDaily {
		t.Errorf("B1_1 level = %q, want B", d.Level)
	}

	if _, err := r.Lookup("Z9"); !errors.Is(err, registry.ErrUnknownTest) {
		t.Errorf("expected ErrUnknownTest, got %v", err)
	}
}

func TestEventTriggerFlags(t *testing.T) {
	r := mustRegistry(t)

	d1, _ := r.Lookup("D1")
	if !d1.ShowAfterRelapse {
		t.Error("D1 should be flagged for relapse")
	}
	d2, _ := r.Lookup("D2")
	if !d2.ShowOnHighUrge {
		t.Error("D2 should be flagged for high urge")
	}
}

func TestTrackRestrictions(t *testing.T) {
	r := mustRegistry(t)

	d, _ := r.Lookup("B2_3")
	if d.AppliesTo(questionnaire.TrackDigital) {
		t.Error("B2_3 should not apply to the digital track")
	}
	if !d.AppliesTo(questionnaire.TrackGambling) || !d.AppliesTo(questionnaire.TrackTrading) {
		t.Error("B2_3 should apply to gambling and trading")
	}
}

// Every banded test must interpret every reachable score to exactly one
// band, and band zero must exist so a minimum score is never unmapped.
func TestInterpretationCoverage(t *testing.T) {
	r := mustRegistry(t)

	for _, level := range []questionnaire.Level{
		questionnaire.LevelOnboarding,
		questionnaire.LevelDaily,
		questionnaire.LevelWeekly,
		questionnaire.LevelEvent,
	} {
		for _, d := range r.ListByLevel(level) {
			if len(d.Interpretation.Ranges) == 0 {
				continue
			}
			if _, ok := d.Interpret(0); !ok {
				t.Errorf("%s: score 0 has no band", d.Code)
			}
			for score := 0; score <= d.Interpretation.MaxScore; score++ {
				matches := 0
				for _, band := range d.Interpretation.Ranges {
					if band.Contains(score) {
						matches++
					}
				}
				if matches > 1 {
					t.Errorf("%s: score %d falls in %d bands", d.Code, score, matches)
				}
			}
		}
	}
}

func TestContainsCrisisLanguage(t *testing.T) {
	cases := []struct {
		note string
		want bool
	}{
		{"", false},
		{"rough day but managing", false},
		{"I feel hopeless", true},
		{"NO WAY OUT of this", true},
		{"i want to die", true},
		{"hoping for better days", false},
	}
	for _, tc := range cases {
		if got := registry.ContainsCrisisLanguage(tc.note); got != tc.want {
			t.Errorf("ContainsCrisisLanguage(%q) = %v, want %v", tc.note, got, tc.want)
		}
	}
}
