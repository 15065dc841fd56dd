package questionnaire_test

import (
	"testing"

	"github.com/steadypath/backend/internal/domain/questionnaire"
)

func validDefinition() *questionnaire.Definition {
	return &questionnaire.Definition{
		Code:  "T1",
		Level: questionnaire.LevelDaily,
		Name:  "Test",
		Questions: []questionnaire.Question{
			{Code: "T1_Q1", Prompt: "How strong?", AnswerType: questionnaire.AnswerScale0to3},
			{Code: "T1_Q2", Prompt: "How often?", AnswerType: questionnaire.AnswerScale0to3},
		},
		Interpretation: questionnaire.Interpretation{
			MaxScore: 6,
			Ranges: []questionnaire.InterpretationRange{
				{Min: 0, Max: 2, Level: "low", Message: "low"},
				{Min: 3, Max: 6, Level: "high", Message: "high"},
			},
		},
	}
}

func TestValidateAcceptsWellFormedDefinition(t *testing.T) {
	if err := validDefinition().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsDuplicateQuestionCodes(t *testing.T) {
	d := validDefinition()
	d.Questions[1].Code = d.Questions[0].Code

	if err := d.Validate(); err == nil {
		t.Error("expected error for duplicate question codes, got nil")
	}
}

func TestValidateRejectsOverlappingRanges(t *testing.T) {
	d := validDefinition()
	d.Interpretation.Ranges[1].Min = 2

	if err := d.Validate(); err == nil {
		t.Error("expected error for overlapping ranges, got nil")
	}
}

func TestValidateRejectsInvertedRange(t *testing.T) {
	d := validDefinition()
	d.Interpretation.Ranges[0] = questionnaire.InterpretationRange{Min: 4, Max: 1, Level: "low"}

	if err := d.Validate(); err == nil {
		t.Error("expected error for inverted range, got nil")
	}
}

func TestValidateRejectsUnknownLevel(t *testing.T) {
	d := validDefinition()
	d.Level = "X"

	if err := d.Validate(); err == nil {
		t.Error("expected error for unknown level, got nil")
	}
}

func TestAppliesToAllTracksWhenUnrestricted(t *testing.T) {
	d := validDefinition()

	for _, track := range []questionnaire.Track{questionnaire.TrackGambling, questionnaire.TrackTrading, questionnaire.TrackDigital} {
		if !d.AppliesTo(track) {
			t.Errorf("unrestricted definition should apply to %q", track)
		}
	}

	d.Tracks = []questionnaire.Track{questionnaire.TrackGambling}
	if d.AppliesTo(questionnaire.TrackDigital) {
		t.Error("restricted definition applied to wrong track")
	}
	if !d.AppliesTo(questionnaire.TrackGambling) {
		t.Error("restricted definition did not apply to its own track")
	}
}

func TestInterpretBandBoundaries(t *testing.T) {
	d := validDefinition()

	cases := []struct {
		score     int
		wantLevel string
		wantOK    bool
	}{
		{0, "low", true},
		{2, "low", true},
		{3, "high", true},
		{6, "high", true},
		{7, "", false},
		{-1, "", false},
	}
	for _, tc := range cases {
		band, ok := d.Interpret(tc.score)
		if ok != tc.wantOK || band.Level != tc.wantLevel {
			t.Errorf("Interpret(%d) = (%q, %v), want (%q, %v)", tc.score, band.Level, ok, tc.wantLevel, tc.wantOK)
		}
	}
}

func TestValidTrack(t *testing.T) {
	if !questionnaire.ValidTrack(questionnaire.TrackTrading) {
		t.Error("trading should be a valid track")
	}
	if questionnaire.ValidTrack("crypto") {
		t.Error("unknown track accepted")
	}
}
