package engine_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/steadypath/backend/internal/domain/checkin"
	"github.com/steadypath/backend/internal/domain/profile"
	"github.com/steadypath/backend/internal/domain/questionnaire"
	"github.com/steadypath/backend/internal/domain/testresult"
	"github.com/steadypath/backend/internal/engine"
	"github.com/steadypath/backend/internal/registry"
)

// A plain Wednesday morning, and the Sunday of the same week.
var (
	wednesday = time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	sunday    = time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
)

type fakeProfiles struct {
	prof    *profile.Profile
	updates []profile.Updates
}

func (f *fakeProfiles) GetOrCreateProfile(_ context.Context, userID int64) (*profile.Profile, error) {
	if f.prof == nil {
		f.prof = profile.New(userID)
	}
	return f.prof, nil
}

func (f *fakeProfiles) UpdateProfile(_ context.Context, _ int64, u profile.Updates) error {
	f.updates = append(f.updates, u)
	return nil
}

type fakeHistory struct {
	taken       map[string][]time.Time
	lastCheckin *time.Time
	results     []*testresult.Result
}

func (f *fakeHistory) record(code string, at time.Time) {
	if f.taken == nil {
		f.taken = make(map[string][]time.Time)
	}
	f.taken[code] = append(f.taken[code], at)
}

func (f *fakeHistory) AppendResult(_ context.Context, res *testresult.Result) error {
	f.results = append(f.results, res)
	f.record(res.TestCode, res.CreatedAt)
	return nil
}

func (f *fakeHistory) ShownSince(_ context.Context, _ int64, code string, since time.Time) (bool, error) {
	for _, at := range f.taken[code] {
		if !at.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHistory) CompletedBetween(_ context.Context, _ int64, code string, from, to time.Time) (bool, error) {
	for _, at := range f.taken[code] {
		if !at.Before(from) && at.Before(to) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHistory) LevelCompletedSince(_ context.Context, _ int64, level questionnaire.Level, since time.Time) (bool, error) {
	for code, times := range f.taken {
		if !strings.HasPrefix(code, string(level)) {
			continue
		}
		for _, at := range times {
			if !at.Before(since) {
				return true, nil
			}
		}
	}
	return false, nil
}

func (f *fakeHistory) LastTakenAt(_ context.Context, _ int64, code string) (*time.Time, error) {
	times := f.taken[code]
	if len(times) == 0 {
		return nil, nil
	}
	last := times[0]
	for _, at := range times[1:] {
		if at.After(last) {
			last = at
		}
	}
	return &last, nil
}

func (f *fakeHistory) LastCheckinAt(_ context.Context, _ int64) (*time.Time, error) {
	return f.lastCheckin, nil
}

// strictProfiles mimics the real store's update semantics: a partial
// update against a row that was never provisioned fails.
type strictProfiles struct {
	fakeProfiles
}

func (f *strictProfiles) UpdateProfile(ctx context.Context, userID int64, u profile.Updates) error {
	if f.prof == nil {
		return errors.New("profile row missing")
	}
	return f.fakeProfiles.UpdateProfile(ctx, userID, u)
}

func newEngine(t *testing.T, profiles engine.ProfileStore, history *fakeHistory, now time.Time) *engine.Engine {
	t.Helper()
	bank, err := registry.New()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return engine.New(profiles, history, bank, time.UTC, logger).
		WithClock(func() time.Time { return now })
}

// completedProfile returns a post-onboarding profile on the given track.
func completedProfile(track questionnaire.Track) *profile.Profile {
	p := profile.New(1)
	p.Track = track
	p.OnboardingDay = profile.DayCompleted
	p.OnboardingCompleted = true
	p.RiskLevel = questionnaire.RiskMedium
	return p
}

func nextCode(t *testing.T, e *engine.Engine, cc checkin.Context) string {
	t.Helper()
	d, err := e.NextTest(context.Background(), 1, cc)
	if err != nil {
		t.Fatalf("NextTest: %v", err)
	}
	if d == nil {
		return ""
	}
	return d.Code
}

func intPtr(v int) *int { return &v }

func TestOnboardingStartsWithGlobalScreen(t *testing.T) {
	e := newEngine(t, &fakeProfiles{}, &fakeHistory{}, wednesday)

	if got := nextCode(t, e, checkin.Context{}); got != "A1" {
		t.Fatalf("first test = %q, want A1", got)
	}
}

func TestTrackScreenMatchesTrack(t *testing.T) {
	cases := []struct {
		track questionnaire.Track
		want  string
	}{
		{questionnaire.TrackGambling, "A2"},
		{questionnaire.TrackTrading, "A3"},
		{questionnaire.TrackDigital, "A4"},
		{"", "A2"}, // unset track defaults to the gambling screen
	}
	for _, tc := range cases {
		prof := profile.New(1)
		prof.Track = tc.track
		prof.OnboardingDay = profile.DayTrackScreen
		e := newEngine(t, &fakeProfiles{prof: prof}, &fakeHistory{}, wednesday)

		if got := nextCode(t, e, checkin.Context{}); got != tc.want {
			t.Errorf("track %q: got %q, want %q", tc.track, got, tc.want)
		}
	}
}

func TestOnboardingGatePreemptsEverything(t *testing.T) {
	// Even a relapse signal must not surface D1 mid-onboarding.
	prof := profile.New(1)
	prof.OnboardingDay = profile.DayEmotionalScreen
	e := newEngine(t, &fakeProfiles{prof: prof}, &fakeHistory{}, wednesday)

	if got := nextCode(t, e, checkin.Context{Relapse: true, Urge: intPtr(9)}); got != "A5" {
		t.Fatalf("got %q, want A5", got)
	}
}

func TestRelapseOutranksHighUrge(t *testing.T) {
	e := newEngine(t, &fakeProfiles{prof: completedProfile(questionnaire.TrackGambling)}, &fakeHistory{}, wednesday)

	if got := nextCode(t, e, checkin.Context{Relapse: true, Urge: intPtr(9)}); got != "D1" {
		t.Fatalf("got %q, want D1", got)
	}
}

func TestHighUrgeCooldown(t *testing.T) {
	history := &fakeHistory{}
	history.record("D2", wednesday.Add(-11*time.Hour))
	e := newEngine(t, &fakeProfiles{prof: completedProfile(questionnaire.TrackDigital)}, history, wednesday)

	// Inside the 12h window the urge falls through to the daily layer,
	// where the high-urge follow-up B1_2 is first in line.
	if got := nextCode(t, e, checkin.Context{Urge: intPtr(8)}); got != "B1_2" {
		t.Fatalf("inside cooldown: got %q, want B1_2", got)
	}

	later := wednesday.Add(2 * time.Hour) // 13h after the last D2
	e = newEngine(t, &fakeProfiles{prof: completedProfile(questionnaire.TrackDigital)}, history, later)
	if got := nextCode(t, e, checkin.Context{Urge: intPtr(8)}); got != "D2" {
		t.Fatalf("after cooldown: got %q, want D2", got)
	}
}

func TestCrisisNoteTriggersHeavyMomentCheck(t *testing.T) {
	e := newEngine(t, &fakeProfiles{prof: completedProfile(questionnaire.TrackDigital)}, &fakeHistory{}, wednesday)

	if got := nextCode(t, e, checkin.Context{Note: "I feel completely HOPELESS today"}); got != "D3" {
		t.Fatalf("got %q, want D3", got)
	}
}

func TestReengagementAfterAbsence(t *testing.T) {
	last := wednesday.Add(-4 * 24 * time.Hour)
	history := &fakeHistory{lastCheckin: &last}
	e := newEngine(t, &fakeProfiles{prof: completedProfile(questionnaire.TrackDigital)}, history, wednesday)

	if got := nextCode(t, e, checkin.Context{}); got != "D4" {
		t.Fatalf("got %q, want D4", got)
	}

	// No check-in history at all is a new user, not an absent one.
	e = newEngine(t, &fakeProfiles{prof: completedProfile(questionnaire.TrackDigital)}, &fakeHistory{}, wednesday)
	if got := nextCode(t, e, checkin.Context{}); got == "D4" {
		t.Fatal("D4 offered with no prior check-ins")
	}
}

func TestWeeklyOnSundaysOnly(t *testing.T) {
	e := newEngine(t, &fakeProfiles{prof: completedProfile(questionnaire.TrackDigital)}, &fakeHistory{}, wednesday)
	if got := nextCode(t, e, checkin.Context{}); strings.HasPrefix(got, "C") {
		t.Fatalf("weekly test %q offered on a Wednesday", got)
	}

	e = newEngine(t, &fakeProfiles{prof: completedProfile(questionnaire.TrackDigital)}, &fakeHistory{}, sunday)
	if got := nextCode(t, e, checkin.Context{}); got != "C1" {
		t.Fatalf("Sunday: got %q, want C1", got)
	}
}

func TestWeeklyOncePerWeek(t *testing.T) {
	history := &fakeHistory{}
	history.record("C2", sunday.Add(-3*time.Hour)) // earlier the same Sunday
	e := newEngine(t, &fakeProfiles{prof: completedProfile(questionnaire.TrackDigital)}, history, sunday)

	if got := nextCode(t, e, checkin.Context{}); strings.HasPrefix(got, "C") {
		t.Fatalf("second weekly test %q in the same week", got)
	}
}

func TestWeeklyRotationPrefersLeastRecent(t *testing.T) {
	history := &fakeHistory{}
	history.record("C1", sunday.Add(-21*24*time.Hour))
	history.record("C2", sunday.Add(-7*24*time.Hour))
	e := newEngine(t, &fakeProfiles{prof: completedProfile(questionnaire.TrackDigital)}, history, sunday)

	// C3 has never been taken, so it wins over any dated completion.
	if got := nextCode(t, e, checkin.Context{}); got != "C3" {
		t.Fatalf("got %q, want C3", got)
	}

	history.record("C3", sunday.Add(-14*24*time.Hour))
	history.record("C4", sunday.Add(-28*24*time.Hour))
	e = newEngine(t, &fakeProfiles{prof: completedProfile(questionnaire.TrackDigital)}, history, sunday)
	if got := nextCode(t, e, checkin.Context{}); got != "C4" {
		t.Fatalf("all taken: got %q, want oldest C4", got)
	}
}

func TestDailyRotationSkipsCompletedToday(t *testing.T) {
	history := &fakeHistory{}
	prof := completedProfile(questionnaire.TrackDigital) // neutral context, no track follow-ups
	e := newEngine(t, &fakeProfiles{prof: prof}, history, wednesday)

	if got := nextCode(t, e, checkin.Context{}); got != "B2_1" {
		t.Fatalf("fresh rotation: got %q, want B2_1", got)
	}

	history.record("B2_1", wednesday.Add(-2*time.Hour))
	e = newEngine(t, &fakeProfiles{prof: prof}, history, wednesday)
	if got := nextCode(t, e, checkin.Context{}); got != "B3_1" {
		t.Fatalf("after B2_1 today: got %q, want B3_1", got)
	}
}

func TestDailyCeiling(t *testing.T) {
	history := &fakeHistory{}
	for _, code := range []string{"B2_1", "B3_1", "B4_1", "B6_1", "B1_1"} {
		history.record(code, wednesday.Add(-time.Hour))
	}
	e := newEngine(t, &fakeProfiles{prof: completedProfile(questionnaire.TrackDigital)}, history, wednesday)

	if got := nextCode(t, e, checkin.Context{}); got != "" {
		t.Fatalf("got %q, want no test after the daily ceiling", got)
	}
}

func TestDailyPriorityOnRelapse(t *testing.T) {
	history := &fakeHistory{}
	// D1 already shown recently, so the relapse falls through to the
	// daily layer and its follow-up list.
	history.record("D1", wednesday.Add(-2*time.Hour))
	prof := completedProfile(questionnaire.TrackGambling)
	e := newEngine(t, &fakeProfiles{prof: prof}, history, wednesday)

	if got := nextCode(t, e, checkin.Context{Relapse: true}); got != "B1_2" {
		t.Fatalf("got %q, want B1_2", got)
	}

	history.record("B1_2", wednesday.Add(-time.Hour))
	e = newEngine(t, &fakeProfiles{prof: prof}, history, wednesday)
	if got := nextCode(t, e, checkin.Context{Relapse: true}); got != "B3_1" {
		t.Fatalf("B1_2 done today: got %q, want B3_1", got)
	}
}

func TestScreeningNeverRepeatsAfterOnboarding(t *testing.T) {
	contexts := []checkin.Context{
		{},
		{Relapse: true, Urge: intPtr(9), Stress: intPtr(9), Note: "I feel hopeless"},
	}
	for _, now := range []time.Time{wednesday, sunday} {
		for _, cc := range contexts {
			e := newEngine(t, &fakeProfiles{prof: completedProfile(questionnaire.TrackGambling)}, &fakeHistory{}, now)
			if got := nextCode(t, e, cc); strings.HasPrefix(got, "A") {
				t.Errorf("%s: completed profile offered screening test %q", now.Weekday(), got)
			}
		}
	}
}

func TestSubmitUnknownCodePersistsNothing(t *testing.T) {
	history := &fakeHistory{}
	profiles := &fakeProfiles{prof: completedProfile(questionnaire.TrackGambling)}
	e := newEngine(t, profiles, history, wednesday)

	_, err := e.SubmitResult(context.Background(), 1, "ZZZ", nil, 3)
	if !errors.Is(err, registry.ErrUnknownTest) {
		t.Fatalf("err = %v, want ErrUnknownTest", err)
	}
	if len(history.results) != 0 || len(profiles.updates) != 0 {
		t.Fatal("rejected submission left persisted state behind")
	}
}

func TestSubmitGlobalScreenAsksForTrack(t *testing.T) {
	history := &fakeHistory{}
	profiles := &fakeProfiles{}
	e := newEngine(t, profiles, history, wednesday)

	out, err := e.SubmitResult(context.Background(), 1, "A1", map[string]any{"A1_Q1": 2}, 10)
	if err != nil {
		t.Fatalf("SubmitResult: %v", err)
	}
	if !out.ShowTrackSelection || len(out.TrackOptions) != 3 {
		t.Fatalf("track selection not offered: %+v", out)
	}
	if len(history.results) != 1 || history.results[0].TestCode != "A1" {
		t.Fatal("result row not appended")
	}
	if len(profiles.updates) != 1 {
		t.Fatalf("updates = %d, want 1", len(profiles.updates))
	}
	u := profiles.updates[0]
	if u.RiskBehaviorScore == nil || *u.RiskBehaviorScore != 10 {
		t.Fatalf("risk behavior score not stored: %+v", u)
	}
	if u.OnboardingDay == nil || *u.OnboardingDay != profile.DayTrackScreen {
		t.Fatalf("onboarding day not advanced: %+v", u)
	}
}

func TestSubmitGlobalScreenIsValidFirstTouch(t *testing.T) {
	// The very first API call a client makes may be the A1 submission
	// itself, with no prior profile read to create the row.
	profiles := &strictProfiles{}
	history := &fakeHistory{}
	e := newEngine(t, profiles, history, wednesday)

	out, err := e.SubmitResult(context.Background(), 42, "A1", map[string]any{"A1_Q1": 2}, 10)
	if err != nil {
		t.Fatalf("first-touch submission failed: %v", err)
	}
	if !out.ShowTrackSelection {
		t.Fatal("track selection not offered")
	}
	if len(profiles.updates) != 1 {
		t.Fatalf("updates = %d, want 1", len(profiles.updates))
	}
	if len(history.results) != 1 {
		t.Fatal("result row not appended")
	}
}

func TestSubmitEmotionalScreenAggregatesRisk(t *testing.T) {
	prof := profile.New(1)
	prof.OnboardingDay = profile.DayEmotionalScreen
	prof.RiskBehaviorScore = intPtr(10)
	prof.GamblingScore = intPtr(10)
	profiles := &fakeProfiles{prof: prof}
	e := newEngine(t, profiles, &fakeHistory{}, wednesday)

	out, err := e.SubmitResult(context.Background(), 1, "A5", nil, 5)
	if err != nil {
		t.Fatalf("SubmitResult: %v", err)
	}
	if !out.OnboardingComplete {
		t.Fatal("onboarding not marked complete")
	}
	u := profiles.updates[0]
	if u.RiskLevel == nil || *u.RiskLevel != questionnaire.RiskMedium {
		t.Fatalf("10+10+5=25 should classify medium, got %+v", u.RiskLevel)
	}
	if u.OnboardingCompleted == nil || !*u.OnboardingCompleted {
		t.Fatalf("completion flag not set: %+v", u)
	}
}

func TestSubmitInterpretationBands(t *testing.T) {
	cases := []struct {
		score       int
		wantLevel   string
		wantActions []string
	}{
		{3, "low", nil},
		{4, "medium", []string{engine.ActionSoftIntervention}},
		{7, "high", []string{engine.ActionOfferSOS, engine.ActionShowHelplines}},
		{11, "unknown", nil}, // past every range, still recorded
	}
	for _, tc := range cases {
		history := &fakeHistory{}
		e := newEngine(t, &fakeProfiles{prof: completedProfile(questionnaire.TrackGambling)}, history, wednesday)

		out, err := e.SubmitResult(context.Background(), 1, "B1_1", nil, tc.score)
		if err != nil {
			t.Fatalf("score %d: %v", tc.score, err)
		}
		if out.Interpretation.Level != tc.wantLevel {
			t.Errorf("score %d: level %q, want %q", tc.score, out.Interpretation.Level, tc.wantLevel)
		}
		if len(out.Actions) != len(tc.wantActions) {
			t.Errorf("score %d: actions %v, want %v", tc.score, out.Actions, tc.wantActions)
			continue
		}
		for i := range tc.wantActions {
			if out.Actions[i] != tc.wantActions[i] {
				t.Errorf("score %d: actions %v, want %v", tc.score, out.Actions, tc.wantActions)
			}
		}
		if len(history.results) != 1 {
			t.Errorf("score %d: result not appended", tc.score)
		}
	}
}

func TestSubmitUsesBandedResponse(t *testing.T) {
	e := newEngine(t, &fakeProfiles{prof: completedProfile(questionnaire.TrackGambling)}, &fakeHistory{}, wednesday)

	out, err := e.SubmitResult(context.Background(), 1, "B1_1", nil, 2)
	if err != nil {
		t.Fatalf("SubmitResult: %v", err)
	}
	if out.BotMessage == "" {
		t.Fatal("empty bot message")
	}
}
