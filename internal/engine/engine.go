// Package engine decides which questionnaire, if any, a user should see
// next, and processes submitted results. Selection follows a strict
// priority order: onboarding, then event tests, then the weekly test,
// then the daily rotation. The first match wins; at most one test is
// ever returned per call.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/steadypath/backend/internal/domain/checkin"
	"github.com/steadypath/backend/internal/domain/profile"
	"github.com/steadypath/backend/internal/domain/questionnaire"
	"github.com/steadypath/backend/internal/domain/testresult"
	"github.com/steadypath/backend/internal/registry"
)

// ProfileStore is the engine's view of per-user mutable state.
// Profile reads auto-create a default row for unknown users.
type ProfileStore interface {
	GetOrCreateProfile(ctx context.Context, userID int64) (*profile.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, u profile.Updates) error
}

// HistoryStore is the engine's view of the append-only completion log.
// All instants are absolute; the engine owns the calendar math.
type HistoryStore interface {
	AppendResult(ctx context.Context, res *testresult.Result) error
	ShownSince(ctx context.Context, userID int64, code string, since time.Time) (bool, error)
	CompletedBetween(ctx context.Context, userID int64, code string, from, to time.Time) (bool, error)
	LevelCompletedSince(ctx context.Context, userID int64, level questionnaire.Level, since time.Time) (bool, error)
	LastTakenAt(ctx context.Context, userID int64, code string) (*time.Time, error)
	LastCheckinAt(ctx context.Context, userID int64) (*time.Time, error)
}

// Context-signal thresholds and event-test cooldown windows.
const (
	highUrgeThreshold   = 7
	highStressThreshold = 7
	reengagementAfter   = 72 * time.Hour

	relapseDebriefWindow = 24 * time.Hour
	highUrgeWindow       = 12 * time.Hour
	crisisWindow         = 24 * time.Hour
	reengagementWindow   = 168 * time.Hour
)

// Daily selection tables. Priority follow-ups are tried in order before
// the rotation pool; the baseline is the guaranteed last resort.
var (
	relapseFollowUps    = []string{"B1_2", "B3_1"}
	highUrgeFollowUps   = []string{"B1_2", "B7_1"}
	highStressFollowUps = []string{"B5_1", "B5_2"}
	riskTrackFollowUps  = []string{"B2_3", "B7_2"}

	dailyRotationPool = []string{"B2_1", "B3_1", "B4_1", "B6_1"}
	weeklyCandidates  = []string{"C1", "C2", "C3", "C4"}
)

const dailyBaseline = "B1_1"

type Engine struct {
	profiles ProfileStore
	history  HistoryStore
	bank     *registry.Registry
	loc      *time.Location
	clock    func() time.Time
	logger   *slog.Logger
}

func New(profiles ProfileStore, history HistoryStore, bank *registry.Registry, loc *time.Location, logger *slog.Logger) *Engine {
	return &Engine{
		profiles: profiles,
		history:  history,
		bank:     bank,
		loc:      loc,
		clock:    time.Now,
		logger:   logger,
	}
}

// WithClock replaces the time source. Tests use it to pin the calendar.
func (e *Engine) WithClock(clock func() time.Time) *Engine {
	e.clock = clock
	return e
}

// NextTest returns the single test the user should see now, or nil when
// nothing is due.
func (e *Engine) NextTest(ctx context.Context, userID int64, cc checkin.Context) (*questionnaire.Definition, error) {
	now := e.clock().In(e.loc)

	prof, err := e.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The onboarding gate fully preempts everything below: no B/C/D test
	// surfaces until the screening sequence is done.
	if !prof.OnboardingCompleted {
		return e.onboardingTest(prof), nil
	}

	if d, err := e.eventTest(ctx, userID, cc, now); err != nil || d != nil {
		return d, err
	}
	if d, err := e.weeklyTest(ctx, userID, now); err != nil || d != nil {
		return d, err
	}
	return e.dailyTest(ctx, userID, prof, cc, now)
}

// onboardingTest selects by onboarding day. Outside the known states the
// gate is a terminal no-op.
func (e *Engine) onboardingTest(prof *profile.Profile) *questionnaire.Definition {
	switch prof.OnboardingDay {
	case 0, profile.DayGlobalScreen:
		return e.fromBank("A1")
	case profile.DayTrackScreen:
		return e.fromBank(trackScreenCode(prof.Track))
	case profile.DayEmotionalScreen:
		return e.fromBank("A5")
	}
	return nil
}

// trackScreenCode maps a track to its day-2 screen. An unset or unknown
// track deterministically defaults to the gambling screen.
func trackScreenCode(t questionnaire.Track) string {
	switch t {
	case questionnaire.TrackTrading:
		return "A3"
	case questionnaire.TrackDigital:
		return "A4"
	default:
		return "A2"
	}
}

// eventTest evaluates D1..D4 in fixed order; the first trigger whose
// cooldown window is clear wins.
func (e *Engine) eventTest(ctx context.Context, userID int64, cc checkin.Context, now time.Time) (*questionnaire.Definition, error) {
	if cc.Relapse {
		if d, err := e.unlessShownSince(ctx, userID, "D1", now.Add(-relapseDebriefWindow)); err != nil || d != nil {
			return d, err
		}
	}

	if cc.UrgeValue() >= highUrgeThreshold {
		if d, err := e.unlessShownSince(ctx, userID, "D2", now.Add(-highUrgeWindow)); err != nil || d != nil {
			return d, err
		}
	}

	if registry.ContainsCrisisLanguage(cc.Note) {
		if d, err := e.unlessShownSince(ctx, userID, "D3", now.Add(-crisisWindow)); err != nil || d != nil {
			return d, err
		}
	}

	last, err := e.history.LastCheckinAt(ctx, userID)
	if err != nil {
		return nil, err
	}
	if last != nil && now.Sub(*last) >= reengagementAfter {
		if d, err := e.unlessShownSince(ctx, userID, "D4", now.Add(-reengagementWindow)); err != nil || d != nil {
			return d, err
		}
	}

	return nil, nil
}

func (e *Engine) unlessShownSince(ctx context.Context, userID int64, code string, since time.Time) (*questionnaire.Definition, error) {
	shown, err := e.history.ShownSince(ctx, userID, code, since)
	if err != nil {
		return nil, err
	}
	if shown {
		return nil, nil
	}
	return e.fromBank(code), nil
}

// weeklyTest offers a level-C test on Sundays, at most once per
// Monday-anchored week, rotating by least-recently-taken.
func (e *Engine) weeklyTest(ctx context.Context, userID int64, now time.Time) (*questionnaire.Definition, error) {
	if now.Weekday() != time.Sunday {
		return nil, nil
	}

	done, err := e.history.LevelCompletedSince(ctx, userID, questionnaire.LevelWeekly, e.weekStart(now))
	if err != nil {
		return nil, err
	}
	if done {
		return nil, nil
	}

	code, err := e.leastRecentlyTaken(ctx, userID, weeklyCandidates)
	if err != nil {
		return nil, err
	}
	return e.fromBank(code), nil
}

// dailyTest builds a context-driven priority list, then falls back to
// least-recently-taken rotation, then to the baseline urge check. Returns
// nil only when every eligible candidate was already completed today.
func (e *Engine) dailyTest(ctx context.Context, userID int64, prof *profile.Profile, cc checkin.Context, now time.Time) (*questionnaire.Definition, error) {
	var priority []string
	if cc.Relapse {
		priority = append(priority, relapseFollowUps...)
	}
	if cc.UrgeValue() >= highUrgeThreshold {
		priority = append(priority, highUrgeFollowUps...)
	}
	if cc.StressValue() >= highStressThreshold {
		priority = append(priority, highStressFollowUps...)
	}
	if prof.Track == questionnaire.TrackGambling || prof.Track == questionnaire.TrackTrading {
		priority = append(priority, riskTrackFollowUps...)
	}

	for _, code := range dedupe(priority) {
		d := e.fromBank(code)
		if d == nil || !d.AppliesTo(prof.Track) || !riskAllows(prof.RiskLevel, d.MinRiskLevel) {
			continue
		}
		done, err := e.completedToday(ctx, userID, code, now)
		if err != nil {
			return nil, err
		}
		if !done {
			return d, nil
		}
	}

	pool, err := e.notCompletedToday(ctx, userID, dailyRotationPool, now)
	if err != nil {
		return nil, err
	}
	if len(pool) > 0 {
		code, err := e.leastRecentlyTaken(ctx, userID, pool)
		if err != nil {
			return nil, err
		}
		return e.fromBank(code), nil
	}

	done, err := e.completedToday(ctx, userID, dailyBaseline, now)
	if err != nil {
		return nil, err
	}
	if !done {
		return e.fromBank(dailyBaseline), nil
	}

	// Every eligible test was taken today.
	return nil, nil
}

// leastRecentlyTaken picks the candidate with the oldest completion.
// Never-taken codes win first, in candidate order, which keeps the
// rotation deterministic and starvation-free.
func (e *Engine) leastRecentlyTaken(ctx context.Context, userID int64, codes []string) (string, error) {
	var bestCode string
	var bestAt time.Time
	for _, code := range codes {
		at, err := e.history.LastTakenAt(ctx, userID, code)
		if err != nil {
			return "", err
		}
		if at == nil {
			return code, nil
		}
		if bestCode == "" || at.Before(bestAt) {
			bestCode, bestAt = code, *at
		}
	}
	return bestCode, nil
}

func (e *Engine) notCompletedToday(ctx context.Context, userID int64, codes []string, now time.Time) ([]string, error) {
	var out []string
	for _, code := range codes {
		done, err := e.completedToday(ctx, userID, code, now)
		if err != nil {
			return nil, err
		}
		if !done {
			out = append(out, code)
		}
	}
	return out, nil
}

func (e *Engine) completedToday(ctx context.Context, userID int64, code string, now time.Time) (bool, error) {
	start := e.dayStart(now)
	return e.history.CompletedBetween(ctx, userID, code, start, start.AddDate(0, 0, 1))
}

func (e *Engine) dayStart(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.loc)
}

// weekStart returns Monday 00:00 of the week containing now.
func (e *Engine) weekStart(now time.Time) time.Time {
	offset := (int(now.Weekday()) + 6) % 7
	return e.dayStart(now).AddDate(0, 0, -offset)
}

// fromBank resolves a catalog code the engine's tables reference. The
// registry validates at startup, so a miss here is a programming error;
// it is logged and treated as "no test" rather than crashing a request.
func (e *Engine) fromBank(code string) *questionnaire.Definition {
	d, err := e.bank.Lookup(code)
	if err != nil {
		e.logger.Error("selection table references unknown test", "code", code)
		return nil
	}
	return d
}

func riskAllows(have, need questionnaire.RiskLevel) bool {
	if need == "" || need == questionnaire.RiskUnknown {
		return true
	}
	return riskRank(have) >= riskRank(need)
}

func riskRank(r questionnaire.RiskLevel) int {
	switch r {
	case questionnaire.RiskLow:
		return 1
	case questionnaire.RiskMedium:
		return 2
	case questionnaire.RiskHigh:
		return 3
	}
	return 0
}

func dedupe(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := codes[:0]
	for _, c := range codes {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
