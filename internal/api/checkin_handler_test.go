package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/steadypath/backend/internal/api"
	"github.com/steadypath/backend/internal/domain/checkin"
	"github.com/steadypath/backend/internal/domain/profile"
	"github.com/steadypath/backend/internal/domain/questionnaire"
	"github.com/steadypath/backend/internal/engine"
	"github.com/steadypath/backend/internal/registry"
	"github.com/steadypath/backend/internal/store"
)

// newTestServer wires a mux over a throwaway SQLite store with the
// engine clock pinned to now.
func newTestServer(t *testing.T, now time.Time) (*http.ServeMux, *store.SQLiteStore) {
	t.Helper()

	db, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	bank, err := registry.New()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng := engine.New(db, db, bank, time.UTC, logger).
		WithClock(func() time.Time { return now })

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, api.NewHandler(db, eng, time.UTC, logger))
	return mux, db
}

// completeOnboarding pushes the user's profile past the screening gate.
func completeOnboarding(t *testing.T, db *store.SQLiteStore, userID int64) {
	t.Helper()
	ctx := context.Background()

	if _, err := db.GetOrCreateProfile(ctx, userID); err != nil {
		t.Fatalf("create profile: %v", err)
	}
	day := profile.DayCompleted
	done := true
	level := questionnaire.RiskLow
	err := db.UpdateProfile(ctx, userID, profile.Updates{
		OnboardingDay:       &day,
		OnboardingCompleted: &done,
		RiskLevel:           &level,
	})
	if err != nil {
		t.Fatalf("complete onboarding: %v", err)
	}
}

// A check-in that ends a multi-day absence must still carry the
// re-engagement check in its response; the check-in being saved must
// not count as the "last seen" the engine measures absence against.
func TestCreateCheckinAfterAbsenceOffersReengagement(t *testing.T) {
	now := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC) // a Wednesday
	mux, db := newTestServer(t, now)
	completeOnboarding(t, db, 1)

	old := &checkin.Checkin{UserID: 1, Urge: 2, Stress: 2, Mood: 5, CreatedAt: now.Add(-96 * time.Hour)}
	if err := db.SaveCheckin(context.Background(), old); err != nil {
		t.Fatalf("seed check-in: %v", err)
	}

	req := httptest.NewRequest("POST", "/checkins", strings.NewReader(`{"urge":2,"stress":2,"mood":5}`))
	req.Header.Set("X-User-ID", "1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp api.CreateCheckinResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.NextTest == nil || resp.NextTest.Code != "D4" {
		t.Fatalf("next test = %+v, want D4", resp.NextTest)
	}
	if resp.Streak.Current != 1 {
		t.Errorf("streak = %d, want 1", resp.Streak.Current)
	}
}
