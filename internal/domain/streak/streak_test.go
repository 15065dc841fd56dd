package streak_test

import (
	"testing"

	"github.com/steadypath/backend/internal/domain/streak"
)

func TestApplyCleanDays(t *testing.T) {
	var s streak.Streak

	s.Apply("2025-03-03", false)
	s.Apply("2025-03-04", false)
	s.Apply("2025-03-05", false)

	if s.Current != 3 || s.Best != 3 {
		t.Errorf("expected current=3 best=3, got current=%d best=%d", s.Current, s.Best)
	}
	if s.LastCheckinDate != "2025-03-05" {
		t.Errorf("unexpected last date %q", s.LastCheckinDate)
	}
}

func TestApplySameDayIsNoOp(t *testing.T) {
	var s streak.Streak

	s.Apply("2025-03-03", false)
	s.Apply("2025-03-03", false)

	if s.Current != 1 {
		t.Errorf("second check-in on the same day should not count, got %d", s.Current)
	}
}

func TestApplyRelapseResetsButKeepsBest(t *testing.T) {
	var s streak.Streak

	s.Apply("2025-03-03", false)
	s.Apply("2025-03-04", false)
	s.Apply("2025-03-05", true)

	if s.Current != 0 {
		t.Errorf("relapse should reset current, got %d", s.Current)
	}
	if s.Best != 2 {
		t.Errorf("best should survive a relapse, got %d", s.Best)
	}
	if s.LastCheckinDate != "2025-03-05" {
		t.Errorf("relapse check-in should still count as today, got %q", s.LastCheckinDate)
	}
}

func TestApplyRebuildsAfterRelapse(t *testing.T) {
	var s streak.Streak

	s.Apply("2025-03-03", false)
	s.Apply("2025-03-04", true)
	s.Apply("2025-03-05", false)
	s.Apply("2025-03-06", false)

	if s.Current != 2 {
		t.Errorf("expected rebuilt streak of 2, got %d", s.Current)
	}
	if s.Best != 2 {
		t.Errorf("expected best 2, got %d", s.Best)
	}
}
