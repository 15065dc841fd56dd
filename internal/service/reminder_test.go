package service_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/steadypath/backend/internal/service"
	"github.com/steadypath/backend/internal/store"
)

type fakeReminderStore struct {
	mu       sync.Mutex
	due      []store.ReminderCandidate
	queries  []int
	reminded map[int64]string
}

func (f *fakeReminderStore) DueForReminder(_ context.Context, hour int, _ string, _ time.Time) ([]store.ReminderCandidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, hour)
	return f.due, nil
}

func (f *fakeReminderStore) MarkReminded(_ context.Context, userID int64, today string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.reminded == nil {
		f.reminded = make(map[int64]string)
	}
	f.reminded[userID] = today
	return nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	users []int64
}

func (f *fakeNotifier) Notify(_ context.Context, userID int64, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, userID)
	return nil
}

func newService(st *fakeReminderStore, n service.Notifier) *service.ReminderService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewReminderService(st, n, time.UTC, time.Hour, 2, logger)
}

func TestSweepNotifiesDueUsers(t *testing.T) {
	st := &fakeReminderStore{due: []store.ReminderCandidate{
		{UserID: 1, NotifyTarget: "device-a"},
		{UserID: 2, NotifyTarget: "device-b"},
	}}
	notifier := &fakeNotifier{}
	rs := newService(st, notifier)
	rs.Start()

	at := time.Date(2025, 3, 5, 20, 2, 0, 0, time.UTC)
	if err := rs.Sweep(context.Background(), at); err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	// Stop drains the pool, so all sends have finished after it returns.
	rs.Stop()

	if len(notifier.users) != 2 {
		t.Fatalf("notified %d users, want 2", len(notifier.users))
	}
	if len(st.queries) != 1 || st.queries[0] != 20 {
		t.Fatalf("expected one query for hour 20, got %v", st.queries)
	}
	for _, uid := range []int64{1, 2} {
		if st.reminded[uid] != "2025-03-05" {
			t.Errorf("user %d not marked reminded: %q", uid, st.reminded[uid])
		}
	}
}

func TestSweepOnlyFiresEarlyInTheHour(t *testing.T) {
	st := &fakeReminderStore{due: []store.ReminderCandidate{{UserID: 1}}}
	notifier := &fakeNotifier{}
	rs := newService(st, notifier)
	rs.Start()

	at := time.Date(2025, 3, 5, 20, 30, 0, 0, time.UTC)
	if err := rs.Sweep(context.Background(), at); err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	rs.Stop()

	if len(st.queries) != 0 {
		t.Error("sweep outside the first five minutes should not query")
	}
	if len(notifier.users) != 0 {
		t.Error("sweep outside the first five minutes should not notify")
	}
}
