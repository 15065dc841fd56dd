// internal/service/reminder.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/steadypath/backend/internal/store"
	"github.com/steadypath/backend/internal/worker"
)

// Notifier delivers a check-in reminder to a user outside the app.
type Notifier interface {
	Notify(ctx context.Context, userID int64, target string) error
}

// LogNotifier writes reminders to the log. It stands in until a real
// push provider is configured; the sweep and bookkeeping around it are
// identical either way.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, userID int64, target string) error {
	n.logger.Info("check-in reminder", "user_id", userID, "target", target)
	return nil
}

type reminderStore interface {
	DueForReminder(ctx context.Context, hour int, today string, dayStart time.Time) ([]store.ReminderCandidate, error)
	MarkReminded(ctx context.Context, userID int64, today string) error
}

// ReminderService periodically nudges users who enabled reminders and
// have not checked in today. Sends fan out over a worker pool; a user
// is marked reminded before the send so a crash cannot double-nudge.
type ReminderService struct {
	store    reminderStore
	notifier Notifier
	pool     *worker.Pool[error]
	loc      *time.Location
	interval time.Duration
	logger   *slog.Logger
	clock    func() time.Time

	stop chan struct{}
	done chan struct{}
}

func NewReminderService(s reminderStore, n Notifier, loc *time.Location, interval time.Duration, workers int, logger *slog.Logger) *ReminderService {
	return &ReminderService{
		store:    s,
		notifier: n,
		pool:     worker.NewPool[error](workers, workers*4),
		loc:      loc,
		interval: interval,
		logger:   logger,
		clock:    time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// WithClock replaces the time source. Tests use it to pin the calendar.
func (rs *ReminderService) WithClock(clock func() time.Time) *ReminderService {
	rs.clock = clock
	return rs
}

// Start launches the sweep loop and the result drain.
func (rs *ReminderService) Start() {
	go func() {
		for res := range rs.pool.Results() {
			if res.Output != nil {
				rs.logger.Error("reminder delivery failed", "user", res.JobID, "error", res.Output)
			}
		}
	}()

	go func() {
		defer close(rs.done)
		ticker := time.NewTicker(rs.interval)
		defer ticker.Stop()

		for {
			select {
			case <-rs.stop:
				return
			case <-ticker.C:
				if err := rs.Sweep(context.Background(), rs.clock()); err != nil {
					rs.logger.Error("reminder sweep failed", "error", err)
				}
			}
		}
	}()
}

// Stop halts the loop and waits for in-flight sends.
func (rs *ReminderService) Stop() {
	close(rs.stop)
	<-rs.done
	rs.pool.Close()
}

// Sweep sends reminders due at the given instant. A sweep only fires in
// the first five minutes of an hour, so an hourly reminder goes out once
// even with a short tick interval.
func (rs *ReminderService) Sweep(ctx context.Context, now time.Time) error {
	local := now.In(rs.loc)
	if local.Minute() >= 5 {
		return nil
	}

	today := local.Format("2006-01-02")
	y, m, d := local.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, rs.loc)

	due, err := rs.store.DueForReminder(ctx, local.Hour(), today, dayStart)
	if err != nil {
		return err
	}

	for _, cand := range due {
		if err := rs.store.MarkReminded(ctx, cand.UserID, today); err != nil {
			rs.logger.Error("mark reminded failed", "error", err, "user_id", cand.UserID)
			continue
		}
		cand := cand
		rs.pool.Submit(fmt.Sprintf("%d", cand.UserID), func() error {
			return rs.notifier.Notify(ctx, cand.UserID, cand.NotifyTarget)
		})
	}

	if len(due) > 0 {
		rs.logger.Info("reminder sweep", "hour", local.Hour(), "due", len(due))
	}
	return nil
}
