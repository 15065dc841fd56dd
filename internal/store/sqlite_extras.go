package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// ============================================================================
// Money tracking
// ============================================================================

// GetMoneySettings returns the user's settings, with defaults when the
// user has never configured them.
func (s *SQLiteStore) GetMoneySettings(ctx context.Context, userID int64) (*MoneySettings, error) {
	ms := &MoneySettings{UserID: userID, Currency: "EUR"}
	var updatedAt string
	err := s.db.QueryRowContext(ctx,
		"SELECT daily_limit, currency, updated_at FROM money_settings WHERE user_id = ?", userID,
	).Scan(&ms.DailyLimit, &ms.Currency, &updatedAt)
	if err == sql.ErrNoRows {
		return ms, nil
	}
	if err != nil {
		return nil, err
	}
	if ms.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return ms, nil
}

func (s *SQLiteStore) SaveMoneySettings(ctx context.Context, ms *MoneySettings) error {
	if err := s.ensureUser(ctx, ms.UserID); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO money_settings (user_id, daily_limit, currency, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			daily_limit = excluded.daily_limit,
			currency = excluded.currency,
			updated_at = excluded.updated_at`,
		ms.UserID, ms.DailyLimit, ms.Currency, fmtTime(ms.UpdatedAt),
	)
	return err
}

func (s *SQLiteStore) AddMoneyEntry(ctx context.Context, e *MoneyEntry) error {
	if err := s.ensureUser(ctx, e.UserID); err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO money_entries (user_id, amount, kind, note, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		e.UserID, e.Amount, e.Kind, e.Note, fmtTime(e.CreatedAt),
	)
	if err != nil {
		return err
	}
	e.ID, err = result.LastInsertId()
	return err
}

func (s *SQLiteStore) ListMoneyEntries(ctx context.Context, userID int64, limit int) ([]*MoneyEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, amount, kind, note, created_at
		FROM money_entries WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*MoneyEntry
	for rows.Next() {
		var e MoneyEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Kind, &e.Note, &createdAt); err != nil {
			return nil, err
		}
		if e.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) GetMoneyStats(ctx context.Context, userID int64) (*MoneyStats, error) {
	var stats MoneyStats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN kind = ? THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = ? THEN amount ELSE 0 END), 0),
			COUNT(*)
		FROM money_entries WHERE user_id = ?`,
		MoneySaved, MoneyLost, userID,
	).Scan(&stats.TotalSaved, &stats.TotalLost, &stats.Entries)
	if err != nil {
		return nil, err
	}
	stats.Net = stats.TotalSaved - stats.TotalLost
	return &stats, nil
}

// ============================================================================
// Thought diary
// ============================================================================

func (s *SQLiteStore) AddThoughtEntry(ctx context.Context, e *ThoughtEntry) error {
	if err := s.ensureUser(ctx, e.UserID); err != nil {
		return err
	}
	distortions := e.Distortions
	if distortions == nil {
		distortions = []string{}
	}
	distortionsJSON, err := json.Marshal(distortions)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO thought_entries (user_id, situation, thought, emotion, intensity, distortions, reframe, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.UserID, e.Situation, e.Thought, e.Emotion, e.Intensity, string(distortionsJSON), e.Reframe, fmtTime(e.CreatedAt),
	)
	if err != nil {
		return err
	}
	e.ID, err = result.LastInsertId()
	return err
}

func (s *SQLiteStore) ListThoughtEntries(ctx context.Context, userID int64, limit int) ([]*ThoughtEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, situation, thought, emotion, intensity, distortions, reframe, created_at
		FROM thought_entries WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*ThoughtEntry
	for rows.Next() {
		var e ThoughtEntry
		var distortionsJSON, createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Situation, &e.Thought, &e.Emotion, &e.Intensity, &distortionsJSON, &e.Reframe, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(distortionsJSON), &e.Distortions); err != nil {
			return nil, err
		}
		if e.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// ============================================================================
// SOS events
// ============================================================================

func (s *SQLiteStore) LogSOSEvent(ctx context.Context, e *SOSEvent) error {
	if err := s.ensureUser(ctx, e.UserID); err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO sos_events (user_id, technique, created_at) VALUES (?, ?, ?)",
		e.UserID, e.Technique, fmtTime(e.CreatedAt),
	)
	if err != nil {
		return err
	}
	e.ID, err = result.LastInsertId()
	return err
}

// ============================================================================
// Reminders
// ============================================================================

func (s *SQLiteStore) GetReminderSettings(ctx context.Context, userID int64) (*ReminderSettings, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	var rs ReminderSettings
	rs.UserID = userID
	err := s.db.QueryRowContext(ctx,
		"SELECT reminder_enabled, reminder_hour, notify_target, last_reminder_date FROM users WHERE id = ?",
		userID,
	).Scan(&rs.Enabled, &rs.Hour, &rs.NotifyTarget, &rs.LastReminderDate)
	if err != nil {
		return nil, err
	}
	return &rs, nil
}

func (s *SQLiteStore) UpdateReminderSettings(ctx context.Context, userID int64, enabled *bool, hour *int, notifyTarget *string) error {
	if err := s.ensureUser(ctx, userID); err != nil {
		return err
	}
	if enabled != nil {
		if _, err := s.db.ExecContext(ctx, "UPDATE users SET reminder_enabled = ? WHERE id = ?", *enabled, userID); err != nil {
			return err
		}
	}
	if hour != nil {
		if _, err := s.db.ExecContext(ctx, "UPDATE users SET reminder_hour = ? WHERE id = ?", *hour, userID); err != nil {
			return err
		}
	}
	if notifyTarget != nil {
		if _, err := s.db.ExecContext(ctx, "UPDATE users SET notify_target = ? WHERE id = ?", *notifyTarget, userID); err != nil {
			return err
		}
	}
	return nil
}

// DueForReminder returns users whose reminder hour matches, who have not
// been reminded today, and who have not checked in since dayStart.
func (s *SQLiteStore) DueForReminder(ctx context.Context, hour int, today string, dayStart time.Time) ([]ReminderCandidate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, notify_target FROM users
		WHERE reminder_enabled = 1
		  AND reminder_hour = ?
		  AND last_reminder_date != ?
		  AND NOT EXISTS (
			SELECT 1 FROM checkins
			WHERE checkins.user_id = users.id AND checkins.created_at >= ?
		  )`,
		hour, today, fmtTime(dayStart),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var due []ReminderCandidate
	for rows.Next() {
		var c ReminderCandidate
		if err := rows.Scan(&c.UserID, &c.NotifyTarget); err != nil {
			return nil, err
		}
		due = append(due, c)
	}
	return due, rows.Err()
}

// MarkReminded records today's nudge so the sweep stays idempotent.
func (s *SQLiteStore) MarkReminded(ctx context.Context, userID int64, today string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE users SET last_reminder_date = ? WHERE id = ?", today, userID)
	return err
}
