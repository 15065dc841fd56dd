package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/steadypath/backend/internal/domain/checkin"
	"github.com/steadypath/backend/internal/domain/streak"
)

// ============================================================================
// Check-ins
// ============================================================================

func (s *SQLiteStore) SaveCheckin(ctx context.Context, c *checkin.Checkin) error {
	if err := s.ensureUser(ctx, c.UserID); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO checkins (user_id, urge, stress, mood, relapse, note, loss_amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.UserID, c.Urge, c.Stress, c.Mood, c.Relapse, c.Note, c.LossAmount, fmtTime(c.CreatedAt),
	)
	if err != nil {
		return err
	}
	c.ID, err = result.LastInsertId()
	return err
}

func (s *SQLiteStore) ListCheckins(ctx context.Context, userID int64, limit int) ([]*checkin.Checkin, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, urge, stress, mood, relapse, note, loss_amount, created_at
		FROM checkins WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkins []*checkin.Checkin
	for rows.Next() {
		c, err := scanCheckin(rows.Scan)
		if err != nil {
			return nil, err
		}
		checkins = append(checkins, c)
	}
	return checkins, rows.Err()
}

// LatestCheckinBetween returns the most recent check-in in [from, to),
// or ErrNotFound when the window is empty.
func (s *SQLiteStore) LatestCheckinBetween(ctx context.Context, userID int64, from, to time.Time) (*checkin.Checkin, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, urge, stress, mood, relapse, note, loss_amount, created_at
		FROM checkins
		WHERE user_id = ? AND created_at >= ? AND created_at < ?
		ORDER BY created_at DESC, id DESC LIMIT 1`,
		userID, fmtTime(from), fmtTime(to),
	)
	c, err := scanCheckin(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *SQLiteStore) LastCheckinAt(ctx context.Context, userID int64) (*time.Time, error) {
	var last sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT MAX(created_at) FROM checkins WHERE user_id = ?", userID,
	).Scan(&last)
	if err != nil {
		return nil, err
	}
	if !last.Valid {
		return nil, nil
	}
	t, err := parseTime(last.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanCheckin(scan func(...any) error) (*checkin.Checkin, error) {
	var c checkin.Checkin
	var createdAt string
	err := scan(&c.ID, &c.UserID, &c.Urge, &c.Stress, &c.Mood, &c.Relapse, &c.Note, &c.LossAmount, &createdAt)
	if err != nil {
		return nil, err
	}
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// ============================================================================
// Streaks
// ============================================================================

// GetStreak returns the user's streak, zero-valued when none exists yet.
func (s *SQLiteStore) GetStreak(ctx context.Context, userID int64) (*streak.Streak, error) {
	st := &streak.Streak{UserID: userID}
	err := s.db.QueryRowContext(ctx,
		"SELECT current, best, last_checkin_date FROM streaks WHERE user_id = ?", userID,
	).Scan(&st.Current, &st.Best, &st.LastCheckinDate)
	if err == sql.ErrNoRows {
		return st, nil
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (s *SQLiteStore) SaveStreak(ctx context.Context, st *streak.Streak) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO streaks (user_id, current, best, last_checkin_date)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			current = excluded.current,
			best = excluded.best,
			last_checkin_date = excluded.last_checkin_date`,
		st.UserID, st.Current, st.Best, st.LastCheckinDate,
	)
	return err
}
