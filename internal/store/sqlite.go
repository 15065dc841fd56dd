package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/steadypath/backend/internal/domain/profile"
	"github.com/steadypath/backend/internal/domain/questionnaire"
	"github.com/steadypath/backend/internal/domain/testresult"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY,
    reminder_enabled INTEGER NOT NULL DEFAULT 1,
    reminder_hour INTEGER NOT NULL DEFAULT 20,
    notify_target TEXT NOT NULL DEFAULT '',
    last_reminder_date TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS user_profiles (
    user_id INTEGER PRIMARY KEY,
    track TEXT NOT NULL,
    onboarding_day INTEGER NOT NULL,
    onboarding_completed INTEGER NOT NULL DEFAULT 0,
    risk_behavior_score INTEGER,
    gambling_score INTEGER,
    trading_score INTEGER,
    digital_score INTEGER,
    emotional_regulation_score INTEGER,
    risk_level TEXT NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS test_results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    test_code TEXT NOT NULL,
    answers TEXT NOT NULL,
    score INTEGER NOT NULL,
    result_level TEXT NOT NULL,
    message TEXT NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id)
);
CREATE INDEX IF NOT EXISTS idx_results_user_code_time
    ON test_results(user_id, test_code, created_at);

CREATE TABLE IF NOT EXISTS checkins (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    urge INTEGER NOT NULL,
    stress INTEGER NOT NULL,
    mood INTEGER NOT NULL,
    relapse INTEGER NOT NULL DEFAULT 0,
    note TEXT NOT NULL DEFAULT '',
    loss_amount INTEGER,
    created_at TEXT NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id)
);
CREATE INDEX IF NOT EXISTS idx_checkins_user_time
    ON checkins(user_id, created_at);

CREATE TABLE IF NOT EXISTS streaks (
    user_id INTEGER PRIMARY KEY,
    current INTEGER NOT NULL DEFAULT 0,
    best INTEGER NOT NULL DEFAULT 0,
    last_checkin_date TEXT NOT NULL DEFAULT '',
    FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS money_settings (
    user_id INTEGER PRIMARY KEY,
    daily_limit INTEGER,
    currency TEXT NOT NULL DEFAULT 'EUR',
    updated_at TEXT NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS money_entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    amount INTEGER NOT NULL,
    kind TEXT NOT NULL,
    note TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS thought_entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    situation TEXT NOT NULL,
    thought TEXT NOT NULL,
    emotion TEXT NOT NULL,
    intensity INTEGER NOT NULL,
    distortions TEXT NOT NULL DEFAULT '[]',
    reframe TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS sos_events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    technique TEXT NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id)
);
`

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Timestamps go in as RFC3339 UTC so string comparison matches time
// ordering; dates use the configured location.
func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// ensureUser creates the user row on first touch.
func (s *SQLiteStore) ensureUser(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO users (id, created_at) VALUES (?, ?)",
		userID, fmtTime(time.Now()),
	)
	return err
}

// ============================================================================
// Profiles
// ============================================================================

func (s *SQLiteStore) GetOrCreateProfile(ctx context.Context, userID int64) (*profile.Profile, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	def := profile.New(userID)
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO user_profiles (user_id, track, onboarding_day, onboarding_completed, risk_level)
		VALUES (?, ?, ?, 0, ?)`,
		userID, def.Track, def.OnboardingDay, def.RiskLevel,
	)
	if err != nil {
		return nil, err
	}

	var p profile.Profile
	var track, riskLevel string
	err = s.db.QueryRowContext(ctx, `
		SELECT user_id, track, onboarding_day, onboarding_completed,
		       risk_behavior_score, gambling_score, trading_score, digital_score,
		       emotional_regulation_score, risk_level
		FROM user_profiles WHERE user_id = ?`, userID,
	).Scan(
		&p.UserID, &track, &p.OnboardingDay, &p.OnboardingCompleted,
		&p.RiskBehaviorScore, &p.GamblingScore, &p.TradingScore, &p.DigitalScore,
		&p.EmotionalRegulationScore, &riskLevel,
	)
	if err != nil {
		return nil, err
	}
	p.Track = questionnaire.Track(track)
	p.RiskLevel = questionnaire.RiskLevel(riskLevel)
	return &p, nil
}

func (s *SQLiteStore) UpdateProfile(ctx context.Context, userID int64, u profile.Updates) error {
	if u.IsZero() {
		return nil
	}

	var sets []string
	var args []any
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if u.Track != nil {
		add("track", string(*u.Track))
	}
	if u.OnboardingDay != nil {
		add("onboarding_day", *u.OnboardingDay)
	}
	if u.OnboardingCompleted != nil {
		add("onboarding_completed", *u.OnboardingCompleted)
	}
	if u.RiskBehaviorScore != nil {
		add("risk_behavior_score", *u.RiskBehaviorScore)
	}
	if u.GamblingScore != nil {
		add("gambling_score", *u.GamblingScore)
	}
	if u.TradingScore != nil {
		add("trading_score", *u.TradingScore)
	}
	if u.DigitalScore != nil {
		add("digital_score", *u.DigitalScore)
	}
	if u.EmotionalRegulationScore != nil {
		add("emotional_regulation_score", *u.EmotionalRegulationScore)
	}
	if u.RiskLevel != nil {
		add("risk_level", string(*u.RiskLevel))
	}

	args = append(args, userID)
	result, err := s.db.ExecContext(ctx,
		"UPDATE user_profiles SET "+strings.Join(sets, ", ")+" WHERE user_id = ?", args...)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ============================================================================
// Test results
// ============================================================================

func (s *SQLiteStore) AppendResult(ctx context.Context, res *testresult.Result) error {
	answers := res.Answers
	if answers == nil {
		answers = map[string]any{}
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO test_results (user_id, test_code, answers, score, result_level, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		res.UserID, res.TestCode, string(answersJSON), res.Score, res.Level, res.Message, fmtTime(res.CreatedAt),
	)
	if err != nil {
		return err
	}
	res.ID, err = result.LastInsertId()
	return err
}

func (s *SQLiteStore) ShownSince(ctx context.Context, userID int64, code string, since time.Time) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM test_results
			WHERE user_id = ? AND test_code = ? AND created_at >= ?
		)`,
		userID, code, fmtTime(since),
	).Scan(&exists)
	return exists, err
}

func (s *SQLiteStore) CompletedBetween(ctx context.Context, userID int64, code string, from, to time.Time) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM test_results
			WHERE user_id = ? AND test_code = ? AND created_at >= ? AND created_at < ?
		)`,
		userID, code, fmtTime(from), fmtTime(to),
	).Scan(&exists)
	return exists, err
}

func (s *SQLiteStore) LevelCompletedSince(ctx context.Context, userID int64, level questionnaire.Level, since time.Time) (bool, error) {
	// Test codes carry their level as the first character (B1_1, C2, ...).
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM test_results
			WHERE user_id = ? AND substr(test_code, 1, 1) = ? AND created_at >= ?
		)`,
		userID, string(level), fmtTime(since),
	).Scan(&exists)
	return exists, err
}

func (s *SQLiteStore) LastTakenAt(ctx context.Context, userID int64, code string) (*time.Time, error) {
	var last sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT MAX(created_at) FROM test_results WHERE user_id = ? AND test_code = ?",
		userID, code,
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

func (s *SQLiteStore) ListResults(ctx context.Context, userID int64, limit int) ([]*testresult.Result, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, test_code, answers, score, result_level, message, created_at
		FROM test_results WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*testresult.Result
	for rows.Next() {
		var r testresult.Result
		var answersJSON, createdAt string
		if err := rows.Scan(&r.ID, &r.UserID, &r.TestCode, &answersJSON, &r.Score, &r.Level, &r.Message, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(answersJSON), &r.Answers); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		results = append(results, &r)
	}
	return results, rows.Err()
}
