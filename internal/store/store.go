// Package store persists all user state in SQLite. Timestamps are kept
// as RFC3339 UTC text so range comparisons work lexicographically;
// calendar dates are "YYYY-MM-DD" strings in the service's configured
// location.
package store

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("not found")
)

// MoneySettings holds a user's spending guardrails.
type MoneySettings struct {
	UserID     int64     `json:"user_id"`
	DailyLimit *int      `json:"daily_limit,omitempty"`
	Currency   string    `json:"currency"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Money entry kinds.
const (
	MoneySaved = "saved"
	MoneyLost  = "lost"
)

// MoneyEntry is one recorded amount, either saved or lost.
type MoneyEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Amount    int       `json:"amount"`
	Kind      string    `json:"kind"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MoneyStats aggregates a user's money entries.
type MoneyStats struct {
	TotalSaved int `json:"total_saved"`
	TotalLost  int `json:"total_lost"`
	Net        int `json:"net"`
	Entries    int `json:"entries"`
}

// ThoughtEntry is one CBT thought-diary record.
type ThoughtEntry struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Situation   string    `json:"situation"`
	Thought     string    `json:"thought"`
	Emotion     string    `json:"emotion"`
	Intensity   int       `json:"intensity"`
	Distortions []string  `json:"distortions,omitempty"`
	Reframe     string    `json:"reframe,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SOSEvent records one use of an SOS technique.
type SOSEvent struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Technique string    `json:"technique"`
	CreatedAt time.Time `json:"created_at"`
}

// ReminderSettings controls the daily check-in nudge.
type ReminderSettings struct {
	UserID           int64  `json:"user_id"`
	Enabled          bool   `json:"enabled"`
	Hour             int    `json:"hour"`
	NotifyTarget     string `json:"notify_target,omitempty"`
	LastReminderDate string `json:"last_reminder_date,omitempty"`
}

// ReminderCandidate is a user due for a nudge in the current sweep.
type ReminderCandidate struct {
	UserID       int64
	NotifyTarget string
}
