// Package testresult models the append-only completion log. Rows are never
// mutated or deleted; every cooldown and rotation decision scans this log.
package testresult

import "time"

// Result is one completed questionnaire submission.
type Result struct {
	ID        int64
	UserID    int64
	TestCode  string
	Answers   map[string]any
	Score     int
	Level     string // interpretation level, "unknown" when unscoreable
	Message   string
	CreatedAt time.Time
}
