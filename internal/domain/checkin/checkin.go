// Package checkin models the daily state snapshot users submit.
package checkin

import "time"

// Checkin is one submitted daily snapshot.
type Checkin struct {
	ID         int64
	UserID     int64
	Urge       int
	Stress     int
	Mood       int
	Relapse    bool
	Note       string
	LossAmount *int
	CreatedAt  time.Time
}

// Context is the ephemeral signal set handed to the selection engine.
// Nil numeric fields mean "no signal" and read as 0.
type Context struct {
	Urge      *int
	Stress    *int
	Mood      *int
	Relapse   bool
	Note      string
	TimeOfDay string
}

func (c Context) UrgeValue() int   { return intOrZero(c.Urge) }
func (c Context) StressValue() int { return intOrZero(c.Stress) }
func (c Context) MoodValue() int   { return intOrZero(c.Mood) }

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
