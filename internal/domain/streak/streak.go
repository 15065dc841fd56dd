// Package streak tracks consecutive relapse-free check-in days.
package streak

// Streak is the per-user counter row. Dates are calendar days in the
// service's configured timezone, formatted YYYY-MM-DD.
type Streak struct {
	UserID          int64
	Current         int
	Best            int
	LastCheckinDate string
}

// Apply folds one check-in into the streak. A relapse resets the run,
// a second check-in on the same day is a no-op, and a new clean day
// extends it.
func (s *Streak) Apply(day string, relapse bool) {
	switch {
	case relapse:
		s.Current = 0
	case s.LastCheckinDate == day:
		// already counted today
	default:
		s.Current++
	}
	if s.Current > s.Best {
		s.Best = s.Current
	}
	s.LastCheckinDate = day
}
