package service

import "time"

// dayWindow returns the UTC calendar-day window [start, start+24h)
// containing t. Daily limits count messages inside this window; using a
// fixed timezone keeps the boundary deterministic regardless of where the
// server runs.
func dayWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
