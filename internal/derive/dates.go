// Package derive computes read-only views over an AppState snapshot:
// goal linkage resolution, per-type goal progress, and the coaching
// aggregates (today/inbox/upcoming views, orphan tasks, ignored goals,
// heatmaps). Every function is total: for any well-formed state it returns
// a value, never an error, and nothing here mutates state.
//
// Date-sensitive functions take the current wall-clock time explicitly and
// recompute per call. Nothing is memoized, so a session that crosses
// midnight never serves yesterday's "today".
package derive

import "time"

// DateOnly is the YYYY-MM-DD layout used for all scheduling dates.
// Dates carry local-calendar semantics, not UTC day boundaries.
const DateOnly = "2006-01-02"

// Today formats now as a local calendar date.
func Today(now time.Time) string {
	return now.Format(DateOnly)
}

// DaysBack returns the date n days before now.
func DaysBack(now time.Time, n int) string {
	return now.AddDate(0, 0, -n).Format(DateOnly)
}

// WeekStart returns the Monday of the week containing now.
func WeekStart(now time.Time) string {
	offset := int(now.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the week that started the previous Monday
	}
	return now.AddDate(0, 0, -offset).Format(DateOnly)
}

// MonthStart returns the first day of the month containing now.
func MonthStart(now time.Time) string {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(DateOnly)
}
