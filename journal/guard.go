package journal

import "time"

// HasPostedToday reports whether the most recent post log entry falls on the
// same calendar day as now in loc. Only the last entry is inspected, matching
// the single-post-per-day design: it is O(1) and stable across retries, but it
// does not detect posts recorded out of order or backdated entries. Any read
// or parse failure fails open (returns false), favoring availability of
// posting over strict duplicate prevention.
func HasPostedToday(log *PostLog, now time.Time, loc *time.Location) bool {
	entries, err := log.Entries()
	if err != nil || len(entries) == 0 {
		return false
	}
	last := entries[len(entries)-1]
	ts, err := time.Parse(time.RFC3339, last.Timestamp)
	if err != nil {
		return false
	}
	y1, m1, d1 := ts.In(loc).Date()
	y2, m2, d2 := now.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
