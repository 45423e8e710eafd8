package insights

import "time"

// dayKeyFormat is the bucket key for one calendar day.
const dayKeyFormat = "2006-01-02"

// StartOfDay truncates a timestamp to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayKey returns the calendar-date bucket key for a timestamp.
func DayKey(t time.Time) string {
	return t.Format(dayKeyFormat)
}

// DaysAgo returns the instant n days before now. Callers use it as the lower
// bound when fetching records; the engine itself never queries.
func DaysAgo(now time.Time, n int) time.Time {
	return now.AddDate(0, 0, -n)
}

// WindowLabels produces n day labels ending on now's calendar day, oldest first.
// Labels are contiguous: no gaps, no duplicates.
func WindowLabels(now time.Time, n int) []string {
	if n <= 0 {
		return []string{}
	}

	today := StartOfDay(now)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = DayKey(today.AddDate(0, 0, i-n+1))
	}
	return labels
}
