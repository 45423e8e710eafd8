package insights

import "time"

// DailyCounts groups timestamps by calendar day and returns counts aligned 1:1
// with the supplied window labels. Timestamps outside the window are ignored;
// zero timestamps are skipped. Labels with no records yield 0.
func DailyCounts(times []time.Time, labels []string) []int {
	byDay := make(map[string]int, len(labels))
	for _, t := range times {
		if t.IsZero() {
			continue
		}
		byDay[DayKey(t)]++
	}

	counts := make([]int, len(labels))
	for i, label := range labels {
		counts[i] = byDay[label]
	}
	return counts
}

// FeatureEventTimes extracts the event timestamps for trend bucketing.
func FeatureEventTimes(events []FeatureEventRecord) []time.Time {
	times := make([]time.Time, 0, len(events))
	for _, e := range events {
		times = append(times, e.CreatedAt)
	}
	return times
}

// SessionStartTimes extracts the session start timestamps for trend bucketing.
// Sessions without a start time are dropped here and only surface in
// time-independent metrics.
func SessionStartTimes(sessions []SessionRecord) []time.Time {
	times := make([]time.Time, 0, len(sessions))
	for _, s := range sessions {
		if !s.HasStartTime() {
			continue
		}
		times = append(times, s.StartTime)
	}
	return times
}

// DailyDistinctUsers counts, for every window label, how many distinct users had
// at least one session that day.
func DailyDistinctUsers(sessions []SessionRecord, labels []string) []int {
	usersByDay := make(map[string]map[string]struct{})
	for _, s := range sessions {
		if !s.HasStartTime() {
			continue
		}
		key := DayKey(s.StartTime)
		users, ok := usersByDay[key]
		if !ok {
			users = make(map[string]struct{})
			usersByDay[key] = users
		}
		users[s.UserID] = struct{}{}
	}

	counts := make([]int, len(labels))
	for i, label := range labels {
		counts[i] = len(usersByDay[label])
	}
	return counts
}

// DailyAvgDurationMinutes computes the mean session duration in minutes for every
// window label, rounded to 2 decimals, 0 for days without sessions.
func DailyAvgDurationMinutes(sessions []SessionRecord, labels []string) []float64 {
	type daily struct {
		seconds float64
		count   int
	}
	byDay := make(map[string]*daily)
	for _, s := range sessions {
		if !s.HasStartTime() {
			continue
		}
		key := DayKey(s.StartTime)
		d, ok := byDay[key]
		if !ok {
			d = &daily{}
			byDay[key] = d
		}
		d.seconds += sanitizeDuration(s.DurationSeconds)
		d.count++
	}

	averages := make([]float64, len(labels))
	for i, label := range labels {
		if d, ok := byDay[label]; ok && d.count > 0 {
			averages[i] = round2(d.seconds / 60 / float64(d.count))
		}
	}
	return averages
}
