package insights

import (
	"math"
	"time"
)

// DistinctUsers counts distinct user identifiers among sessions starting on or
// after the cutoff. The result depends only on set membership, never on record
// order. Sessions without a start time never clear a cutoff.
func DistinctUsers(sessions []SessionRecord, cutoff time.Time) int {
	seen := make(map[string]struct{})
	for _, s := range sessions {
		if !s.HasStartTime() || s.StartTime.Before(cutoff) {
			continue
		}
		seen[s.UserID] = struct{}{}
	}
	return len(seen)
}

// sanitizeDuration clamps malformed durations to 0. NaN slips through float
// decoding upstream often enough that it is handled here too.
func sanitizeDuration(seconds float64) float64 {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return 0
	}
	return seconds
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
