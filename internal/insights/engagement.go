package insights

// Engagement tier thresholds over the 30-day lookback.
// high   >= 12 sessions (roughly 3+/week)
// medium >= 4  sessions (roughly 1-2/week)
// low    >= 1  session  (roughly 1-3/month)
const (
	highTierMinSessions   = 12
	mediumTierMinSessions = 4
)

// ClassifyEngagement buckets users into activity tiers by their session count
// over the lookback window. Only users with at least one session appear in the
// record set, so the inactive tier is derived from totalUsers: the remainder of
// the known user population, clamped at 0 when the population count is absent
// or stale. Every tier key is always present.
func ClassifyEngagement(sessions []SessionRecord, totalUsers int) map[string]int {
	countsByUser := make(map[string]int)
	for _, s := range sessions {
		countsByUser[s.UserID]++
	}

	tiers := map[string]int{
		TierHigh:     0,
		TierMedium:   0,
		TierLow:      0,
		TierInactive: 0,
	}
	for _, count := range countsByUser {
		switch {
		case count >= highTierMinSessions:
			tiers[TierHigh]++
		case count >= mediumTierMinSessions:
			tiers[TierMedium]++
		default:
			tiers[TierLow]++
		}
	}

	if inactive := totalUsers - len(countsByUser); inactive > 0 {
		tiers[TierInactive] = inactive
	}

	return tiers
}
