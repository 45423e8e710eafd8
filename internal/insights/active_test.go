package insights

import (
	"testing"
	"time"
)

func TestDistinctUsers(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	cutoff := DaysAgo(now, 7)

	sessions := []SessionRecord{
		{UserID: "a", StartTime: now},
		{UserID: "a", StartTime: now.Add(-time.Hour)},
		{UserID: "b", StartTime: cutoff}, // exactly on the cutoff counts
		{UserID: "c", StartTime: cutoff.Add(-time.Second)},
		{UserID: "d"}, // no start time never clears a cutoff
	}

	if got := DistinctUsers(sessions, cutoff); got != 2 {
		t.Fatalf("expected 2 distinct users, got %d", got)
	}
}

func TestDistinctUsersOrderIndependent(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	cutoff := DaysAgo(now, 7)

	sessions := []SessionRecord{
		{UserID: "a", StartTime: now},
		{UserID: "b", StartTime: now.Add(-time.Hour)},
		{UserID: "c", StartTime: now.Add(-2 * time.Hour)},
	}
	reversed := []SessionRecord{sessions[2], sessions[1], sessions[0]}

	if DistinctUsers(sessions, cutoff) != DistinctUsers(reversed, cutoff) {
		t.Fatalf("distinct user count must not depend on record order")
	}
}

func TestActiveUserWindowsAreMonotonic(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	sessions := []SessionRecord{
		{UserID: "a", StartTime: now.Add(-2 * time.Hour)},
		{UserID: "b", StartTime: now.AddDate(0, 0, -3)},
		{UserID: "c", StartTime: now.AddDate(0, 0, -20)},
		{UserID: "d", StartTime: now.AddDate(0, 0, -29)},
	}

	dau := DistinctUsers(sessions, DaysAgo(now, 1))
	wau := DistinctUsers(sessions, DaysAgo(now, 7))
	mau := DistinctUsers(sessions, DaysAgo(now, 30))

	if dau > wau || wau > mau {
		t.Fatalf("expected dau <= wau <= mau, got %d/%d/%d", dau, wau, mau)
	}
	if dau != 1 || wau != 2 || mau != 4 {
		t.Fatalf("expected 1/2/4, got %d/%d/%d", dau, wau, mau)
	}
}
