package insights

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memorySession struct {
	record SessionRecord
	role   string
}

type memoryEvent struct {
	record FeatureEventRecord
	role   string
}

// MemoryRepository is an in-memory Repository intended for local development and
// tests. Safe for concurrent use.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions []memorySession
	events   map[Feature][]memoryEvent
	users    map[string]string // userID -> role
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		events: make(map[Feature][]memoryEvent),
		users:  make(map[string]string),
	}
}

// AddUser registers a user with the given role.
func (r *MemoryRepository) AddUser(userID, role string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[userID] = role
}

// AddSession stores one session record under the given role.
func (r *MemoryRepository) AddSession(record SessionRecord, role string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, memorySession{record: record, role: role})
}

// AddFeatureEvent stores one feature event record under the given role.
func (r *MemoryRepository) AddFeatureEvent(feature Feature, record FeatureEventRecord, role string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[feature] = append(r.events[feature], memoryEvent{record: record, role: role})
}

// FetchSessions returns sessions starting on or after since, optionally filtered by role.
func (r *MemoryRepository) FetchSessions(_ context.Context, since time.Time, role string) ([]SessionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]SessionRecord, 0, len(r.sessions))
	for _, s := range r.sessions {
		if role != "" && s.role != role {
			continue
		}
		if s.record.HasStartTime() && s.record.StartTime.Before(since) {
			continue
		}
		out = append(out, s.record)
	}
	return out, nil
}

// FetchFeatureEvents returns feature events created on or after since, optionally filtered by role.
func (r *MemoryRepository) FetchFeatureEvents(_ context.Context, feature Feature, since time.Time, role string) ([]FeatureEventRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]FeatureEventRecord, 0, len(r.events[feature]))
	for _, e := range r.events[feature] {
		if role != "" && e.role != role {
			continue
		}
		if e.record.CreatedAt.Before(since) {
			continue
		}
		out = append(out, e.record)
	}
	return out, nil
}

// CountUsers returns the number of registered users, optionally filtered by role.
func (r *MemoryRepository) CountUsers(_ context.Context, role string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if role == "" {
		return len(r.users), nil
	}
	count := 0
	for _, userRole := range r.users {
		if userRole == role {
			count++
		}
	}
	return count, nil
}

// SeedDemo populates the repository with a month of plausible study activity so
// the dashboard renders something useful against the memory datastore.
func (r *MemoryRepository) SeedDemo(now time.Time) {
	users := make([]string, 0, 8)
	roles := make([]string, 0, 8)
	for i := 0; i < 8; i++ {
		userID := uuid.NewString()
		role := "student"
		if i == 7 {
			role = "tutor"
		}
		r.AddUser(userID, role)
		users = append(users, userID)
		roles = append(roles, role)
	}

	for i, userID := range users {
		// Earlier users study more often and longer.
		sessionsPerWeek := 1 + i
		for day := 0; day < DefaultWindowDays; day++ {
			if day%7 >= sessionsPerWeek {
				continue
			}
			start := now.AddDate(0, 0, -day).Add(-time.Duration(2+i) * time.Hour)
			r.AddSession(SessionRecord{
				UserID:          userID,
				DurationSeconds: float64(300 + 180*i + 60*day),
				StartTime:       start,
			}, roles[i])

			feature := Features()[(i+day)%len(Features())]
			r.AddFeatureEvent(feature, FeatureEventRecord{
				ID:        fmt.Sprintf("%s-%s-%d", feature, userID[:8], day),
				UserID:    userID,
				CreatedAt: start.Add(10 * time.Minute),
			}, roles[i])
		}
	}
}
