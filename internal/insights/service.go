package insights

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Repository encapsulates the data access backing the dashboard. Implementations
// apply the lookback bound and the optional role filter; the aggregation engine
// receives only the resulting collections.
type Repository interface {
	FetchSessions(ctx context.Context, since time.Time, role string) ([]SessionRecord, error)
	FetchFeatureEvents(ctx context.Context, feature Feature, since time.Time, role string) ([]FeatureEventRecord, error)
	CountUsers(ctx context.Context, role string) (int, error)
}

// Clock delivers the current time; extracted for deterministic testing.
type Clock interface {
	Now() time.Time
}

// Service orchestrates dashboard aggregation: it issues the independent fetches
// concurrently, then hands the materialized collections to the pure engine. It
// holds no state across calls.
type Service struct {
	repo   Repository
	clock  Clock
	logger *slog.Logger
}

// NewService constructs a Service instance with the provided collaborators.
func NewService(repo Repository, clock Clock, logger *slog.Logger) (*Service, error) {
	if repo == nil {
		return nil, errors.New("repo is required")
	}
	if clock == nil {
		return nil, errors.New("clock is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, clock: clock, logger: logger}, nil
}

// Dashboard fetches the lookback window of records, optionally pre-filtered by
// role, and assembles the dashboard aggregate. A failed fetch degrades to zero
// usage for that collection instead of failing the dashboard; only context
// cancellation surfaces as an error.
func (s *Service) Dashboard(ctx context.Context, role string) (DashboardMetrics, error) {
	now := s.clock.Now()
	since := DaysAgo(now, DefaultWindowDays)

	input := DashboardInput{
		Now:           now,
		WindowDays:    DefaultWindowDays,
		FeatureEvents: make(map[Feature][]FeatureEventRecord, len(Features())),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sessions, err := s.repo.FetchSessions(gctx, since, role)
		if err != nil {
			s.logger.Warn("session fetch failed, degrading to empty", "error", err)
			return nil
		}
		input.Sessions = sessions
		return nil
	})

	g.Go(func() error {
		total, err := s.repo.CountUsers(gctx, role)
		if err != nil {
			s.logger.Warn("user count failed, inactive tier unavailable", "error", err)
			return nil
		}
		input.TotalUsers = total
		return nil
	})

	results := make([][]FeatureEventRecord, len(Features()))
	for i, feature := range Features() {
		i, feature := i, feature
		g.Go(func() error {
			events, err := s.repo.FetchFeatureEvents(gctx, feature, since, role)
			if err != nil {
				s.logger.Warn("feature fetch failed, degrading to zero usage", "feature", string(feature), "error", err)
				return nil
			}
			results[i] = events
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return ZeroDashboard(DefaultWindowDays), err
	}
	if err := ctx.Err(); err != nil {
		return ZeroDashboard(DefaultWindowDays), err
	}

	for i, feature := range Features() {
		input.FeatureEvents[feature] = results[i]
	}

	metrics, err := BuildDashboard(input)
	if err != nil {
		// BuildDashboard already substituted the zero aggregate; keep the
		// dashboard rendering and record what went wrong.
		s.logger.Error("dashboard aggregation recovered", "error", err)
	}
	return metrics, nil
}
