package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/analytics"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/repository"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalyticsRepositories groups the read side the analytics service fetches from
type AnalyticsRepositories struct {
	Users    repository.UserRepository
	Habits   repository.HabitRepository
	CheckIns repository.CheckInRepository
	Moods    repository.MoodRepository
	Journals repository.JournalRepository
}

type analyticsService struct {
	repos     AnalyticsRepositories
	cache     service.AnalyticsCache
	publisher service.EventPublisher
	clock     service.Clock
	policy    analytics.StreakPolicy
	log       *zap.Logger
	metrics   *metrics.Metrics
}

// NewAnalyticsService creates a new analytics service. cache and publisher may be nil.
func NewAnalyticsService(
	repos AnalyticsRepositories,
	cache service.AnalyticsCache,
	publisher service.EventPublisher,
	clock service.Clock,
	policy analytics.StreakPolicy,
	log *zap.Logger,
) service.AnalyticsService {
	return &analyticsService{
		repos:     repos,
		cache:     cache,
		publisher: publisher,
		clock:     clock,
		policy:    policy,
		log:       log,
		metrics:   metrics.Get(),
	}
}

// snapshotScope says what to fetch: check-ins are loaded in full when
// streaks are needed, moods and journals only inside the window.
type snapshotScope struct {
	window       analytics.Window
	fullCheckIns bool
	withJournals bool
}

func (s *analyticsService) loadSnapshot(ctx context.Context, userID uuid.UUID, scope snapshotScope) (analytics.Snapshot, error) {
	var snap analytics.Snapshot
	var err error

	snap.Habits, err = s.repos.Habits.GetByUserID(ctx, userID, false)
	if err != nil {
		return snap, fmt.Errorf("failed to get habits: %w", err)
	}

	filter := entity.CheckInFilter{StartDate: &scope.window.Start, EndDate: &scope.window.End}
	if scope.fullCheckIns {
		filter = entity.CheckInFilter{}
	}
	snap.CheckIns, err = s.repos.CheckIns.List(ctx, userID, filter)
	if err != nil {
		return snap, fmt.Errorf("failed to get check-ins: %w", err)
	}

	dates := entity.DateRange{Start: &scope.window.Start, End: &scope.window.End}
	snap.Moods, err = s.repos.Moods.List(ctx, userID, dates)
	if err != nil {
		return snap, fmt.Errorf("failed to get mood entries: %w", err)
	}

	if scope.withJournals {
		snap.Journals, err = s.repos.Journals.List(ctx, userID, dates)
		if err != nil {
			return snap, fmt.Errorf("failed to get journal entries: %w", err)
		}
	}

	if err := analytics.ValidateSnapshot(snap); err != nil {
		return snap, err
	}
	return snap, nil
}

// cached serves key from the user's cache or computes and stores it under the
// version the miss was read at. Cache failures degrade to computing, and a
// result is only stored when the read succeeded.
func cached[T any](ctx context.Context, s *analyticsService, userID uuid.UUID, kind, key string, compute func() (T, error)) (T, error) {
	var (
		out      T
		version  int64
		storable bool
	)
	if s.cache != nil {
		v, hit, err := s.cache.Get(ctx, userID, key, &out)
		version, storable = v, err == nil
		switch {
		case err != nil:
			s.metrics.AnalyticsCache.WithLabelValues("error").Inc()
			s.log.Warn("analytics cache read failed", zap.String("key", key), zap.Error(err))
		case hit:
			s.metrics.AnalyticsCache.WithLabelValues("hit").Inc()
			return out, nil
		default:
			s.metrics.AnalyticsCache.WithLabelValues("miss").Inc()
		}
	}

	out, err := compute()
	if err != nil {
		return out, err
	}
	s.metrics.AnalyticsComputations.WithLabelValues(kind).Inc()

	if storable {
		if err := s.cache.Set(ctx, userID, version, key, out); err != nil {
			s.log.Warn("analytics cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return out, nil
}

func (s *analyticsService) Dashboard(ctx context.Context, userID uuid.UUID, date *entity.Date) (*analytics.Dashboard, error) {
	ref := s.clock.Today()
	if date != nil && !date.IsZero() {
		ref = *date
	}

	dash, err := cached(ctx, s, userID, "dashboard", "dashboard:"+ref.String(), func() (analytics.Dashboard, error) {
		snap, err := s.loadSnapshot(ctx, userID, snapshotScope{
			window:       analytics.WeekOf(ref).Window,
			fullCheckIns: true,
			withJournals: true,
		})
		if err != nil {
			return analytics.Dashboard{}, err
		}
		return analytics.ComposeDashboard(snap, ref, s.policy), nil
	})
	if err != nil {
		return nil, err
	}
	return &dash, nil
}

func (s *analyticsService) HabitStreaks(ctx context.Context, userID uuid.UUID) ([]analytics.HabitStreak, error) {
	ref := s.clock.Today()
	return cached(ctx, s, userID, "streaks", "streaks:"+ref.String(), func() ([]analytics.HabitStreak, error) {
		habits, err := s.repos.Habits.GetByUserID(ctx, userID, true)
		if err != nil {
			return nil, fmt.Errorf("failed to get habits: %w", err)
		}
		checkIns, err := s.repos.CheckIns.List(ctx, userID, entity.CheckInFilter{})
		if err != nil {
			return nil, fmt.Errorf("failed to get check-ins: %w", err)
		}
		if err := analytics.ValidateCheckIns(checkIns); err != nil {
			return nil, err
		}
		return analytics.HabitStreaks(habits, checkIns, ref, s.policy), nil
	})
}

func (s *analyticsService) MoodTrends(ctx context.Context, userID uuid.UUID, days int) (*analytics.MoodTrend, error) {
	if days < 1 || days > MaxTrendDays {
		return nil, invalidf("days must be between 1 and %d", MaxTrendDays)
	}
	ref := s.clock.Today()
	w, err := analytics.LastDays(ref, days)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("trends:%s:%d", ref, days)
	trend, err := cached(ctx, s, userID, "trends", key, func() (analytics.MoodTrend, error) {
		entries, err := s.repos.Moods.List(ctx, userID, entity.DateRange{Start: &w.Start, End: &w.End})
		if err != nil {
			return analytics.MoodTrend{}, fmt.Errorf("failed to get mood entries: %w", err)
		}
		if err := analytics.ValidateMoods(entries); err != nil {
			return analytics.MoodTrend{}, err
		}
		return analytics.BuildMoodTrend(entries, w), nil
	})
	if err != nil {
		return nil, err
	}
	return &trend, nil
}

func (s *analyticsService) WeeklyStats(ctx context.Context, userID uuid.UUID, weeks int) ([]analytics.PeriodStats, error) {
	ref := s.clock.Today()
	periods, err := analytics.TrailingWeeks(ref, weeks)
	if err != nil {
		return nil, err
	}
	span := analytics.Window{Start: periods[len(periods)-1].Start, End: periods[0].End}

	key := fmt.Sprintf("weekly:%s:%d", ref, weeks)
	return cached(ctx, s, userID, "weekly", key, func() ([]analytics.PeriodStats, error) {
		snap, err := s.loadSnapshot(ctx, userID, snapshotScope{window: span, withJournals: true})
		if err != nil {
			return nil, err
		}
		return analytics.WeeklyStats(snap, ref, weeks)
	})
}

func (s *analyticsService) Calendar(ctx context.Context, userID uuid.UUID, year, month int) (*analytics.CalendarMonth, error) {
	p, err := analytics.MonthOf(year, month)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("calendar:%04d-%02d", year, month)
	cal, err := cached(ctx, s, userID, "calendar", key, func() (analytics.CalendarMonth, error) {
		snap, err := s.loadSnapshot(ctx, userID, snapshotScope{window: p.Window, withJournals: true})
		if err != nil {
			return analytics.CalendarMonth{}, err
		}
		return analytics.Calendar(snap, year, month)
	})
	if err != nil {
		return nil, err
	}
	return &cal, nil
}

// SendWeeklyDigests publishes last week's rollup for every active user.
// A failure for one user does not stop the others.
func (s *analyticsService) SendWeeklyDigests(ctx context.Context) error {
	if s.publisher == nil {
		return nil
	}

	userIDs, err := s.repos.Users.ListActiveIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active users: %w", err)
	}

	week := analytics.WeekOf(s.clock.Today().AddDays(-7))
	var errs []error
	sent := 0
	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		snap, err := s.loadSnapshot(ctx, userID, snapshotScope{window: week.Window, withJournals: true})
		if err != nil {
			errs = append(errs, fmt.Errorf("user %s: %w", userID, err))
			continue
		}
		stats := analytics.SummarizePeriod(snap, week)
		s.metrics.AnalyticsComputations.WithLabelValues("digest").Inc()

		payload := map[string]any{
			"week_start":       stats.Start.String(),
			"week_end":         stats.End.String(),
			"habits_completed": stats.HabitsCompleted,
			"total_habits":     stats.HabitsPossible,
			"completion_rate":  stats.CompletionRate,
			"mood_entries":     stats.MoodEntries,
			"journal_entries":  stats.JournalEntries,
		}
		if stats.AvgMood != nil {
			payload["avg_mood"] = *stats.AvgMood
		}

		if err := s.publisher.Publish(ctx, service.EventWeeklyDigest, userID, payload); err != nil {
			errs = append(errs, fmt.Errorf("user %s: failed to publish digest: %w", userID, err))
			continue
		}
		sent++
	}

	s.log.Info("weekly digests published",
		zap.String("week_start", week.Start.String()),
		zap.Int("users", len(userIDs)),
		zap.Int("sent", sent),
		zap.Int("failed", len(errs)),
	)
	return errors.Join(errs...)
}
