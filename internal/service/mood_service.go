package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/analytics"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/repository"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"
	"github.com/Isha-commits965/wellness-tracker-backend/pkg/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxTrendDays bounds the mood trend window
const MaxTrendDays = 365

type moodService struct {
	moodRepo repository.MoodRepository
	clock    service.Clock
	notify   *notifier
}

// NewMoodService creates a new mood service
func NewMoodService(
	moodRepo repository.MoodRepository,
	clock service.Clock,
	cache service.AnalyticsCache,
	publisher service.EventPublisher,
	log *zap.Logger,
) service.MoodService {
	return &moodService{
		moodRepo: moodRepo,
		clock:    clock,
		notify:   &notifier{cache: cache, publisher: publisher, log: log},
	}
}

func validateMood(m *entity.MoodEntry) error {
	if err := validation.ValidateScore("mood_score", m.MoodScore); err != nil {
		return invalid(err)
	}
	if err := validation.ValidateOptionalScore("energy_level", m.EnergyLevel); err != nil {
		return invalid(err)
	}
	if err := validation.ValidateOptionalScore("stress_level", m.StressLevel); err != nil {
		return invalid(err)
	}
	if m.Notes != nil {
		if err := validation.ValidateLength("notes", *m.Notes, validation.MaxTextLength); err != nil {
			return invalid(err)
		}
	}
	return nil
}

func (s *moodService) CreateEntry(ctx context.Context, userID uuid.UUID, in *entity.MoodEntryCreate) (*entity.MoodEntry, error) {
	if in.Date.IsZero() {
		in.Date = s.clock.Today()
	}

	now := time.Now().UTC()
	entry := &entity.MoodEntry{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        in.Date,
		MoodScore:   in.MoodScore,
		EnergyLevel: in.EnergyLevel,
		StressLevel: in.StressLevel,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validateMood(entry); err != nil {
		return nil, err
	}

	if err := s.moodRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}

	s.notify.changed(ctx, userID)
	s.notify.publish(ctx, service.EventMoodLogged, userID, map[string]any{
		"date":       entry.Date.String(),
		"mood_score": entry.MoodScore,
	})
	return entry, nil
}

func (s *moodService) GetEntry(ctx context.Context, entryID, userID uuid.UUID) (*entity.MoodEntry, error) {
	return s.moodRepo.GetByIDAndUserID(ctx, entryID, userID)
}

func (s *moodService) ListEntries(ctx context.Context, userID uuid.UUID, dates entity.DateRange) ([]*entity.MoodEntry, error) {
	if err := checkRange(dates.Start, dates.End); err != nil {
		return nil, err
	}
	return s.moodRepo.List(ctx, userID, dates)
}

func (s *moodService) UpdateEntry(ctx context.Context, entryID, userID uuid.UUID, update *entity.MoodEntryUpdate) (*entity.MoodEntry, error) {
	if update.MoodScore.IsNull() {
		return nil, invalidf("mood_score cannot be null")
	}

	entry, err := s.moodRepo.GetByIDAndUserID(ctx, entryID, userID)
	if err != nil {
		return nil, err
	}

	update.ApplyTo(entry)
	if err := validateMood(entry); err != nil {
		return nil, err
	}
	entry.UpdatedAt = time.Now().UTC()

	if err := s.moodRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update mood entry: %w", err)
	}

	s.notify.changed(ctx, userID)
	return entry, nil
}

func (s *moodService) DeleteEntry(ctx context.Context, entryID, userID uuid.UUID) error {
	if err := s.moodRepo.Delete(ctx, entryID, userID); err != nil {
		return err
	}
	s.notify.changed(ctx, userID)
	return nil
}

func (s *moodService) Trends(ctx context.Context, userID uuid.UUID, days int) (*analytics.MoodTrend, error) {
	if days < 1 || days > MaxTrendDays {
		return nil, invalidf("days must be between 1 and %d", MaxTrendDays)
	}
	w, err := analytics.LastDays(s.clock.Today(), days)
	if err != nil {
		return nil, err
	}

	entries, err := s.moodsIn(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	trend := analytics.BuildMoodTrend(entries, w)
	return &trend, nil
}

func (s *moodService) WeeklyStats(ctx context.Context, userID uuid.UUID) (*analytics.MoodPeriod, error) {
	w, err := analytics.LastDays(s.clock.Today(), 6)
	if err != nil {
		return nil, err
	}

	entries, err := s.moodsIn(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	return &analytics.MoodPeriod{Window: w, MoodSummary: analytics.SummarizeWindow(entries, w)}, nil
}

func (s *moodService) moodsIn(ctx context.Context, userID uuid.UUID, w analytics.Window) ([]*entity.MoodEntry, error) {
	entries, err := s.moodRepo.List(ctx, userID, entity.DateRange{Start: &w.Start, End: &w.End})
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}
	if err := analytics.ValidateMoods(entries); err != nil {
		return nil, err
	}
	return entries, nil
}
