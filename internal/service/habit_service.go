package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/repository"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"
	"github.com/Isha-commits965/wellness-tracker-backend/pkg/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type habitService struct {
	habitRepo   repository.HabitRepository
	checkInRepo repository.CheckInRepository
	clock       service.Clock
	notify      *notifier
}

// NewHabitService creates a new habit service
func NewHabitService(
	habitRepo repository.HabitRepository,
	checkInRepo repository.CheckInRepository,
	clock service.Clock,
	cache service.AnalyticsCache,
	publisher service.EventPublisher,
	log *zap.Logger,
) service.HabitService {
	return &habitService{
		habitRepo:   habitRepo,
		checkInRepo: checkInRepo,
		clock:       clock,
		notify:      &notifier{cache: cache, publisher: publisher, log: log},
	}
}

func validateFrequency(f entity.Frequency) error {
	switch f {
	case entity.FrequencyDaily, entity.FrequencyWeekly:
		return nil
	default:
		return invalidf("target_frequency must be %q or %q", entity.FrequencyDaily, entity.FrequencyWeekly)
	}
}

func validateHabitText(name string, description, category *string) error {
	if err := validation.ValidateRequired("name", name, validation.MaxNameLength); err != nil {
		return invalid(err)
	}
	if description != nil {
		if err := validation.ValidateLength("description", *description, validation.MaxTextLength); err != nil {
			return invalid(err)
		}
	}
	if category != nil {
		if err := validation.ValidateLength("category", *category, validation.MaxNameLength); err != nil {
			return invalid(err)
		}
	}
	return nil
}

func (s *habitService) CreateHabit(ctx context.Context, userID uuid.UUID, in *entity.HabitCreate) (*entity.Habit, error) {
	if in.TargetFrequency == "" {
		in.TargetFrequency = entity.FrequencyDaily
	}
	if err := validateHabitText(in.Name, in.Description, in.Category); err != nil {
		return nil, err
	}
	if err := validateFrequency(in.TargetFrequency); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	habit := &entity.Habit{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		TargetFrequency: in.TargetFrequency,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	s.notify.changed(ctx, userID)
	return habit, nil
}

func (s *habitService) GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	return s.habitRepo.GetByIDAndUserID(ctx, habitID, userID)
}

func (s *habitService) ListHabits(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	return s.habitRepo.GetByUserID(ctx, userID, true)
}

func (s *habitService) UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, update *entity.HabitUpdate) (*entity.Habit, error) {
	if update.Name.IsNull() || update.TargetFrequency.IsNull() || update.IsActive.IsNull() {
		return nil, invalidf("name, target_frequency and is_active cannot be null")
	}

	habit, err := s.habitRepo.GetByIDAndUserID(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}

	update.ApplyTo(habit)
	if err := validateHabitText(habit.Name, habit.Description, habit.Category); err != nil {
		return nil, err
	}
	if err := validateFrequency(habit.TargetFrequency); err != nil {
		return nil, err
	}
	habit.UpdatedAt = time.Now().UTC()

	if err := s.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	s.notify.changed(ctx, userID)
	return habit, nil
}

func (s *habitService) DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	if err := s.habitRepo.Delete(ctx, habitID, userID); err != nil {
		return err
	}
	s.notify.changed(ctx, userID)
	return nil
}

func (s *habitService) CheckIn(ctx context.Context, userID uuid.UUID, in *entity.CheckInCreate) (*entity.CheckIn, error) {
	if in.Date.IsZero() {
		in.Date = s.clock.Today()
	}
	if in.Notes != nil {
		if err := validation.ValidateLength("notes", *in.Notes, validation.MaxTextLength); err != nil {
			return nil, invalid(err)
		}
	}

	// Ownership check
	if _, err := s.habitRepo.GetByIDAndUserID(ctx, in.HabitID, userID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	checkIn := &entity.CheckIn{
		ID:        uuid.New(),
		UserID:    userID,
		HabitID:   in.HabitID,
		Date:      in.Date,
		Completed: in.Completed,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.checkInRepo.Upsert(ctx, checkIn); err != nil {
		return nil, fmt.Errorf("failed to record check-in: %w", err)
	}

	s.notify.changed(ctx, userID)
	s.notify.publish(ctx, service.EventHabitCheckedIn, userID, map[string]any{
		"habit_id":  checkIn.HabitID.String(),
		"date":      checkIn.Date.String(),
		"completed": checkIn.Completed,
	})
	return checkIn, nil
}

func (s *habitService) ListCheckIns(ctx context.Context, userID uuid.UUID, filter entity.CheckInFilter) ([]*entity.CheckIn, error) {
	if err := checkRange(filter.StartDate, filter.EndDate); err != nil {
		return nil, err
	}
	return s.checkInRepo.List(ctx, userID, filter)
}

func (s *habitService) UpdateCheckIn(ctx context.Context, checkInID, userID uuid.UUID, update *entity.CheckInUpdate) (*entity.CheckIn, error) {
	if update.Completed.IsNull() {
		return nil, invalidf("completed cannot be null")
	}
	if update.Notes.Set && update.Notes.Valid {
		if err := validation.ValidateLength("notes", update.Notes.Value, validation.MaxTextLength); err != nil {
			return nil, invalid(err)
		}
	}

	checkIn, err := s.checkInRepo.GetByIDAndUserID(ctx, checkInID, userID)
	if err != nil {
		return nil, err
	}

	update.ApplyTo(checkIn)
	checkIn.UpdatedAt = time.Now().UTC()

	if err := s.checkInRepo.Update(ctx, checkIn); err != nil {
		return nil, fmt.Errorf("failed to update check-in: %w", err)
	}

	s.notify.changed(ctx, userID)
	return checkIn, nil
}
