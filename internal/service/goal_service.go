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

type goalService struct {
	goalRepo repository.GoalRepository
	clock    service.Clock
	notify   *notifier
}

// NewGoalService creates a new goal service
func NewGoalService(
	goalRepo repository.GoalRepository,
	clock service.Clock,
	publisher service.EventPublisher,
	log *zap.Logger,
) service.GoalService {
	return &goalService{
		goalRepo: goalRepo,
		clock:    clock,
		notify:   &notifier{publisher: publisher, log: log},
	}
}

func validateGoal(title string, description *string) error {
	if err := validation.ValidateRequired("title", title, validation.MaxNameLength); err != nil {
		return invalid(err)
	}
	if description != nil {
		if err := validation.ValidateLength("description", *description, validation.MaxTextLength); err != nil {
			return invalid(err)
		}
	}
	return nil
}

func (s *goalService) CreateGoal(ctx context.Context, userID uuid.UUID, in *entity.GoalCreate) (*entity.Goal, error) {
	if err := validateGoal(in.Title, in.Description); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	goal := &entity.Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		TargetDate:  in.TargetDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return goal, nil
}

func (s *goalService) GetGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error) {
	return s.goalRepo.GetByIDAndUserID(ctx, goalID, userID)
}

func (s *goalService) ListGoals(ctx context.Context, userID uuid.UUID, completed *bool) ([]*entity.Goal, error) {
	return s.goalRepo.List(ctx, userID, completed)
}

func (s *goalService) UpdateGoal(ctx context.Context, goalID, userID uuid.UUID, update *entity.GoalUpdate) (*entity.Goal, error) {
	if update.Title.IsNull() || update.IsCompleted.IsNull() {
		return nil, invalidf("title and is_completed cannot be null")
	}

	goal, err := s.goalRepo.GetByIDAndUserID(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	wasCompleted := goal.IsCompleted
	update.ApplyTo(goal)
	if err := validateGoal(goal.Title, goal.Description); err != nil {
		return nil, err
	}

	return s.save(ctx, goal, wasCompleted)
}

func (s *goalService) DeleteGoal(ctx context.Context, goalID, userID uuid.UUID) error {
	return s.goalRepo.Delete(ctx, goalID, userID)
}

func (s *goalService) CompleteGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := s.goalRepo.GetByIDAndUserID(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	wasCompleted := goal.IsCompleted
	goal.IsCompleted = true
	return s.save(ctx, goal, wasCompleted)
}

func (s *goalService) save(ctx context.Context, goal *entity.Goal, wasCompleted bool) (*entity.Goal, error) {
	goal.UpdatedAt = time.Now().UTC()
	if err := s.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	if goal.IsCompleted && !wasCompleted {
		s.notify.publish(ctx, service.EventGoalCompleted, goal.UserID, map[string]any{
			"goal_id": goal.ID.String(),
			"title":   goal.Title,
		})
	}
	return goal, nil
}

func (s *goalService) Overview(ctx context.Context, userID uuid.UUID) (*analytics.GoalsSummary, error) {
	goals, err := s.goalRepo.List(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	summary := analytics.GoalsOverview(goals, s.clock.Today())
	return &summary, nil
}
