package service

import (
	"context"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/analytics"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// GoalService defines the interface for goal tracking
type GoalService interface {
	CreateGoal(ctx context.Context, userID uuid.UUID, in *entity.GoalCreate) (*entity.Goal, error)
	GetGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error)
	ListGoals(ctx context.Context, userID uuid.UUID, completed *bool) ([]*entity.Goal, error)
	UpdateGoal(ctx context.Context, goalID, userID uuid.UUID, update *entity.GoalUpdate) (*entity.Goal, error)
	DeleteGoal(ctx context.Context, goalID, userID uuid.UUID) error

	// CompleteGoal marks a goal completed
	CompleteGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error)

	// Overview counts goals and lists those due soon or overdue as of today
	Overview(ctx context.Context, userID uuid.UUID) (*analytics.GoalsSummary, error)
}
