package postgres

import (
	"context"
	"fmt"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const goalColumns = `id, user_id, title, description, target_date, is_completed, created_at, updated_at`

type goalRepository struct {
	pool *pgxpool.Pool
}

// NewGoalRepository creates a new PostgreSQL goal repository
func NewGoalRepository(pool *pgxpool.Pool) repository.GoalRepository {
	return &goalRepository{pool: pool}
}

func scanGoal(row rowScanner) (*entity.Goal, error) {
	g := &entity.Goal{}
	err := row.Scan(
		&g.ID, &g.UserID, &g.Title, &g.Description, &g.TargetDate, &g.IsCompleted, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		goal.ID, goal.UserID, goal.Title, goal.Description, goal.TargetDate, goal.IsCompleted,
		goal.CreatedAt, goal.UpdatedAt,
	)
	if err != nil {
		return wrapErr("create goal", err)
	}

	return nil
}

func (r *goalRepository) GetByIDAndUserID(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1 AND user_id = $2`

	g, err := scanGoal(r.pool.QueryRow(ctx, query, goalID, userID))
	if err != nil {
		return nil, wrapErr("get goal", err)
	}
	return g, nil
}

func (r *goalRepository) List(ctx context.Context, userID uuid.UUID, completed *bool) ([]*entity.Goal, error) {
	where := newWhere("user_id", userID)
	if completed != nil {
		where.add("is_completed", "=", *completed)
	}
	query := `SELECT ` + goalColumns + ` FROM goals` + where.String() + ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	goals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Goal, error) {
		return scanGoal(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan goals: %w", err)
	}

	return goals, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	query := `
		UPDATE goals SET
			title = $3,
			description = $4,
			target_date = $5,
			is_completed = $6,
			updated_at = $7
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		goal.ID, goal.UserID,
		goal.Title, goal.Description, goal.TargetDate, goal.IsCompleted, goal.UpdatedAt,
	)
	if err != nil {
		return wrapErr("update goal", err)
	}

	return expectOne(tag)
}

func (r *goalRepository) Delete(ctx context.Context, goalID, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err != nil {
		return wrapErr("delete goal", err)
	}

	return expectOne(tag)
}
