package postgres

import (
	"context"
	"fmt"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const habitColumns = `
	id, user_id, name, description, category, target_frequency,
	is_active, created_at, updated_at`

type habitRepository struct {
	pool *pgxpool.Pool
}

// NewHabitRepository creates a new PostgreSQL habit repository
func NewHabitRepository(pool *pgxpool.Pool) repository.HabitRepository {
	return &habitRepository{pool: pool}
}

func scanHabit(row rowScanner) (*entity.Habit, error) {
	habit := &entity.Habit{}
	err := row.Scan(
		&habit.ID, &habit.UserID, &habit.Name, &habit.Description, &habit.Category, &habit.TargetFrequency,
		&habit.IsActive, &habit.CreatedAt, &habit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return habit, nil
}

func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	query := `
		INSERT INTO habits (` + habitColumns + `
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9
		)
	`

	_, err := r.pool.Exec(ctx, query,
		habit.ID, habit.UserID, habit.Name, habit.Description, habit.Category, string(habit.TargetFrequency),
		habit.IsActive, habit.CreatedAt, habit.UpdatedAt,
	)
	if err != nil {
		return wrapErr("create habit", err)
	}

	return nil
}

func (r *habitRepository) GetByIDAndUserID(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE id = $1 AND user_id = $2`

	habit, err := scanHabit(r.pool.QueryRow(ctx, query, habitID, userID))
	if err != nil {
		return nil, wrapErr("get habit", err)
	}
	return habit, nil
}

func (r *habitRepository) GetByUserID(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE user_id = $1`

	if activeOnly {
		query += " AND is_active = TRUE"
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get habits: %w", err)
	}
	defer rows.Close()

	var habits []*entity.Habit
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, habit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}

	return habits, nil
}

func (r *habitRepository) Update(ctx context.Context, habit *entity.Habit) error {
	query := `
		UPDATE habits SET
			name = $3,
			description = $4,
			category = $5,
			target_frequency = $6,
			is_active = $7,
			updated_at = $8
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		habit.ID, habit.UserID,
		habit.Name, habit.Description, habit.Category, string(habit.TargetFrequency),
		habit.IsActive, habit.UpdatedAt,
	)
	if err != nil {
		return wrapErr("update habit", err)
	}

	return expectOne(tag)
}

// Delete soft deletes a habit; its check-ins are kept
func (r *habitRepository) Delete(ctx context.Context, habitID, userID uuid.UUID) error {
	query := `UPDATE habits SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, habitID, userID)
	if err != nil {
		return wrapErr("delete habit", err)
	}

	return expectOne(tag)
}
