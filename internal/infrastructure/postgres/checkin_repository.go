package postgres

import (
	"context"
	"fmt"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const checkInColumns = `id, user_id, habit_id, date, completed, notes, created_at, updated_at`

type checkInRepository struct {
	pool *pgxpool.Pool
}

// NewCheckInRepository creates a new PostgreSQL check-in repository
func NewCheckInRepository(pool *pgxpool.Pool) repository.CheckInRepository {
	return &checkInRepository{pool: pool}
}

func scanCheckIn(row rowScanner) (*entity.CheckIn, error) {
	c := &entity.CheckIn{}
	err := row.Scan(
		&c.ID, &c.UserID, &c.HabitID, &c.Date, &c.Completed, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Upsert writes the check-in, keeping the id and created_at of an existing
// row for the same (user, habit, date). Both are written back into checkIn.
func (r *checkInRepository) Upsert(ctx context.Context, checkIn *entity.CheckIn) error {
	query := `
		INSERT INTO habit_checkins (` + checkInColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, habit_id, date) DO UPDATE SET
			completed = EXCLUDED.completed,
			notes = EXCLUDED.notes,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		checkIn.ID, checkIn.UserID, checkIn.HabitID, checkIn.Date,
		checkIn.Completed, checkIn.Notes, checkIn.CreatedAt, checkIn.UpdatedAt,
	).Scan(&checkIn.ID, &checkIn.CreatedAt)
	if err != nil {
		return wrapErr("upsert check-in", err)
	}

	return nil
}

func (r *checkInRepository) GetByIDAndUserID(ctx context.Context, checkInID, userID uuid.UUID) (*entity.CheckIn, error) {
	query := `SELECT ` + checkInColumns + ` FROM habit_checkins WHERE id = $1 AND user_id = $2`

	c, err := scanCheckIn(r.pool.QueryRow(ctx, query, checkInID, userID))
	if err != nil {
		return nil, wrapErr("get check-in", err)
	}
	return c, nil
}

func (r *checkInRepository) List(ctx context.Context, userID uuid.UUID, filter entity.CheckInFilter) ([]*entity.CheckIn, error) {
	where := newWhere("user_id", userID)
	if filter.HabitID != nil {
		where.add("habit_id", "=", *filter.HabitID)
	}
	if filter.StartDate != nil {
		where.add("date", ">=", *filter.StartDate)
	}
	if filter.EndDate != nil {
		where.add("date", "<=", *filter.EndDate)
	}

	query := `SELECT ` + checkInColumns + ` FROM habit_checkins` + where.String() + ` ORDER BY date DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	var checkIns []*entity.CheckIn
	for rows.Next() {
		c, err := scanCheckIn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		checkIns = append(checkIns, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate check-ins: %w", err)
	}

	return checkIns, nil
}

func (r *checkInRepository) Update(ctx context.Context, checkIn *entity.CheckIn) error {
	query := `
		UPDATE habit_checkins SET
			completed = $3,
			notes = $4,
			updated_at = $5
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		checkIn.ID, checkIn.UserID, checkIn.Completed, checkIn.Notes, checkIn.UpdatedAt,
	)
	if err != nil {
		return wrapErr("update check-in", err)
	}

	return expectOne(tag)
}
