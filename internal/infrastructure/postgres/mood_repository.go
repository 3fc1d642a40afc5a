package postgres

import (
	"context"
	"fmt"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const moodColumns = `id, user_id, date, mood_score, energy_level, stress_level, notes, created_at, updated_at`

type moodRepository struct {
	pool *pgxpool.Pool
}

// NewMoodRepository creates a new PostgreSQL mood entry repository
func NewMoodRepository(pool *pgxpool.Pool) repository.MoodRepository {
	return &moodRepository{pool: pool}
}

func scanMood(row rowScanner) (*entity.MoodEntry, error) {
	m := &entity.MoodEntry{}
	err := row.Scan(
		&m.ID, &m.UserID, &m.Date, &m.MoodScore, &m.EnergyLevel, &m.StressLevel, &m.Notes,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *moodRepository) Create(ctx context.Context, entry *entity.MoodEntry) error {
	query := `
		INSERT INTO mood_entries (` + moodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.UserID, entry.Date, entry.MoodScore, entry.EnergyLevel, entry.StressLevel, entry.Notes,
		entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return wrapErr("create mood entry", err)
	}

	return nil
}

func (r *moodRepository) GetByIDAndUserID(ctx context.Context, entryID, userID uuid.UUID) (*entity.MoodEntry, error) {
	query := `SELECT ` + moodColumns + ` FROM mood_entries WHERE id = $1 AND user_id = $2`

	m, err := scanMood(r.pool.QueryRow(ctx, query, entryID, userID))
	if err != nil {
		return nil, wrapErr("get mood entry", err)
	}
	return m, nil
}

func (r *moodRepository) List(ctx context.Context, userID uuid.UUID, dates entity.DateRange) ([]*entity.MoodEntry, error) {
	where := dateRangeWhere(userID, dates)
	query := `SELECT ` + moodColumns + ` FROM mood_entries` + where.String() + ` ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.MoodEntry
	for rows.Next() {
		m, err := scanMood(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mood entry: %w", err)
		}
		entries = append(entries, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate mood entries: %w", err)
	}

	return entries, nil
}

func (r *moodRepository) Update(ctx context.Context, entry *entity.MoodEntry) error {
	query := `
		UPDATE mood_entries SET
			mood_score = $3,
			energy_level = $4,
			stress_level = $5,
			notes = $6,
			updated_at = $7
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		entry.ID, entry.UserID,
		entry.MoodScore, entry.EnergyLevel, entry.StressLevel, entry.Notes, entry.UpdatedAt,
	)
	if err != nil {
		return wrapErr("update mood entry", err)
	}

	return expectOne(tag)
}

func (r *moodRepository) Delete(ctx context.Context, entryID, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM mood_entries WHERE id = $1 AND user_id = $2`, entryID, userID)
	if err != nil {
		return wrapErr("delete mood entry", err)
	}

	return expectOne(tag)
}

// dateRangeWhere scopes a query to a user and an optional inclusive date range
func dateRangeWhere(userID uuid.UUID, dates entity.DateRange) *whereBuilder {
	where := newWhere("user_id", userID)
	if dates.Start != nil {
		where.add("date", ">=", *dates.Start)
	}
	if dates.End != nil {
		where.add("date", "<=", *dates.End)
	}
	return where
}
