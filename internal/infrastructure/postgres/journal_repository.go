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

const journalColumns = `
	id, user_id, date, content, ai_response, suggestions,
	mood_before, mood_after, created_at, updated_at`

type journalRepository struct {
	pool *pgxpool.Pool
}

// NewJournalRepository creates a new PostgreSQL journal entry repository
func NewJournalRepository(pool *pgxpool.Pool) repository.JournalRepository {
	return &journalRepository{pool: pool}
}

func scanJournal(row rowScanner) (*entity.JournalEntry, error) {
	j := &entity.JournalEntry{}
	err := row.Scan(
		&j.ID, &j.UserID, &j.Date, &j.Content, &j.AIResponse, &j.Suggestions,
		&j.MoodBefore, &j.MoodAfter, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return j, nil
}

// suggestions never goes out as NULL
func suggestions(j *entity.JournalEntry) []string {
	if j.Suggestions == nil {
		return []string{}
	}
	return j.Suggestions
}

func (r *journalRepository) Create(ctx context.Context, entry *entity.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (` + journalColumns + `
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10
		)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.UserID, entry.Date, entry.Content, entry.AIResponse, suggestions(entry),
		entry.MoodBefore, entry.MoodAfter, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return wrapErr("create journal entry", err)
	}

	return nil
}

func (r *journalRepository) GetByIDAndUserID(ctx context.Context, entryID, userID uuid.UUID) (*entity.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE id = $1 AND user_id = $2`

	j, err := scanJournal(r.pool.QueryRow(ctx, query, entryID, userID))
	if err != nil {
		return nil, wrapErr("get journal entry", err)
	}
	return j, nil
}

func (r *journalRepository) List(ctx context.Context, userID uuid.UUID, dates entity.DateRange) ([]*entity.JournalEntry, error) {
	where := dateRangeWhere(userID, dates)
	query := `SELECT ` + journalColumns + ` FROM journal_entries` + where.String() + ` ORDER BY date DESC`

	return r.query(ctx, query, where.args...)
}

func (r *journalRepository) Recent(ctx context.Context, userID uuid.UUID, before entity.Date, limit int) ([]*entity.JournalEntry, error) {
	query := `
		SELECT ` + journalColumns + `
		FROM journal_entries
		WHERE user_id = $1 AND date < $2
		ORDER BY date DESC
		LIMIT $3
	`

	return r.query(ctx, query, userID, before, limit)
}

func (r *journalRepository) query(ctx context.Context, query string, args ...any) ([]*entity.JournalEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.JournalEntry, error) {
		return scanJournal(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan journal entries: %w", err)
	}

	return entries, nil
}

func (r *journalRepository) Update(ctx context.Context, entry *entity.JournalEntry) error {
	query := `
		UPDATE journal_entries SET
			content = $3,
			ai_response = $4,
			suggestions = $5,
			mood_before = $6,
			mood_after = $7,
			updated_at = $8
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		entry.ID, entry.UserID,
		entry.Content, entry.AIResponse, suggestions(entry), entry.MoodBefore, entry.MoodAfter, entry.UpdatedAt,
	)
	if err != nil {
		return wrapErr("update journal entry", err)
	}

	return expectOne(tag)
}

func (r *journalRepository) Delete(ctx context.Context, entryID, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM journal_entries WHERE id = $1 AND user_id = $2`, entryID, userID)
	if err != nil {
		return wrapErr("delete journal entry", err)
	}

	return expectOne(tag)
}
