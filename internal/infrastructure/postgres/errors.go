package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// rowScanner is satisfied by both pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// wrapErr maps driver errors onto repository sentinels
func wrapErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("failed to %s: %w", op, repository.ErrConflict)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// expectOne turns an UPDATE/DELETE that touched no rows into ErrNotFound
func expectOne(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// whereBuilder accumulates AND-ed conditions with positional args
type whereBuilder struct {
	conds []string
	args  []any
}

func newWhere(cond string, arg any) *whereBuilder {
	return &whereBuilder{conds: []string{cond + " = $1"}, args: []any{arg}}
}

// add appends "column op $n"
func (w *whereBuilder) add(column, op string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf("%s %s $%d", column, op, len(w.args)))
}

func (w *whereBuilder) String() string {
	return " WHERE " + strings.Join(w.conds, " AND ")
}
