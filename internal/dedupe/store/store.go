package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Akarshakk/F-Buddy/internal/dedupe"
	"github.com/Akarshakk/F-Buddy/internal/transaction"
)

// Store is the Postgres-backed persistence collaborator: duplicate lookups
// for the guard, plus record insertion for callers that decided to keep a
// candidate.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FindMatching reports whether a record matching the query exists. Category
// and description narrowing apply only when set; the description check is a
// case-insensitive substring match.
func (s *Store) FindMatching(ctx context.Context, q dedupe.Query) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE user_id = $1
			  AND amount = $2
			  AND date BETWEEN $3 AND $4
			  AND ($5 = '' OR category = $5)
			  AND ($6 = '' OR description ILIKE '%' || $6 || '%')
		)
	`

	var exists bool

	err := s.db.QueryRowContext(ctx, query,
		q.UserID,
		q.Amount,
		q.OccurredAt.Add(-q.Window),
		q.OccurredAt.Add(q.Window),
		q.Category,
		q.Description,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("finding matching transaction: %w", err)
	}

	return exists, nil
}

// Insert persists a record, filling in its generated id and creation time.
func (s *Store) Insert(ctx context.Context, rec *transaction.Record) error {
	query := `
		INSERT INTO transactions (user_id, amount, type, category, description, merchant, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		rec.UserID,
		rec.Amount,
		rec.Type,
		rec.Category,
		rec.Description,
		rec.Merchant,
		rec.Date,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}

	return nil
}
