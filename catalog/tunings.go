package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// TuningRow is one catalog tuning: a relative label plus an optional
// human-readable name ("Drop D").
type TuningRow struct {
	ID    int64
	Label string
	Name  string
}

// EnsureTuning inserts the tuning label if new and returns its ID
// either way. Labels are trimmed; deduplication is by exact label.
func (s *Store) EnsureTuning(ctx context.Context, label string) (int64, error) {
	label = strings.TrimSpace(label)

	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM tunings WHERE tuning = ?`, label).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("lookup tuning: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO tunings (tuning) VALUES (?)`, label)
	if err != nil {
		return 0, fmt.Errorf("insert tuning: %w", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("tuning id: %w", err)
	}

	return id, nil
}

// ListTunings returns every tuning ordered by ID.
func (s *Store) ListTunings(ctx context.Context) ([]TuningRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, tuning, COALESCE(name, '') FROM tunings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tunings: %w", err)
	}
	defer rows.Close()

	var out []TuningRow
	for rows.Next() {
		var t TuningRow
		if err = rows.Scan(&t.ID, &t.Label, &t.Name); err != nil {
			return nil, fmt.Errorf("scan tuning: %w", err)
		}
		out = append(out, t)
	}

	return out, rows.Err()
}

// TuningByID returns one tuning row.
//
// Errors: ErrNotFound.
func (s *Store) TuningByID(ctx context.Context, id int64) (TuningRow, error) {
	var t TuningRow
	err := s.db.QueryRowContext(ctx,
		`SELECT id, tuning, COALESCE(name, '') FROM tunings WHERE id = ?`, id).
		Scan(&t.ID, &t.Label, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return TuningRow{}, fmt.Errorf("%w: tuning %d", ErrNotFound, id)
	}
	if err != nil {
		return TuningRow{}, fmt.Errorf("lookup tuning %d: %w", id, err)
	}

	return t, nil
}

// RenameTuning sets the human-readable name of a tuning.
//
// Errors: ErrNotFound when the ID does not exist.
func (s *Store) RenameTuning(ctx context.Context, id int64, name string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE tunings SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("rename tuning %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rename tuning %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: tuning %d", ErrNotFound, id)
	}

	return nil
}
