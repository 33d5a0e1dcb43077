package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gigset/closeness"
	"github.com/katalvlaran/gigset/tuning"
)

// ClosenessKey is one stored analysis policy.
type ClosenessKey struct {
	ID     int64
	Policy closeness.Policy
}

// Relationship is one stored close pair. Vector is the per-string
// delta for traversing FromID → ToID (the stored, low-ID → high-ID
// direction).
type Relationship struct {
	FromID int64
	ToID   int64
	Vector tuning.Delta
}

// AnalysisReport summarizes one AnalyzeCloseness run.
type AnalysisReport struct {
	KeyID         int64
	Pairs         int // pairs evaluated
	Close         int // relationships stored
	SkippedLabels int // tunings with unparsable labels, left out
}

// EnsureClosenessKey inserts the policy if new and returns its key ID
// either way.
func (s *Store) EnsureClosenessKey(ctx context.Context, p closeness.Policy) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
SELECT id FROM closeness_keys
WHERE max_changed_strings = ? AND max_pitch_change = ? AND max_total_difference = ?`,
		p.MaxChangedStrings, p.MaxPitchChange, p.MaxTotalDifference).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("lookup closeness key: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
INSERT INTO closeness_keys (max_changed_strings, max_pitch_change, max_total_difference)
VALUES (?, ?, ?)`, p.MaxChangedStrings, p.MaxPitchChange, p.MaxTotalDifference)
	if err != nil {
		return 0, fmt.Errorf("insert closeness key: %w", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("closeness key id: %w", err)
	}

	return id, nil
}

// ListClosenessKeys returns every stored key ordered by ID.
func (s *Store) ListClosenessKeys(ctx context.Context) ([]ClosenessKey, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, max_changed_strings, max_pitch_change, max_total_difference
FROM closeness_keys ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list closeness keys: %w", err)
	}
	defer rows.Close()

	var out []ClosenessKey
	for rows.Next() {
		var k ClosenessKey
		if err = rows.Scan(&k.ID, &k.Policy.MaxChangedStrings, &k.Policy.MaxPitchChange, &k.Policy.MaxTotalDifference); err != nil {
			return nil, fmt.Errorf("scan closeness key: %w", err)
		}
		out = append(out, k)
	}

	return out, rows.Err()
}

// InsertRelationship stores one close pair under a key. The pair is
// stored with sorted IDs; if (fromID, toID) arrives reversed, the
// vector is sign-flipped so the stored direction is always
// low-ID → high-ID. Duplicate pairs are rejected with ErrDuplicate.
func (s *Store) InsertRelationship(ctx context.Context, fromID, toID, keyID int64, v tuning.Delta) error {
	if fromID > toID {
		fromID, toID = toID, fromID
		v = v.Neg()
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO tuning_relationships (tuning_id, close_tuning_id, closeness_key_id, pitch_vector)
VALUES (?, ?, ?, ?)`, fromID, toID, keyID, encodeVector(v))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return fmt.Errorf("%w: relationship %d-%d", ErrDuplicate, fromID, toID)
		}

		return fmt.Errorf("insert relationship: %w", err)
	}

	return nil
}

// Relationships returns every stored pair for one closeness key.
func (s *Store) Relationships(ctx context.Context, keyID int64) ([]Relationship, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT tuning_id, close_tuning_id, pitch_vector
FROM tuning_relationships
WHERE closeness_key_id = ?
ORDER BY tuning_id, close_tuning_id`, keyID)
	if err != nil {
		return nil, fmt.Errorf("list relationships: %w", err)
	}
	defer rows.Close()

	var out []Relationship
	for rows.Next() {
		var (
			r   Relationship
			raw string
		)
		if err = rows.Scan(&r.FromID, &r.ToID, &raw); err != nil {
			return nil, fmt.Errorf("scan relationship: %w", err)
		}
		if r.Vector, err = parseVector(raw); err != nil {
			return nil, fmt.Errorf("relationship %d-%d: %w", r.FromID, r.ToID, err)
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// AnalyzeCloseness evaluates every tuning pair under p, stores the
// close ones under the (ensured) key, and reports what happened.
// Tunings whose labels do not normalize are skipped, not fatal —
// a bad catalog row must never sink the whole analysis.
func (s *Store) AnalyzeCloseness(ctx context.Context, p closeness.Policy) (AnalysisReport, error) {
	keyID, err := s.EnsureClosenessKey(ctx, p)
	if err != nil {
		return AnalysisReport{}, err
	}
	report := AnalysisReport{KeyID: keyID}

	rows, err := s.ListTunings(ctx)
	if err != nil {
		return report, err
	}

	// Normalize once up front; unparsable labels drop out here.
	type normalized struct {
		id  int64
		tun tuning.Tuning
	}
	ts := make([]normalized, 0, len(rows))
	for _, row := range rows {
		t, err := tuning.Normalize(row.Label)
		if err != nil {
			report.SkippedLabels++
			continue
		}
		ts = append(ts, normalized{id: row.ID, tun: t})
	}

	for i := 0; i < len(ts); i++ {
		for j := i + 1; j < len(ts); j++ {
			report.Pairs++
			ok, shift := closeness.Evaluate(ts[i].tun, ts[j].tun, p)
			if !ok {
				continue
			}
			v := closeness.Vector(ts[i].tun, ts[j].tun, shift)
			err = s.InsertRelationship(ctx, ts[i].id, ts[j].id, keyID, v)
			switch {
			case err == nil:
				report.Close++
			case errors.Is(err, ErrDuplicate):
				// re-analysis under an existing key
			default:
				return report, err
			}
		}
	}

	return report, nil
}

// encodeVector renders a delta as comma-separated text,
// e.g. "-2,0,0,0,0,0".
func encodeVector(v tuning.Delta) string {
	parts := make([]string, tuning.StringCount)
	for i, d := range v {
		parts[i] = strconv.Itoa(d)
	}

	return strings.Join(parts, ",")
}

// parseVector parses the stored comma-separated form back to a delta.
func parseVector(raw string) (tuning.Delta, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != tuning.StringCount {
		return tuning.Delta{}, fmt.Errorf("pitch vector %q: want %d fields", raw, tuning.StringCount)
	}

	var v tuning.Delta
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return tuning.Delta{}, fmt.Errorf("pitch vector %q: %w", raw, err)
		}
		v[i] = n
	}

	return v, nil
}
