package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/katalvlaran/gigset/tuninggraph"
)

// GraphReport counts what BuildGraph left out.
type GraphReport struct {
	Tunings      int // nodes added
	Edges        int // edges added
	SkippedEdges int // relationships dropped for corrupt vectors or dangling IDs
}

// BuildGraph assembles the in-memory tuning graph for one closeness
// key. Every catalog tuning becomes a node (IDs are the decimal row
// IDs); every stored relationship becomes one undirected edge carrying
// its pitch vector. Corrupt relationships are counted and skipped, not
// fatal.
func (s *Store) BuildGraph(ctx context.Context, keyID int64) (*tuninggraph.Graph, GraphReport, error) {
	var report GraphReport

	g := tuninggraph.New()
	rows, err := s.ListTunings(ctx)
	if err != nil {
		return nil, report, err
	}
	for _, row := range rows {
		if err = g.AddTuning(strconv.FormatInt(row.ID, 10), row.Label); err != nil {
			return nil, report, fmt.Errorf("add tuning %d: %w", row.ID, err)
		}
		report.Tunings++
	}

	rels, err := s.relationshipsLenient(ctx, keyID, &report)
	if err != nil {
		return nil, report, err
	}
	for _, r := range rels {
		from := strconv.FormatInt(r.FromID, 10)
		to := strconv.FormatInt(r.ToID, 10)
		if err = g.AddEdge(from, to, r.Vector); err != nil {
			report.SkippedEdges++
			continue
		}
		report.Edges++
	}

	return g, report, nil
}

// relationshipsLenient is Relationships with corrupt pitch vectors
// counted into the report instead of aborting the build.
func (s *Store) relationshipsLenient(ctx context.Context, keyID int64, report *GraphReport) ([]Relationship, error) {
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
			report.SkippedEdges++
			continue
		}
		out = append(out, r)
	}

	return out, rows.Err()
}
