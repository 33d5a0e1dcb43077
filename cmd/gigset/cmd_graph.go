package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gigset/catalog"
	"github.com/katalvlaran/gigset/tuning"
	"github.com/katalvlaran/gigset/tuninggraph"
)

func runGraph(cmd *cobra.Command, _ []string) error {
	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	g, report, err := s.BuildGraph(cmd.Context(), graphKeyID)
	if err != nil {
		return err
	}
	slog.Info("graph built",
		"key", graphKeyID,
		"tunings", report.Tunings,
		"edges", report.Edges,
		"skipped_edges", report.SkippedEdges)

	out := io.Writer(os.Stdout)
	if graphOut != "" {
		f, err := os.Create(graphOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", graphOut, err)
		}
		defer f.Close()
		out = f
	}

	return writeDOT(cmd.Context(), out, s, g)
}

// writeDOT renders the tuning graph in Graphviz DOT form: one node per
// tuning (label plus name, songs in the tooltip), one undirected edge
// per relationship labeled with its stored delta vector.
func writeDOT(ctx context.Context, w io.Writer, s *catalog.Store, g *tuninggraph.Graph) error {
	var b strings.Builder
	b.WriteString("graph tunings {\n")
	b.WriteString("\tnode [shape=box];\n")

	for _, id := range g.TuningIDs() {
		label, _ := g.TuningLabel(id)
		text := label

		numID, err := strconv.ParseInt(id, 10, 64)
		if err == nil {
			if row, err := s.TuningByID(ctx, numID); err == nil && row.Name != "" {
				text = row.Name + "\\n" + label
			}
			songs, err := s.SongsByTuningID(ctx, numID)
			if err != nil {
				return err
			}
			if len(songs) > 0 {
				fmt.Fprintf(&b, "\tn%s [label=\"%s\", tooltip=\"%s\"];\n",
					id, dotEscape(text), dotEscape(strings.Join(songs, "\\n")))
				continue
			}
		}
		fmt.Fprintf(&b, "\tn%s [label=\"%s\"];\n", id, dotEscape(text))
	}

	seen := make(map[string]struct{})
	for _, id := range g.TuningIDs() {
		for _, nbr := range g.AdjacentIDs(id) {
			key := id + "-" + nbr
			if id > nbr {
				key = nbr + "-" + id
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			d, _ := g.EdgeDelta(id, nbr)
			fmt.Fprintf(&b, "\tn%s -- n%s [label=\"%s\"];\n", id, nbr, deltaLabel(d))
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())

	return err
}

// dotEscape protects double quotes inside DOT quoted strings; DOT's
// own \n line-break escapes pass through untouched.
func dotEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func deltaLabel(d tuning.Delta) string {
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}
