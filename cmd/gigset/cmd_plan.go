package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gigset/pitch"
	"github.com/katalvlaran/gigset/session"
	"github.com/katalvlaran/gigset/solver"
	"github.com/katalvlaran/gigset/tuning"
)

func runPlan(cmd *cobra.Command, args []string) error {
	s, cfg, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	bounds, err := cfg.ResolvedBounds()
	if err != nil {
		return err
	}

	g, report, err := s.BuildGraph(cmd.Context(), planKeyID)
	if err != nil {
		return err
	}
	if report.SkippedEdges > 0 {
		slog.Warn("graph has skipped relationships", "key", planKeyID, "skipped_edges", report.SkippedEdges)
	}

	sess := session.New(g, bounds)
	fmt.Printf("Window: %s\n", bounds)
	for _, id := range args {
		if err = sess.Append(id); err != nil {
			fmt.Printf("Path infeasible at tuning %s: %v\n", id, err)
			return nil
		}
	}

	seq, err := sess.Pitches()
	if err != nil {
		return err
	}
	for i, id := range sess.Path() {
		label, _ := g.TuningLabel(id)
		fmt.Printf("  %d. ID %s (%s): %s\n", i+1, id, label, describePitches(seq[i]))
	}
	fmt.Printf("Feasible: %v\n", solver.IsFeasible(seq, bounds))

	// Which tunings could still follow this path.
	var addable []string
	for id, ok := range sess.AddableSet(g.TuningIDs()) {
		if ok {
			addable = append(addable, id)
		}
	}
	if len(addable) > 0 {
		fmt.Printf("Addable next: %s\n", strings.Join(sortIDs(addable), ", "))
	} else {
		fmt.Println("Addable next: none")
	}

	return nil
}

func sortIDs(ids []string) []string {
	sort.Slice(ids, func(i, j int) bool {
		if len(ids[i]) != len(ids[j]) {
			return len(ids[i]) < len(ids[j]) // numeric IDs: shorter first
		}
		return ids[i] < ids[j]
	})

	return ids
}

func describePitches(t tuning.Tuning) string {
	parts := make([]string, tuning.StringCount)
	for i, p := range t {
		parts[i] = pitch.MIDIToNote(p)
	}

	return strings.Join(parts, " ")
}
