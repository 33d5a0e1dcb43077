package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gigset/closeness"
)

func runAnalyze(cmd *cobra.Command, _ []string) error {
	s, cfg, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	// Flags override the config policy per field; -1 means "not set".
	p := cfg.Policy()
	if maxChanged >= 0 {
		p.MaxChangedStrings = maxChanged
	}
	if maxPitch >= 0 {
		p.MaxPitchChange = maxPitch
	}
	if maxTotal >= 0 {
		p.MaxTotalDifference = maxTotal
	}

	report, err := s.AnalyzeCloseness(cmd.Context(), p)
	if err != nil {
		return err
	}
	slog.Info("closeness analysis complete",
		"key", report.KeyID,
		"pairs", report.Pairs,
		"close", report.Close,
		"skipped_labels", report.SkippedLabels)
	fmt.Printf("Analysis complete under key %d: %d of %d pairs close", report.KeyID, report.Close, report.Pairs)
	if report.SkippedLabels > 0 {
		fmt.Printf(" (%d unparsable tunings skipped)", report.SkippedLabels)
	}
	fmt.Println()

	return nil
}

func runKeys(cmd *cobra.Command, _ []string) error {
	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	keys, err := s.ListClosenessKeys(cmd.Context())
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Println("No closeness keys found.")
		return nil
	}
	fmt.Println("Stored closeness keys:")
	for _, k := range keys {
		fmt.Printf("- ID %d: %s\n", k.ID, describePolicy(k.Policy))
	}

	return nil
}

func describePolicy(p closeness.Policy) string {
	return fmt.Sprintf("max_changed=%d, max_pitch=%d, max_total=%d",
		p.MaxChangedStrings, p.MaxPitchChange, p.MaxTotalDifference)
}
