package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
)

func runTuningList(cmd *cobra.Command, _ []string) error {
	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	rows, err := s.ListTunings(cmd.Context())
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("No tunings found.")
		return nil
	}
	fmt.Println("Tunings:")
	for _, t := range rows {
		if t.Name != "" {
			fmt.Printf("  ID %d: %s (name: %s)\n", t.ID, t.Label, t.Name)
		} else {
			fmt.Printf("  ID %d: %s\n", t.ID, t.Label)
		}
	}

	return nil
}

func runTuningRename(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("tuning id %q: %w", args[0], err)
	}

	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	if err = s.RenameTuning(cmd.Context(), id, args[1]); err != nil {
		return err
	}
	slog.Info("tuning renamed", "id", id, "name", args[1])
	fmt.Printf("Updated tuning ID %d with name: %s\n", id, args[1])

	return nil
}
