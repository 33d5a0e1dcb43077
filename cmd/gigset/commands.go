package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gigset/catalog"
	"github.com/katalvlaran/gigset/config"
)

var (
	configPath string
	dbPath     string

	songName   string
	songArtist string
	songTuning string

	maxChanged int
	maxPitch   int
	maxTotal   int

	graphKeyID int64
	graphOut   string
	planKeyID  int64

	rootCmd = &cobra.Command{
		Use:   "gigset",
		Short: "Guitar tuning catalog, closeness analysis and setlist planning",
		Long: `gigset keeps a catalog of songs and their guitar tunings, analyzes
which tunings are close under a retuning policy, and plans setlist
paths whose absolute pitches stay inside the per-string window.`,
		SilenceUsage: true,
	}

	songCmd = &cobra.Command{
		Use:   "song",
		Short: "Manage and search catalog songs",
	}
	songAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Add one song with its tuning",
		RunE:  runSongAdd,
	}
	songListCmd = &cobra.Command{
		Use:   "list",
		Short: "List every song with its tuning",
		RunE:  runSongList,
	}
	songFindCmd = &cobra.Command{
		Use:   "find [query]",
		Short: "Search songs by name or artist, or by exact tuning via --tuning",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSongFind,
	}

	importCmd = &cobra.Command{
		Use:   "import [csv-file]",
		Short: "Import songs from a name,artist,tuning CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}

	tuningCmd = &cobra.Command{
		Use:   "tuning",
		Short: "Inspect and name catalog tunings",
	}
	tuningListCmd = &cobra.Command{
		Use:   "list",
		Short: "List every tuning with its ID and name",
		RunE:  runTuningList,
	}
	tuningRenameCmd = &cobra.Command{
		Use:   "rename [id] [name]",
		Short: "Set the human-readable name of a tuning",
		Args:  cobra.ExactArgs(2),
		RunE:  runTuningRename,
	}

	analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Compute pairwise tuning closeness and store the relationships",
		RunE:  runAnalyze,
	}
	keysCmd = &cobra.Command{
		Use:   "keys",
		Short: "List stored closeness keys",
		RunE:  runKeys,
	}

	graphCmd = &cobra.Command{
		Use:   "graph",
		Short: "Export the tuning graph of one closeness key as DOT",
		RunE:  runGraph,
	}

	planCmd = &cobra.Command{
		Use:   "plan [tuning-id...]",
		Short: "Check a setlist path for feasibility and print absolute pitches",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runPlan,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "catalog database (overrides config)")

	songAddCmd.Flags().StringVar(&songName, "name", "", "song name")
	songAddCmd.Flags().StringVar(&songArtist, "artist", "", "artist")
	songAddCmd.Flags().StringVar(&songTuning, "tuning", "", "tuning label, e.g. \"E A D G B E\"")
	songAddCmd.MarkFlagRequired("name")   //nolint:errcheck
	songAddCmd.MarkFlagRequired("artist") //nolint:errcheck
	songAddCmd.MarkFlagRequired("tuning") //nolint:errcheck
	songFindCmd.Flags().StringVar(&songTuning, "tuning", "", "exact tuning label to match")

	analyzeCmd.Flags().IntVar(&maxChanged, "max-changed", -1, "max number of changed strings (default from config)")
	analyzeCmd.Flags().IntVar(&maxPitch, "max-pitch", -1, "max semitone change per string (default from config)")
	analyzeCmd.Flags().IntVar(&maxTotal, "max-total", -1, "max total semitone change (default from config)")

	graphCmd.Flags().Int64Var(&graphKeyID, "key", 0, "closeness key ID")
	graphCmd.Flags().StringVar(&graphOut, "out", "", "output file (default stdout)")
	graphCmd.MarkFlagRequired("key") //nolint:errcheck

	planCmd.Flags().Int64Var(&planKeyID, "key", 0, "closeness key ID")
	planCmd.MarkFlagRequired("key") //nolint:errcheck

	songCmd.AddCommand(songAddCmd, songListCmd, songFindCmd)
	tuningCmd.AddCommand(tuningListCmd, tuningRenameCmd)
	rootCmd.AddCommand(songCmd, importCmd, tuningCmd, analyzeCmd, keysCmd, graphCmd, planCmd)
}

// loadConfig resolves the effective configuration, honoring --db.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}

	return cfg, nil
}

// openStore loads config and opens the catalog; the caller closes it.
func openStore(ctx context.Context) (*catalog.Store, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	s, err := catalog.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, cfg, fmt.Errorf("open catalog %s: %w", cfg.Database.Path, err)
	}

	return s, cfg, nil
}
