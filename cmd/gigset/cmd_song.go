package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gigset/catalog"
)

func runSongAdd(cmd *cobra.Command, _ []string) error {
	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.AddSong(cmd.Context(), songName, songArtist, songTuning)
	if err != nil {
		return err
	}
	slog.Info("song added", "id", id, "name", songName, "artist", songArtist, "tuning", songTuning)
	fmt.Printf("Added '%s' by %s with tuning: %s\n", songName, songArtist, songTuning)

	return nil
}

func runSongList(cmd *cobra.Command, _ []string) error {
	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	songs, err := s.ListSongs(cmd.Context())
	if err != nil {
		return err
	}
	printSongs(songs, "No songs found.")

	return nil
}

func runSongFind(cmd *cobra.Command, args []string) error {
	if songTuning == "" && len(args) == 0 {
		return fmt.Errorf("need a query argument or --tuning")
	}

	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	var songs []catalog.SongRow
	if songTuning != "" {
		songs, err = s.FindSongsByTuning(cmd.Context(), songTuning)
	} else {
		songs, err = s.FindSongsByName(cmd.Context(), args[0])
	}
	if err != nil {
		return err
	}
	printSongs(songs, "No matches found.")

	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	inserted, skipped, err := s.ImportSongsCSV(cmd.Context(), f)
	if err != nil {
		return err
	}
	slog.Info("import finished", "file", args[0], "inserted", inserted, "skipped", skipped)
	fmt.Printf("Imported %d songs from %s (%d duplicates skipped)\n", inserted, args[0], skipped)

	return nil
}

func printSongs(songs []catalog.SongRow, empty string) {
	if len(songs) == 0 {
		fmt.Println(empty)
		return
	}
	for _, s := range songs {
		fmt.Printf("  ID %d: '%s' by %s (%s)\n", s.ID, s.Name, s.Artist, s.Tuning)
	}
}
