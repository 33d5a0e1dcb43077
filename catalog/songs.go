package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// SongRow is one catalog song joined with its tuning label.
type SongRow struct {
	ID     int64
	Name   string
	Artist string
	Tuning string
}

// AddSong inserts a song, ensuring its tuning exists first.
//
// Errors: ErrDuplicate when (name, artist, tuning) already exists.
func (s *Store) AddSong(ctx context.Context, name, artist, label string) (int64, error) {
	tuningID, err := s.EnsureTuning(ctx, label)
	if err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO songs (name, artist, tuning_id) VALUES (?, ?, ?)`,
		strings.TrimSpace(name), strings.TrimSpace(artist), tuningID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return 0, fmt.Errorf("%w: %q by %q", ErrDuplicate, name, artist)
		}

		return 0, fmt.Errorf("insert song: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("song id: %w", err)
	}

	return id, nil
}

// SongInput is one song to insert in bulk.
type SongInput struct {
	Name   string
	Artist string
	Tuning string
}

// BulkAddSongs inserts the given songs, skipping exact duplicates.
// Returns (inserted, skipped); any other failure aborts mid-batch.
func (s *Store) BulkAddSongs(ctx context.Context, songs []SongInput) (int, int, error) {
	inserted, skipped := 0, 0
	for _, in := range songs {
		_, err := s.AddSong(ctx, in.Name, in.Artist, in.Tuning)
		switch {
		case err == nil:
			inserted++
		case errors.Is(err, ErrDuplicate):
			skipped++
		default:
			return inserted, skipped, err
		}
	}

	return inserted, skipped, nil
}

// ImportSongsCSV reads name,artist,tuning records (with a header row)
// and inserts them, skipping duplicates. Returns (inserted, skipped).
func (s *Store) ImportSongsCSV(ctx context.Context, r io.Reader) (int, int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range []string{"name", "artist", "tuning"} {
		if _, ok := col[want]; !ok {
			return 0, 0, fmt.Errorf("csv missing column %q", want)
		}
	}

	var batch []SongInput
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, 0, fmt.Errorf("read csv record: %w", err)
		}
		batch = append(batch, SongInput{
			Name:   rec[col["name"]],
			Artist: rec[col["artist"]],
			Tuning: rec[col["tuning"]],
		})
	}

	return s.BulkAddSongs(ctx, batch)
}

// ListSongs returns every song with its tuning label, ordered by
// artist then name.
func (s *Store) ListSongs(ctx context.Context) ([]SongRow, error) {
	return s.querySongs(ctx, `
SELECT songs.id, songs.name, songs.artist, tunings.tuning
FROM songs JOIN tunings ON songs.tuning_id = tunings.id
ORDER BY songs.artist, songs.name`)
}

// FindSongsByTuning returns the songs using the exact tuning label.
func (s *Store) FindSongsByTuning(ctx context.Context, label string) ([]SongRow, error) {
	return s.querySongs(ctx, `
SELECT songs.id, songs.name, songs.artist, tunings.tuning
FROM songs JOIN tunings ON songs.tuning_id = tunings.id
WHERE tunings.tuning = ?
ORDER BY songs.artist, songs.name`, strings.TrimSpace(label))
}

// FindSongsByName returns songs whose name or artist matches the
// partial, case-insensitive query.
func (s *Store) FindSongsByName(ctx context.Context, query string) ([]SongRow, error) {
	wildcard := "%" + query + "%"

	return s.querySongs(ctx, `
SELECT songs.id, songs.name, songs.artist, tunings.tuning
FROM songs JOIN tunings ON songs.tuning_id = tunings.id
WHERE songs.name LIKE ? OR songs.artist LIKE ?
ORDER BY songs.artist, songs.name`, wildcard, wildcard)
}

// SongsByTuningID returns "Name by Artist" lines for one tuning,
// the content graph exports put in node tooltips.
func (s *Store) SongsByTuningID(ctx context.Context, tuningID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT name, artist FROM songs
WHERE tuning_id = ?
ORDER BY artist, name`, tuningID)
	if err != nil {
		return nil, fmt.Errorf("songs by tuning: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name, artist string
		if err = rows.Scan(&name, &artist); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		out = append(out, fmt.Sprintf("%s by %s", name, artist))
	}

	return out, rows.Err()
}

func (s *Store) querySongs(ctx context.Context, q string, args ...any) ([]SongRow, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query songs: %w", err)
	}
	defer rows.Close()

	var out []SongRow
	for rows.Next() {
		var sr SongRow
		if err = rows.Scan(&sr.ID, &sr.Name, &sr.Artist, &sr.Tuning); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		out = append(out, sr)
	}

	return out, rows.Err()
}
