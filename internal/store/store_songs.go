package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const songColumns = "id, title, composer, source, created_at"

// CreateSong inserts a song. The source slug is unique; importing the same
// folder twice returns the existing row. Composer may be empty.
func (s *Store) CreateSong(ctx context.Context, title, composer, source string) (*Song, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	if source == "" {
		return nil, errors.New("source is required")
	}

	existing, err := s.FindSongBySource(ctx, source)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO songs (title, composer, source, created_at) VALUES (?, ?, ?, ?)`,
		title,
		composer,
		source,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert song: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetSong(ctx, id)
}

// GetSong fetches a song by identifier. A missing song returns nil without
// error.
func (s *Store) GetSong(ctx context.Context, id int64) (*Song, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+songColumns+` FROM songs WHERE id = ?`, id)
	song, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get song: %w", err)
	}
	return song, nil
}

// FindSongBySource returns the song imported from a source slug, or nil.
func (s *Store) FindSongBySource(ctx context.Context, source string) (*Song, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+songColumns+` FROM songs WHERE source = ?`, source)
	song, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find song by source: %w", err)
	}
	return song, nil
}

// FindSongLike returns the first song whose source contains the fragment.
// Callers use this to resolve client filenames back to a song.
func (s *Store) FindSongLike(ctx context.Context, fragment string) (*Song, error) {
	if fragment == "" {
		return nil, nil
	}
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+songColumns+` FROM songs WHERE source LIKE ? ORDER BY id LIMIT 1`,
		"%"+fragment+"%",
	)
	song, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find song like: %w", err)
	}
	return song, nil
}

// ListSongs returns every song ordered by title.
func (s *Store) ListSongs(ctx context.Context) ([]*Song, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+songColumns+` FROM songs ORDER BY title, id`)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer rows.Close()

	var songs []*Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

// SongExists reports whether a song row exists.
func (s *Store) SongExists(ctx context.Context, id int64) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM songs WHERE id = ?`, id).Scan(&count); err != nil {
		return false, fmt.Errorf("check song: %w", err)
	}
	return count > 0, nil
}

func scanSong(scanner interface{ Scan(dest ...any) error }) (*Song, error) {
	var (
		id         int64
		title      string
		composer   string
		source     string
		createdRaw sql.NullString
	)
	if err := scanner.Scan(&id, &title, &composer, &source, &createdRaw); err != nil {
		return nil, err
	}
	song := &Song{ID: id, Title: title, Composer: composer, Source: source}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		song.CreatedAt = created
	}
	return song, nil
}
