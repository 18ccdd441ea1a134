package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"etude/internal/catalog"
)

const groupColumns = "id, song_id, start_measure, end_measure, created_at"

// CreateGroup inserts a measure group for a song. Re-registering an existing
// span is a no-op that returns the stored row.
func (s *Store) CreateGroup(ctx context.Context, songID int64, start, end int) (*Group, error) {
	if start < 1 || end < start {
		return nil, fmt.Errorf("invalid measure span [%d, %d]", start, end)
	}

	song, err := s.GetSong(ctx, songID)
	if err != nil {
		return nil, err
	}
	if song == nil {
		return nil, fmt.Errorf("song %d not found", songID)
	}

	id := GroupID(song.Source, start, end)
	existing, err := s.GetGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO measure_groups (id, song_id, start_measure, end_measure, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		id,
		songID,
		start,
		end,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert group: %w", err)
	}
	return s.GetGroup(ctx, id)
}

// GetGroup fetches a group by identifier. A missing group returns nil
// without error.
func (s *Store) GetGroup(ctx context.Context, id string) (*Group, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+groupColumns+` FROM measure_groups WHERE id = ?`, id)
	group, err := scanGroup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	return group, nil
}

// GroupsBySong returns a song's groups ordered by span.
func (s *Store) GroupsBySong(ctx context.Context, songID int64) ([]*Group, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+groupColumns+` FROM measure_groups WHERE song_id = ? ORDER BY start_measure, end_measure`,
		songID,
	)
	if err != nil {
		return nil, fmt.Errorf("query groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

// FindGroupContaining returns the first group of a song whose span covers
// the measure, or nil.
func (s *Store) FindGroupContaining(ctx context.Context, songID int64, measure int) (*Group, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+groupColumns+` FROM measure_groups
         WHERE song_id = ? AND start_measure <= ? AND end_measure >= ?
         ORDER BY start_measure, end_measure LIMIT 1`,
		songID,
		measure,
		measure,
	)
	group, err := scanGroup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find containing group: %w", err)
	}
	return group, nil
}

// SingleMeasureCounts returns, per song, how many single-measure groups are
// registered. That count is the song's practiceable measure total.
func (s *Store) SingleMeasureCounts(ctx context.Context) (map[int64]int, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT song_id, COUNT(1) FROM measure_groups WHERE start_measure = end_measure GROUP BY song_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("count single measures: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var songID int64
		var count int
		if err := rows.Scan(&songID, &count); err != nil {
			return nil, err
		}
		counts[songID] = count
	}
	return counts, rows.Err()
}

// ResolveGroupForMeasure returns the single-measure group covering a measure
// of a song, creating it when the song exists but the measure was never
// registered.
func (s *Store) ResolveGroupForMeasure(ctx context.Context, songID int64, measure int) (*Group, error) {
	song, err := s.GetSong(ctx, songID)
	if err != nil {
		return nil, err
	}
	if song == nil {
		return nil, nil
	}

	id := GroupID(song.Source, measure, measure)
	group, err := s.GetGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	if group != nil {
		return group, nil
	}
	return s.CreateGroup(ctx, songID, measure, measure)
}

// CatalogGroups adapts a song's groups to the scheduling catalog shape.
func (s *Store) CatalogGroups(ctx context.Context, songID int64) ([]catalog.Group, error) {
	groups, err := s.GroupsBySong(ctx, songID)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, catalog.Group{ID: g.ID, Start: g.Start, End: g.End})
	}
	return out, nil
}

func scanGroup(scanner interface{ Scan(dest ...any) error }) (*Group, error) {
	var (
		id         string
		songID     int64
		start      int
		end        int
		createdRaw sql.NullString
	)
	if err := scanner.Scan(&id, &songID, &start, &end, &createdRaw); err != nil {
		return nil, err
	}
	group := &Group{ID: id, SongID: songID, Start: start, End: end}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		group.CreatedAt = created
	}
	return group, nil
}
