package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"etude/internal/catalog"
	"etude/internal/rating"
)

const sessionColumns = "id, group_id, rating, practiced_at, duration_seconds, notes"

// LogSession records one practice attempt against a group. The rating is
// validated before anything touches the database. Duration and notes are
// optional annotations.
func (s *Store) LogSession(ctx context.Context, groupID, value string, durationSeconds int, notes string) (*Session, error) {
	parsed, err := rating.Parse(value)
	if err != nil {
		return nil, err
	}

	group, err := s.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, fmt.Errorf("group %q not found", groupID)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO practice_sessions (group_id, rating, practiced_at, duration_seconds, notes) VALUES (?, ?, ?, ?, ?)`,
		groupID,
		string(parsed),
		timestamp,
		durationSeconds,
		notes,
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM practice_sessions WHERE id = ?`, id)
	return scanSession(row)
}

// SessionsByGroup returns a group's practice history oldest first.
func (s *Store) SessionsByGroup(ctx context.Context, groupID string) ([]*Session, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+sessionColumns+` FROM practice_sessions WHERE group_id = ? ORDER BY practiced_at, id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()
	return collectSessions(rows)
}

// SessionsBySong returns every session for a song's groups oldest first.
func (s *Store) SessionsBySong(ctx context.Context, songID int64) ([]*Session, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT ps.id, ps.group_id, ps.rating, ps.practiced_at, ps.duration_seconds, ps.notes
         FROM practice_sessions ps
         JOIN measure_groups mg ON mg.id = ps.group_id
         WHERE mg.song_id = ?
         ORDER BY ps.practiced_at, ps.id`,
		songID,
	)
	if err != nil {
		return nil, fmt.Errorf("query song sessions: %w", err)
	}
	defer rows.Close()
	return collectSessions(rows)
}

// CatalogRatings adapts a song's practice history to the scheduling catalog
// shape, preserving chronological order.
func (s *Store) CatalogRatings(ctx context.Context, songID int64) ([]catalog.PracticeRecord, error) {
	sessions, err := s.SessionsBySong(ctx, songID)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.PracticeRecord, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, catalog.PracticeRecord{
			GroupID:     session.GroupID,
			Rating:      session.Rating,
			PracticedAt: session.PracticedAt,
		})
	}
	return out, nil
}

func collectSessions(rows *sql.Rows) ([]*Session, error) {
	var sessions []*Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func scanSession(scanner interface{ Scan(dest ...any) error }) (*Session, error) {
	var (
		id           int64
		groupID      string
		ratingStr    string
		practicedRaw sql.NullString
		duration     int
		notes        string
	)
	if err := scanner.Scan(&id, &groupID, &ratingStr, &practicedRaw, &duration, &notes); err != nil {
		return nil, err
	}
	session := &Session{ID: id, GroupID: groupID, Rating: rating.Rating(ratingStr), DurationSeconds: duration, Notes: notes}
	if practiced, err := parseTimeString(practicedRaw.String); err == nil {
		session.PracticedAt = practiced
	}
	return session, nil
}
