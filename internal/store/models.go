package store

import (
	"fmt"
	"time"

	"etude/internal/rating"
)

// Song is one piece in the practice library. Source is the score folder
// slug the song was imported from and is unique across the library.
type Song struct {
	ID        int64
	Title     string
	Composer  string
	Source    string
	CreatedAt time.Time
}

// Group is a persisted measure group row. The identifier encodes the song
// source and the measure span so practice logs stay readable; Start == End
// denotes a single measure.
type Group struct {
	ID        string
	SongID    int64
	Start     int
	End       int
	CreatedAt time.Time
}

// IsSingle reports whether the group covers exactly one measure.
func (g *Group) IsSingle() bool {
	return g.Start == g.End
}

// Session is one logged practice attempt.
type Session struct {
	ID              int64
	GroupID         string
	Rating          rating.Rating
	PracticedAt     time.Time
	DurationSeconds int
	Notes           string
}

// Stats summarizes library size for status output.
type Stats struct {
	Songs    int
	Groups   int
	Sessions int
}

// DatabaseHealth carries diagnostic results for the practice database.
type DatabaseHealth struct {
	DBPath           string
	DatabaseExists   bool
	DatabaseReadable bool
	TablesPresent    []string
	MissingTables    []string
	IntegrityCheck   bool
	TotalSessions    int
	Error            string
}

// GroupID builds the canonical identifier for a measure span within a song
// source: "source|measureN" for singles, "source|measureA-B" for spans.
func GroupID(source string, start, end int) string {
	if start == end {
		return fmt.Sprintf("%s|measure%d", source, start)
	}
	return fmt.Sprintf("%s|measure%d-%d", source, start, end)
}
