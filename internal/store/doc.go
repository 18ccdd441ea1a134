// Package store persists the practice library in SQLite: songs, their
// measure groups, and the log of practice sessions.
//
// Group identifiers encode the song source and measure span ("source|measureN"
// or "source|measureA-B") so session rows stay readable without joins. The
// store also adapts its rows to the scheduling catalog shape, making it the
// scheduler's data source.
//
// Schema changes add a new file under migrations/; applied versions are
// tracked in schema_migrations.
package store
