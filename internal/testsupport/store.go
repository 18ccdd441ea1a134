package testsupport

import (
	"context"
	"testing"

	"etude/internal/config"
	"etude/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// NewSong creates a song for tests using the provided store.
func NewSong(t testing.TB, st *store.Store, title, source string) *store.Song {
	t.Helper()

	song, err := st.CreateSong(context.Background(), title, "", source)
	if err != nil {
		t.Fatalf("store.CreateSong: %v", err)
	}
	return song
}

// NewGroup registers a measure group for tests using the provided store.
func NewGroup(t testing.TB, st *store.Store, songID int64, start, end int) *store.Group {
	t.Helper()

	group, err := st.CreateGroup(context.Background(), songID, start, end)
	if err != nil {
		t.Fatalf("store.CreateGroup: %v", err)
	}
	return group
}

// LogSession records a practice session for tests using the provided store.
func LogSession(t testing.TB, st *store.Store, groupID, value string) *store.Session {
	t.Helper()

	session, err := st.LogSession(context.Background(), groupID, value, 0, "")
	if err != nil {
		t.Fatalf("store.LogSession: %v", err)
	}
	return session
}
