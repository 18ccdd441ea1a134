package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteScore creates a placeholder score file at the target path, making
// parent directories as needed. Scanner tests only care about names, not
// MusicXML contents.
func WriteScore(t testing.TB, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("<score-partwise/>\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ScoreLibrary lays out a score folder with the named files under dir and
// returns the folder path.
func ScoreLibrary(t testing.TB, dir, folder string, names ...string) string {
	t.Helper()

	target := filepath.Join(dir, folder)
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", target, err)
	}
	for _, name := range names {
		WriteScore(t, filepath.Join(target, name))
	}
	return target
}
