package main

import (
	"os"
	"path/filepath"
	"testing"

	"etude/internal/testsupport"
)

func TestScanLogNextFlow(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.ScoreLibrary(t, env.scoresDir, "fur-elise",
		"fur-elise.musicxml",
		"fur-elise_measure_1.musicxml",
		"fur-elise_measure_2.musicxml",
		"fur-elise_measure_3.musicxml",
	)

	out, _, err := runCLI(t, env, "scan")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "Scanned 1 songs")
	requireContains(t, out, "Created 1 songs and 3 measure groups")

	// The import pass logs each song to the configured log file.
	logData, err := os.ReadFile(filepath.Join(env.baseDir, "logs", "etude.log"))
	if err != nil {
		t.Fatalf("read scan log: %v", err)
	}
	requireContains(t, string(logData), "fur-elise")

	out, _, err = runCLI(t, env, "songs", "list")
	if err != nil {
		t.Fatalf("songs list: %v", err)
	}
	requireContains(t, out, "Fur Elise")
	requireContains(t, out, "COMPOSER")

	out, _, err = runCLI(t, env, "log", "easy", "--song", "1", "--measure", "1")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	requireContains(t, out, "Logged easy for fur-elise|measure1")

	out, _, err = runCLI(t, env, "next", "1")
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	requireContains(t, out, "Next")
	requireContains(t, out, "measure")

	out, _, err = runCLI(t, env, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Songs")
	requireContains(t, out, "Sessions")
}

func TestSongsAddAndGroups(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "songs", "add", "Moonlight Sonata")
	if err != nil {
		t.Fatalf("songs add: %v", err)
	}
	requireContains(t, out, "moonlight-sonata")

	out, _, err = runCLI(t, env, "groups", "add", "1", "--start", "2", "--end", "4")
	if err != nil {
		t.Fatalf("groups add: %v", err)
	}
	requireContains(t, out, "moonlight-sonata|measure2-4")

	out, _, err = runCLI(t, env, "groups", "list", "1")
	if err != nil {
		t.Fatalf("groups list: %v", err)
	}
	requireContains(t, out, "2")
	requireContains(t, out, "4")
}

func TestLogRejectsBadRating(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env, "songs", "add", "Etude"); err != nil {
		t.Fatalf("songs add: %v", err)
	}
	if _, _, err := runCLI(t, env, "log", "brutal", "--song", "1", "--measure", "1"); err == nil {
		t.Fatal("expected error for invalid rating")
	}
}
