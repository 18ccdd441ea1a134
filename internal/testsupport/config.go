package testsupport

import (
	"path/filepath"
	"testing"

	"etude/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.ScoresDir = filepath.Join(base, "scores")
	cfg.Paths.APIBind = "127.0.0.1:0"

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithAPIToken sets the API bearer token on the test config.
func WithAPIToken(token string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.APIToken = token
	}
}

// WithChances overrides the scheduler sampling band on the test config.
func WithChances(review, decent float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Scheduler.ReviewChance = review
		cfg.Scheduler.DecentChance = decent
	}
}
