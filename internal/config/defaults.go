package config

const (
	defaultDataDir   = "~/.local/share/etude"
	defaultLogDir    = "~/.local/share/etude/logs"
	defaultScoresDir = "~/.local/share/etude/scores"
	defaultAPIBind   = "127.0.0.1:7433"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	// defaultReviewChance reserves the bottom slice of the random draw for
	// revisiting proficient material; defaultDecentChance is the upper bound
	// of the combined band that samples decent material.
	defaultReviewChance = 0.15
	defaultDecentChance = 0.45
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
			ScoresDir: defaultScoresDir,
			APIBind:   defaultAPIBind,
		},
		Scheduler: Scheduler{
			ReviewChance: defaultReviewChance,
			DecentChance: defaultDecentChance,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
