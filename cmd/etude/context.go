package main

import (
	"context"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"etude/internal/api"
	"etude/internal/client"
	"etude/internal/config"
	"etude/internal/scheduler"
	"etude/internal/store"
)

// practiceBackend is the operation surface shared by the in-process service
// and the daemon HTTP client, so commands work the same in both modes.
type practiceBackend interface {
	ListSongs(ctx context.Context) ([]api.Song, error)
	CreateSong(ctx context.Context, req api.CreateSongRequest) (api.Song, error)
	ListGroups(ctx context.Context, songID int64) ([]api.MeasureGroup, error)
	CreateGroup(ctx context.Context, req api.CreateGroupRequest) (api.MeasureGroup, error)
	LogPractice(ctx context.Context, req api.PracticeRequest) (api.Session, error)
	Next(ctx context.Context, songID int64) (api.Next, error)
}

type commandContext struct {
	addrFlag   *string
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(addrFlag, configFlag *string) *commandContext {
	return &commandContext{
		addrFlag:   addrFlag,
		configFlag: configFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) daemonAddr() string {
	if c.addrFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.addrFlag)
}

// withBackend resolves the practice backend: a remote daemon when --addr is
// set, otherwise the local database opened directly.
func (c *commandContext) withBackend(ctx context.Context, fn func(context.Context, practiceBackend) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	if addr := c.daemonAddr(); addr != "" {
		remote := client.New(addr, client.WithToken(cfg.Paths.APIToken))
		return fn(ctx, remote)
	}

	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	sched := scheduler.New(st,
		scheduler.WithChances(cfg.Scheduler.ReviewChance, cfg.Scheduler.DecentChance))
	return fn(ctx, api.NewPracticeService(st, sched))
}

// withStore opens the local database for commands that bypass the backend
// abstraction (scan, status).
func (c *commandContext) withStore(fn func(*config.Config, *store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(cfg, st)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
