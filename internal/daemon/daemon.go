package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gofrs/flock"

	"log/slog"

	"etude/internal/api"
	"etude/internal/config"
	"etude/internal/logging"
	"etude/internal/scheduler"
	"etude/internal/server"
	"etude/internal/store"
)

// Daemon owns the practice store and HTTP API and enforces single-instance
// execution through a lock file.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Store
	sched  *scheduler.Scheduler
	svc    *api.PracticeService
	api    *server.Server

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || st == nil || logger == nil {
		return nil, errors.New("daemon requires config, store, and logger")
	}

	sched := scheduler.New(st,
		scheduler.WithChances(cfg.Scheduler.ReviewChance, cfg.Scheduler.DecentChance),
		scheduler.WithLogger(logger))
	svc := api.NewPracticeService(st, sched)

	lockPath := filepath.Join(cfg.Paths.DataDir, "etuded.lock")
	d := &Daemon{
		cfg:      cfg,
		logger:   logger,
		store:    st,
		sched:    sched,
		svc:      svc,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}
	d.api = server.New(cfg, svc, d.Status, logger)
	return d, nil
}

// Service exposes the practice service for in-process callers.
func (d *Daemon) Service() *api.PracticeService {
	return d.svc
}

// Start acquires the daemon lock and brings the API up.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another etude daemon instance is already running")
	}

	d.ctx, d.cancel = context.WithCancel(ctx)
	if d.api != nil {
		if err := d.api.Start(d.ctx); err != nil {
			_ = d.lock.Unlock()
			d.cancel()
			d.ctx = nil
			d.cancel = nil
			return fmt.Errorf("start api: %w", err)
		}
	}

	d.running.Store(true)
	d.log().Info("etude daemon started", logging.String("lock", d.lockPath))
	return nil
}

// Stop shuts the API down and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	if d.api != nil {
		d.api.Stop()
	}
	if err := d.lock.Unlock(); err != nil {
		d.log().Warn("failed to release daemon lock", logging.Error(err))
	}
	d.ctx = nil
	d.running.Store(false)
	d.log().Info("etude daemon stopped")
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// Status reports daemon runtime information for API consumers.
func (d *Daemon) Status(ctx context.Context) api.DaemonStatus {
	status := api.DaemonStatus{
		Running:      d.running.Load(),
		PID:          os.Getpid(),
		DBPath:       d.store.Path(),
		LockFilePath: d.lockPath,
	}
	if d.api != nil {
		status.BindAddress = d.api.Addr()
	}
	if stats, err := d.svc.Stats(ctx); err == nil {
		status.Library = stats
	}
	return status
}

// DatabaseHealth returns detailed database diagnostics.
func (d *Daemon) DatabaseHealth(ctx context.Context) (store.DatabaseHealth, error) {
	if d.store == nil {
		return store.DatabaseHealth{}, errors.New("practice store unavailable")
	}
	return d.store.CheckHealth(ctx)
}

func (d *Daemon) log() *slog.Logger {
	if d.logger != nil {
		return d.logger.With(logging.String(logging.FieldComponent, "daemon"))
	}
	return logging.NewNop()
}
