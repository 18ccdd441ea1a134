package config

import (
	"errors"
	"fmt"
	"net"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateScheduler(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	if c.Paths.APIBind != "" {
		if _, _, err := net.SplitHostPort(c.Paths.APIBind); err != nil {
			return fmt.Errorf("paths.api_bind: invalid host:port %q: %w", c.Paths.APIBind, err)
		}
	}
	return nil
}

func (c *Config) validateScheduler() error {
	if c.Scheduler.ReviewChance < 0 || c.Scheduler.ReviewChance > 1 {
		return errors.New("scheduler.review_chance must be between 0 and 1")
	}
	if c.Scheduler.DecentChance < 0 || c.Scheduler.DecentChance > 1 {
		return errors.New("scheduler.decent_chance must be between 0 and 1")
	}
	if c.Scheduler.DecentChance < c.Scheduler.ReviewChance {
		return errors.New("scheduler.decent_chance must not be less than scheduler.review_chance")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}
