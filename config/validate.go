package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the loaded config for required fields and safe values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return errors.New("server.addr must be set")
	}

	if cfg.Pipeline.Damping <= 0 || cfg.Pipeline.Damping >= 1 {
		return fmt.Errorf("pipeline.damping must be in (0, 1), got %v", cfg.Pipeline.Damping)
	}
	if cfg.Pipeline.FallbackWeight == nil {
		return errors.New("pipeline.fallback_weight must be set")
	}
	if fw := *cfg.Pipeline.FallbackWeight; fw < 0 || fw > 1 {
		return fmt.Errorf("pipeline.fallback_weight must be in [0, 1], got %v", fw)
	}
	if strings.TrimSpace(cfg.Pipeline.DefaultIntent) == "" {
		return errors.New("pipeline.default_intent must be set")
	}
	if cfg.Pipeline.PoolSize < 0 {
		return fmt.Errorf("pipeline.pool_size must not be negative, got %d", cfg.Pipeline.PoolSize)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", cfg.Logging.Level)
	}

	return nil
}
