package internal

import (
	"campaign-lab/errors"
	"fmt"
	"time"
)

type Config struct {
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	Host           string `env:"HOST,default=0.0.0.0"`
	Port           int    `env:"PORT,required=true"`
	GrpcPort       int    `env:"GRPC_PORT,default=0"`
	DebugPort      int    `env:"DEBUG_PORT,default=0"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`

	AutosaveInterval      time.Duration `env:"AUTOSAVE_INTERVAL,default=5m"`
	SessionTimeout        time.Duration `env:"SESSION_TIMEOUT,default=30m"`
	MaxConcurrentSessions int           `env:"MAX_CONCURRENT_SESSIONS,default=100"`
	SaveTimeout           time.Duration `env:"SAVE_TIMEOUT,default=10s"`

	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=1s"`
	StatsInterval   time.Duration `env:"STATS_INTERVAL,default=1m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=30s"`
}

// Validate rejects values the runtime cannot work with. A zero GRPC_PORT or
// DEBUG_PORT disables that listener.
func (c Config) Validate() error {
	durations := map[string]time.Duration{
		"AUTOSAVE_INTERVAL": c.AutosaveInterval,
		"SESSION_TIMEOUT":   c.SessionTimeout,
		"SAVE_TIMEOUT":      c.SaveTimeout,
		"RESTART_INTERVAL":  c.RestartInterval,
		"STATS_INTERVAL":    c.StatsInterval,
		"SHUTDOWN_TIMEOUT":  c.ShutdownTimeout,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", errors.ErrInvalidConfig, name, d)
		}
	}
	if c.MaxConcurrentSessions <= 0 {
		return fmt.Errorf("%w: MAX_CONCURRENT_SESSIONS must be positive, got %d",
			errors.ErrInvalidConfig, c.MaxConcurrentSessions)
	}
	for name, port := range map[string]int{"PORT": c.Port, "GRPC_PORT": c.GrpcPort, "DEBUG_PORT": c.DebugPort} {
		if port < 0 || port > 65535 {
			return fmt.Errorf("%w: %s out of range: %d", errors.ErrInvalidConfig, name, port)
		}
	}
	if c.Port == 0 {
		return fmt.Errorf("%w: PORT is required", errors.ErrInvalidConfig)
	}
	return nil
}
