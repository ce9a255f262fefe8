package internal

import (
	"campaign-lab/errors"
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func Test_Config_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "8080")
	t.Setenv("BADGER_FILEPATH", t.TempDir())

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.Equal(5*time.Minute, config.AutosaveInterval)
	req.Equal(30*time.Minute, config.SessionTimeout)
	req.Equal(100, config.MaxConcurrentSessions)
	req.NoError(config.Validate())
}

func Test_Config_Overrides(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "8080")
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("AUTOSAVE_INTERVAL", "30s")
	t.Setenv("MAX_CONCURRENT_SESSIONS", "2")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.Equal(30*time.Second, config.AutosaveInterval)
	req.Equal(2, config.MaxConcurrentSessions)
}

func Test_Config_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Port:                  8080,
			AutosaveInterval:      time.Minute,
			SessionTimeout:        time.Minute,
			MaxConcurrentSessions: 1,
			SaveTimeout:           time.Second,
			RestartInterval:       time.Second,
			StatsInterval:         time.Second,
			ShutdownTimeout:       time.Second,
		}
	}
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"no autosave interval", func(c *Config) { c.AutosaveInterval = 0 }},
		{"negative session timeout", func(c *Config) { c.SessionTimeout = -time.Second }},
		{"no session cap", func(c *Config) { c.MaxConcurrentSessions = 0 }},
		{"port out of range", func(c *Config) { c.GrpcPort = 70000 }},
		{"no http port", func(c *Config) { c.Port = 0 }},
	}
	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid()
			tt.modify(&config)
			require.ErrorIs(t, config.Validate(), errors.ErrInvalidConfig)
		})
	}
}
