package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_DEBUG_JSON dumps every request and response body
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized step headers
	Colours          bool          `envconfig:"E2E_COLOURS" default:"true"`
	AutosaveInterval time.Duration `envconfig:"E2E_AUTOSAVE_INTERVAL" default:"1h"`
	MaxSessions      int           `envconfig:"E2E_MAX_SESSIONS" default:"10"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
