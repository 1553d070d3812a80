package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	BaseURL     string        `env:"PORTAL_API_URL,      default=http://localhost:8080/api"`
	Timeout     time.Duration `env:"PORTAL_HTTP_TIMEOUT, default=30s"`
	LogLevel    string        `env:"LOG_LEVEL,           default=info"`
	LogJSON     bool          `env:"LOG_JSON,            default=false"`
	MetricsAddr string        `env:"PORTAL_METRICS_ADDR"`

	Session SessionConfig
}

// SessionConfig selects where the credential and profile slots live.
// Backend is one of memory, file, redis.
type SessionConfig struct {
	Backend string `env:"PORTAL_SESSION_BACKEND, default=file"`
	File    string `env:"PORTAL_SESSION_FILE"`
	Redis   RedisConfig
}

type RedisConfig struct {
	Addr string `env:"PORTAL_REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"PORTAL_REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.Session.File == "" {
		cfg.Session.File = defaultSessionFile()
	}
	return &cfg
}

// defaultSessionFile places the session under the user config directory,
// falling back to the working directory when none is resolvable.
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".portal-session.json"
	}
	return filepath.Join(dir, "portal", "session.json")
}
