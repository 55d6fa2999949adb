package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config contains client configuration parameters. Values resolve in
// order: built-in defaults, then the optional YAML config file, then
// IH_-prefixed environment variables.
type Config struct {
	LogLevel int     `env:"LOG_LEVEL" yaml:"log_level"`
	API      API     `envPrefix:"API_" yaml:"api"`
	Session  Session `envPrefix:"SESSION_" yaml:"session"`
}

// API contains backend connection parameters.
type API struct {
	BaseURL string   `env:"BASE_URL" yaml:"base_url"`
	Timeout Duration `env:"TIMEOUT" yaml:"timeout"`
}

// Duration is a time.Duration that parses "15s"-style strings from
// both YAML and environment values.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("failed to parse duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Session contains local session persistence parameters.
type Session struct {
	DBPath string `env:"DB_PATH" yaml:"db_path"`
}

// Default returns the built-in configuration. The session database
// lives under the user home directory when one can be resolved.
func Default() Config {
	cfg := Config{
		API: API{
			BaseURL: "http://localhost:8080",
			Timeout: Duration(15 * time.Second),
		},
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.Session.DBPath = filepath.Join(home, ".interviewhub", "session.db")
	}
	return cfg
}

// NewConfig loads configuration from the optional YAML file at path
// and from environment variables. An empty path skips the file; a
// non-empty path must exist.
func NewConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "IH_"}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
