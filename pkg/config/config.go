// Package config loads the Container Desk configuration from an optional YAML
// file and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultContainerBinary is the CLI binary of the external container
	// project that owns the daemon.
	DefaultContainerBinary = "container"

	// DefaultReleasesURL is the feed consulted for update checks.
	DefaultReleasesURL = "https://api.github.com/repos/apple/container/releases/latest"

	DefaultPollInterval = 5 * time.Second
	DefaultLogLines     = 1000
)

// Config drives both the agent and the CLI.
type Config struct {
	// ContainerBinary is the name or path of the external CLI binary.
	ContainerBinary string `yaml:"container_binary"`
	// ExtraArgs is prepended to every invocation of the binary, parsed with
	// shell-style quoting.
	ExtraArgs string `yaml:"extra_args"`
	// PollIntervalMs is the file-level knob for the poll delay.
	PollIntervalMs int `yaml:"poll_interval_ms"`
	// PollInterval is the normalized poll delay.
	PollInterval time.Duration `yaml:"-"`
	// ReleasesURL points at a GitHub-style releases/latest JSON document.
	ReleasesURL string `yaml:"releases_url"`
	// Socket is the unix socket path the agent listens on.
	Socket string `yaml:"socket"`
	// Port, when non-empty, makes the agent listen on TCP instead.
	Port string `yaml:"port"`
	// LogLines bounds the daemon log capture kept in memory by the agent.
	LogLines int `yaml:"log_lines"`
	// AllowedOrigins lists origins permitted to call the agent API from a
	// browser context. Empty means no cross-origin access.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the configuration used when no file and no overrides exist.
func Default() Config {
	return Config{
		ContainerBinary: DefaultContainerBinary,
		PollInterval:    DefaultPollInterval,
		ReleasesURL:     DefaultReleasesURL,
		Socket:          defaultSocketPath(),
		LogLines:        DefaultLogLines,
	}
}

func defaultSocketPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "cdesk.sock"
	}
	return filepath.Join(home, ".cdesk", "cdesk.sock")
}

// DefaultPath returns the conventional config file location. The file is
// optional; a missing file is not an error.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cdesk", "config.yaml")
}

// Load reads path (when it exists), applies environment overrides, and
// validates the result. An empty path means "defaults plus environment".
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Optional file.
		case err != nil:
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if cfg.PollIntervalMs > 0 {
		cfg.PollInterval = time.Duration(cfg.PollIntervalMs) * time.Millisecond
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("CONTAINER_BINARY"); v != "" {
		cfg.ContainerBinary = v
	}
	if v := os.Getenv("CDESK_SOCK"); v != "" {
		cfg.Socket = v
	}
	if v := os.Getenv("CDESK_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("CDESK_RELEASES_URL"); v != "" {
		cfg.ReleasesURL = v
	}
	if v := os.Getenv("CDESK_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PollInterval = d
		}
	}
	if v := os.Getenv("CDESK_LOG_LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.LogLines = n
		}
	}
}

// Validate rejects configurations the agent cannot run with.
func (c Config) Validate() error {
	if c.ContainerBinary == "" {
		return errors.New("config: container binary required")
	}
	if c.PollInterval <= 0 {
		return errors.New("config: poll interval must be > 0")
	}
	if c.Socket == "" && c.Port == "" {
		return errors.New("config: either socket or port required")
	}
	if c.LogLines <= 0 {
		return errors.New("config: log lines must be > 0")
	}
	return nil
}
