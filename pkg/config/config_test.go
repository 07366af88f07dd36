package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultContainerBinary, cfg.ContainerBinary)
	require.Equal(t, DefaultPollInterval, cfg.PollInterval)
	require.Equal(t, DefaultReleasesURL, cfg.ReleasesURL)
	require.Equal(t, DefaultLogLines, cfg.LogLines)
	require.NotEmpty(t, cfg.Socket)
}

func TestLoadMissingFileIsOptional(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultContainerBinary, cfg.ContainerBinary)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"container_binary: /opt/container/bin/container\n"+
			"poll_interval_ms: 2500\n"+
			"extra_args: --debug\n"+
			"allowed_origins:\n  - http://localhost:3000\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/opt/container/bin/container", cfg.ContainerBinary)
	require.Equal(t, 2500*time.Millisecond, cfg.PollInterval)
	require.Equal(t, "--debug", cfg.ExtraArgs)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("container_binary: [\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CONTAINER_BINARY", "/usr/local/bin/container")
	t.Setenv("CDESK_POLL_INTERVAL", "10s")
	t.Setenv("CDESK_PORT", "7443")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "/usr/local/bin/container", cfg.ContainerBinary)
	require.Equal(t, 10*time.Second, cfg.PollInterval)
	require.Equal(t, "7443", cfg.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "no binary", mutate: func(c *Config) { c.ContainerBinary = "" }, wantErr: true},
		{name: "bad interval", mutate: func(c *Config) { c.PollInterval = 0 }, wantErr: true},
		{name: "no listener", mutate: func(c *Config) { c.Socket, c.Port = "", "" }, wantErr: true},
		{name: "port only", mutate: func(c *Config) { c.Socket, c.Port = "", "7443" }, wantErr: false},
		{name: "bad log lines", mutate: func(c *Config) { c.LogLines = -1 }, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(&cfg)
			err := cfg.Validate()
			if test.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
