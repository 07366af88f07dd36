package commands

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/container-desk/cdesk/pkg/update"
	"github.com/stretchr/testify/require"
)

func TestUpdate(t *testing.T) {
	tests := []struct {
		name     string
		cli      *fakeContainerClient
		info     update.Info
		contains string
	}{
		{
			name:     "update available",
			cli:      &fakeContainerClient{installed: true, version: "0.7.1"},
			info:     update.Info{LatestVersion: "0.8.0", UpdateAvailable: true, CurrentVersion: "0.7.1"},
			contains: "Update available: 0.8.0 (current 0.7.1)",
		},
		{
			name:     "up to date",
			cli:      &fakeContainerClient{installed: true, version: "0.8.0"},
			info:     update.Info{LatestVersion: "0.8.0", UpdateAvailable: false, CurrentVersion: "0.8.0"},
			contains: "container is up to date (0.8.0)",
		},
		{
			name:     "unknown current version",
			cli:      &fakeContainerClient{},
			info:     update.Info{LatestVersion: "0.8.0", UpdateAvailable: false, CurrentVersion: ""},
			contains: "Latest release: 0.8.0 (current version unknown)",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			checker := &fakeUpdateChecker{info: test.info}
			out, err := execute(t, newUpdateCmd(test.cli, checker))
			require.NoError(t, err)
			require.Contains(t, out, test.contains)
			require.Equal(t, test.info.CurrentVersion, checker.lastCurrent)
		})
	}
}

func TestUpdateJSON(t *testing.T) {
	info := update.Info{LatestVersion: "0.8.0", UpdateAvailable: true, CurrentVersion: "0.7.1"}
	checker := &fakeUpdateChecker{info: info}
	cli := &fakeContainerClient{installed: true, version: "0.7.1"}

	out, err := execute(t, newUpdateCmd(cli, checker), "--json")
	require.NoError(t, err)

	var decoded update.Info
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Equal(t, info, decoded)
}

func TestUpdateCheckerFailure(t *testing.T) {
	checker := &fakeUpdateChecker{err: errors.New("rate limited")}
	cli := &fakeContainerClient{installed: true, version: "0.7.1"}

	_, err := execute(t, newUpdateCmd(cli, checker))
	require.Error(t, err)
}
