package commands

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/container-desk/cdesk/pkg/system"
	"github.com/stretchr/testify/require"
)

func TestWatchPollsUntilContextDone(t *testing.T) {
	cli := &fakeContainerClient{
		installed: true,
		status:    system.SystemStatus{Installed: true, Running: true, Version: "0.7.1"},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := newWatchCmd(cli, time.Second)
	buf := new(bytes.Buffer)
	c.SetOut(buf)
	c.SetErr(buf)
	c.SetArgs([]string{"--interval", "5ms"})

	require.NoError(t, c.ExecuteContext(ctx))
	require.GreaterOrEqual(t, cli.statusCalls, 2)
	require.Contains(t, buf.String(), "running  version=0.7.1")
}

func TestWatchReportsNotInstalled(t *testing.T) {
	cli := &fakeContainerClient{status: system.SystemStatus{}}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c := newWatchCmd(cli, 5*time.Millisecond)
	buf := new(bytes.Buffer)
	c.SetOut(buf)
	c.SetArgs(nil)

	require.NoError(t, c.ExecuteContext(ctx))
	require.Contains(t, buf.String(), "container CLI not installed")
}
