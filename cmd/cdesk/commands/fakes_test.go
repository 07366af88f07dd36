package commands

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/container-desk/cdesk/pkg/system"
	"github.com/container-desk/cdesk/pkg/update"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

type fakeContainerClient struct {
	installed   bool
	status      system.SystemStatus
	version     string
	versionErr  error
	startErr    error
	stopErr     error
	logOutput   string
	streamErr   error
	startCalls  int
	stopCalls   int
	statusCalls int
}

func (c *fakeContainerClient) Installed() bool { return c.installed }

func (c *fakeContainerClient) SystemStatus(ctx context.Context) system.SystemStatus {
	c.statusCalls++
	return c.status
}

func (c *fakeContainerClient) Version(ctx context.Context) (string, error) {
	return c.version, c.versionErr
}

func (c *fakeContainerClient) StartSystem(ctx context.Context) error {
	c.startCalls++
	return c.startErr
}

func (c *fakeContainerClient) StopSystem(ctx context.Context) error {
	c.stopCalls++
	return c.stopErr
}

func (c *fakeContainerClient) StreamLogs(ctx context.Context, out io.Writer, follow bool) error {
	if c.streamErr != nil {
		return c.streamErr
	}
	_, err := io.WriteString(out, c.logOutput)
	return err
}

type fakeAgentClient struct {
	tail string
	err  error
}

func (c *fakeAgentClient) Logs(ctx context.Context) (string, error) {
	return c.tail, c.err
}

type fakeUpdateChecker struct {
	info        update.Info
	err         error
	lastCurrent string
}

func (c *fakeUpdateChecker) Check(ctx context.Context, current string) (update.Info, error) {
	c.lastCurrent = current
	return c.info, c.err
}

// execute runs c and captures its combined output.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	c.SetOut(buf)
	c.SetErr(buf)
	c.SetArgs(args)
	err := c.Execute()
	return buf.String(), err
}

// stubExit replaces osExit and reports whether it was called with code 1.
func stubExit(t *testing.T) *bool {
	t.Helper()
	called := false
	original := osExit
	osExit = func(code int) {
		called = true
		require.Equal(t, 1, code, "Expected exit code to be 1")
	}
	t.Cleanup(func() { osExit = original })
	return &called
}
