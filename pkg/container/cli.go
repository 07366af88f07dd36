// Package container invokes the external `container` CLI binary and maps its
// output onto structured records. The binary and the daemon behind it
// (container-apiserver) own all container state; this package only relays it.
package container

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/container-desk/cdesk/pkg/config"
	"github.com/container-desk/cdesk/pkg/internal/utils"
	"github.com/container-desk/cdesk/pkg/logging"
	"github.com/container-desk/cdesk/pkg/system"
	"github.com/mattn/go-shellwords"
)

// CommandRunner abstracts process invocation so tests can substitute canned
// output for the real binary.
type CommandRunner interface {
	// Output runs the binary with args and returns its combined stdout.
	Output(ctx context.Context, args ...string) ([]byte, error)
	// Stream runs the binary with args, copying stdout to out until the
	// process exits or ctx is canceled.
	Stream(ctx context.Context, out io.Writer, args ...string) error
}

type execRunner struct {
	binary string
}

func (r *execRunner) Output(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	return stdout.Bytes(), err
}

func (r *execRunner) Stream(ctx context.Context, out io.Writer, args ...string) error {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Stdout = out
	return cmd.Run()
}

// lookPath is swappable for tests.
var lookPath = exec.LookPath

// Client wraps one external CLI binary.
type Client struct {
	binary    string
	extraArgs []string
	runner    CommandRunner
	log       logging.Logger
}

// New builds a client for cfg.ContainerBinary. ExtraArgs is parsed with
// shell-style quoting and prepended to every invocation.
func New(cfg config.Config, log logging.Logger) (*Client, error) {
	if cfg.ContainerBinary == "" {
		return nil, fmt.Errorf("container: binary required")
	}
	extraArgs, err := shellwords.Parse(cfg.ExtraArgs)
	if err != nil {
		return nil, fmt.Errorf("container: parsing extra args: %w", err)
	}
	return &Client{
		binary:    cfg.ContainerBinary,
		extraArgs: extraArgs,
		runner:    &execRunner{binary: cfg.ContainerBinary},
		log:       log,
	}, nil
}

// WithRunner substitutes the process runner. Tests only.
func (c *Client) WithRunner(runner CommandRunner) *Client {
	c.runner = runner
	return c
}

func (c *Client) args(args ...string) []string {
	return append(append([]string{}, c.extraArgs...), args...)
}

// Installed reports whether the binary resolves on PATH (or at its configured
// absolute path).
func (c *Client) Installed() bool {
	_, err := lookPath(c.binary)
	return err == nil
}

// SystemStatus runs `container system status` and parses its output. The
// command failing (daemon not running, binary missing) is not an error: it
// yields a record with Running false and whatever fields could be parsed.
func (c *Client) SystemStatus(ctx context.Context) system.SystemStatus {
	installed := c.Installed()
	if !installed {
		return system.SystemStatus{}
	}
	out, err := c.runner.Output(ctx, c.args("system", "status")...)
	if err != nil {
		c.log.Debugf("system status exited with error: %v", err)
	}
	return system.ParseStatusOutput(string(out), installed, err == nil)
}

// Version runs `container --version` and extracts the reported version. An
// unparseable result is an empty string, not an error.
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.runner.Output(ctx, c.args("--version")...)
	if err != nil {
		return "", fmt.Errorf("container: reading version: %w", err)
	}
	v := system.ExtractVersion(string(out))
	if v == "" {
		c.log.Debugf("no version in output: %s", utils.SanitizeForLog(string(out)))
	}
	return v, nil
}

// StartSystem runs `container system start`.
func (c *Client) StartSystem(ctx context.Context) error {
	if out, err := c.runner.Output(ctx, c.args("system", "start")...); err != nil {
		return fmt.Errorf("container: starting system: %w (output: %s)", err, utils.SanitizeForLog(string(out)))
	}
	return nil
}

// StopSystem runs `container system stop`.
func (c *Client) StopSystem(ctx context.Context) error {
	if out, err := c.runner.Output(ctx, c.args("system", "stop")...); err != nil {
		return fmt.Errorf("container: stopping system: %w (output: %s)", err, utils.SanitizeForLog(string(out)))
	}
	return nil
}

// StreamLogs copies daemon log output to out. With follow set the call blocks
// until ctx is canceled or the process exits.
func (c *Client) StreamLogs(ctx context.Context, out io.Writer, follow bool) error {
	args := []string{"system", "logs"}
	if follow {
		args = append(args, "--follow")
	}
	if err := c.runner.Stream(ctx, out, c.args(args...)...); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("container: streaming logs: %w", err)
	}
	return nil
}
