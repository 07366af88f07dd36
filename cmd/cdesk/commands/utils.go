package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/container-desk/cdesk/pkg/system"
	"github.com/container-desk/cdesk/pkg/update"
)

// Version is the cdesk build version, injected at link time.
var Version = "dev"

var osExit = os.Exit

// containerClient is the slice of pkg/container the commands need.
type containerClient interface {
	Installed() bool
	SystemStatus(ctx context.Context) system.SystemStatus
	Version(ctx context.Context) (string, error)
	StartSystem(ctx context.Context) error
	StopSystem(ctx context.Context) error
	StreamLogs(ctx context.Context, out io.Writer, follow bool) error
}

// agentClient is the slice of pkg/agent the commands need.
type agentClient interface {
	Logs(ctx context.Context) (string, error)
}

// updateChecker is the slice of pkg/update the commands need.
type updateChecker interface {
	Check(ctx context.Context, current string) (update.Info, error)
}

const installHint = "Install the container project from https://github.com/apple/container/releases and try again."

var notInstalledErr = fmt.Errorf("the container CLI is not installed.\n%s", installHint)
