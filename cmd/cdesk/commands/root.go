package commands

import (
	"net/http"

	"github.com/container-desk/cdesk/pkg/agent"
	"github.com/container-desk/cdesk/pkg/config"
	"github.com/container-desk/cdesk/pkg/container"
	"github.com/container-desk/cdesk/pkg/logging"
	"github.com/container-desk/cdesk/pkg/update"
	"github.com/spf13/cobra"
)

// NewRootCmd wires the command tree against the configured container binary
// and agent socket.
func NewRootCmd(cfg config.Config, log logging.Logger) (*cobra.Command, error) {
	cli, err := container.New(cfg, log)
	if err != nil {
		return nil, err
	}
	agentClient := agent.NewClient(cfg.Socket)
	checker := update.NewChecker(http.DefaultClient, cfg.ReleasesURL, log)

	rootCmd := &cobra.Command{
		Use:           "cdesk",
		Short:         "Container Desk, a desktop companion for container-apiserver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		newVersionCmd(cli),
		newStatusCmd(cli),
		newStartCmd(cli),
		newStopCmd(cli),
		newRestartCmd(cli),
		newLogsCmd(cli, agentClient),
		newUpdateCmd(cli, checker),
		newWatchCmd(cli, cfg.PollInterval),
	)
	return rootCmd, nil
}
