package commands

import (
	"errors"

	"github.com/container-desk/cdesk/pkg/agent"
	"github.com/spf13/cobra"
)

func newLogsCmd(cli containerClient, agentCli agentClient) *cobra.Command {
	var follow bool
	c := &cobra.Command{
		Use:   "logs [OPTIONS]",
		Short: "Fetch container-apiserver logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Following requires a live stream from the binary. The buffered
			// tail comes from the agent when it is running.
			if !follow {
				tail, err := agentCli.Logs(cmd.Context())
				if err == nil {
					cmd.Print(tail)
					return nil
				}
				if !errors.Is(err, agent.ErrAgentUnavailable) {
					return err
				}
			}

			if !cli.Installed() {
				return notInstalledErr
			}
			return cli.StreamLogs(cmd.Context(), cmd.OutOrStdout(), follow)
		},
	}
	c.Flags().BoolVarP(&follow, "follow", "f", false, "Follow log output")
	return c
}
