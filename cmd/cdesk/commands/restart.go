package commands

import (
	"github.com/spf13/cobra"
)

func newRestartCmd(cli containerClient) *cobra.Command {
	c := &cobra.Command{
		Use:   "restart",
		Short: "Restart container-apiserver",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cli.Installed() {
				return notInstalledErr
			}
			// A stop failure is not fatal: the daemon may simply not be
			// running yet.
			if err := cli.StopSystem(cmd.Context()); err != nil {
				cmd.PrintErrln("stop:", err)
			}
			if err := cli.StartSystem(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("container-apiserver restarted")
			return nil
		},
	}
	return c
}
