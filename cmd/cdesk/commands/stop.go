package commands

import (
	"github.com/spf13/cobra"
)

func newStopCmd(cli containerClient) *cobra.Command {
	c := &cobra.Command{
		Use:   "stop",
		Short: "Stop container-apiserver",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cli.Installed() {
				return notInstalledErr
			}
			if err := cli.StopSystem(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("container-apiserver stopped")
			return nil
		},
	}
	return c
}
