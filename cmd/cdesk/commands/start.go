package commands

import (
	"github.com/spf13/cobra"
)

func newStartCmd(cli containerClient) *cobra.Command {
	c := &cobra.Command{
		Use:   "start",
		Short: "Start container-apiserver",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cli.Installed() {
				return notInstalledErr
			}
			if err := cli.StartSystem(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("container-apiserver started")
			return nil
		},
	}
	return c
}
