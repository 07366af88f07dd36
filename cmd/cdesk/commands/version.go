package commands

import (
	"github.com/spf13/cobra"
)

func newVersionCmd(cli containerClient) *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Show the cdesk and container CLI versions",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("cdesk version %s\n", Version)
			if !cli.Installed() {
				cmd.Println("container CLI not installed")
				return
			}
			v, err := cli.Version(cmd.Context())
			if err != nil || v == "" {
				cmd.Println("container CLI version unknown")
				return
			}
			cmd.Printf("container CLI version %s\n", v)
		},
	}
	return c
}
