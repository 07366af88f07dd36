package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func newWatchCmd(cli containerClient, defaultInterval time.Duration) *cobra.Command {
	var interval time.Duration
	c := &cobra.Command{
		Use:   "watch",
		Short: "Poll container-apiserver status until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				interval = defaultInterval
			}

			printLine := func() {
				status := cli.SystemStatus(cmd.Context())
				now := time.Now().Format(time.TimeOnly)
				switch {
				case !status.Installed:
					cmd.Printf("%s  container CLI not installed\n", now)
				case status.Running:
					cmd.Printf("%s  running  version=%s\n", now, status.Version)
				default:
					cmd.Printf("%s  not running\n", now)
				}
			}

			printLine()
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case <-ticker.C:
					printLine()
				}
			}
		},
	}
	c.Flags().DurationVarP(&interval, "interval", "i", 0, "Poll interval (defaults to the configured value)")
	return c
}
