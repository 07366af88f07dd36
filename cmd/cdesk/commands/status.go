package commands

import (
	"encoding/json"
	"time"

	"github.com/container-desk/cdesk/pkg/system"
	"github.com/docker/go-units"
	"github.com/spf13/cobra"
)

func newStatusCmd(cli containerClient) *cobra.Command {
	var jsonFormat, showHost bool
	c := &cobra.Command{
		Use:   "status",
		Short: "Check if container-apiserver is running",
		RunE: func(cmd *cobra.Command, args []string) error {
			status := cli.SystemStatus(cmd.Context())

			if jsonFormat {
				out, err := json.MarshalIndent(status, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(out))
				if !status.Running {
					osExit(1)
				}
				return nil
			}

			if !status.Installed {
				return notInstalledErr
			}

			if status.Running {
				cmd.Println("container-apiserver is running")
			} else {
				cmd.Println("container-apiserver is not running")
				cmd.Println("\nStart it with: cdesk start")
				osExit(1)
				return nil
			}

			if status.Version != "" {
				cmd.Println("\nversion:      ", status.Version)
			}
			if status.DataRoot != "" {
				cmd.Println("data root:    ", status.DataRoot)
			}
			if status.InstallRoot != "" {
				cmd.Println("install root: ", status.InstallRoot)
			}

			if showHost {
				host, err := hostSummary()
				if err != nil {
					cmd.PrintErrln("could not read host info:", err)
					return nil
				}
				cmd.Println("\nhost:         ", host.OS, host.OSVersion, "("+host.Architecture+")")
				cmd.Println("memory:       ", units.BytesSize(float64(host.MemoryTotal)))
				cmd.Println("uptime:       ", units.HumanDuration(time.Duration(host.UptimeSeconds)*time.Second))
			}

			return nil
		},
	}
	c.Flags().BoolVar(&jsonFormat, "json", false, "Print the status as JSON")
	c.Flags().BoolVar(&showHost, "host", false, "Include a host summary")
	return c
}

// hostSummary is swappable for tests.
var hostSummary = system.HostSummary
