package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newUpdateCmd(cli containerClient, checker updateChecker) *cobra.Command {
	var jsonFormat bool
	c := &cobra.Command{
		Use:   "update",
		Short: "Check for a newer release of the container project",
		RunE: func(cmd *cobra.Command, args []string) error {
			var current string
			if cli.Installed() {
				// Best effort: an unknown current version still produces a
				// valid (negative) answer.
				current, _ = cli.Version(cmd.Context())
			}

			info, err := checker.Check(cmd.Context(), current)
			if err != nil {
				return err
			}

			if jsonFormat {
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(out))
				return nil
			}

			switch {
			case info.UpdateAvailable:
				cmd.Printf("Update available: %s (current %s)\n", info.LatestVersion, info.CurrentVersion)
				cmd.Println(installHint)
			case info.CurrentVersion == "":
				cmd.Printf("Latest release: %s (current version unknown)\n", info.LatestVersion)
			default:
				cmd.Printf("container is up to date (%s)\n", info.CurrentVersion)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&jsonFormat, "json", false, "Print the update info as JSON")
	return c
}
