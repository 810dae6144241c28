package cli

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/readlater-labs/readlater/internal/branding"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var (
		short  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version := displayVersion(buildVersion)
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version)
				return nil
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"version": version,
					"commit":  buildCommit,
					"date":    buildDate,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit: %s, built: %s)\n",
				branding.CLIName(), version, buildCommit, buildDate)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print version number only")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version info as JSON")
	return cmd
}

// displayVersion normalizes a release version to "vMAJOR.MINOR.PATCH[-pre]".
// Non-semver builds such as "dev" are shown unchanged.
func displayVersion(v string) string {
	sv, err := semver.NewVersion(strings.TrimPrefix(v, "v"))
	if err != nil {
		return v
	}
	return "v" + sv.String()
}
