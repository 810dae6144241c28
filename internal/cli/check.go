package cli

import (
	"fmt"

	"github.com/readlater-labs/readlater/internal/lint"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the list file for problems",
		Long: `Parse the list file and check every entry: URLs must have a scheme and no
spaces, titles must fit on one line, and tags must be unique and free of
commas. Exits non-zero when problems are found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, path, err := opts.load()
			if err != nil {
				return err
			}

			result, err := lint.Check(list)
			if err != nil {
				return fmt.Errorf("checking %s: %w", path, err)
			}
			if result.Valid {
				successColor.Fprintf(cmd.OutOrStdout(), "%s: %d links, no problems found\n", path, list.Len())
				return nil
			}

			for _, issue := range result.Issues {
				warnColor.Fprintf(cmd.OutOrStdout(), "  %s\n", issue)
			}
			return fmt.Errorf("%d problems found in %s", len(result.Issues), path)
		},
	}
}
