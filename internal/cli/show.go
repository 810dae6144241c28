package cli

import (
	"strings"

	"github.com/readlater-labs/readlater/internal/readlater"
	"github.com/spf13/cobra"
)

func newShowCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <url>",
		Short: "Show a saved link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, _, err := opts.load()
			if err != nil {
				return err
			}

			url := strings.TrimSpace(args[0])
			entry, ok := list.Get(url)
			if !ok {
				warnColor.Fprintf(cmd.ErrOrStderr(), "Link %s not found\n", url)
				return nil
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), []readlater.LinkEntry{entry})
			}
			printEntry(cmd.OutOrStdout(), entry)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}
