package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <url>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved link",
		Long:    `Delete a link from the read-later list. Deleting a URL that is not in the list does nothing.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, path, err := opts.load()
			if err != nil {
				return err
			}

			url := strings.TrimSpace(args[0])
			if !list.Delete(url) {
				warnColor.Fprintf(cmd.ErrOrStderr(), "Link %s not found\n", url)
				return nil
			}
			if err := opts.save(path, list); err != nil {
				return err
			}
			successColor.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", url)
			return nil
		},
	}
}
