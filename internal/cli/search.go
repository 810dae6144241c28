package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/readlater-labs/readlater/internal/readlater"
	"github.com/spf13/cobra"
)

func newSearchCmd(opts *options) *cobra.Command {
	var (
		tags   []string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search saved links by keyword",
		Long: `Search links whose URL, title, or tags contain the keyword. Matching is
case-insensitive and the keyword is taken literally; several arguments are
joined with spaces into one keyword.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, _, err := opts.load()
			if err != nil {
				return err
			}

			keyword := strings.Join(args, " ")
			pred := readlater.MatchKeyword(keyword)
			filter, err := listFilter(tags, "")
			if err != nil {
				return err
			}
			if filter != nil {
				pred = readlater.And(pred, filter)
			}
			entries := slices.Collect(list.Search(pred))

			if asJSON {
				return printJSON(cmd.OutOrStdout(), entries)
			}
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No links matching %q\n", keyword)
				return nil
			}
			printEntries(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tag", nil, "only links with this tag (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}
