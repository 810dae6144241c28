package cli

import (
	"fmt"
	"slices"

	"github.com/readlater-labs/readlater/internal/readlater"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var (
		tags   []string
		match  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved links",
		Long: `List every link in the read-later list, sorted by record text.

Use --tag to show only links carrying a tag (repeat for several, all must
match) and --match to filter URLs by a glob pattern such as
"https://*.github.com/*".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, _, err := opts.load()
			if err != nil {
				return err
			}

			pred, err := listFilter(tags, match)
			if err != nil {
				return err
			}
			entries := slices.Collect(list.Search(pred))

			if asJSON {
				return printJSON(cmd.OutOrStdout(), entries)
			}
			if list.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Read-later list empty")
				return nil
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No links match the given filters")
				return nil
			}
			printEntries(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tag", nil, "only links with this tag (repeatable)")
	cmd.Flags().StringVar(&match, "match", "", "only links whose URL matches this glob pattern")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}

// listFilter combines tag and URL glob filters. It returns nil when no
// filter is set.
func listFilter(tags []string, match string) (readlater.Predicate, error) {
	var preds []readlater.Predicate
	for _, t := range readlater.SplitTags(tags...) {
		preds = append(preds, readlater.MatchTag(t))
	}
	if match != "" {
		p, err := readlater.MatchURLGlob(match)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	if len(preds) == 0 {
		return nil, nil
	}
	return readlater.And(preds...), nil
}
