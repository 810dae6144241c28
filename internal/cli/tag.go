package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/readlater-labs/readlater/internal/readlater"
	"github.com/spf13/cobra"
)

func newTagCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Add or remove tags on a saved link",
	}
	cmd.AddCommand(
		newTagMutationCmd(opts, "add", "Add tags to a saved link, keeping existing tags",
			func(l *readlater.List, url string, tags []string) error { return l.AddTags(url, tags...) }),
		newTagMutationCmd(opts, "remove", "Remove tags from a saved link",
			func(l *readlater.List, url string, tags []string) error { return l.RemoveTags(url, tags...) }),
	)
	return cmd
}

type tagMutation func(l *readlater.List, url string, tags []string) error

func newTagMutationCmd(opts *options, name, short string, mutate tagMutation) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <url> <tags...>",
		Short: short,
		Long: short + `.

Tags may be given as separate arguments or comma-separated:
  readlater tag ` + name + ` https://go.dev/blog/ go reading
  readlater tag ` + name + ` https://go.dev/blog/ go,reading`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, path, err := opts.load()
			if err != nil {
				return err
			}

			url := strings.TrimSpace(args[0])
			if err := mutate(list, url, readlater.SplitTags(args[1:]...)); err != nil {
				if errors.Is(err, readlater.ErrNotFound) {
					warnColor.Fprintf(cmd.ErrOrStderr(), "Link %s not found\n", url)
					return nil
				}
				return err
			}
			if err := opts.save(path, list); err != nil {
				return err
			}

			entry, _ := list.Get(url)
			fmt.Fprintf(cmd.OutOrStdout(), "Tags for %s: %s\n", url, tagColor.Sprint(formatTags(entry.Tags)))
			return nil
		},
	}
}
