package cli

import (
	"fmt"
	"strings"

	"github.com/readlater-labs/readlater/internal/prompt"
	"github.com/readlater-labs/readlater/internal/readlater"
	"github.com/spf13/cobra"
)

func newSaveCmd(opts *options) *cobra.Command {
	var (
		title      string
		tags       []string
		promptTags bool
	)

	cmd := &cobra.Command{
		Use:     "save <url>",
		Aliases: []string{"update", "add"},
		Short:   "Save a link, replacing any existing entry for the URL",
		Long: `Save a link to the read-later list. Saving a URL that is already in the list
replaces the whole entry, tags included; use "tag add" to extend tags instead.

When --title is omitted the title is read from standard input.

Example:
  readlater save https://go.dev/blog/ --title "The Go Blog" --tags go,blog`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := strings.TrimSpace(args[0])

			list, path, err := opts.load()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saving link %s\n", url)

			p := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())
			if strings.TrimSpace(title) == "" {
				title, err = p.Required("Enter link title: ")
				if err != nil {
					return fmt.Errorf("reading title: %w", err)
				}
			}

			entryTags := readlater.SplitTags(tags...)
			if promptTags && len(entryTags) == 0 {
				entryTags, err = p.Tags("Enter tags (comma-separated, optional): ")
				if err != nil {
					return fmt.Errorf("reading tags: %w", err)
				}
			}

			entry, err := readlater.NewEntry().URL(url).Title(title).Tags(entryTags...).Build()
			if err != nil {
				return err
			}

			_, existed := list.Get(entry.URL)
			if err := list.Put(entry); err != nil {
				return err
			}
			if err := opts.save(path, list); err != nil {
				return err
			}

			if existed {
				successColor.Fprintf(cmd.OutOrStdout(), "Updated %s\n", entry.URL)
			} else {
				successColor.Fprintf(cmd.OutOrStdout(), "Saved %s\n", entry.URL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "title of the link")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags to apply (repeatable)")
	cmd.Flags().BoolVar(&promptTags, "prompt-tags", false, "ask for tags when --tags is not given")
	return cmd
}
