package cli

import (
	"fmt"
	"strings"

	"github.com/readlater-labs/readlater/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read and write settings stored at ~/.readlater/config.yaml.

Known keys: ` + strings.Join(config.Keys, ", ") + `
Environment variables READLATER_<KEY> override the file.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
			return nil
		},
	})

	return cmd
}
