package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/readlater-labs/readlater/internal/branding"
	"github.com/readlater-labs/readlater/internal/config"
	"github.com/readlater-labs/readlater/internal/listfile"
	"github.com/readlater-labs/readlater/internal/logger"
	"github.com/readlater-labs/readlater/internal/readlater"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// options holds the global flags shared by every command.
type options struct {
	file    string
	verbose bool
	noColor bool
}

// fileError marks a failure reading or writing the list file.
type fileError struct {
	err error
}

func (e *fileError) Error() string { return e.err.Error() }
func (e *fileError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` keeps a personal list of links to read later in a plain
text file (~/.read_later_list by default). Each link has a URL, a title, and
optional tags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Init(cmd.ErrOrStderr(), opts.verbose)
			if err := config.Load(); err != nil {
				return err
			}
			if opts.noColor || !config.ColorEnabled() {
				color.NoColor = true
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "location of the list file (env "+branding.EnvVar(config.KeyFile)+", default ~/"+branding.ListFile()+")")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newListCmd(opts),
		newSaveCmd(opts),
		newShowCmd(opts),
		newDeleteCmd(opts),
		newTagCmd(opts),
		newSearchCmd(opts),
		newCheckCmd(opts),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

// listPath resolves the list file from the flag, environment, and config.
func (o *options) listPath() string {
	return config.ListPath(o.file)
}

// load reads the list file. Parse failures are reported as malformed
// input; anything else is a file error.
func (o *options) load() (*readlater.List, string, error) {
	path := o.listPath()
	list, err := listfile.Load(path)
	if err != nil {
		var pe *readlater.ParseError
		if errors.As(err, &pe) {
			return nil, path, fmt.Errorf("list file %s is malformed: %w", path, pe)
		}
		return nil, path, &fileError{err: err}
	}
	return list, path, nil
}

// save writes list back to path.
func (o *options) save(path string, list *readlater.List) error {
	if err := listfile.Save(path, list); err != nil {
		return &fileError{err: err}
	}
	return nil
}

// Run executes the command tree with the given arguments and streams. Errors
// are reported on errOut before being returned.
func Run(args []string, in io.Reader, out, errOut io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	if err != nil {
		reportError(errOut, err)
	}
	return err
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func reportError(w io.Writer, err error) {
	var fe *fileError
	if errors.As(err, &fe) {
		logger.Error("list file operation failed", "err", fe.err)
		errorColor.Fprintf(w, "Encountered error: %v. Please file an issue at %s\n", err, branding.IssuesURL())
		return
	}
	errorColor.Fprintf(w, "Error: %v\n", err)
}
