// Package cli implements the blobtag command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// options holds flag values for one command tree.
type options struct {
	configDir string
	dataDir   string
	locator   string
	rev       string
	root      string
	verbose   bool
	timeout   time.Duration

	// Root-level single-command form.
	file string
	tags []string
}

// NewRootCmd creates the top-level "blobtag" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "blobtag",
		Short: "Tag file content and find files by tag",
		Long: `blobtag attaches tags to the content of files, identified by content hash,
and finds the files that currently hold content carrying given tags.

With --file and --tags it tags the file; with --tags alone it queries.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := append(append([]string{}, o.tags...), args...)
			switch {
			case o.file != "" && len(names) == 0:
				fmt.Fprintln(cmd.ErrOrStderr(), "TAGS required.")
				cmd.Usage()
				return fmt.Errorf("tag %s: no tag names: %w", o.file, types.ErrUsage)
			case o.file != "":
				return runTag(cmd, o, o.file, names)
			case len(names) > 0:
				return runQuery(cmd, o, names)
			default:
				cmd.Help()
				return fmt.Errorf("no file or tags given: %w", types.ErrUsage)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&o.dataDir, "data-dir", "", "data directory holding the tag database (default: platform data dir)")
	pf.StringVar(&o.locator, "locator", "", `content locator: "git" or "dir" (default: git)`)
	pf.StringVar(&o.rev, "rev", "", "git revision whose tree is listed (default: HEAD)")
	pf.StringVar(&o.root, "root", "", "directory the locator works in (default: .)")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "log locator calls to stderr")
	pf.DurationVar(&o.timeout, "timeout", 0, "abort the operation after this long (0 = no limit)")

	root.Flags().StringVarP(&o.file, "file", "f", "", "file to tag")
	root.Flags().StringArrayVarP(&o.tags, "tags", "t", nil, "tag names")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", types.ErrUsage, err)
	})

	root.AddCommand(newTagCmd(o))
	root.AddCommand(newQueryCmd(o))
	root.AddCommand(newTagsCmd(o))
	root.AddCommand(newExportCmd(o))
	root.AddCommand(newImportCmd(o))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "blobtag:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrUsage):
		return exitUserError
	default:
		return exitSysError
	}
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", types.ErrUsage, err)
		}
		return nil
	}
}

// opContext returns the context for one operation, bounded by --timeout.
func (o *options) opContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if o.timeout > 0 {
		return context.WithTimeout(ctx, o.timeout)
	}
	return context.WithCancel(ctx)
}
