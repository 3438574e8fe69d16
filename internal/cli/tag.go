package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

func newTagCmd(o *options) *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "tag <file> [tag...]",
		Short: "Tag the current content of a file",
		Long: `Hashes the file and links each tag name to that content. Tags can be
given with --tags or as extra arguments. Prints one association ID per tag.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := append(append([]string{}, tags...), args[1:]...)
			if len(names) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "TAGS required.")
				cmd.Usage()
				return fmt.Errorf("tag %s: no tag names: %w", args[0], types.ErrUsage)
			}
			return runTag(cmd, o, args[0], names)
		},
	}

	cmd.Flags().StringArrayVarP(&tags, "tags", "t", nil, "tag names")
	return cmd
}

func runTag(cmd *cobra.Command, o *options, file string, names []string) error {
	ctx, cancel := o.opContext(cmd)
	defer cancel()

	return withSession(cmd, o, func(s *session) error {
		ids, err := s.engine.Tag(ctx, file, names)
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	})
}
