package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTagsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tags <file>",
		Short: "Print the tags of a file's current content",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := o.opContext(cmd)
			defer cancel()

			return withSession(cmd, o, func(s *session) error {
				names, err := s.engine.TagsOfFile(ctx, args[0])
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			})
		},
	}
}
