package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/blobtag/internal/tagging"
	"github.com/mesh-intelligence/blobtag/pkg/types"
)

func newQueryCmd(o *options) *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "query [tag...]",
		Short: "List files whose content carries any of the tags",
		Long: `Prints "path: tag, tag, ..." for every file in the locator's listing whose
content carries at least one of the given tags. The full tag set of the
content is shown, not only the tags that matched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := append(append([]string{}, tags...), args...)
			if len(names) == 0 {
				cmd.Help()
				return fmt.Errorf("query: no tag names: %w", types.ErrUsage)
			}
			return runQuery(cmd, o, names)
		},
	}

	cmd.Flags().StringArrayVarP(&tags, "tags", "t", nil, "tag names")
	return cmd
}

func runQuery(cmd *cobra.Command, o *options, names []string) error {
	ctx, cancel := o.opContext(cmd)
	defer cancel()

	return withSession(cmd, o, func(s *session) error {
		results, err := s.engine.Query(ctx, names)
		if err != nil {
			return err
		}
		return tagging.Render(cmd.OutOrStdout(), results)
	})
}
