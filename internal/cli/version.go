package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the blobtag release version.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/blobtag"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the blobtag version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "blobtag v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
