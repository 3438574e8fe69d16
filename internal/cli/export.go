package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Write blobs, tags, and associations as JSONL files",
		Long: `Writes blobs.jsonl, tags.jsonl, and blob_tags.jsonl into dir, creating it
if needed. The files can be committed to git and loaded with import.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := o.opContext(cmd)
			defer cancel()

			return withSession(cmd, o, func(s *session) error {
				if err := s.store.Export(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", args[0])
				return nil
			})
		},
	}
}

func newImportCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <dir>",
		Short: "Merge JSONL files written by export",
		Long: `Reads blobs.jsonl, tags.jsonl, and blob_tags.jsonl from dir and merges them
by hash and tag name. Existing records keep their IDs. Missing files are
treated as empty.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := o.opContext(cmd)
			defer cancel()

			return withSession(cmd, o, func(s *session) error {
				stats, err := s.store.Import(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d blobs, %d tags, %d associations\n",
					stats.Blobs, stats.Tags, stats.BlobTags)
				return nil
			})
		},
	}
}
