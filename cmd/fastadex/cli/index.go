package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"fastadex/internal/index"
)

func newIndexCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index <fasta>",
		Short: "Build an accession-to-offset index and write it to disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out, _ := cmd.Flags().GetString("output")
			if out == "" {
				out = path + ".index"
			}
			separator, idIndex := idFlags(cmd)

			idx, err := index.Build(path, separator, idIndex)
			if err != nil {
				return err
			}
			if err := idx.Save(out); err != nil {
				return err
			}

			logger.Info("index built", "source", path, "index", out, "accessions", idx.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "indexed %d accessions to %s\n", idx.Len(), out)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "index file path (default: <fasta>.index)")
	return cmd
}
