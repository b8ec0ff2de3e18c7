package cli

import (
	"github.com/spf13/cobra"

	"fastadex/internal/store"
)

func newAccessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accessions <fasta>",
		Short: "List every accession, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			separator, idIndex := idFlags(cmd)

			ids, err := store.Accessions(args[0], separator, idIndex)
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				return store.WriteJSON(cmd.OutOrStdout(), ids)
			}
			return store.WriteLines(cmd.OutOrStdout(), ids)
		},
	}

	cmd.Flags().Bool("json", false, "emit a JSON array instead of plain lines")
	return cmd
}
