package cli

import (
	"github.com/spf13/cobra"

	"fastadex/internal/store"
)

func newLengthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lengths <fasta>",
		Short: "Print an accession-to-sequence-length map as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			separator, idIndex := idFlags(cmd)

			lengths, err := store.Lengths(args[0], separator, idIndex)
			if err != nil {
				return err
			}
			return store.WriteJSON(cmd.OutOrStdout(), lengths)
		},
	}
}
