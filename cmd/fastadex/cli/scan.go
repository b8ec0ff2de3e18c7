package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fastadex/internal/fasta"
	"fastadex/internal/source"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <fasta>",
		Short: "Stream records, printing accession and sequence length as TSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			separator, idIndex := idFlags(cmd)

			h, err := source.Open(path)
			if err != nil {
				return err
			}
			defer func() { _ = h.Close() }()

			out := cmd.OutOrStdout()
			r := fasta.NewReader(h)
			for {
				rec, err := r.Next()
				if errors.Is(err, fasta.ErrNoMoreRecords) {
					return nil
				}
				if err != nil {
					return err
				}
				id, err := fasta.ExtractID(rec.Description, separator, idIndex)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%d\n", id, len(rec.Sequence))
			}
		},
	}
}
