package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"fastadex/internal/index"
	"fastadex/internal/store"
)

func newGetCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <fasta> <accession>...",
		Short: "Fetch individual records through an offset index",
		Long:  "Looks each accession up in the index and seeks straight to its record, without scanning the rest of the file. Output is FASTA on stdout. Lookups that fail are reported per accession; the rest of the batch still completes.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			ids := args[1:]
			indexPath, _ := cmd.Flags().GetString("index")
			if indexPath == "" {
				indexPath = path + ".index"
			}
			workers, _ := cmd.Flags().GetInt("workers")

			idx, err := index.Load(indexPath)
			if err != nil {
				return err
			}

			st, fetchErr := store.FetchConcurrent(path, idx, ids, workers)
			logger.Info("fetch done", "source", path, "requested", len(ids), "fetched", len(st.IDToSeq))

			if err := st.WriteFasta(cmd.OutOrStdout()); err != nil {
				return err
			}
			// Per-accession failures surface after whatever was fetched.
			return fetchErr
		},
	}

	cmd.Flags().String("index", "", "index file path (default: <fasta>.index)")
	cmd.Flags().Int("workers", 1, "concurrent lookups, each with its own file handle")
	return cmd
}
