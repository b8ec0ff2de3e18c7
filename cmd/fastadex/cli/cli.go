// Package cli implements the fastadex subcommand tree: building offset
// indexes over FASTA files and querying them sequentially or at random.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"fastadex/internal/logging"
)

// NewRootCommand returns the root command with all subcommands wired in.
func NewRootCommand(logger *slog.Logger) *cobra.Command {
	logger = logging.Default(logger)

	cmd := &cobra.Command{
		Use:           "fastadex",
		Short:         "Index and query FASTA sequence files",
		Long:          "Build byte-offset indexes over FASTA files keyed by accession, then stream records or fetch individual entries without a full scan. Plain and gzip-compressed inputs are supported; compressed inputs cannot be indexed or fetched from.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("separator", "|", "description line field separator")
	cmd.PersistentFlags().Int("id-index", 1, "field holding the accession after splitting on the separator")

	cmd.AddCommand(
		newIndexCmd(logger),
		newGetCmd(logger),
		newScanCmd(),
		newAccessionsCmd(),
		newLengthsCmd(),
	)

	return cmd
}

// idFlags reads the persistent accession-extraction flags from cmd.
func idFlags(cmd *cobra.Command) (string, int) {
	separator, _ := cmd.Flags().GetString("separator")
	idIndex, _ := cmd.Flags().GetInt("id-index")
	return separator, idIndex
}
