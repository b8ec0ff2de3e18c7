// Command fastadex indexes and queries FASTA flat-text sequence files.
//
// Logging:
//   - Base logger is created here with output format and level
//   - Logger is passed to commands via dependency injection
//   - No global slog configuration (no slog.SetDefault)
package main

import (
	"fmt"
	"log/slog"
	"os"

	"fastadex/cmd/fastadex/cli"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := cli.NewRootCommand(logger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fastadex:", err)
		os.Exit(1)
	}
}
