// Package logging configures the contact API's slog pipeline: JSON to
// stdout, optionally fanned out to a batched database sink for ERROR+
// records (see DBHandler).
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the stdout JSON logger as the process default. main
// later swaps in a MultiHandler once the database connection exists.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
