package cmd

import (
	"log/slog"

	"github.com/cottand/texp/internal/log"
	"github.com/cottand/texp/texp"
	"github.com/spf13/cobra"
)

var logger = log.DefaultLogger.With("section", "cli")

type settings struct {
	logLevel int
	dnfLimit int
	dump     bool
}

var defaultSettings = settings{
	logLevel: int(slog.LevelError),
}

var current = defaultSettings

// withCommonFlags registers the flags shared by every subcommand
func withCommonFlags(c *cobra.Command) *cobra.Command {
	c.Flags().IntVarP(&current.logLevel, "log-level", "l", defaultSettings.logLevel, "log level")
	c.Flags().IntVar(&current.dnfLimit, "dnf-limit", defaultSettings.dnfLimit, "maximum number of alternatives an intersection is distributed into, 0 for no limit")
	return c
}

func newTypeCtx() *texp.TypeCtx {
	log.SetLevel(slog.Level(current.logLevel))
	logger.Debug("new type context", "dnfLimit", current.dnfLimit)
	return texp.NewTypeCtx(texp.WithDNFLimit(current.dnfLimit))
}
