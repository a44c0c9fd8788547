package main

import (
	"os"

	"github.com/cottand/texp/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "texp [subcommand]",
	Short:        "texp\n parse, normalise and compare type expressions",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.ParseCmd)
	rootCmd.AddCommand(cmd.SubtypeCmd)
	rootCmd.AddCommand(cmd.EquivCmd)
	rootCmd.AddCommand(cmd.DiffCmd)
	rootCmd.AddCommand(cmd.UnionCmd)
	rootCmd.AddCommand(cmd.InterCmd)
	rootCmd.AddCommand(cmd.CheckCmd)
	rootCmd.AddCommand(cmd.ReplCmd)
}
