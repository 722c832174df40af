package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gtp/internal/cli"
	"gtp/internal/cli/commands"
	"gtp/internal/config"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "gtp",
		Short:   "Golden-output test processor",
		Long:    `A golden-output verification harness for command-line programs. Run an executable against input artifacts, capture its standard output, and verify it character for character against known-good golden files.`,
		Version: version,
	}
	rootCmd.SilenceUsage = true

	// Create initial config from defaults and environment
	cfg := config.New()
	cfg.LoadEnv()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
