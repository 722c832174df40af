package commands

import (
	"github.com/spf13/cobra"

	"gtp/internal/cli"
	"gtp/internal/config"
	"gtp/internal/discovery"
	"gtp/internal/execution"
	"gtp/internal/history"
	"gtp/internal/storage"
	"gtp/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Record   *RecordCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	pairer := discovery.NewPairer(cfg.GoldenSuffix)
	scanner := discovery.NewScanner(pairer, cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	runner := execution.NewRunner(cfg)
	scheduler := execution.NewRoundRobinScheduler()
	executor := execution.NewWorkerPool(cfg, runner, scheduler)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	recorder := history.NewMySQLRecorder(cfg)
	failureViewer := ui.NewFailureViewer(cfg, jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, scanner, filter, executor, jsonStorage, formatter, recorder, failureViewer),
		List:     NewListCommand(cfg, scanner, filter, formatter, jsonStorage),
		Record:   NewRecordCommand(cfg, scanner, filter, runner),
		Failures: NewFailuresCommand(cfg, jsonStorage, failureViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run golden cases against the executable under test",
		Long:  "Discover golden cases, execute the program under test for each input artifact, and compare captured stdout against the golden output",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.Binary, "bin", "b", "", "Path to the executable under test (or set GTP_BIN)")
	runCmd.Flags().StringVarP(&flags.SuitePath, "suite", "s", "", "Path to the golden suite directory")
	runCmd.Flags().IntVarP(&flags.Workers, "workers", "p", 4, "Number of parallel workers")
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Bounded wait per case before the child is killed (e.g. 10s)")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. 'hello*' or '*string*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first case failure")
	runCmd.Flags().BoolVar(&flags.OnlyFailed, "failed", false, "Run only cases that failed in the last run")
	runCmd.Flags().BoolVar(&flags.CheckExit, "check-exit", false, "Fail cases whose process exits nonzero even when stdout matches")
	runCmd.Flags().BoolVar(&flags.ShowFailures, "show-failures", false, "Open the failures viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered golden cases",
		Long:  "Scan and list all golden cases without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.SuitePath, "suite", "s", "", "Path to the golden suite directory")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. 'hello*' or '*string*')")
	rootCmd.AddCommand(listCmd)

	// Record command
	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Rewrite golden files from captured output",
		Long:  "Run each case and overwrite its golden file with the stdout the executable actually produced. Create an empty golden file next to an input artifact to record a new case.",
		RunE:  c.Record.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	recordCmd.Flags().StringVarP(&flags.Binary, "bin", "b", "", "Path to the executable under test (or set GTP_BIN)")
	recordCmd.Flags().StringVarP(&flags.SuitePath, "suite", "s", "", "Path to the golden suite directory")
	recordCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Bounded wait per case before the child is killed (e.g. 10s)")
	recordCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern")
	rootCmd.AddCommand(recordCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View case failures interactively",
		Long:  "Display failures from the last run in an interactive viewer with expected, actual, diff, and stderr detail",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
