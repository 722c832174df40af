package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gtp/internal/config"
	"gtp/internal/discovery"
	"gtp/internal/domain"
	"gtp/internal/execution"
	"gtp/internal/history"
	"gtp/internal/storage"
	"gtp/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	executor  *execution.WorkerPool
	storage   storage.Storage
	formatter *ui.Formatter
	recorder  history.Recorder
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	executor *execution.WorkerPool,
	st storage.Storage,
	formatter *ui.Formatter,
	recorder history.Recorder,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		executor:  executor,
		storage:   st,
		formatter: formatter,
		recorder:  recorder,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	if rc.config.BinaryPath == "" {
		return fmt.Errorf("no executable under test: pass --bin or set GTP_BIN")
	}

	// Discover cases
	cases, err := rc.scanner.Scan(rc.config.GetSuitePath(), rc.config.BinaryPath)
	if err != nil {
		return err
	}

	// Filter cases
	cases = rc.filter.FilterByName(cases, rc.config.Flags.NameFilter)
	if rc.config.Flags.OnlyFailed {
		cases = rc.filterLastRunFailures(cases)
	}

	if len(cases) == 0 {
		color.Yellow("No cases to execute")
		return nil
	}

	// Create and set progress bar
	progressBar := ui.NewProgressBar(len(cases))
	rc.executor.SetProgress(progressBar)

	// Execute cases
	results, duration, err := rc.executor.ExecuteWithOptions(cases, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	// Collect failures
	var failures []domain.CaseFailure
	for _, result := range results {
		if !result.Passed() {
			failures = append(failures, failureFromResult(result))
		}
	}

	// Save results
	if err := rc.storage.Save(results, failures, duration, rc.config.Workers); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	// Record run history if configured
	if rc.recorder.Enabled() {
		if output, err := rc.storage.Load(); err == nil {
			if err := rc.recorder.Record(output.Meta); err != nil {
				color.Yellow("Warning: could not record run history: %v", err)
			}
		}
	}

	// Print stats
	if err := rc.formatter.PrintMetaStats(); err != nil {
		return err
	}

	if len(failures) > 0 {
		if rc.config.Flags.ShowFailures {
			if output, err := rc.storage.Load(); err == nil {
				if err := rc.viewer.View(output); err != nil {
					return err
				}
			}
		}
		return fmt.Errorf("%d of %d case(s) failed", len(failures), len(results))
	}
	return nil
}

// filterLastRunFailures keeps only cases whose name failed in the last saved run.
func (rc *RunCommand) filterLastRunFailures(cases []domain.Case) []domain.Case {
	output, err := rc.storage.Load()
	if err != nil {
		color.Yellow("No previous run results found, running all cases")
		return cases
	}

	failedNames := make(map[string]struct{}, len(output.Details))
	for _, failure := range output.Details {
		failedNames[failure.CaseName] = struct{}{}
	}

	var filtered []domain.Case
	for _, c := range cases {
		if _, ok := failedNames[c.Name]; ok {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// failureFromResult converts a failed case result to its persisted record.
func failureFromResult(result domain.CaseResult) domain.CaseFailure {
	failure := domain.CaseFailure{
		CaseName:  result.Case.Name,
		InputPath: result.Case.InputPath,
		Kind:      result.Kind,
		Stderr:    result.Execution.Stderr,
		ExitCode:  result.Execution.ExitCode,
	}
	if result.Execution.Err != nil {
		failure.Message = result.Execution.Err.Error()
	}
	if result.Kind == domain.KindOutputMismatch {
		failure.Expected = result.Expected
		failure.Actual = result.Execution.Stdout
		failure.Diff = result.Diff
	}
	return failure
}
