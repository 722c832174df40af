package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gtp/internal/config"
	"gtp/internal/discovery"
	"gtp/internal/domain"
	"gtp/internal/execution"
)

// RecordCommand handles the record command: it reruns cases and rewrites
// their golden files from the output the executable actually produced.
type RecordCommand struct {
	config  *config.Config
	scanner *discovery.Scanner
	filter  *discovery.Filter
	runner  *execution.Runner
}

// NewRecordCommand creates a new RecordCommand
func NewRecordCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	runner *execution.Runner,
) *RecordCommand {
	return &RecordCommand{
		config:  cfg,
		scanner: scanner,
		filter:  filter,
		runner:  runner,
	}
}

// Execute runs the command
func (rc *RecordCommand) Execute(cmd *cobra.Command, args []string) error {
	if rc.config.BinaryPath == "" {
		return fmt.Errorf("no executable under test: pass --bin or set GTP_BIN")
	}

	cases, err := rc.scanner.Scan(rc.config.GetSuitePath(), rc.config.BinaryPath)
	if err != nil {
		return err
	}
	cases = rc.filter.FilterByName(cases, rc.config.Flags.NameFilter)

	if len(cases) == 0 {
		color.Yellow("No cases to record")
		return nil
	}

	var recorded, skipped int
	for _, c := range cases {
		// Run against the case stripped of its golden file so only the
		// invocation itself can fail, not the stale expectation.
		probe := domain.Case{
			Name:      c.Name,
			Binary:    c.Binary,
			InputPath: c.InputPath,
		}
		result := rc.runner.Run(probe)
		if result.Kind.EnvError() {
			color.Red("✗ %s: %s", c.Name, result.Kind.Describe())
			skipped++
			continue
		}

		// Captured bytes are written exactly as emitted, no normalization
		if err := os.WriteFile(c.GoldenPath, []byte(result.Execution.Stdout), 0644); err != nil {
			return fmt.Errorf("write golden file %s: %w", c.GoldenPath, err)
		}
		color.Green("✓ %s", c.Name)
		recorded++
	}

	fmt.Println()
	color.Cyan("Recorded %d golden file(s), %d skipped", recorded, skipped)
	if skipped > 0 {
		return fmt.Errorf("%d case(s) could not be recorded", skipped)
	}
	return nil
}
