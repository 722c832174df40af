package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gtp/internal/config"
	"gtp/internal/discovery"
	"gtp/internal/storage"
	"gtp/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
	storage   storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
	st storage.Storage,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
		storage:   st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cases, err := lc.scanner.Scan(lc.config.GetSuitePath(), lc.config.BinaryPath)
	if err != nil {
		return err
	}

	cases = lc.filter.FilterByName(cases, lc.config.Flags.NameFilter)

	if len(cases) == 0 {
		color.Yellow("No cases found")
		return nil
	}

	// Mark cases that failed in the last run, if results exist
	var failedNames map[string]struct{}
	if output, err := lc.storage.Load(); err == nil {
		failedNames = make(map[string]struct{}, len(output.Details))
		for _, failure := range output.Details {
			failedNames[failure.CaseName] = struct{}{}
		}
	}

	return lc.formatter.PrintCaseList(cases, failedNames)
}
