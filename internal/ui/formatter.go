package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	"gtp/internal/config"
	"gtp/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintMetaStats reads and displays meta statistics from the JSON results file
func (f *Formatter) PrintMetaStats() error {
	outputPath := f.config.GetOutputPath()

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read results file: %w", err)
	}

	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return fmt.Errorf("failed to parse results file: %w", err)
	}

	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Golden Suite Statistics                    ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Cases")
	color.White("%-27d │\n", meta.TotalCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Cases")
	color.Green("%-27d │\n", meta.PassedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Cases")
	color.Red("%-27d │\n", meta.FailedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Environment Errors")
	color.Red("%-27d │\n", meta.EnvErrors)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Binary")
	color.White("%-27s │\n", truncate(meta.Binary, 27))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedCases == 0 {
		color.Green("✓ All cases passed!")
	} else {
		color.Red("✗ %d case(s) failed (%d environment error(s))", meta.FailedCases, meta.EnvErrors)
		fmt.Println()
		f.printFailedCasesTree(output.Details)
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n+3:]
}

// TreeNode represents a node in the case tree structure
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	Failures []domain.CaseFailure
	IsCase   bool
}

// printFailedCasesTree prints the failed cases grouped by suite directory
func (f *Formatter) printFailedCasesTree(failures []domain.CaseFailure) {
	if len(failures) == 0 {
		return
	}

	caseMap := make(map[string][]domain.CaseFailure)
	for _, failure := range failures {
		caseMap[failure.CaseName] = append(caseMap[failure.CaseName], failure)
	}

	root := &TreeNode{
		Name:     "",
		Children: make(map[string]*TreeNode),
		IsCase:   false,
	}

	for caseName, caseFailures := range caseMap {
		parts := strings.Split(strings.TrimPrefix(caseName, "./"), "/")
		current := root

		for i, part := range parts {
			if part == "" {
				continue
			}

			if current.Children[part] == nil {
				current.Children[part] = &TreeNode{
					Name:     part,
					Children: make(map[string]*TreeNode),
					IsCase:   i == len(parts)-1,
				}
			}

			current = current.Children[part]

			if i == len(parts)-1 {
				current.Failures = caseFailures
			}
		}
	}

	f.printTreeNode(root, "", true)
}

func (f *Formatter) printTreeNode(node *TreeNode, prefix string, isRoot bool) {
	var keys []string
	for key := range node.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		child := node.Children[key]
		isLastChild := i == len(keys)-1

		var connector string
		switch {
		case isRoot:
			connector = ""
		case isLastChild:
			connector = prefix + "└── "
		default:
			connector = prefix + "├── "
		}

		if child.IsCase {
			kind := domain.KindOutputMismatch
			if len(child.Failures) > 0 {
				kind = child.Failures[0].Kind
			}
			if kind.EnvError() {
				color.Yellow("%s%s  [%s]", connector, child.Name, kind.Describe())
			} else {
				color.Red("%s%s", connector, child.Name)
			}
		} else {
			color.Cyan("%s%s", connector, child.Name)
		}

		var newPrefix string
		switch {
		case isRoot:
			newPrefix = "  "
		case isLastChild:
			newPrefix = prefix + "    "
		default:
			newPrefix = prefix + "│   "
		}
		f.printTreeNode(child, newPrefix, false)
	}
}

// PrintCaseList prints discovered cases.
// failedNames is optional; cases in this set are marked with [F] in red (from last run).
func (f *Formatter) PrintCaseList(cases []domain.Case, failedNames map[string]struct{}) error {
	color.Green("Found %d golden case(s):\n", len(cases))

	for i, c := range cases {
		relPath, err := filepath.Rel(f.config.GetSuitePath(), c.InputPath)
		if err != nil {
			relPath = c.InputPath
		}

		failMarker := ""
		if len(failedNames) > 0 {
			if _, ok := failedNames[c.Name]; ok {
				failMarker = " " + color.RedString("[F]")
			}
		}

		if i == len(cases)-1 {
			color.Cyan("└── %s%s", relPath, failMarker)
		} else {
			color.Cyan("├── %s%s", relPath, failMarker)
		}
	}

	return nil
}
