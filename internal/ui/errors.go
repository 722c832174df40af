package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gtp/internal/config"
	"gtp/internal/domain"
	"gtp/internal/storage"
)

// FailureViewer displays case failures in an interactive TUI
type FailureViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(cfg *config.Config, st storage.Storage) *FailureViewer {
	return &FailureViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays case failures in an interactive TUI
func (fv *FailureViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No case failures found!")
		return nil
	}

	// Track resolved cases (by index) - loaded from the results file
	resolved := make(map[int]bool)
	for i, failure := range results.Details {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	saveResolvedStatus := func() error {
		for i := range results.Details {
			results.Details[i].Resolved = resolved[i]
		}
		return fv.storage.SaveOutput(results)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(index int) string {
		failure := results.Details[index]
		caseName := failure.CaseName
		if caseName == "" {
			caseName = fmt.Sprintf("Case %d", index+1)
		}

		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, caseName)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, caseName)
	}

	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, getListItemText(index), "")
	}

	for i := range results.Details {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	countUnresolved := func() int {
		count := 0
		for i := range results.Details {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		unresolved := countUnresolved()
		headerText := fmt.Sprintf(" Case Failures (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ", len(results.Details), unresolved)
		headerView.SetText(headerText)
	}

	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Details) {
			failure := results.Details[index]
			statsView.SetText(fv.formatFailureStats(failure, index+1))
			detailsView.SetText(fv.formatFailureDetails(failure))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Details) {
					resolved[index] = !resolved[index]
					updateListItem(index)
					updateHeader()
					updateDetails()
					if err := saveResolvedStatus(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFailureDetails formats a case failure for display using tview color tags
func (fv *FailureViewer) formatFailureDetails(failure domain.CaseFailure) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ Case: %s[white]\n\n", failure.CaseName)
	fmt.Fprintf(&builder, "[cyan]Input: %s[white]\n", failure.InputPath)
	fmt.Fprintf(&builder, "[cyan]Kind: %s[white]\n", failure.Kind.Describe())
	if failure.ExitCode != 0 {
		fmt.Fprintf(&builder, "[cyan]Exit code: %d[white]\n", failure.ExitCode)
	}
	builder.WriteString("\n")

	if failure.Message != "" {
		fmt.Fprintf(&builder, "[yellow]Message:[white]\n%s\n\n", failure.Message)
	}

	if failure.Diff != "" {
		builder.WriteString("[yellow]Diff (expected vs actual):[white]\n")
		for _, line := range strings.Split(strings.TrimRight(failure.Diff, "\n"), "\n") {
			switch {
			case strings.HasPrefix(line, "-"):
				fmt.Fprintf(&builder, "[green]%s[white]\n", tview.Escape(line))
			case strings.HasPrefix(line, "+"):
				fmt.Fprintf(&builder, "[red]%s[white]\n", tview.Escape(line))
			default:
				fmt.Fprintf(&builder, "%s\n", tview.Escape(line))
			}
		}
		builder.WriteString("\n")
	} else if failure.Kind == domain.KindOutputMismatch {
		fmt.Fprintf(&builder, "[yellow]Expected:[white]\n%s\n\n", tview.Escape(failure.Expected))
		fmt.Fprintf(&builder, "[yellow]Actual:[white]\n%s\n\n", tview.Escape(failure.Actual))
	}

	if failure.Stderr != "" {
		fmt.Fprintf(&builder, "[yellow]Stderr:[white]\n%s\n", tview.Escape(failure.Stderr))
	}

	return builder.String()
}

// formatFailureStats formats the stats header for a case failure
func (fv *FailureViewer) formatFailureStats(failure domain.CaseFailure, number int) string {
	caseName := failure.CaseName
	if caseName == "" {
		caseName = fmt.Sprintf("Case %d", number)
	}

	return fmt.Sprintf("[cyan]case:[white] [yellow]%s[white] ([red]%s[white])\n", caseName, failure.Kind.Describe())
}
