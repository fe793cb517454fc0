package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mole-wink/logmend/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayRunInfo shows concurrency settings.
func (t *TUI) DisplayRunInfo(threads int, files int) {
	if files == 0 {
		_, _ = fmt.Fprintf(t.output, "No target files found\n")
		return
	}

	_, _ = fmt.Fprintf(t.output, "Processing %d file(s) with %d worker(s)\n", files, threads)
}

// DisplaySummary shows the repair results in an interactive list, falling
// back to a static render when the list fits on screen.
func (t *TUI) DisplaySummary(report m.Report, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "repair error: %v\n", err)
		return err
	}

	if len(report.Files) == 0 {
		return nil
	}

	model := newSummaryModel(report)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, sizeErr := term.GetSize(int(f.Fd()))
		if sizeErr == nil {
			model.width = width
			model.height = height
		}
	}

	// If the list is small, just print and exit
	if !model.needsPagination() {
		_, printErr := fmt.Fprint(t.output, model.View())
		return printErr
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, runErr := program.Run(); runErr != nil {
		return runErr
	}

	return nil
}
