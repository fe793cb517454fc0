package controller

import (
	"bytes"
	"fmt"

	m "github.com/mole-wink/logmend/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRunInfo shows concurrency settings.
func (s *SimpleUI) DisplayRunInfo(threads int, files int) {
	if files == 0 {
		s.printf("No target files found\n")
		return
	}

	s.printf("Processing %d file(s) with %d worker(s)\n", files, threads)
}

// DisplaySummary prints the repair results or error.
func (s *SimpleUI) DisplaySummary(report m.Report, err error) error {
	if err != nil {
		s.printf("repair error: %v\n", err)
		return err
	}

	if len(report.Files) == 0 {
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Findings", "Changed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	changedCount := 0

	for _, file := range report.Files {
		changed := "no"
		if file.Changed {
			changed = "yes"
			changedCount++
		}

		table.Append([]string{string(file.Path), fmt.Sprintf("%d", len(file.Findings)), changed})
	}

	total := report.TotalFindings()

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(report.Files)),
		fmt.Sprintf("%d", total),
		fmt.Sprintf("%d", changedCount),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	switch {
	case total == 0:
		s.printf("No corruption patterns found\n")
	case report.Mode == m.ReportModeFix:
		s.printf("Repaired %d corrupted statement(s) across %d file(s)\n", total, changedCount)
	default:
		s.printf("Found %d repairable statement(s) across %d file(s)\n", total, changedCount)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
