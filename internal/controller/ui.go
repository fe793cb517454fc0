// Package controller provides output adapters for displaying repair results.
package controller

import (
	m "github.com/mole-wink/logmend/internal/model"
)

// UI defines the interface for displaying repair results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayRunInfo shows how many files will be processed and by how many
	// workers.
	DisplayRunInfo(threads int, files int)

	// DisplaySummary renders the outcome of a scan/fix run or a loaded
	// report. A non-nil err is displayed and returned.
	DisplaySummary(report m.Report, err error) error
}
