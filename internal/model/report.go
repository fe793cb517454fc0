package model

import "time"

// Report modes.
const (
	ReportModeScan = "scan"
	ReportModeFix  = "fix"
)

// FileReport holds the repair results for a single target file.
type FileReport struct {
	Path     Path      `json:"path"`
	Hash     string    `json:"hash,omitempty"`
	Findings []Finding `json:"findings"`
	Changed  bool      `json:"changed"`
}

// Report is the persisted outcome of one scan or fix run.
type Report struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Mode        string       `json:"mode"` // "scan" or "fix"
	Files       []FileReport `json:"files"`
}

// TotalFindings returns the finding count across all files.
func (r Report) TotalFindings() int {
	total := 0
	for _, file := range r.Files {
		total += len(file.Findings)
	}

	return total
}
