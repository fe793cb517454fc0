package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/mole-wink/logmend/internal/model"
	"github.com/spf13/cobra"
)

func TestSimpleUI_DisplaySummary_PrintsTable(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	report := m.Report{
		Mode: m.ReportModeFix,
		Files: []m.FileReport{
			{
				Path:    "server/routes.ts",
				Changed: true,
				Findings: []m.Finding{
					{Rule: m.RuleDoubleStringify, Line: 3},
					{Rule: m.RuleEmptyLog, Line: 4},
				},
			},
			{Path: "server/index.ts"},
		},
	}

	if err := ui.DisplaySummary(report, nil); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"server/routes.ts",
		"server/index.ts",
		"TOTAL FILES 2",
		"Repaired 2 corrupted statement(s) across 1 file(s)",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplaySummary_ScanWording(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	report := m.Report{
		Mode: m.ReportModeScan,
		Files: []m.FileReport{
			{
				Path:     "server/routes.ts",
				Changed:  true,
				Findings: []m.Finding{{Rule: m.RuleEmptyLog, Line: 4}},
			},
		},
	}

	if err := ui.DisplaySummary(report, nil); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	if !strings.Contains(buf.String(), "Found 1 repairable statement(s)") {
		t.Fatalf("output missing scan wording:\n%s", buf.String())
	}
}

func TestSimpleUI_DisplaySummary_NothingFound(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	report := m.Report{
		Mode:  m.ReportModeFix,
		Files: []m.FileReport{{Path: "server/routes.ts"}},
	}

	if err := ui.DisplaySummary(report, nil); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No corruption patterns found") {
		t.Fatalf("output missing no-findings message:\n%s", buf.String())
	}
}

func TestSimpleUI_DisplaySummary_Error(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	ui := NewSimpleUI(cmd)
	boom := errors.New("boom")

	if err := ui.DisplaySummary(m.Report{}, boom); err == nil {
		t.Fatalf("DisplaySummary() expected error")
	}

	if !strings.Contains(buf.String(), "repair error: boom") {
		t.Fatalf("output missing error message:\n%s", buf.String())
	}
}

func TestSimpleUI_DisplayRunInfo(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	ui.DisplayRunInfo(2, 3)

	if !strings.Contains(buf.String(), "Processing 3 file(s) with 2 worker(s)") {
		t.Fatalf("unexpected run info output:\n%s", buf.String())
	}

	buf.Reset()
	ui.DisplayRunInfo(1, 0)

	if !strings.Contains(buf.String(), "No target files found") {
		t.Fatalf("unexpected empty run info output:\n%s", buf.String())
	}
}
