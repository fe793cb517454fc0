package adapter

import (
	"path/filepath"
	"testing"
	"time"

	m "github.com/mole-wink/logmend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportStore_RoundTrip(t *testing.T) {
	store := NewReportStore()
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))

	report := m.Report{
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Mode:        m.ReportModeFix,
		Files: []m.FileReport{
			{
				Path:    "server/routes.ts",
				Changed: true,
				Findings: []m.Finding{
					{
						Rule:     m.RuleEmptyLog,
						Line:     12,
						Original: "console.log();",
						Repaired: `console.log("Processing...");`,
					},
				},
			},
		},
	}

	require.NoError(t, store.SaveReport(dir, report))

	loaded, err := store.LoadReport(dir)
	require.NoError(t, err)

	assert.Equal(t, report.Mode, loaded.Mode)
	assert.True(t, report.GeneratedAt.Equal(loaded.GeneratedAt))
	require.Len(t, loaded.Files, 1)
	assert.Equal(t, report.Files[0], loaded.Files[0])
}

func TestReportStore_SaveOverwritesPrevious(t *testing.T) {
	store := NewReportStore()
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))

	first := m.Report{Mode: m.ReportModeScan}
	second := m.Report{Mode: m.ReportModeFix}

	require.NoError(t, store.SaveReport(dir, first))
	require.NoError(t, store.SaveReport(dir, second))

	loaded, err := store.LoadReport(dir)
	require.NoError(t, err)
	assert.Equal(t, m.ReportModeFix, loaded.Mode)
}

func TestReportStore_LoadMissing(t *testing.T) {
	store := NewReportStore()

	_, err := store.LoadReport(m.Path(filepath.Join(t.TempDir(), "none")))
	require.Error(t, err)
}
