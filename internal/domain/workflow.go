package domain

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mole-wink/logmend/internal/adapter"
	"github.com/mole-wink/logmend/internal/controller"
	m "github.com/mole-wink/logmend/internal/model"
)

// ScanArgs configures a dry run over the target files.
type ScanArgs struct {
	Paths   []m.Path
	Rules   []m.RuleID
	Threads int
	Reports m.Path
}

// FixArgs configures a repair run.
type FixArgs struct {
	ScanArgs
	DryRun bool
}

// ViewArgs configures redisplay of a persisted report.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the interface for repair operations.
type Workflow interface {
	Scan(args ScanArgs) error
	Fix(args FixArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fs    adapter.SourceFSAdapter
	store adapter.ReportStore
	ui    controller.UI
	fixer Fixer
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(fs adapter.SourceFSAdapter, store adapter.ReportStore, ui controller.UI, fixer Fixer) Workflow {
	return &workflow{
		fs:    fs,
		store: store,
		ui:    ui,
		fixer: fixer,
	}
}

// Scan previews the repairs the pipeline would make. Target files are never
// written.
func (w *workflow) Scan(args ScanArgs) error {
	files, err := w.repairFiles(args, false)
	if err != nil {
		return w.ui.DisplaySummary(m.Report{Mode: m.ReportModeScan}, err)
	}

	report := m.Report{GeneratedAt: time.Now(), Mode: m.ReportModeScan, Files: files}

	if err := w.ui.DisplaySummary(report, nil); err != nil {
		return err
	}

	return w.persist(args.Reports, report)
}

// Fix applies the repair pipeline and overwrites changed files in place.
// There is no backup; the previous content is gone once a file is written.
func (w *workflow) Fix(args FixArgs) error {
	files, err := w.repairFiles(args.ScanArgs, !args.DryRun)
	if err != nil {
		return w.ui.DisplaySummary(m.Report{Mode: m.ReportModeFix}, err)
	}

	mode := m.ReportModeFix
	if args.DryRun {
		mode = m.ReportModeScan
	}

	report := m.Report{GeneratedAt: time.Now(), Mode: mode, Files: files}

	if err := w.ui.DisplaySummary(report, nil); err != nil {
		return err
	}

	return w.persist(args.Reports, report)
}

// View redisplays the most recently persisted report.
func (w *workflow) View(args ViewArgs) error {
	report, err := w.store.LoadReport(args.Reports)

	return w.ui.DisplaySummary(report, err)
}

func (w *workflow) persist(reports m.Path, report m.Report) error {
	if reports == "" {
		return nil
	}

	if err := w.store.SaveReport(reports, report); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

// repairFiles runs the pipeline over every discovered source, optionally
// writing changed files back.
func (w *workflow) repairFiles(args ScanArgs, write bool) ([]m.FileReport, error) {
	sources, err := w.fs.Get(args.Paths)
	if err != nil {
		return nil, err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	w.ui.DisplayRunInfo(threads, len(sources))

	var mu sync.Mutex

	files := make([]m.FileReport, 0, len(sources))

	g := new(errgroup.Group)
	g.SetLimit(threads)

	for _, source := range sources {
		g.Go(func() error {
			file, err := w.repairFile(source, args.Rules, write)
			if err != nil {
				return err
			}

			mu.Lock()
			files = append(files, file)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return files, nil
}

func (w *workflow) repairFile(source m.Source, ruleIDs []m.RuleID, write bool) (m.FileReport, error) {
	if source.Origin == nil || source.Origin.Path == "" {
		return m.FileReport{}, fmt.Errorf("missing source origin")
	}

	path := source.Origin.Path

	content, err := w.fs.ReadFile(path)
	if err != nil {
		return m.FileReport{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	repaired, findings, err := w.fixer.Repair(content, ruleIDs...)
	if err != nil {
		return m.FileReport{}, err
	}

	changed := !bytes.Equal(repaired, content)

	if changed && write {
		perm := os.FileMode(0o644)
		if info, err := w.fs.FileInfo(path); err == nil {
			perm = info.Mode().Perm()
		}

		if err := w.fs.WriteFile(path, repaired, perm); err != nil {
			return m.FileReport{}, fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	return m.FileReport{
		Path:     path,
		Hash:     source.Origin.Hash,
		Findings: findings,
		Changed:  changed,
	}, nil
}
