// Package cmd provides the root command and CLI setup for logmend.
package cmd

import (
	"fmt"
	"os"

	"github.com/mole-wink/logmend/internal/adapter"
	"github.com/mole-wink/logmend/internal/controller"
	"github.com/mole-wink/logmend/internal/domain"
	m "github.com/mole-wink/logmend/internal/model"
	"github.com/spf13/cobra"
)

// defaultTarget is the file the original repair scripts were written against.
// It remains the implied target when no paths are given.
const defaultTarget = "server/routes.ts"

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var fixer domain.Fixer
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	fixer = domain.NewFixer()
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui, fixer)
}

var parallelFlag int
var dryRunFlag bool
var ruleFlags []string
var reportsOutputDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logmend [paths...]",
		Short: "Repair corrupted logging statements in generated sources",
		Long: `Logmend repairs source files corrupted by a flawed code generation pass.
It recognizes JSON.stringify wrapping artifacts inside templated console.log
statements and empty console.log() calls, and rewrites them in place.

Paths may be files, directories, or Go-style recursive patterns:
  - server/routes.ts   repair a single file (the default when no paths given)
  - ./src              repair files directly inside src
  - ./src/...          recursively repair everything under src`,
		RunE: func(_ *cobra.Command, args []string) error {
			ruleIDs, err := parseRules(ruleFlags)
			if err != nil {
				return err
			}

			return workflow.Fix(domain.FixArgs{
				ScanArgs: domain.ScanArgs{
					Paths:   parsePaths(args),
					Rules:   ruleIDs,
					Threads: parallelFlag,
					Reports: m.Path(reportsOutputDirFlag),
				},
				DryRun: dryRunFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "report repairs without writing any file")
	cmd.Flags().StringArrayVarP(&ruleFlags, "rule", "r", nil, "run only the named rule (can be repeated)")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "o", ".logmend-reports", "directory for persisted run reports")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{defaultTarget}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func parseRules(names []string) ([]m.RuleID, error) {
	if len(names) == 0 {
		return nil, nil
	}

	known := make(map[m.RuleID]struct{})
	for _, id := range m.AllRules() {
		known[id] = struct{}{}
	}

	ids := make([]m.RuleID, 0, len(names))

	for _, name := range names {
		id := m.RuleID(name)
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("unknown rule %q", name)
		}

		ids = append(ids, id)
	}

	return ids, nil
}
