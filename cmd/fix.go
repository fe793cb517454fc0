package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mole-wink/logmend/internal/domain"
	m "github.com/mole-wink/logmend/internal/model"
)

var fixParallelFlag int
var fixDryRunFlag bool
var fixRuleFlags []string

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Apply repair rules and overwrite files in place",
		Long: `Apply the repair pipeline to the given paths and overwrite changed
files in place. There is no backup; the previous content is replaced.`,
		RunE: func(_ *cobra.Command, args []string) error {
			ruleIDs, err := parseRules(fixRuleFlags)
			if err != nil {
				return err
			}

			return workflow.Fix(domain.FixArgs{
				ScanArgs: domain.ScanArgs{
					Paths:   parsePaths(args),
					Rules:   ruleIDs,
					Threads: fixParallelFlag,
					Reports: m.Path(reportsOutputDirFlag),
				},
				DryRun: fixDryRunFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&fixParallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().BoolVarP(&fixDryRunFlag, "dry-run", "n", false, "report repairs without writing any file")
	cmd.Flags().StringArrayVarP(&fixRuleFlags, "rule", "r", nil, "run only the named rule (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
