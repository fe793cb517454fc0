package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mole-wink/logmend/internal/domain"
	m "github.com/mole-wink/logmend/internal/model"
)

var scanParallelFlag int
var scanRuleFlags []string

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Preview repairs without writing files",
		Long: `Scan the given paths for corruption patterns and report what the fix
command would change. Target files are never written.`,
		RunE: func(_ *cobra.Command, args []string) error {
			ruleIDs, err := parseRules(scanRuleFlags)
			if err != nil {
				return err
			}

			return workflow.Scan(domain.ScanArgs{
				Paths:   parsePaths(args),
				Rules:   ruleIDs,
				Threads: scanParallelFlag,
				Reports: m.Path(reportsOutputDirFlag),
			})
		},
	}
	cmd.Flags().IntVarP(&scanParallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().StringArrayVarP(&scanRuleFlags, "rule", "r", nil, "run only the named rule (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
