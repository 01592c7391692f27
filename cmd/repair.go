package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/LinnaX7/PReMM/internal/domain"
)

const allBugsArg = "all"

var rateLimitFlag float64

const repairLongDescription = `Repair one or more benchmark bugs.

Each bug is checked out into a fresh working copy and repaired attempt by
attempt: for every fault-localization rank up to --max-fault-top, the engine
tries up to --max-tries times and stops at the first attempt whose patches
pass the whole test suite. Results are appended to results.csv under the
output directory; bugs that already have results are skipped.

Pass "all" to repair every bug listed in the benchmark description.

Examples:
  premm repair -b defects4j.yaml Chart-1
  premm repair -b defects4j.yaml --perfect=false --max-fault-top 3 Lang-7 Math-2
  premm repair -b defects4j.yaml all`

// repairCmd represents the repair command.
var repairCmd = newRepairCmd()

func newRepairCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repair [bug-id...|all]",
		Short: "Repair benchmark bugs",
		Long:  repairLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repairArgs := domain.RepairArgs{
				Bugs:     args,
				All:      len(args) == 1 && args[0] == allBugsArg,
				Settings: settingsFromConfig(),
			}

			return runWorkflow(cmd, true, func(ctx context.Context, wf domain.Workflow) error {
				return wf.Repair(ctx, repairArgs)
			})
		},
	}

	cmd.Flags().Float64Var(&rateLimitFlag, rateLimitFlagName, defaultRateLimit, "maximum repairer calls per second (0 disables the limit)")
	bindFlagToConfig(cmd.Flags().Lookup(rateLimitFlagName), rateLimitKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(repairCmd)
}
