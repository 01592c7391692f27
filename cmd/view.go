package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/LinnaX7/PReMM/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [bug-id]",
		Short: "View stored repair results",
		Long:  "View the per-rank results and run summaries stored in the output directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var viewArgs domain.ViewArgs
			if len(args) == 1 {
				viewArgs.BugID = args[0]
			}

			return runWorkflow(cmd, false, func(ctx context.Context, wf domain.Workflow) error {
				return wf.View(ctx, viewArgs)
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
