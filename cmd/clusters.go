package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/LinnaX7/PReMM/internal/domain"
)

// clustersCmd represents the clusters command.
var clustersCmd = newClustersCmd()

func newClustersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clusters <bug-id>",
		Short: "Show the fault clusters of a bug without repairing it",
		Long: `Check out a bug, run the program analysis and print its fault clusters
and the merged groups they form. Source files are never modified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clustersArgs := domain.ClustersArgs{
				BugID:    args[0],
				Settings: settingsFromConfig(),
			}

			return runWorkflow(cmd, true, func(ctx context.Context, wf domain.Workflow) error {
				return wf.Clusters(ctx, clustersArgs)
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(clustersCmd)
}
