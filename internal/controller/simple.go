package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/LinnaX7/PReMM/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayBugStarted announces a bug run.
func (s *SimpleUI) DisplayBugStarted(ctx context.Context, bugID, runID string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Repairing %s (run %s)\n", bugID, shortID(runID))
}

// DisplayBugSkipped reports a bug whose results already exist.
func (s *SimpleUI) DisplayBugSkipped(ctx context.Context, bugID string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Skipping %s: results already exist\n", bugID)
}

// DisplayAttemptStarted shows which attempt is starting.
func (s *SimpleUI) DisplayAttemptStarted(ctx context.Context, bugID string, rank, try int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("  %s [%s] try %d\n", bugID, rankLabel(rank), try)
}

// DisplayAttemptResult shows the outcome of an attempt and its clusters.
func (s *SimpleUI) DisplayAttemptResult(ctx context.Context, state *m.MasterState) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("  %s [%s] try %d -> %s (%d cluster(s), %d group(s), tokens %s)\n",
		state.BugID, rankLabel(state.Rank), state.Try, state.Result,
		len(state.Clusters), len(state.Groups), formatTokens(state.Tokens))

	for _, c := range state.Clusters {
		if c.Repair.Exception != "" {
			s.printf("    cluster %d: %s\n", c.ID, truncate(c.Repair.Exception))
		}
	}
}

// DisplayRankResult shows the row recorded for a rank.
func (s *SimpleUI) DisplayRankResult(ctx context.Context, row m.RankResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("  %s [%s] %s after %d attempt(s)\n", row.BugID, rankLabel(row.Rank), row.Result, row.AttemptCount)
}

// DisplayBugSummary prints the summary of a finished bug run.
func (s *SimpleUI) DisplayBugSummary(ctx context.Context, summary m.RunSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s: %s in %d attempt(s), patch %s\n", summary.BugID, summary.Result, summary.Attempts, formatPatch(summary.Patch))

	if summary.Error != "" {
		s.printf("  error: %s\n", summary.Error)
	}
}

// DisplayClusters prints the clusters and merged groups of a bug.
func (s *SimpleUI) DisplayClusters(ctx context.Context, bugID string, clusters []*m.ClusterState, groups []*m.MergedGroup) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Clusters of %s\n\n%s\nMerged groups\n\n%s", bugID, renderClustersTable(clusters), renderGroupsTable(groups))

	return nil
}

// DisplayResults prints stored result rows and run summaries.
func (s *SimpleUI) DisplayResults(ctx context.Context, rows []m.RankResult, summaries []m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(rows) == 0 && len(summaries) == 0 {
		s.printf("No results found\n")
		return nil
	}

	s.printf("\n%s", renderResultsTable(rows))

	if len(summaries) > 0 {
		s.printf("\n%s", renderSummariesTable(summaries))
	}

	return nil
}

// DisplayAttempts prints a bug's attempt journal.
func (s *SimpleUI) DisplayAttempts(ctx context.Context, bugID string, records []m.AttemptRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\nAttempts of %s\n\n%s", bugID, renderAttemptsTable(records))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}
