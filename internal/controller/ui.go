// Package controller provides output adapters for displaying repair progress and results.
package controller

import (
	"context"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/LinnaX7/PReMM/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRepair StartMode = iota
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRepairMode sets the UI to stream repair progress.
func WithRepairMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRepair
	}
}

// WithViewMode sets the UI to display stored or computed tables.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// UI defines the interface for displaying repair runs.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayBugStarted(ctx context.Context, bugID, runID string)
	DisplayBugSkipped(ctx context.Context, bugID string)
	DisplayAttemptStarted(ctx context.Context, bugID string, rank, try int)
	DisplayAttemptResult(ctx context.Context, state *m.MasterState)
	DisplayRankResult(ctx context.Context, row m.RankResult)
	DisplayBugSummary(ctx context.Context, summary m.RunSummary)
	DisplayClusters(ctx context.Context, bugID string, clusters []*m.ClusterState, groups []*m.MergedGroup) error
	DisplayResults(ctx context.Context, rows []m.RankResult, summaries []m.RunSummary) error
	DisplayAttempts(ctx context.Context, bugID string, records []m.AttemptRecord) error
}

// NewUI returns the TUI when stdout is a terminal and the simple UI otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive && IsTTY(cmd.OutOrStdout()) {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

func rankLabel(rank int) string {
	if rank == 0 {
		return "perfect"
	}

	return "top-" + strconv.Itoa(rank)
}
