package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LinnaX7/PReMM/internal/adapter"
	m "github.com/LinnaX7/PReMM/internal/model"
)

// ResultAggregator closes an attempt: it totals token usage, emits the patch
// of a successful attempt, and restores the working copy otherwise.
type ResultAggregator interface {
	Finalize(ctx context.Context, state *m.MasterState, project adapter.Project) error
}

type resultAggregator struct {
	adapter.Workspace
	adapter.PatchEmitter
}

// NewResultAggregator returns an aggregator emitting patches through emitter.
func NewResultAggregator(workspace adapter.Workspace, emitter adapter.PatchEmitter) ResultAggregator {
	return &resultAggregator{Workspace: workspace, PatchEmitter: emitter}
}

func (a *resultAggregator) Finalize(ctx context.Context, state *m.MasterState, project adapter.Project) error {
	state.SumTokens()

	if state.Result != m.RepairSuccess {
		return recoverFiles(context.WithoutCancel(ctx), a.Workspace, project, state.FaultFiles())
	}

	stats, err := a.EmitDiff(ctx, state.BugID, project.WorkDir(), state.FaultFiles())
	if err != nil {
		slog.Error("Failed to emit diff", "bug", state.BugID, "error", err)
		return fmt.Errorf("failed to emit diff: %w", err)
	}

	if err := a.EmitPatchFile(ctx, state.BugID, state.FaultCodes); err != nil {
		slog.Error("Failed to emit patch file", "bug", state.BugID, "error", err)
		return fmt.Errorf("failed to emit patch file: %w", err)
	}

	state.Patch = &stats

	slog.Info("Emitted repair", "bug", state.BugID, "files", stats.Files, "added", stats.Added, "deleted", stats.Deleted)

	return nil
}
