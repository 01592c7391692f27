package domain

import (
	"context"
	"log/slog"

	"github.com/LinnaX7/PReMM/internal/adapter"
	m "github.com/LinnaX7/PReMM/internal/model"
)

// RepairDriver runs the single-cluster repairer over every cluster of an attempt.
type RepairDriver interface {
	RepairAll(ctx context.Context, state *m.MasterState, workDir m.Path) error
}

type repairDriver struct {
	adapter.Repairer
	budget int
}

// NewRepairDriver returns a driver granting each repair budget internal steps.
func NewRepairDriver(repairer adapter.Repairer, budget int) RepairDriver {
	return &repairDriver{Repairer: repairer, budget: budget}
}

// RepairAll repairs clusters one after another. A repairer failure marks only
// that cluster REPAIR_FAILED; the returned error is non-nil only on cancellation.
func (d *repairDriver) RepairAll(ctx context.Context, state *m.MasterState, workDir m.Path) error {
	for _, cluster := range state.Clusters {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := d.Repair(ctx, adapter.RepairTask{
			BugID:   state.BugID,
			WorkDir: workDir,
			Budget:  d.budget,
			Cluster: cluster,
		})
		if err == nil {
			continue
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		slog.Error("Failed to repair cluster", "bug", state.BugID, "cluster", cluster.ID, "error", err)
		cluster.Repair.State = m.RepairFailed
		cluster.Repair.Exception = err.Error()
	}

	return nil
}
