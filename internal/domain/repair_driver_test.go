package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LinnaX7/PReMM/internal/adapter"
	adaptermocks "github.com/LinnaX7/PReMM/internal/adapter/mocks"
	"github.com/LinnaX7/PReMM/internal/domain"
	m "github.com/LinnaX7/PReMM/internal/model"
)

func TestRepairDriver_RepairAll(t *testing.T) {
	a := newCluster(1, "src/A.java", "T1")
	b := newCluster(2, "src/B.java", "T2")
	state := stateWith(a, b)

	repairer := &patchingRepairer{count: 2, tokens: m.TokenCounters{Prompt: 100, Completion: 20}}

	err := domain.NewRepairDriver(repairer, 5).RepairAll(context.Background(), state, "/work/Chart-1")
	require.NoError(t, err)

	for _, c := range state.Clusters {
		assert.Equal(t, m.RepairTestSuccess, c.Repair.State)
		assert.Equal(t, 2, c.Repair.Count)
		assert.Equal(t, "// repaired\nreturn a - b;", c.FaultCodes[0].RepairedCode)
	}

	assert.Equal(t, m.TokenCounters{Prompt: 200, Completion: 40}, state.SumTokens())
}

func TestRepairDriver_FailureIsConfinedToItsCluster(t *testing.T) {
	a := newCluster(1, "src/A.java", "T1")
	b := newCluster(2, "src/B.java", "T2")
	state := stateWith(a, b)

	repairer := adaptermocks.NewMockRepairer(t)
	repairer.EXPECT().
		Repair(mock.Anything, mock.MatchedBy(func(task adapter.RepairTask) bool { return task.Cluster.ID == 1 })).
		Return(errors.New("model refused"))
	repairer.EXPECT().
		Repair(mock.Anything, mock.MatchedBy(func(task adapter.RepairTask) bool {
			return task.Cluster.ID == 2 && task.Budget == 3 && task.BugID == "Chart-1" && task.WorkDir == "/work/Chart-1"
		})).
		Return(nil)

	err := domain.NewRepairDriver(repairer, 3).RepairAll(context.Background(), state, "/work/Chart-1")
	require.NoError(t, err)

	assert.Equal(t, m.RepairFailed, a.Repair.State)
	assert.Equal(t, "model refused", a.Repair.Exception)
	assert.Equal(t, m.RepairTestSuccess, b.Repair.State)
	assert.Empty(t, b.Repair.Exception)
}

func TestRepairDriver_Cancelled(t *testing.T) {
	state := stateWith(newCluster(1, "src/A.java", "T1"), newCluster(2, "src/B.java", "T2"))

	ctx, cancel := context.WithCancel(context.Background())

	repairer := adaptermocks.NewMockRepairer(t)
	repairer.EXPECT().
		Repair(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, adapter.RepairTask) error {
			cancel()
			return context.Canceled
		}).
		Once()

	err := domain.NewRepairDriver(repairer, 3).RepairAll(ctx, state, "/work/Chart-1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, state.Clusters[0].Repair.Exception)
}
