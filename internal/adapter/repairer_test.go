package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/LinnaX7/PReMM/internal/model"
)

func repairCluster() *m.ClusterState {
	return &m.ClusterState{
		ID:           1,
		RelatedTests: []string{"CalculatorTest::testAdd"},
		FailedTests:  []m.TestOutcome{{TestID: "CalculatorTest::testAdd", Kind: m.OutcomeFailed, FailingInfo: "expected 3"}},
		FaultCodes:   calculatorPatch(calculatorSource, calculatorSource)[0].Snippets,
		Repair:       m.ClusterRepair{Count: 1, PromptTokens: 100, CompletionTokens: 10},
	}
}

func TestCommandRepairer_Repair(t *testing.T) {
	dir := t.TempDir()
	writeWorkFile(t, dir, "reply.yaml", `patches:
  "Calculator#add(int,int)": |
    fixed add
state: REPAIR_TEST_SUCCESS
count: 2
history: tried twice
fault_analysis: off by sign
prompt_tokens: 500
completion_tokens: 50
`)

	cluster := repairCluster()
	repairer := NewCommandRepairer("cat > request.yaml; cat reply.yaml", time.Minute)

	err := repairer.Repair(context.Background(), RepairTask{BugID: "Chart-1", WorkDir: m.Path(dir), Budget: 3, Cluster: cluster})
	require.NoError(t, err)

	assert.Equal(t, "fixed add\n", cluster.FaultCodes[0].RepairedCode)
	assert.Equal(t, calculatorSource, cluster.FaultCodes[1].RepairedCode, "snippets without a patch are untouched")

	assert.Equal(t, m.RepairTestSuccess, cluster.Repair.State)
	assert.Equal(t, 3, cluster.Repair.Count)
	assert.Equal(t, 600, cluster.Repair.PromptTokens)
	assert.Equal(t, 60, cluster.Repair.CompletionTokens)
	assert.Equal(t, "tried twice", cluster.Repair.History)
	assert.Equal(t, "off by sign", cluster.Repair.FaultAnalysis)

	var request repairRequest
	require.NoError(t, yaml.Unmarshal([]byte(readWorkFile(t, dir, "request.yaml")), &request))
	assert.Equal(t, "Chart-1", request.BugID)
	assert.Equal(t, 3, request.Budget)
	assert.Equal(t, 1, request.ClusterID)
	assert.Equal(t, []string{"CalculatorTest::testAdd"}, request.RelatedTests)
	assert.Len(t, request.FaultCodes, 2)
	assert.Equal(t, 1, request.Previous.Count)
}

func TestCommandRepairer_RequestKeepsIndentation(t *testing.T) {
	dir := t.TempDir()
	writeWorkFile(t, dir, "reply.yaml", "count: 1\n")

	faulty := "    public int add(int a, int b) {\n        return a - b;\n    }"

	cluster := repairCluster()
	cluster.FaultCodes[0].FaultCode = faulty
	cluster.FaultCodes[0].RepairedCode = faulty

	repairer := NewCommandRepairer("cat > request.yaml; cat reply.yaml", time.Minute)
	require.NoError(t, repairer.Repair(context.Background(), RepairTask{BugID: "Chart-1", WorkDir: m.Path(dir), Budget: 3, Cluster: cluster}))

	var request repairRequest
	require.NoError(t, yaml.Unmarshal([]byte(readWorkFile(t, dir, "request.yaml")), &request))
	require.Len(t, request.FaultCodes, 2)

	assert.Equal(t, faulty, request.FaultCodes[0].FaultCode)
	assert.Equal(t, faulty, request.FaultCodes[0].RepairedCode)
	assert.Equal(t, calculatorSource, request.FaultCodes[1].RepairedCode)
}

func TestCommandRepairer_KeepsStateWithoutReplyState(t *testing.T) {
	dir := t.TempDir()
	writeWorkFile(t, dir, "reply.yaml", "count: 1\n")

	cluster := repairCluster()
	cluster.Repair.State = m.RepairTestFailed

	err := NewCommandRepairer("cat reply.yaml", time.Minute).
		Repair(context.Background(), RepairTask{BugID: "Chart-1", WorkDir: m.Path(dir), Cluster: cluster})
	require.NoError(t, err)

	assert.Equal(t, m.RepairTestFailed, cluster.Repair.State)
	assert.Equal(t, 2, cluster.Repair.Count)
}

func TestCommandRepairer_Failures(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    string
	}{
		{name: "non-zero exit", command: "echo quota exceeded >&2; exit 4", want: "repairer exited with status 4: quota exceeded"},
		{name: "malformed reply", command: "echo 'patches: [unclosed'", want: "failed to decode repair reply"},
		{name: "unknown state", command: "echo 'state: FIXED'", want: "unknown repair state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cluster := repairCluster()

			err := NewCommandRepairer(tt.command, time.Minute).
				Repair(context.Background(), RepairTask{BugID: "Chart-1", WorkDir: m.Path(t.TempDir()), Cluster: cluster})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, 1, cluster.Repair.Count, "a failed call leaves the record alone")
		})
	}
}

func TestCommandRepairer_Timeout(t *testing.T) {
	err := NewCommandRepairer("sleep 5", 50*time.Millisecond).
		Repair(context.Background(), RepairTask{BugID: "Chart-1", WorkDir: m.Path(t.TempDir()), Cluster: repairCluster()})

	assert.ErrorIs(t, err, ErrProcessTimeout)
}

type countingRepairer struct {
	calls int
	err   error
}

func (c *countingRepairer) Repair(_ context.Context, _ RepairTask) error {
	c.calls++
	return c.err
}

func TestRateLimitedRepairer_Delegates(t *testing.T) {
	boom := errors.New("boom")
	inner := &countingRepairer{err: boom}

	limited := NewRateLimitedRepairer(inner, 0)

	for range 3 {
		assert.ErrorIs(t, limited.Repair(context.Background(), RepairTask{}), boom)
	}

	assert.Equal(t, 3, inner.calls)
}

func TestRateLimitedRepairer_CancelledWhileWaiting(t *testing.T) {
	inner := &countingRepairer{}
	limited := NewRateLimitedRepairer(inner, 0.001)

	require.NoError(t, limited.Repair(context.Background(), RepairTask{}), "the first call uses the burst")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := limited.Repair(ctx, RepairTask{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to wait for repair slot")
	assert.Equal(t, 1, inner.calls)
}
