package adapter

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/LinnaX7/PReMM/internal/model"
)

func rankResult(bugID string, result m.RepairState, attempts int) m.RankResult {
	return m.RankResult{
		BugID:          bugID,
		Result:         result,
		AttemptCount:   attempts,
		IterativeCount: 2,
		LastTokens:     m.TokenCounters{Prompt: 100, Completion: 10},
		TotalTokens:    m.TokenCounters{Prompt: 300, Completion: 30},
	}
}

func TestFileReportStore_Results(t *testing.T) {
	output := t.TempDir()
	store := NewReportStore(m.Path(output), 5)
	ctx := context.Background()

	assert.False(t, store.HasResult("Chart-1"))

	require.NoError(t, store.AppendResult(ctx, rankResult("Lang-7", m.RepairSuccess, 1)))
	require.NoError(t, store.AppendResult(ctx, rankResult("Chart-1", m.RepairFailed, 3)))
	require.NoError(t, store.AppendResult(ctx, rankResult("Chart-1", m.RepairTestFailed, 2)))

	assert.True(t, store.HasResult("Chart-1"))

	table := readWorkFile(t, output, "Chart-1/repair_result-5.csv")
	assert.Equal(t, `Bug_id,Repair_Result,Repair_Attempt_Count,Repair_Iterative_Count,Last_Input_Prompt_Tokens,Last_Completion_Tokens,Total_Input_Prompt_Tokens,Total_Completion_Tokens
Chart-1,REPAIR_FAILED,3,2,100,10,300,30
Chart-1,REPAIR_TEST_FAILED,2,2,100,10,300,30
`, table)

	rows, err := store.LoadResults(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Chart-1", rows[0].BugID)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, m.RepairFailed, rows[0].Result)
	assert.Equal(t, 2, rows[1].Rank)
	assert.Equal(t, m.RepairTestFailed, rows[1].Result)
	assert.Equal(t, "Lang-7", rows[2].BugID)

	want := rankResult("Lang-7", m.RepairSuccess, 1)
	want.Rank = 1
	assert.Equal(t, want, rows[2])
}

func TestFileReportStore_ChainLengthNamesTheTable(t *testing.T) {
	output := t.TempDir()
	ctx := context.Background()

	require.NoError(t, NewReportStore(m.Path(output), 5).AppendResult(ctx, rankResult("Chart-1", m.RepairFailed, 1)))

	other := NewReportStore(m.Path(output), 10)
	assert.False(t, other.HasResult("Chart-1"))

	rows, err := other.LoadResults(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFileReportStore_CorruptTable(t *testing.T) {
	output := t.TempDir()
	writeWorkFile(t, output, "Chart-1/repair_result-5.csv", "header,a,b,c,d,e,f,g\nChart-1,FIXED,1,1,1,1,1,1\n")

	_, err := NewReportStore(m.Path(output), 5).LoadResults(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load results of Chart-1")
	assert.Contains(t, err.Error(), `unknown repair state "FIXED"`)
}

func TestFileReportStore_Summaries(t *testing.T) {
	output := t.TempDir()
	store := NewReportStore(m.Path(output), 5)
	ctx := context.Background()

	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	summary := m.RunSummary{
		RunID:      "run-1",
		BugID:      "Chart-1",
		Result:     m.RepairSuccess,
		Ranks:      2,
		Attempts:   4,
		Iterations: 3,
		Tokens:     m.TokenCounters{Prompt: 1000, Completion: 100},
		Patch:      &m.PatchStats{Files: 1, Added: 2, Deleted: 2},
		Started:    started,
		Duration:   90 * time.Second,
	}

	require.NoError(t, store.SaveSummary(ctx, summary))
	require.NoError(t, store.SaveSummary(ctx, m.RunSummary{BugID: "Lang-7", Result: m.RepairFailed, Error: "no candidates"}))

	summaries, err := store.LoadSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, summary, summaries[0])
	assert.Equal(t, "no candidates", summaries[1].Error)
	assert.Nil(t, summaries[1].Patch)
}

func TestFileReportStore_EmptyOutput(t *testing.T) {
	store := NewReportStore(m.Path(filepath.Join(t.TempDir(), "absent")), 5)
	ctx := context.Background()

	rows, err := store.LoadResults(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	summaries, err := store.LoadSummaries(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)

	attempts, err := store.LoadAttempts(ctx, "Chart-1")
	require.NoError(t, err)
	assert.Empty(t, attempts)
}

func TestFileReportStore_Attempts(t *testing.T) {
	output := t.TempDir()
	store := NewReportStore(m.Path(output), 5)
	ctx := context.Background()

	first := m.AttemptRecord{
		BugID:  "Chart-1",
		Rank:   1,
		Try:    1,
		Result: m.RepairTestFailed,
		Groups: 1,
		Clusters: []m.ClusterRecord{
			{ID: 1, Files: []m.Path{"src/Calculator.java"}, Tests: []string{"CalculatorTest::testAdd"}, State: m.RepairTestFailed, Count: 2},
		},
		Tokens:   m.TokenCounters{Prompt: 500, Completion: 50},
		Duration: 3 * time.Second,
	}
	second := m.AttemptRecord{BugID: "Chart-1", Rank: 1, Try: 2, Result: m.RepairException, Error: "compile broke"}

	require.NoError(t, store.AppendAttempt(ctx, first))
	require.NoError(t, store.AppendAttempt(ctx, second))
	require.NoError(t, store.AppendAttempt(ctx, m.AttemptRecord{BugID: "Lang-7", Rank: 1, Try: 1}))

	attempts, err := store.LoadAttempts(ctx, "Chart-1")
	require.NoError(t, err)
	assert.Equal(t, []m.AttemptRecord{first, second}, attempts)

	attempts, err = store.LoadAttempts(ctx, "Lang-7")
	require.NoError(t, err)
	assert.Len(t, attempts, 1)
}

func TestFileReportStore_CancelledContext(t *testing.T) {
	store := NewReportStore(m.Path(t.TempDir()), 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.AppendResult(ctx, rankResult("Chart-1", m.RepairFailed, 1)), context.Canceled)
	require.ErrorIs(t, store.SaveSummary(ctx, m.RunSummary{BugID: "Chart-1"}), context.Canceled)
	require.ErrorIs(t, store.AppendAttempt(ctx, m.AttemptRecord{BugID: "Chart-1"}), context.Canceled)

	assert.False(t, store.HasResult("Chart-1"))
}
