package model

import (
	"strconv"
	"time"
)

// RankResult is one row of a bug's result table: the outcome of one
// fault-localization rank (or the single perfect-localization pass).
type RankResult struct {
	BugID            string
	Rank             int
	Result           RepairState
	AttemptCount     int
	IterativeCount   int
	LastTokens       TokenCounters
	TotalTokens      TokenCounters
	AttemptDurations []time.Duration
}

// ResultHeader is the column header of the result table.
var ResultHeader = []string{
	"Bug_id",
	"Repair_Result",
	"Repair_Attempt_Count",
	"Repair_Iterative_Count",
	"Last_Input_Prompt_Tokens",
	"Last_Completion_Tokens",
	"Total_Input_Prompt_Tokens",
	"Total_Completion_Tokens",
}

// Record renders the row in ResultHeader column order.
func (r RankResult) Record() []string {
	return []string{
		r.BugID,
		r.Result.String(),
		strconv.Itoa(r.AttemptCount),
		strconv.Itoa(r.IterativeCount),
		strconv.Itoa(r.LastTokens.Prompt),
		strconv.Itoa(r.LastTokens.Completion),
		strconv.Itoa(r.TotalTokens.Prompt),
		strconv.Itoa(r.TotalTokens.Completion),
	}
}

// PatchStats summarizes an emitted patch diff.
type PatchStats struct {
	Files   int `yaml:"files"`
	Added   int `yaml:"added"`
	Deleted int `yaml:"deleted"`
}

// RunSummary is the per-bug summary persisted next to the result table.
type RunSummary struct {
	RunID      string        `yaml:"run_id"`
	BugID      string        `yaml:"bug_id"`
	Result     RepairState   `yaml:"result"`
	Ranks      int           `yaml:"ranks"`
	Attempts   int           `yaml:"attempts"`
	Iterations int           `yaml:"iterations"`
	Tokens     TokenCounters `yaml:"tokens"`
	Patch      *PatchStats   `yaml:"patch,omitempty"`
	Started    time.Time     `yaml:"started"`
	Duration   time.Duration `yaml:"duration"`
	Error      string        `yaml:"error,omitempty"`
}

// Succeeded reports whether the run produced an accepted patch.
func (s RunSummary) Succeeded() bool {
	return s.Result == RepairSuccess
}

// BuildResult is the outcome of a compile step. Output carries the compiler
// diagnostics when OK is false.
type BuildResult struct {
	OK     bool
	Output string
}

// ClusterRecord is the journaled outcome of one cluster.
type ClusterRecord struct {
	ID        int
	Files     []Path
	Tests     []string
	State     RepairState
	Count     int
	Exception string
}

// AttemptRecord is the journal entry of one finished attempt.
type AttemptRecord struct {
	BugID    string
	Rank     int
	Try      int
	Result   RepairState
	Groups   int
	Clusters []ClusterRecord
	Tokens   TokenCounters
	Duration time.Duration
	Error    string
}

// NewAttemptRecord snapshots state after an attempt that took d and ended with err.
func NewAttemptRecord(state *MasterState, d time.Duration, err error) AttemptRecord {
	record := AttemptRecord{
		BugID:    state.BugID,
		Rank:     state.Rank,
		Try:      state.Try,
		Result:   state.Result,
		Groups:   len(state.Groups),
		Tokens:   state.Tokens,
		Duration: d,
	}

	if err != nil {
		record.Error = err.Error()
	}

	for _, c := range state.Clusters {
		record.Clusters = append(record.Clusters, ClusterRecord{
			ID:        c.ID,
			Files:     c.FaultFiles(),
			Tests:     c.RelatedTests,
			State:     c.Repair.State,
			Count:     c.Repair.Count,
			Exception: c.Repair.Exception,
		})
	}

	return record
}
