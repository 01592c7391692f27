package model

import (
	"fmt"
	"sort"
	"strings"
)

// RepairState is the lifecycle state of a cluster or of a whole run.
type RepairState int

const (
	// NotRepaired is the initial state of every cluster.
	NotRepaired RepairState = iota
	// RepairFailed means the patch was rejected or the repairer gave up.
	RepairFailed
	// RepairTestSuccess means the group's failing tests pass with the patch.
	RepairTestSuccess
	// RepairTestFailed means at least one of the group's failing tests still fails.
	RepairTestFailed
	// RepairSuccess means the full suite passes with the patch.
	RepairSuccess
	// RepairException is terminal: the environment or build is broken.
	RepairException
)

var repairStateNames = map[RepairState]string{
	NotRepaired:       "NOT_REPAIRED",
	RepairFailed:      "REPAIR_FAILED",
	RepairTestSuccess: "REPAIR_TEST_SUCCESS",
	RepairTestFailed:  "REPAIR_TEST_FAILED",
	RepairSuccess:     "REPAIR_SUCCESS",
	RepairException:   "REPAIR_EXCEPTION",
}

func (s RepairState) String() string {
	if name, ok := repairStateNames[s]; ok {
		return name
	}

	return fmt.Sprintf("RepairState(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s RepairState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *RepairState) UnmarshalText(text []byte) error {
	state, err := ParseRepairState(string(text))
	if err != nil {
		return err
	}

	*s = state

	return nil
}

// ParseRepairState parses the upper-case name of a state.
func ParseRepairState(name string) (RepairState, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for state, n := range repairStateNames {
		if n == name {
			return state, nil
		}
	}

	return NotRepaired, fmt.Errorf("unknown repair state %q", name)
}

// optimism orders run outcomes from worst to best for downgrade checks.
var optimism = map[RepairState]int{
	RepairException:   0,
	RepairFailed:      1,
	RepairTestFailed:  2,
	NotRepaired:       3,
	RepairTestSuccess: 4,
	RepairSuccess:     5,
}

// WorseThan reports whether s is a less favorable outcome than other.
func (s RepairState) WorseThan(other RepairState) bool {
	return optimism[s] < optimism[other]
}

// ClusterRepair is the per-cluster repair record maintained across the pipeline.
type ClusterRepair struct {
	State            RepairState `yaml:"state"`
	Count            int         `yaml:"count"`
	History          string      `yaml:"history,omitempty"`
	Exception        string      `yaml:"exception,omitempty"`
	FaultAnalysis    string      `yaml:"fault_analysis,omitempty"`
	PromptTokens     int         `yaml:"prompt_tokens"`
	CompletionTokens int         `yaml:"completion_tokens"`
}

// ClusterState is one independent repair unit.
type ClusterState struct {
	ID              int
	RelatedTests    []string
	FailedTests     []TestOutcome
	FaultCodes      []*FaultCodeInfo
	KeyTokens       map[Path][]string
	InvocationPaths []string
	Repair          ClusterRepair
}

// FaultFiles returns the distinct files touched by the cluster's fault codes.
func (c *ClusterState) FaultFiles() []Path {
	return Files(GroupByFile(c.FaultCodes))
}

// SharesTestWith reports whether the two clusters have a related test in common.
func (c *ClusterState) SharesTestWith(other *ClusterState) bool {
	tests := make(map[string]struct{}, len(c.RelatedTests))
	for _, t := range c.RelatedTests {
		tests[t] = struct{}{}
	}

	for _, t := range other.RelatedTests {
		if _, ok := tests[t]; ok {
			return true
		}
	}

	return false
}

// MergedGroup is the atomic unit of patch application and validation.
type MergedGroup struct {
	Key      string
	Tests    []string
	Clusters []*ClusterState
}

// FaultCodes returns the fault codes of every member cluster.
func (g *MergedGroup) FaultCodes() []*FaultCodeInfo {
	var codes []*FaultCodeInfo
	for _, c := range g.Clusters {
		codes = append(codes, c.FaultCodes...)
	}

	return codes
}

// SetState assigns state to every member cluster.
func (g *MergedGroup) SetState(state RepairState) {
	for _, c := range g.Clusters {
		c.Repair.State = state
	}
}

// GroupKey builds the key of a merged group from its sorted tests.
func GroupKey(tests []string) string {
	return strings.Join(tests, ",")
}

// SortedUnion returns the sorted, de-duplicated union of the given test sets.
func SortedUnion(sets ...[]string) []string {
	seen := make(map[string]struct{})

	var out []string

	for _, set := range sets {
		for _, t := range set {
			if _, ok := seen[t]; ok {
				continue
			}

			seen[t] = struct{}{}
			out = append(out, t)
		}
	}

	sort.Strings(out)

	return out
}

// TokenCounters accumulates token usage.
type TokenCounters struct {
	Prompt     int `yaml:"prompt"`
	Completion int `yaml:"completion"`
}

// Add accumulates other into t.
func (t *TokenCounters) Add(other TokenCounters) {
	t.Prompt += other.Prompt
	t.Completion += other.Completion
}

// MasterState is the run-level record of one repair attempt.
type MasterState struct {
	BugID       string
	Rank        int
	Try         int
	Clusters    []*ClusterState
	Groups      []*MergedGroup
	FaultCodes  []*FaultCodeInfo
	FailedTests TestOutcomes
	Result      RepairState
	Tokens      TokenCounters
	// Patch is set once an accepted patch has been emitted.
	Patch *PatchStats
}

// NewMasterState returns a run record with the optimistic starting result.
func NewMasterState(bugID string, rank, try int) *MasterState {
	return &MasterState{
		BugID:  bugID,
		Rank:   rank,
		Try:    try,
		Result: RepairTestSuccess,
	}
}

// Downgrade lowers the run result to state if state is worse. It never upgrades.
func (s *MasterState) Downgrade(state RepairState) {
	if state.WorseThan(s.Result) {
		s.Result = state
	}
}

// SetAll assigns state to the run and every cluster.
func (s *MasterState) SetAll(state RepairState) {
	s.Result = state
	for _, c := range s.Clusters {
		c.Repair.State = state
	}
}

// MarkException records a terminal environment failure on the run and every cluster.
func (s *MasterState) MarkException(err error) {
	s.SetAll(RepairException)
	for _, c := range s.Clusters {
		c.Repair.Exception = err.Error()
	}
}

// FaultFiles returns every file touched by the run's fault codes.
func (s *MasterState) FaultFiles() []Path {
	return Files(GroupByFile(s.FaultCodes))
}

// IterativeCount is the largest per-cluster repair count.
func (s *MasterState) IterativeCount() int {
	maxCount := 0
	for _, c := range s.Clusters {
		if c.Repair.Count > maxCount {
			maxCount = c.Repair.Count
		}
	}

	return maxCount
}

// SumTokens totals token usage across clusters into s.Tokens.
func (s *MasterState) SumTokens() TokenCounters {
	var total TokenCounters
	for _, c := range s.Clusters {
		total.Prompt += c.Repair.PromptTokens
		total.Completion += c.Repair.CompletionTokens
	}

	s.Tokens = total

	return total
}
