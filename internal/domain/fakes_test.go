package domain_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/LinnaX7/PReMM/internal/adapter"
	m "github.com/LinnaX7/PReMM/internal/model"
)

// eventLog records the order of working-copy operations.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, fmt.Sprintf(format, args...))
}

func (l *eventLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.events...)
}

// fakeWorkspace tracks which files currently hold patched content.
type fakeWorkspace struct {
	log        *eventLog
	applied    map[m.Path]bool
	modifyErr  error
	recoverErr error
	removed    []m.Path
	forgotten  []m.Path
}

func newFakeWorkspace(log *eventLog) *fakeWorkspace {
	return &fakeWorkspace{log: log, applied: make(map[m.Path]bool)}
}

func (w *fakeWorkspace) ModifyFiles(_ context.Context, _ m.Path, patches []m.FilePatch) error {
	if w.modifyErr != nil {
		return w.modifyErr
	}

	files := m.Files(patches)
	for _, f := range files {
		w.applied[f] = true
	}

	w.log.add("modify %s", joinPaths(files))

	return nil
}

func (w *fakeWorkspace) RecoverFiles(_ context.Context, _ m.Path, files []m.Path) error {
	if w.recoverErr != nil {
		return w.recoverErr
	}

	for _, f := range files {
		delete(w.applied, f)
	}

	w.log.add("recover %s", joinPaths(files))

	return nil
}

func (w *fakeWorkspace) Original(_, _ m.Path) ([]byte, bool) { return nil, false }

func (w *fakeWorkspace) ReadFile(_, _ m.Path) ([]byte, error) { return nil, nil }

func (w *fakeWorkspace) Forget(workDir m.Path) { w.forgotten = append(w.forgotten, workDir) }

func (w *fakeWorkspace) RemoveAll(_ context.Context, workDir m.Path) error {
	w.removed = append(w.removed, workDir)
	return nil
}

func (w *fakeWorkspace) appliedFiles() string {
	files := make([]m.Path, 0, len(w.applied))
	for f := range w.applied {
		files = append(files, f)
	}

	return joinPaths(files)
}

// fakeProject is a scripted benchmark project.
type fakeProject struct {
	log       *eventLog
	workspace *fakeWorkspace

	bugID       string
	initFailing m.TestOutcomes
	suspicious  [][]string

	// groupOutcomes maps a sorted, comma-joined test list to its failures.
	groupOutcomes map[string]m.TestOutcomes
	groupErr      error
	compileFiles  m.BuildResult
	compileAll    m.BuildResult

	suiteFailing  int
	suiteOutcomes m.TestOutcomes
	suiteErr      error

	// appliedAtTest records the patched files seen by each targeted test run.
	appliedAtTest  []string
	appliedAtSuite string
	cleaned        bool
}

func newFakeProject(log *eventLog, workspace *fakeWorkspace, bugID string, failing ...string) *fakeProject {
	outcomes := m.TestOutcomes{}
	for _, t := range failing {
		outcomes[t] = m.TestOutcome{TestID: t, Kind: m.OutcomeFailed, FailingInfo: "expected:<1> but was:<2>"}
	}

	return &fakeProject{
		log:           log,
		workspace:     workspace,
		bugID:         bugID,
		initFailing:   outcomes,
		groupOutcomes: map[string]m.TestOutcomes{},
		compileFiles:  m.BuildResult{OK: true},
		compileAll:    m.BuildResult{OK: true},
	}
}

var _ adapter.Project = (*fakeProject)(nil)

func (p *fakeProject) BugID() string             { return p.bugID }
func (p *fakeProject) WorkDir() m.Path           { return m.Path("/work/" + p.bugID) }
func (p *fakeProject) SourceDir() m.Path         { return "src/main/java" }
func (p *fakeProject) BuildDir() m.Path          { return "target/classes" }
func (p *fakeProject) TestSourceDir() m.Path     { return "src/test/java" }
func (p *fakeProject) TestBuildDir() m.Path      { return "target/test-classes" }
func (p *fakeProject) FaultLocationFile() m.Path { return "/faults/" + m.Path(p.bugID) + ".json" }

func (p *fakeProject) InitFailingTests() m.TestOutcomes {
	out := make(m.TestOutcomes, len(p.initFailing))
	for k, v := range p.initFailing {
		out[k] = v
	}

	return out
}

func (p *fakeProject) SuspiciousMethodCount() int { return len(p.suspicious) }

func (p *fakeProject) SuspiciousMethods(rank int) ([]string, error) {
	if rank < 1 || rank > len(p.suspicious) {
		return nil, fmt.Errorf("rank %d out of range", rank)
	}

	return p.suspicious[rank-1], nil
}

func (p *fakeProject) CompileFiles(_ context.Context, files []m.Path) (m.BuildResult, error) {
	p.log.add("compile %s", joinPaths(files))
	return p.compileFiles, nil
}

func (p *fakeProject) CompileProject(_ context.Context) (m.BuildResult, error) {
	p.log.add("compile-project")
	return p.compileAll, nil
}

func (p *fakeProject) TestFailedTestCases(_ context.Context, tests []string) (m.TestOutcomes, error) {
	key := strings.Join(sortedCopy(tests), ",")
	p.log.add("test %s", key)
	p.appliedAtTest = append(p.appliedAtTest, p.workspace.appliedFiles())

	if p.groupErr != nil {
		return nil, p.groupErr
	}

	return p.groupOutcomes[key], nil
}

func (p *fakeProject) TestProject(_ context.Context) (int, m.TestOutcomes, error) {
	p.log.add("suite")
	p.appliedAtSuite = p.workspace.appliedFiles()

	return p.suiteFailing, p.suiteOutcomes, p.suiteErr
}

func (p *fakeProject) RecoverFiles(_ context.Context, files []m.Path) error {
	p.log.add("rebuild %s", joinPaths(files))
	return nil
}

func (p *fakeProject) Cleanup(_ context.Context) error {
	p.cleaned = true
	return nil
}

// fakeAnalysis serves a fixed analysis result.
type fakeAnalysis struct {
	result     *m.AnalysisResult
	err        error
	related    []string
	relatedErr error
	requests   []adapter.AnalysisRequest
}

func (a *fakeAnalysis) Analyze(_ context.Context, req adapter.AnalysisRequest) (*m.AnalysisResult, error) {
	a.requests = append(a.requests, req)
	if a.err != nil {
		return nil, a.err
	}

	return a.result, nil
}

func (a *fakeAnalysis) MineKeyTokens(_ context.Context, _, file m.Path) ([]string, error) {
	return []string{"token:" + string(file)}, nil
}

func (a *fakeAnalysis) RelatedTests(_ context.Context, _ adapter.RelatedRequest) ([]string, error) {
	return a.related, a.relatedErr
}

// patchingRepairer writes a fixed repaired text into every fault code.
type patchingRepairer struct {
	count  int
	tokens m.TokenCounters
	err    error
}

func (r *patchingRepairer) Repair(_ context.Context, task adapter.RepairTask) error {
	if r.err != nil {
		return r.err
	}

	for _, code := range task.Cluster.FaultCodes {
		code.RepairedCode = "// repaired\n" + code.FaultCode
	}

	task.Cluster.Repair.State = m.RepairTestSuccess
	task.Cluster.Repair.Count += r.count
	task.Cluster.Repair.PromptTokens += r.tokens.Prompt
	task.Cluster.Repair.CompletionTokens += r.tokens.Completion

	return nil
}

// recordingEmitter remembers what was emitted.
type recordingEmitter struct {
	diffs   []string
	patches int
	stats   m.PatchStats
}

func (e *recordingEmitter) EmitDiff(_ context.Context, bugID string, _ m.Path, files []m.Path) (m.PatchStats, error) {
	e.diffs = append(e.diffs, bugID+":"+joinPaths(files))

	return e.stats, nil
}

func (e *recordingEmitter) EmitPatchFile(_ context.Context, _ string, codes []*m.FaultCodeInfo) error {
	e.patches += len(codes)
	return nil
}

// analysisFor builds an analysis result from method -> file and group definitions.
func analysisFor(methods map[string]m.Path, groups ...m.MethodGroup) *m.AnalysisResult {
	result := &m.AnalysisResult{
		Methods: make(map[string]*m.FaultCodeInfo, len(methods)),
		Groups:  groups,
		Paths:   make(map[string]string, len(methods)),
	}

	line := 10

	for sig, file := range methods {
		result.Methods[sig] = &m.FaultCodeInfo{
			Signature:    sig,
			FilePath:     file,
			LineBegin:    line,
			LineEnd:      line + 2,
			FaultCode:    "return a - b;",
			RepairedCode: "return a - b;",
		}
		result.Paths[sig] = "Test->" + sig
		line += 10
	}

	return result
}

func sortedCopy(values []string) []string {
	out := append([]string(nil), values...)
	sort.Strings(out)

	return out
}

func joinPaths(files []m.Path) string {
	return strings.Join(sortedCopy(m.Strings(files)), ",")
}
