package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/LinnaX7/PReMM/internal/model"
)

const timeoutInfo = "Time out error"

// BenchmarkLayout locates the source and build trees inside a working copy.
type BenchmarkLayout struct {
	SourceDir     string `yaml:"source_dir"`
	BuildDir      string `yaml:"build_dir"`
	TestSourceDir string `yaml:"test_source_dir"`
	TestBuildDir  string `yaml:"test_build_dir"`
}

// BenchmarkCommands are shell templates rendered with commandData.
type BenchmarkCommands struct {
	Checkout       string `yaml:"checkout"`
	CompileFiles   string `yaml:"compile_files"`
	CompileProject string `yaml:"compile_project"`
	TestCase       string `yaml:"test_case"`
	TestProject    string `yaml:"test_project"`
}

// BenchmarkTimeouts bounds each command kind.
type BenchmarkTimeouts struct {
	Checkout time.Duration `yaml:"checkout"`
	Compile  time.Duration `yaml:"compile"`
	TestCase time.Duration `yaml:"test_case"`
	Project  time.Duration `yaml:"test_project"`
}

// BenchmarkConfig is the YAML description of a command-driven dataset.
type BenchmarkConfig struct {
	Dataset           string            `yaml:"dataset"`
	Bugs              []string          `yaml:"bugs"`
	WorkRoot          string            `yaml:"work_root"`
	Layout            BenchmarkLayout   `yaml:"layout"`
	FaultLocationFile string            `yaml:"fault_location_file"`
	SuspiciousFile    string            `yaml:"suspicious_file"`
	Commands          BenchmarkCommands `yaml:"commands"`
	Timeouts          BenchmarkTimeouts `yaml:"timeouts"`
}

// LoadBenchmarkConfig reads a benchmark description and fills default timeouts.
func LoadBenchmarkConfig(path string) (*BenchmarkConfig, error) {
	// #nosec G304 - path comes from the user's configuration
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark config: %w", err)
	}

	cfg := &BenchmarkConfig{
		WorkRoot: filepath.Join(os.TempDir(), "premm"),
		Timeouts: BenchmarkTimeouts{
			Checkout: 10 * time.Minute,
			Compile:  5 * time.Minute,
			TestCase: 15 * time.Second,
			Project:  30 * time.Minute,
		},
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode benchmark config: %w", err)
	}

	if cfg.Dataset == "" {
		return nil, errors.New("benchmark config has no dataset name")
	}

	return cfg, nil
}

// CommandBenchmark implements BenchmarkProvider with shell commands.
type CommandBenchmark struct {
	cfg       *BenchmarkConfig
	workspace Workspace
}

// NewCommandBenchmark returns a provider for cfg. The workspace removes stale working copies.
func NewCommandBenchmark(cfg *BenchmarkConfig, workspace Workspace) *CommandBenchmark {
	return &CommandBenchmark{cfg: cfg, workspace: workspace}
}

// Dataset implements BenchmarkProvider.
func (b *CommandBenchmark) Dataset() string {
	return b.cfg.Dataset
}

// AllBugs implements BenchmarkProvider.
func (b *CommandBenchmark) AllBugs(_ context.Context) ([]string, error) {
	return append([]string(nil), b.cfg.Bugs...), nil
}

// Checkout implements BenchmarkProvider.
func (b *CommandBenchmark) Checkout(ctx context.Context, bugID string) (Project, error) {
	workDir := filepath.Join(b.cfg.WorkRoot, bugID)
	if err := b.workspace.RemoveAll(ctx, m.Path(workDir)); err != nil {
		return nil, fmt.Errorf("failed to clear working copy: %w", err)
	}

	if err := os.MkdirAll(b.cfg.WorkRoot, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create work root: %w", err)
	}

	p := &commandProject{cfg: b.cfg, workspace: b.workspace, bugID: bugID, workDir: workDir}

	out, err := p.run(ctx, b.cfg.Commands.Checkout, commandData{}, b.cfg.Timeouts.Checkout, b.cfg.WorkRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to check out %s: %w", bugID, err)
	}

	if out.ExitCode != 0 {
		return nil, fmt.Errorf("checkout of %s exited with status %d: %s", bugID, out.ExitCode, strings.TrimSpace(out.Combined()))
	}

	if p.faultLocation, err = p.render(b.cfg.FaultLocationFile, commandData{}); err != nil {
		return nil, err
	}

	if err := p.loadSuspicious(); err != nil {
		return nil, err
	}

	_, initial, err := p.TestProject(ctx)
	if err != nil {
		return nil, fmt.Errorf("the project failed to collect its initial failing tests: %w", err)
	}

	p.initFailing = initial

	slog.Info("Checked out bug", "bug", bugID, "workDir", workDir, "failing", len(initial), "suspicious", len(p.suspicious))

	return p, nil
}

type commandData struct {
	BugID      string
	WorkDir    string
	Files      string
	Test       string
	ReportFile string
}

type testReport struct {
	FailingCount int             `yaml:"failing_count"`
	Failing      []m.TestOutcome `yaml:"failing"`
}

type commandProject struct {
	cfg           *BenchmarkConfig
	workspace     Workspace
	bugID         string
	workDir       string
	faultLocation string
	suspicious    []string
	initFailing   m.TestOutcomes
}

func (p *commandProject) BugID() string             { return p.bugID }
func (p *commandProject) WorkDir() m.Path           { return m.Path(p.workDir) }
func (p *commandProject) SourceDir() m.Path         { return m.Path(p.cfg.Layout.SourceDir) }
func (p *commandProject) BuildDir() m.Path          { return m.Path(p.cfg.Layout.BuildDir) }
func (p *commandProject) TestSourceDir() m.Path     { return m.Path(p.cfg.Layout.TestSourceDir) }
func (p *commandProject) TestBuildDir() m.Path      { return m.Path(p.cfg.Layout.TestBuildDir) }
func (p *commandProject) FaultLocationFile() m.Path { return m.Path(p.faultLocation) }
func (p *commandProject) SuspiciousMethodCount() int {
	return len(p.suspicious)
}

func (p *commandProject) InitFailingTests() m.TestOutcomes {
	out := make(m.TestOutcomes, len(p.initFailing))
	for id, outcome := range p.initFailing {
		out[id] = outcome
	}

	return out
}

func (p *commandProject) SuspiciousMethods(rank int) ([]string, error) {
	if rank < 1 || rank > len(p.suspicious) {
		return nil, fmt.Errorf("suspicious rank %d out of range 1..%d", rank, len(p.suspicious))
	}

	return []string{p.suspicious[rank-1]}, nil
}

func (p *commandProject) CompileFiles(ctx context.Context, files []m.Path) (m.BuildResult, error) {
	return p.compile(ctx, p.cfg.Commands.CompileFiles, commandData{Files: strings.Join(m.Strings(files), " ")})
}

func (p *commandProject) CompileProject(ctx context.Context) (m.BuildResult, error) {
	return p.compile(ctx, p.cfg.Commands.CompileProject, commandData{})
}

func (p *commandProject) compile(ctx context.Context, command string, data commandData) (m.BuildResult, error) {
	out, err := p.run(ctx, command, data, p.cfg.Timeouts.Compile, p.workDir)
	if errors.Is(err, ErrProcessTimeout) {
		return m.BuildResult{OK: false, Output: err.Error()}, nil
	}

	if err != nil {
		return m.BuildResult{}, err
	}

	if out.ExitCode != 0 {
		return m.BuildResult{OK: false, Output: out.Combined()}, nil
	}

	return m.BuildResult{OK: true}, nil
}

func (p *commandProject) TestFailedTestCases(ctx context.Context, tests []string) (m.TestOutcomes, error) {
	failing := make(m.TestOutcomes)

	for _, test := range tests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		outcomes, err := p.runTestCase(ctx, test)
		if err != nil {
			return nil, err
		}

		for id, outcome := range outcomes {
			failing[id] = outcome
		}
	}

	return failing, nil
}

func (p *commandProject) runTestCase(ctx context.Context, test string) (m.TestOutcomes, error) {
	report, cleanup, err := p.reportFile()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	out, err := p.run(ctx, p.cfg.Commands.TestCase, commandData{Test: test, ReportFile: report}, p.cfg.Timeouts.TestCase, p.workDir)
	if errors.Is(err, ErrProcessTimeout) {
		return m.TestOutcomes{test: {TestID: test, Kind: m.OutcomeTimeout, FailingInfo: timeoutInfo}}, nil
	}

	if err != nil {
		return m.TestOutcomes{test: {TestID: test, Kind: m.OutcomeError, FailingInfo: "Exception: " + err.Error()}}, nil
	}

	parsed, ok, err := readTestReport(report)
	if err != nil {
		return nil, err
	}

	if ok {
		return outcomesOf(parsed), nil
	}

	if out.ExitCode != 0 {
		return m.TestOutcomes{test: {TestID: test, Kind: m.OutcomeFailed, FailingInfo: out.Combined()}}, nil
	}

	return m.TestOutcomes{}, nil
}

func (p *commandProject) TestProject(ctx context.Context) (int, m.TestOutcomes, error) {
	report, cleanup, err := p.reportFile()
	if err != nil {
		return 0, nil, err
	}
	defer cleanup()

	out, err := p.run(ctx, p.cfg.Commands.TestProject, commandData{ReportFile: report}, p.cfg.Timeouts.Project, p.workDir)
	if err != nil {
		return 0, nil, err
	}

	parsed, ok, err := readTestReport(report)
	if err != nil {
		return 0, nil, err
	}

	if !ok {
		return 0, nil, fmt.Errorf("test command wrote no report (status %d): %s", out.ExitCode, strings.TrimSpace(out.Combined()))
	}

	outcomes := outcomesOf(parsed)

	count := parsed.FailingCount
	if count < len(outcomes) {
		count = len(outcomes)
	}

	return count, outcomes, nil
}

func (p *commandProject) RecoverFiles(ctx context.Context, files []m.Path) error {
	res, err := p.CompileFiles(ctx, files)
	if err != nil {
		return err
	}

	if !res.OK {
		slog.Warn("Recompiling recovered files failed", "bug", p.bugID, "output", res.Output)
	}

	return nil
}

func (p *commandProject) Cleanup(ctx context.Context) error {
	return p.workspace.RemoveAll(ctx, m.Path(p.workDir))
}

func (p *commandProject) loadSuspicious() error {
	path, err := p.render(p.cfg.SuspiciousFile, commandData{})
	if err != nil || path == "" {
		return err
	}

	// #nosec G304 - path comes from the benchmark configuration
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("No suspicious method list", "bug", p.bugID, "path", path)
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to open suspicious method list: %w", err)
	}

	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" && !strings.HasPrefix(line, "#") {
			p.suspicious = append(p.suspicious, line)
		}
	}

	return scanner.Err()
}

func (p *commandProject) reportFile() (string, func(), error) {
	f, err := os.CreateTemp("", "premm-report-*.yaml")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create report file: %w", err)
	}

	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)

	return name, func() { _ = os.Remove(name) }, nil
}

func (p *commandProject) render(text string, data commandData) (string, error) {
	if text == "" {
		return "", nil
	}

	data.BugID = p.bugID
	data.WorkDir = p.workDir

	tmpl, err := template.New("command").Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %q: %w", text, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", text, err)
	}

	return buf.String(), nil
}

func (p *commandProject) run(ctx context.Context, command string, data commandData, timeout time.Duration, dir string) (processResult, error) {
	if command == "" {
		return processResult{}, errors.New("benchmark command is not configured")
	}

	rendered, err := p.render(command, data)
	if err != nil {
		return processResult{}, err
	}

	slog.Debug("Running benchmark command", "bug", p.bugID, "command", rendered)

	res, err := runProcess(ctx, processSpec{Command: rendered, Dir: dir, Timeout: timeout})

	slog.Debug("Benchmark command finished", "bug", p.bugID, "exitCode", res.ExitCode, "duration", res.Duration)

	return res, err
}

func readTestReport(path string) (testReport, bool, error) {
	// #nosec G304 - path is a temp file created by this process
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return testReport{}, false, nil
	}

	if err != nil {
		return testReport{}, false, fmt.Errorf("failed to read test report: %w", err)
	}

	var report testReport
	if err := yaml.Unmarshal(raw, &report); err != nil {
		return testReport{}, false, fmt.Errorf("failed to decode test report: %w", err)
	}

	return report, true, nil
}

func outcomesOf(report testReport) m.TestOutcomes {
	outcomes := make(m.TestOutcomes, len(report.Failing))
	for _, outcome := range report.Failing {
		if outcome.Kind == "" {
			outcome.Kind = m.OutcomeFailed
		}

		outcomes[outcome.TestID] = outcome
	}

	return outcomes
}
