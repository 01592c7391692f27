package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/LinnaX7/PReMM/internal/model"
)

// ErrAnalysisTimeout is returned when the analysis worker exceeds its budget.
var ErrAnalysisTimeout = errors.New("analysis timed out")

// Analysis modes understood by the analysis worker.
const (
	analysisModeAnalyze   = "analyze"
	analysisModeKeyTokens = "key_tokens"
	analysisModeRelated   = "related_tests"
)

// AnalysisRequest selects the faulty methods to analyze for one bug.
// Exactly one of FaultLocationFile and SuspiciousMethods is used: the file
// for perfect localization, the methods for a ranked candidate.
type AnalysisRequest struct {
	Dataset           string   `yaml:"dataset"`
	BugID             string   `yaml:"bug_id"`
	Mode              string   `yaml:"localization"`
	WorkDir           m.Path   `yaml:"work_dir"`
	SourceDir         m.Path   `yaml:"source_dir"`
	BuildDir          m.Path   `yaml:"build_dir"`
	TestBuildDir      m.Path   `yaml:"test_build_dir"`
	FailingTests      []string `yaml:"failing_tests"`
	FaultLocationFile m.Path   `yaml:"fault_location_file,omitempty"`
	SuspiciousMethods []string `yaml:"suspicious_methods,omitempty"`
}

// CacheKey identifies the request's result across runs.
func (r AnalysisRequest) CacheKey() string {
	return strings.Join([]string{r.Dataset, r.BugID, r.Mode}, "/")
}

// RelatedRequest asks which of the failing tests exercise the fault files.
type RelatedRequest struct {
	WorkDir      m.Path   `yaml:"work_dir"`
	SourceDir    m.Path   `yaml:"source_dir"`
	BuildDir     m.Path   `yaml:"build_dir"`
	TestBuildDir m.Path   `yaml:"test_build_dir"`
	FailingTests []string `yaml:"failing_tests"`
	FaultFiles   []m.Path `yaml:"fault_files"`
}

// AnalysisProvider is the static-analysis bridge.
type AnalysisProvider interface {
	// Analyze locates the faulty methods, groups them by related failing
	// tests, and reports the invocation path from a test to each method.
	Analyze(ctx context.Context, req AnalysisRequest) (*m.AnalysisResult, error)
	// MineKeyTokens extracts identifiers declared in a source file.
	MineKeyTokens(ctx context.Context, workDir, file m.Path) ([]string, error)
	// RelatedTests filters failing tests down to those related to the fault files.
	RelatedTests(ctx context.Context, req RelatedRequest) ([]string, error)
}

// ProcessAnalyzer runs the analysis command once per call in a fresh
// process. Requests are written as YAML to its stdin and the answer is read
// as YAML from its stdout.
type ProcessAnalyzer struct {
	command string
	timeout time.Duration
}

// NewProcessAnalyzer returns an analyzer running command with the given per-call timeout.
func NewProcessAnalyzer(command string, timeout time.Duration) *ProcessAnalyzer {
	return &ProcessAnalyzer{command: command, timeout: timeout}
}

type analysisEnvelope struct {
	Mode    string           `yaml:"mode"`
	Analyze *AnalysisRequest `yaml:"analyze,omitempty"`
	File    m.Path           `yaml:"file,omitempty"`
	Related *RelatedRequest  `yaml:"related,omitempty"`
}

type analysisMethod struct {
	FilePath       string   `yaml:"file_path"`
	LineBegin      int      `yaml:"line_begin"`
	LineEnd        int      `yaml:"line_end"`
	SimilarMethods []string `yaml:"similar_methods"`
	FaultLineCodes []string `yaml:"fault_line_codes"`
}

type analysisReply struct {
	Methods map[string]analysisMethod `yaml:"methods"`
	Groups  []m.MethodGroup           `yaml:"groups"`
	Paths   map[string]string         `yaml:"paths"`
	Tokens  []string                  `yaml:"tokens"`
	Tests   []string                  `yaml:"tests"`
	Error   string                    `yaml:"error"`
}

// Analyze implements AnalysisProvider.
func (a *ProcessAnalyzer) Analyze(ctx context.Context, req AnalysisRequest) (*m.AnalysisResult, error) {
	reply, err := a.call(ctx, string(req.WorkDir), analysisEnvelope{Mode: analysisModeAnalyze, Analyze: &req})
	if err != nil {
		return nil, err
	}

	result := &m.AnalysisResult{
		Methods: make(map[string]*m.FaultCodeInfo, len(reply.Methods)),
		Groups:  reply.Groups,
		Paths:   reply.Paths,
	}

	for signature, method := range reply.Methods {
		info := &m.FaultCodeInfo{
			Signature:      signature,
			FilePath:       m.Path(filepath.Join(string(req.SourceDir), method.FilePath)),
			LineBegin:      method.LineBegin,
			LineEnd:        method.LineEnd,
			SimilarMethods: method.SimilarMethods,
			FaultLineCodes: method.FaultLineCodes,
		}

		code, err := readLineRange(filepath.Join(string(req.WorkDir), string(info.FilePath)), info.LineBegin, info.LineEnd)
		if err != nil {
			slog.Error("Failed to read fault code", "signature", signature, "file", info.FilePath, "error", err)
			return nil, fmt.Errorf("failed to read fault code of %s: %w", signature, err)
		}

		info.FaultCode = code
		info.RepairedCode = code
		result.Methods[signature] = info
	}

	slog.Info("Analysis finished", "bug", req.BugID, "methods", len(result.Methods), "groups", len(result.Groups))

	return result, nil
}

// MineKeyTokens implements AnalysisProvider.
func (a *ProcessAnalyzer) MineKeyTokens(ctx context.Context, workDir, file m.Path) ([]string, error) {
	reply, err := a.call(ctx, string(workDir), analysisEnvelope{
		Mode: analysisModeKeyTokens,
		File: m.Path(filepath.Join(string(workDir), string(file))),
	})
	if err != nil {
		return nil, err
	}

	return reply.Tokens, nil
}

// RelatedTests implements AnalysisProvider.
func (a *ProcessAnalyzer) RelatedTests(ctx context.Context, req RelatedRequest) ([]string, error) {
	reply, err := a.call(ctx, string(req.WorkDir), analysisEnvelope{Mode: analysisModeRelated, Related: &req})
	if err != nil {
		return nil, err
	}

	return reply.Tests, nil
}

func (a *ProcessAnalyzer) call(ctx context.Context, dir string, envelope analysisEnvelope) (*analysisReply, error) {
	input, err := marshalYAML(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis request: %w", err)
	}

	res, err := runProcess(ctx, processSpec{
		Command: a.command,
		Dir:     dir,
		Stdin:   input,
		Timeout: a.timeout,
	})
	if err != nil {
		if errors.Is(err, ErrProcessTimeout) {
			return nil, fmt.Errorf("%w: %s", ErrAnalysisTimeout, envelope.Mode)
		}

		return nil, fmt.Errorf("failed to run analysis: %w", err)
	}

	if res.ExitCode != 0 {
		slog.Error("Analysis worker failed", "mode", envelope.Mode, "exitCode", res.ExitCode, "stderr", string(res.Stderr))
		return nil, fmt.Errorf("analysis worker exited with status %d: %s", res.ExitCode, strings.TrimSpace(string(res.Stderr)))
	}

	var reply analysisReply
	if err := yaml.Unmarshal(res.Stdout, &reply); err != nil {
		return nil, fmt.Errorf("failed to decode analysis reply: %w", err)
	}

	if reply.Error != "" {
		return nil, fmt.Errorf("analysis worker reported: %s", reply.Error)
	}

	return &reply, nil
}

// readLineRange returns lines begin..end (1-based, inclusive) of a file.
func readLineRange(path string, begin, end int) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	lines := strings.SplitAfter(string(content), "\n")
	if total := lineCount(lines); begin < 1 || end < begin || end > total {
		return "", fmt.Errorf("line range %d-%d outside of %d lines", begin, end, total)
	}

	return strings.Join(lines[begin-1:end], ""), nil
}
