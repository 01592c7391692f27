// Package adapter contains the collaborators the repair engine drives:
// benchmark projects, static analysis, the repair agent, and the workspace.
package adapter

import (
	"context"

	m "github.com/LinnaX7/PReMM/internal/model"
)

// BenchmarkProvider knows the bugs of one dataset and how to check them out.
type BenchmarkProvider interface {
	// Dataset returns the dataset name, used to key caches and reports.
	Dataset() string
	// AllBugs lists every bug identifier of the dataset.
	AllBugs(ctx context.Context) ([]string, error)
	// Checkout prepares a fresh working copy of the bug and records its
	// initially failing tests.
	Checkout(ctx context.Context, bugID string) (Project, error)
}

// Project is a checked-out bug. All build and test primitives block until
// the underlying command finishes or its own timeout fires.
//
//nolint:interfacebloat // The engine needs the full set of build/test primitives.
type Project interface {
	BugID() string
	WorkDir() m.Path
	SourceDir() m.Path
	BuildDir() m.Path
	TestSourceDir() m.Path
	TestBuildDir() m.Path
	FaultLocationFile() m.Path

	// InitFailingTests returns the tests failing before any patch is applied.
	InitFailingTests() m.TestOutcomes

	// SuspiciousMethodCount is the number of ranked fault-localization candidates.
	SuspiciousMethodCount() int
	// SuspiciousMethods returns the candidate methods for a 1-based rank.
	SuspiciousMethods(rank int) ([]string, error)

	// CompileFiles compiles only the given files.
	CompileFiles(ctx context.Context, files []m.Path) (m.BuildResult, error)
	// CompileProject compiles the whole project.
	CompileProject(ctx context.Context) (m.BuildResult, error)
	// TestFailedTestCases runs the given tests. An empty result means all passed.
	// A test exceeding its time budget is reported as an OutcomeTimeout entry.
	TestFailedTestCases(ctx context.Context, tests []string) (m.TestOutcomes, error)
	// TestProject runs the full suite and returns the failing count and outcomes.
	TestProject(ctx context.Context) (int, m.TestOutcomes, error)
	// RecoverFiles rebuilds the given files after their sources were restored.
	RecoverFiles(ctx context.Context, files []m.Path) error

	// Cleanup removes the working copy.
	Cleanup(ctx context.Context) error
}
