package domain

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/LinnaX7/PReMM/internal/adapter"
	m "github.com/LinnaX7/PReMM/internal/model"
	"github.com/LinnaX7/PReMM/internal/telemetry"
)

// Policy decides how a below-tolerance full-suite failure is judged.
type Policy string

const (
	// PolicyStrict rejects any full-suite failure.
	PolicyStrict Policy = "strict"
	// PolicyRelated accepts a patch when none of the remaining failures is
	// related to the faulty units.
	PolicyRelated Policy = "related"
)

// DefaultTolerance is the failing-test count treated as a broken build.
const DefaultTolerance = 30

// ProjectValidator confirms a validated attempt against the whole test suite.
type ProjectValidator interface {
	Validate(ctx context.Context, state *m.MasterState, project adapter.Project) error
}

type projectValidator struct {
	analysis  adapter.AnalysisProvider
	tolerance int
	policy    Policy
	metrics   *telemetry.Metrics
}

// NewProjectValidator returns a validator with the given tolerance and policy.
// analysis is consulted only under PolicyRelated.
func NewProjectValidator(analysis adapter.AnalysisProvider, tolerance int, policy Policy, metrics *telemetry.Metrics) ProjectValidator {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	return &projectValidator{analysis: analysis, tolerance: tolerance, policy: policy, metrics: metrics}
}

// Validate runs only while the run is still REPAIR_TEST_SUCCESS. It sets
// REPAIR_SUCCESS or REPAIR_FAILED on the run and every cluster, or returns an
// error wrapping ErrCatastrophic when the suite cannot run or fails at least
// tolerance tests.
func (v *projectValidator) Validate(ctx context.Context, state *m.MasterState, project adapter.Project) error {
	if state.Result != m.RepairTestSuccess {
		slog.Debug("Skipping full-suite validation", "bug", state.BugID, "result", state.Result)
		return nil
	}

	ctx, span := telemetry.Tracer().Start(ctx, "project.validate")
	defer span.End()

	failing, outcomes, err := project.TestProject(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		v.metrics.ProjectValidated("exception")
		slog.Error("Failed to run the full test suite", "bug", state.BugID, "error", err)

		return fmt.Errorf("%w: full test suite: %w", ErrCatastrophic, err)
	}

	span.SetAttributes(attribute.Int("failing", failing))

	switch {
	case failing == 0:
		v.accept(state)
	case failing >= v.tolerance:
		v.metrics.ProjectValidated("exception")
		slog.Warn("Patch breaks the project", "bug", state.BugID, "failing", failing, "tolerance", v.tolerance)

		return fmt.Errorf("%w: the repaired code passed the failed test cases, but the full suite failed %d tests (tolerance %d)",
			ErrCatastrophic, failing, v.tolerance)
	case v.policy == PolicyRelated && v.unrelated(ctx, state, project, outcomes):
		slog.Info("Remaining failures are unrelated to the faulty units", "bug", state.BugID, "failing", outcomes.IDs())
		v.accept(state)
	default:
		v.metrics.ProjectValidated("failed")
		slog.Info("Patch fails the full suite", "bug", state.BugID, "failing", outcomes.IDs())
		state.SetAll(m.RepairFailed)

		for _, c := range state.Clusters {
			c.FailedTests = outcomes.Sorted()
		}
	}

	return nil
}

func (v *projectValidator) accept(state *m.MasterState) {
	v.metrics.ProjectValidated("passed")
	state.SetAll(m.RepairSuccess)

	for _, c := range state.Clusters {
		c.FailedTests = nil
	}
}

// unrelated reports whether analysis finds none of the failures related to
// the fault files. Any analysis error counts as related.
func (v *projectValidator) unrelated(ctx context.Context, state *m.MasterState, project adapter.Project, outcomes m.TestOutcomes) bool {
	if v.analysis == nil || len(outcomes) == 0 {
		return false
	}

	related, err := v.analysis.RelatedTests(ctx, adapter.RelatedRequest{
		WorkDir:      project.WorkDir(),
		SourceDir:    project.SourceDir(),
		BuildDir:     project.BuildDir(),
		TestBuildDir: project.TestBuildDir(),
		FailingTests: outcomes.IDs(),
		FaultFiles:   state.FaultFiles(),
	})
	if err != nil {
		slog.Warn("Related-test analysis failed, judging strictly", "bug", state.BugID, "error", err)
		return false
	}

	return len(related) == 0
}
