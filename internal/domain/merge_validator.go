package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/LinnaX7/PReMM/internal/adapter"
	m "github.com/LinnaX7/PReMM/internal/model"
	"github.com/LinnaX7/PReMM/internal/telemetry"
)

// Group evaluation outcomes reported to metrics.
const (
	groupPassed       = "passed"
	groupTestFailed   = "test_failed"
	groupCompileError = "compile_failed"
)

// MergeValidator applies the patches of each merged group, then compiles and
// tests them, committing or reverting the group's files.
type MergeValidator interface {
	Validate(ctx context.Context, state *m.MasterState, project adapter.Project) error
}

type mergeValidator struct {
	adapter.Workspace
	metrics *telemetry.Metrics
}

// NewMergeValidator returns a validator writing patches through workspace.
func NewMergeValidator(workspace adapter.Workspace, metrics *telemetry.Metrics) MergeValidator {
	return &mergeValidator{Workspace: workspace, metrics: metrics}
}

// Validate evaluates groups in order, one at a time. A failing group is
// always reverted before the next group starts. A passing group is kept in
// place only when it is the sole group; otherwise it is reverted until the
// commit phase re-applies every patch. The returned error is non-nil only
// when the working copy could not be restored or ctx was cancelled.
func (v *mergeValidator) Validate(ctx context.Context, state *m.MasterState, project adapter.Project) error {
	multiple := len(state.Groups) > 1

	for _, group := range state.Groups {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := v.evaluate(ctx, state, project, group, multiple); err != nil {
			return err
		}
	}

	return nil
}

func (v *mergeValidator) evaluate(ctx context.Context, state *m.MasterState, project adapter.Project, group *m.MergedGroup, multiple bool) error {
	ctx, span := telemetry.Tracer().Start(ctx, "merge.group")
	defer span.End()

	span.SetAttributes(attribute.String("group", group.Key), attribute.Int("clusters", len(group.Clusters)))

	patches := m.GroupByFile(group.FaultCodes())
	files := m.Files(patches)

	if err := v.apply(ctx, project, patches, files); err != nil {
		if ctx.Err() != nil {
			return v.abort(ctx, project, files, ctx.Err())
		}

		slog.Info("Merged group failed to build", "bug", state.BugID, "group", group.Key, "error", err)
		v.metrics.GroupEvaluated(groupCompileError)
		span.SetAttributes(attribute.String("outcome", groupCompileError))
		markGroupFailed(state, group, nil, err.Error())

		return v.revert(ctx, project, files)
	}

	outcomes, err := project.TestFailedTestCases(ctx, group.Tests)
	if err != nil {
		if ctx.Err() != nil {
			return v.abort(ctx, project, files, ctx.Err())
		}

		slog.Error("Failed to run group tests", "bug", state.BugID, "group", group.Key, "error", err)
		outcomes = m.TestOutcomes{}

		for _, t := range group.Tests {
			outcomes[t] = m.TestOutcome{TestID: t, Kind: m.OutcomeError, FailingInfo: "Exception: " + err.Error()}
		}
	}

	if len(outcomes) == 0 {
		slog.Info("Merged group passed its failing tests", "bug", state.BugID, "group", group.Key)
		v.metrics.GroupEvaluated(groupPassed)
		span.SetAttributes(attribute.String("outcome", groupPassed))
		group.SetState(m.RepairTestSuccess)

		if multiple {
			return v.revert(ctx, project, files)
		}

		return nil
	}

	slog.Info("Merged group still fails", "bug", state.BugID, "group", group.Key, "failing", outcomes.IDs())
	v.metrics.GroupEvaluated(groupTestFailed)
	span.SetAttributes(attribute.String("outcome", groupTestFailed))
	markGroupFailed(state, group, outcomes, "")

	return v.revert(ctx, project, files)
}

func (v *mergeValidator) apply(ctx context.Context, project adapter.Project, patches []m.FilePatch, files []m.Path) error {
	if err := v.ModifyFiles(ctx, project.WorkDir(), patches); err != nil {
		return fmt.Errorf("%w: %w", ErrCompile, err)
	}

	build, err := project.CompileFiles(ctx, files)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCompile, err)
	}

	if !build.OK {
		return fmt.Errorf("%w: %s", ErrCompile, build.Output)
	}

	return nil
}

// revert restores the group's files even when ctx is already cancelled.
func (v *mergeValidator) revert(ctx context.Context, project adapter.Project, files []m.Path) error {
	return recoverFiles(context.WithoutCancel(ctx), v.Workspace, project, files)
}

func (v *mergeValidator) abort(ctx context.Context, project adapter.Project, files []m.Path, cause error) error {
	return errors.Join(cause, v.revert(ctx, project, files))
}

// markGroupFailed marks every member REPAIR_TEST_FAILED, records what still
// fails, and downgrades the run.
func markGroupFailed(state *m.MasterState, group *m.MergedGroup, outcomes m.TestOutcomes, buildOutput string) {
	group.SetState(m.RepairTestFailed)

	for _, c := range group.Clusters {
		if buildOutput != "" {
			c.Repair.History = buildOutput
			continue
		}

		c.FailedTests = remainingFailures(c, outcomes)
	}

	state.Downgrade(m.RepairTestFailed)
}

// remainingFailures picks the outcomes of the cluster's own tests, falling
// back to every outcome when none of them is among the failures.
func remainingFailures(c *m.ClusterState, outcomes m.TestOutcomes) []m.TestOutcome {
	var own []m.TestOutcome

	for _, t := range c.RelatedTests {
		if outcome, ok := outcomes[t]; ok {
			own = append(own, outcome)
		}
	}

	if len(own) == 0 {
		return outcomes.Sorted()
	}

	return own
}

// recoverFiles restores sources through the workspace and rebuilds them.
func recoverFiles(ctx context.Context, workspace adapter.Workspace, project adapter.Project, files []m.Path) error {
	if len(files) == 0 {
		return nil
	}

	if err := workspace.RecoverFiles(ctx, project.WorkDir(), files); err != nil {
		slog.Error("Failed to recover files", "bug", project.BugID(), "files", files, "error", err)
		return fmt.Errorf("%w: failed to recover files: %w", ErrCatastrophic, err)
	}

	if err := project.RecoverFiles(ctx, files); err != nil {
		slog.Error("Failed to rebuild recovered files", "bug", project.BugID(), "files", files, "error", err)
		return fmt.Errorf("%w: failed to rebuild recovered files: %w", ErrCatastrophic, err)
	}

	return nil
}
