package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/LinnaX7/PReMM/internal/adapter"
	m "github.com/LinnaX7/PReMM/internal/model"
	"github.com/LinnaX7/PReMM/internal/telemetry"
)

// PerfectRank is the rank used for attempts with perfect fault localization.
const PerfectRank = 0

// AttemptRequest identifies one repair attempt on a checked-out project.
type AttemptRequest struct {
	Project adapter.Project
	// Rank is the suspicious-method candidate, or PerfectRank.
	Rank int
	Try  int
}

// Orchestrator runs one attempt through analysis, clustering, repair,
// merge validation, the commit phase, full-suite validation, and result
// aggregation.
type Orchestrator interface {
	RunAttempt(ctx context.Context, req AttemptRequest) (*m.MasterState, error)
}

// Stages are the steps an attempt is composed of.
type Stages struct {
	Builder    ClusterBuilder
	Driver     RepairDriver
	Merge      MergeValidator
	Project    ProjectValidator
	Aggregator ResultAggregator
}

type orchestrator struct {
	adapter.AnalysisProvider
	adapter.Workspace
	stages     Stages
	dataset    string
	clustering bool
	metrics    *telemetry.Metrics
}

// NewOrchestrator returns an orchestrator analysing bugs of dataset.
func NewOrchestrator(dataset string, analysis adapter.AnalysisProvider, workspace adapter.Workspace, stages Stages, clustering bool, metrics *telemetry.Metrics) Orchestrator {
	return &orchestrator{
		AnalysisProvider: analysis,
		Workspace:        workspace,
		stages:           stages,
		dataset:          dataset,
		clustering:       clustering,
		metrics:          metrics,
	}
}

// RunAttempt always returns the attempt's state. The error is non-nil only
// when the bug run cannot continue: analysis failed, ctx was cancelled, or
// the working copy could not be restored.
func (o *orchestrator) RunAttempt(ctx context.Context, req AttemptRequest) (*m.MasterState, error) {
	project := req.Project
	state := m.NewMasterState(project.BugID(), req.Rank, req.Try)
	state.FailedTests = project.InitFailingTests()

	ctx, span := telemetry.Tracer().Start(ctx, "attempt")
	defer span.End()

	span.SetAttributes(
		attribute.String("bug", state.BugID),
		attribute.Int("rank", req.Rank),
		attribute.Int("try", req.Try),
	)

	start := time.Now()

	err := o.run(ctx, state, project)

	o.metrics.ObserveAttempt(state.Result.String(), time.Since(start))
	o.metrics.AddTokens(state.Tokens.Prompt, state.Tokens.Completion)
	span.SetAttributes(attribute.String("result", state.Result.String()))

	return state, err
}

func (o *orchestrator) run(ctx context.Context, state *m.MasterState, project adapter.Project) error {
	analysis, err := o.analyze(ctx, state, project)
	if err != nil {
		state.Result = m.RepairException
		return err
	}

	clusters, groups, err := o.stages.Builder.Build(ctx, ClusterInput{
		Analysis:     analysis,
		FailingTests: state.FailedTests,
		WorkDir:      project.WorkDir(),
		Clustering:   o.clustering,
	})
	if err != nil {
		state.Result = m.RepairException
		return err
	}

	state.Clusters = clusters
	state.Groups = groups
	state.FaultCodes = faultCodesOf(clusters)

	if err := o.stages.Driver.RepairAll(ctx, state, project.WorkDir()); err != nil {
		return o.finish(ctx, state, project, err)
	}

	if err := o.stages.Merge.Validate(ctx, state, project); err != nil {
		if !errors.Is(err, ErrCatastrophic) || ctx.Err() != nil {
			return o.finish(ctx, state, project, err)
		}

		slog.Error("Merge validation aborted", "bug", state.BugID, "error", err)
		state.MarkException(err)
	}

	if state.Result == m.RepairTestSuccess {
		if err := o.commit(ctx, state, project); err != nil {
			if ctx.Err() != nil {
				return o.finish(ctx, state, project, ctx.Err())
			}

			slog.Error("Failed to commit validated patches", "bug", state.BugID, "error", err)
			state.MarkException(err)
		}
	}

	if err := o.stages.Project.Validate(ctx, state, project); err != nil {
		if !errors.Is(err, ErrCatastrophic) || ctx.Err() != nil {
			return o.finish(ctx, state, project, err)
		}

		slog.Error("Full-suite validation aborted", "bug", state.BugID, "error", err)
		state.MarkException(err)
	}

	return o.finish(ctx, state, project, nil)
}

// finish aggregates the attempt and joins cause with any aggregation error.
func (o *orchestrator) finish(ctx context.Context, state *m.MasterState, project adapter.Project, cause error) error {
	if cause != nil {
		state.Downgrade(m.RepairException)
	}

	if err := o.stages.Aggregator.Finalize(ctx, state, project); err != nil {
		return errors.Join(cause, err)
	}

	return cause
}

func (o *orchestrator) analyze(ctx context.Context, state *m.MasterState, project adapter.Project) (*m.AnalysisResult, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "analysis")
	defer span.End()

	req := adapter.AnalysisRequest{
		Dataset:      o.dataset,
		BugID:        state.BugID,
		WorkDir:      project.WorkDir(),
		SourceDir:    project.SourceDir(),
		BuildDir:     project.BuildDir(),
		TestBuildDir: project.TestBuildDir(),
		FailingTests: state.FailedTests.IDs(),
	}

	if state.Rank == PerfectRank {
		req.Mode = "perfect"
		req.FaultLocationFile = project.FaultLocationFile()
	} else {
		methods, err := project.SuspiciousMethods(state.Rank)
		if err != nil {
			slog.Error("Failed to select suspicious methods", "bug", state.BugID, "rank", state.Rank, "error", err)
			return nil, fmt.Errorf("%w: %w", ErrAnalysis, err)
		}

		req.Mode = fmt.Sprintf("top-%d", state.Rank)
		req.SuspiciousMethods = methods
	}

	result, err := o.Analyze(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		slog.Error("Failed to analyze faulty methods", "bug", state.BugID, "mode", req.Mode, "error", err)

		return nil, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	if len(result.Methods) == 0 {
		return nil, fmt.Errorf("%w: no faulty methods located for %s", ErrAnalysis, state.BugID)
	}

	span.SetAttributes(attribute.Int("methods", len(result.Methods)), attribute.Int("groups", len(result.Groups)))

	return result, nil
}

// commit re-applies every validated patch at once and rebuilds the project.
// A build failure turns the attempt into REPAIR_FAILED; the returned error
// is reserved for the working copy being unwritable or cancellation.
func (o *orchestrator) commit(ctx context.Context, state *m.MasterState, project adapter.Project) error {
	ctx, span := telemetry.Tracer().Start(ctx, "commit")
	defer span.End()

	if err := o.ModifyFiles(ctx, project.WorkDir(), m.GroupByFile(state.FaultCodes)); err != nil {
		return fmt.Errorf("%w: failed to apply merged patches: %w", ErrCatastrophic, err)
	}

	build, err := project.CompileProject(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		build = m.BuildResult{Output: err.Error()}
	}

	if build.OK {
		return nil
	}

	slog.Info("Merged patches failed to build", "bug", state.BugID)
	span.SetAttributes(attribute.Bool("build_failed", true))
	state.SetAll(m.RepairFailed)

	for _, c := range state.Clusters {
		c.Repair.History = build.Output
	}

	return nil
}

// faultCodesOf collects the cluster codes in cluster order, without repeats.
func faultCodesOf(clusters []*m.ClusterState) []*m.FaultCodeInfo {
	seen := make(map[*m.FaultCodeInfo]bool)

	var codes []*m.FaultCodeInfo

	for _, c := range clusters {
		for _, code := range c.FaultCodes {
			if seen[code] {
				continue
			}

			seen[code] = true
			codes = append(codes, code)
		}
	}

	return codes
}
