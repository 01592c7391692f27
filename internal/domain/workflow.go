package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/LinnaX7/PReMM/internal/adapter"
	"github.com/LinnaX7/PReMM/internal/controller"
	m "github.com/LinnaX7/PReMM/internal/model"
	"github.com/LinnaX7/PReMM/internal/telemetry"
)

// Settings configure the repair engine.
type Settings struct {
	MaxTries            int    `validate:"gte=1"`
	MaxFaultTop         int    `validate:"gte=1"`
	ChainLength         int    `validate:"gte=1"`
	PerfectLocalization bool
	Clustering          bool
	Tolerance           int    `validate:"gte=1"`
	Policy              Policy `validate:"oneof=strict related"`
	AnalysisWorkers     int    `validate:"gte=1"`
	KeepWorkDir         bool
}

var settingsValidator = validator.New()

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	if err := settingsValidator.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	return nil
}

// RepairArgs contains the arguments for repairing bugs.
type RepairArgs struct {
	Bugs []string
	// All repairs every bug of the benchmark and ignores Bugs.
	All      bool
	Settings Settings
}

// ClustersArgs contains the arguments for a clustering dry run.
type ClustersArgs struct {
	BugID    string
	Settings Settings
}

// ViewArgs contains the arguments for viewing stored results.
type ViewArgs struct {
	// BugID restricts the view to one bug when set.
	BugID string
}

// Workflow is the entry point of the repair engine.
type Workflow interface {
	Repair(ctx context.Context, args RepairArgs) error
	Clusters(ctx context.Context, args ClustersArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.BenchmarkProvider
	adapter.AnalysisProvider
	adapter.Repairer
	adapter.Workspace
	adapter.PatchEmitter
	adapter.ReportStore
	controller.UI
	metrics *telemetry.Metrics
}

// NewWorkflow creates a Workflow from its collaborators.
func NewWorkflow(
	benchmark adapter.BenchmarkProvider,
	analysis adapter.AnalysisProvider,
	repairer adapter.Repairer,
	workspace adapter.Workspace,
	emitter adapter.PatchEmitter,
	reports adapter.ReportStore,
	ui controller.UI,
	metrics *telemetry.Metrics,
) Workflow {
	return &workflow{
		BenchmarkProvider: benchmark,
		AnalysisProvider:  analysis,
		Repairer:          repairer,
		Workspace:         workspace,
		PatchEmitter:      emitter,
		ReportStore:       reports,
		UI:                ui,
		metrics:           metrics,
	}
}

func (w *workflow) Repair(ctx context.Context, args RepairArgs) error {
	if err := args.Settings.Validate(); err != nil {
		return err
	}

	bugs := args.Bugs
	if args.All {
		all, err := w.AllBugs(ctx)
		if err != nil {
			slog.Error("Failed to list bugs", "dataset", w.Dataset(), "error", err)
			return fmt.Errorf("failed to list bugs: %w", err)
		}

		bugs = all
	}

	if len(bugs) == 0 {
		return errors.New("no bugs to repair")
	}

	if err := w.Start(ctx, controller.WithRepairMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.Close(ctx)

	fallback := w.newFallback(args.Settings)

	var errs []error

	for _, bug := range bugs {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}

		if w.HasResult(bug) {
			slog.Info("Skipping bug with existing results", "bug", bug)
			w.DisplayBugSkipped(ctx, bug)

			continue
		}

		if err := w.repairBug(ctx, fallback, bug, args.Settings); err != nil {
			errs = append(errs, fmt.Errorf("bug %s: %w", bug, err))
		}
	}

	w.Wait(ctx)

	return errors.Join(errs...)
}

func (w *workflow) repairBug(ctx context.Context, fallback FallbackController, bug string, settings Settings) error {
	runID := uuid.NewString()
	started := time.Now()

	ctx, span := telemetry.Tracer().Start(ctx, "bug.run")
	defer span.End()

	span.SetAttributes(attribute.String("bug", bug), attribute.String("run", runID))

	slog.Info("Starting bug run", "bug", bug, "run", runID)
	w.DisplayBugStarted(ctx, bug, runID)

	project, err := w.Checkout(ctx, bug)
	if err != nil {
		slog.Error("Failed to check out bug", "bug", bug, "run", runID, "error", err)
		return fmt.Errorf("failed to check out: %w", err)
	}

	if !settings.KeepWorkDir {
		defer w.cleanup(ctx, project)
	}

	result, runErr := fallback.Run(ctx, project)

	summary := m.RunSummary{
		RunID:    runID,
		BugID:    bug,
		Result:   result.Result(),
		Ranks:    len(result.Rows),
		Attempts: result.Attempts,
		Tokens:   result.Tokens,
		Started:  started,
		Duration: time.Since(started),
	}

	if result.Final != nil {
		summary.Iterations = result.Final.IterativeCount()
		summary.Patch = result.Final.Patch
	}

	if runErr != nil {
		summary.Error = runErr.Error()
	}

	span.SetAttributes(attribute.String("result", summary.Result.String()))

	if err := w.SaveSummary(context.WithoutCancel(ctx), summary); err != nil {
		slog.Error("Failed to save run summary", "bug", bug, "run", runID, "error", err)
		runErr = errors.Join(runErr, fmt.Errorf("failed to save summary: %w", err))
	}

	slog.Info("Finished bug run", "bug", bug, "run", runID, "result", summary.Result, "attempts", summary.Attempts)
	w.DisplayBugSummary(ctx, summary)

	return runErr
}

// cleanup removes the bug's working directory and forgets its snapshots.
func (w *workflow) cleanup(ctx context.Context, project adapter.Project) {
	ctx = context.WithoutCancel(ctx)

	if err := project.Cleanup(ctx); err != nil {
		slog.Warn("Failed to clean up project", "bug", project.BugID(), "error", err)
	}

	w.Forget(project.WorkDir())

	if err := w.RemoveAll(ctx, project.WorkDir()); err != nil {
		slog.Warn("Failed to remove working directory", "bug", project.BugID(), "dir", project.WorkDir(), "error", err)
	}
}

func (w *workflow) Clusters(ctx context.Context, args ClustersArgs) error {
	if err := args.Settings.Validate(); err != nil {
		return err
	}

	project, err := w.Checkout(ctx, args.BugID)
	if err != nil {
		slog.Error("Failed to check out bug", "bug", args.BugID, "error", err)
		return fmt.Errorf("failed to check out: %w", err)
	}

	if !args.Settings.KeepWorkDir {
		defer w.cleanup(ctx, project)
	}

	o := &orchestrator{AnalysisProvider: w.AnalysisProvider, dataset: w.Dataset()}

	state := m.NewMasterState(args.BugID, PerfectRank, 1)
	state.FailedTests = project.InitFailingTests()

	if !args.Settings.PerfectLocalization {
		state.Rank = 1
	}

	analysis, err := o.analyze(ctx, state, project)
	if err != nil {
		return err
	}

	clusters, groups, err := NewClusterBuilder(w.AnalysisProvider, args.Settings.AnalysisWorkers).Build(ctx, ClusterInput{
		Analysis:     analysis,
		FailingTests: state.FailedTests,
		WorkDir:      project.WorkDir(),
		Clustering:   args.Settings.Clustering,
	})
	if err != nil {
		return fmt.Errorf("failed to build clusters: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.Close(ctx)

	return w.DisplayClusters(ctx, args.BugID, clusters, groups)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	rows, err := w.LoadResults(ctx)
	if err != nil {
		slog.Error("Failed to load results", "error", err)
		return fmt.Errorf("failed to load results: %w", err)
	}

	summaries, err := w.LoadSummaries(ctx)
	if err != nil {
		slog.Error("Failed to load summaries", "error", err)
		return fmt.Errorf("failed to load summaries: %w", err)
	}

	var attempts []m.AttemptRecord

	if args.BugID != "" {
		rows = filterRows(rows, args.BugID)
		summaries = filterSummaries(summaries, args.BugID)

		attempts, err = w.LoadAttempts(ctx, args.BugID)
		if err != nil {
			slog.Error("Failed to load attempts", "bug", args.BugID, "error", err)
			return fmt.Errorf("failed to load attempts: %w", err)
		}
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.Close(ctx)

	if err := w.DisplayResults(ctx, rows, summaries); err != nil {
		return err
	}

	if len(attempts) == 0 {
		return nil
	}

	return w.DisplayAttempts(ctx, args.BugID, attempts)
}

// newFallback wires the attempt pipeline for settings.
func (w *workflow) newFallback(settings Settings) FallbackController {
	stages := Stages{
		Builder:    NewClusterBuilder(w.AnalysisProvider, settings.AnalysisWorkers),
		Driver:     NewRepairDriver(w.Repairer, settings.ChainLength),
		Merge:      NewMergeValidator(w.Workspace, w.metrics),
		Project:    NewProjectValidator(w.AnalysisProvider, settings.Tolerance, settings.Policy, w.metrics),
		Aggregator: NewResultAggregator(w.Workspace, w.PatchEmitter),
	}

	orchestrator := NewOrchestrator(w.Dataset(), w.AnalysisProvider, w.Workspace, stages, settings.Clustering, w.metrics)

	return NewFallbackController(orchestrator, w.ReportStore, w.UI, FallbackSettings{
		Perfect:     settings.PerfectLocalization,
		MaxFaultTop: settings.MaxFaultTop,
		MaxTries:    settings.MaxTries,
	})
}

func filterRows(rows []m.RankResult, bugID string) []m.RankResult {
	var out []m.RankResult

	for _, row := range rows {
		if row.BugID == bugID {
			out = append(out, row)
		}
	}

	return out
}

func filterSummaries(summaries []m.RunSummary, bugID string) []m.RunSummary {
	var out []m.RunSummary

	for _, s := range summaries {
		if s.BugID == bugID {
			out = append(out, s)
		}
	}

	return out
}
