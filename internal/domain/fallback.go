package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/LinnaX7/PReMM/internal/adapter"
	"github.com/LinnaX7/PReMM/internal/controller"
	m "github.com/LinnaX7/PReMM/internal/model"
	"github.com/LinnaX7/PReMM/internal/telemetry"
)

// FallbackSettings bound the retry loop of one bug.
type FallbackSettings struct {
	Perfect     bool
	MaxFaultTop int
	MaxTries    int
}

// FallbackResult is what the retry loop produced for one bug.
type FallbackResult struct {
	Rows []m.RankResult
	// Final is the last attempt run, nil when none ran.
	Final    *m.MasterState
	Attempts int
	Tokens   m.TokenCounters
}

// Result is the outcome of the last attempt, or NOT_REPAIRED when none ran.
func (r *FallbackResult) Result() m.RepairState {
	if r.Final == nil {
		return m.NotRepaired
	}

	return r.Final.Result
}

// FallbackController retries attempts per fault-localization rank until one
// succeeds or the candidates run out, recording one result row per rank.
type FallbackController interface {
	Run(ctx context.Context, project adapter.Project) (*FallbackResult, error)
}

type fallbackController struct {
	Orchestrator
	adapter.ReportStore
	controller.UI
	settings FallbackSettings
}

// NewFallbackController returns a controller running attempts through
// orchestrator and appending rows to reports.
func NewFallbackController(orchestrator Orchestrator, reports adapter.ReportStore, ui controller.UI, settings FallbackSettings) FallbackController {
	if settings.MaxTries < 1 {
		settings.MaxTries = 1
	}

	return &fallbackController{Orchestrator: orchestrator, ReportStore: reports, UI: ui, settings: settings}
}

// ranks returns the ranks visited for a bug with suspicious candidates.
func (f *fallbackController) ranks(suspicious int) []int {
	if f.settings.Perfect {
		return []int{PerfectRank}
	}

	last := min(f.settings.MaxFaultTop, suspicious)
	ranks := make([]int, 0, max(last, 0))

	for rank := 1; rank <= last; rank++ {
		ranks = append(ranks, rank)
	}

	return ranks
}

// Run stops at the first REPAIR_SUCCESS. An attempt error ends the loop after
// the current rank's row is recorded.
func (f *fallbackController) Run(ctx context.Context, project adapter.Project) (*FallbackResult, error) {
	result := &FallbackResult{}

	ranks := f.ranks(project.SuspiciousMethodCount())
	if len(ranks) == 0 {
		slog.Warn("No fault-localization candidates", "bug", project.BugID())
		return result, nil
	}

	for _, rank := range ranks {
		row, err := f.runRank(ctx, project, rank, result)

		if row.AttemptCount > 0 {
			result.Rows = append(result.Rows, row)
			f.DisplayRankResult(ctx, row)

			if appendErr := f.AppendResult(context.WithoutCancel(ctx), row); appendErr != nil {
				slog.Error("Failed to append result row", "bug", row.BugID, "rank", rank, "error", appendErr)
				err = errors.Join(err, fmt.Errorf("failed to append result row: %w", appendErr))
			}
		}

		if err != nil {
			return result, err
		}

		if row.Result == m.RepairSuccess {
			break
		}
	}

	return result, nil
}

func (f *fallbackController) runRank(ctx context.Context, project adapter.Project, rank int, result *FallbackResult) (m.RankResult, error) {
	row := m.RankResult{BugID: project.BugID(), Rank: rank, Result: m.NotRepaired}

	ctx, span := telemetry.Tracer().Start(ctx, "rank")
	defer span.End()

	span.SetAttributes(attribute.String("bug", row.BugID), attribute.Int("rank", rank))

	for try := 1; try <= f.settings.MaxTries; try++ {
		if err := ctx.Err(); err != nil {
			return row, err
		}

		f.DisplayAttemptStarted(ctx, row.BugID, rank, try)

		start := time.Now()
		state, err := f.RunAttempt(ctx, AttemptRequest{Project: project, Rank: rank, Try: try})

		result.Final = state
		result.Attempts++
		result.Tokens.Add(state.Tokens)

		row.AttemptCount = try
		row.Result = state.Result
		row.IterativeCount = state.IterativeCount()
		row.LastTokens = state.Tokens
		row.TotalTokens.Add(state.Tokens)
		elapsed := time.Since(start)
		row.AttemptDurations = append(row.AttemptDurations, elapsed)

		f.DisplayAttemptResult(ctx, state)

		if journalErr := f.AppendAttempt(context.WithoutCancel(ctx), m.NewAttemptRecord(state, elapsed, err)); journalErr != nil {
			slog.Warn("Failed to journal attempt", "bug", row.BugID, "rank", rank, "try", try, "error", journalErr)
		}

		if err != nil {
			slog.Error("Attempt aborted the bug run", "bug", row.BugID, "rank", rank, "try", try, "error", err)
			return row, err
		}

		if state.Result == m.RepairSuccess {
			slog.Info("Repair succeeded", "bug", row.BugID, "rank", rank, "try", try)
			break
		}
	}

	return row, nil
}
