package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/LinnaX7/PReMM/internal/adapter"
	"github.com/LinnaX7/PReMM/internal/controller"
	"github.com/LinnaX7/PReMM/internal/domain"
	m "github.com/LinnaX7/PReMM/internal/model"
	"github.com/LinnaX7/PReMM/internal/telemetry"
)

var errNoBenchmark = errors.New("no benchmark configured: pass --benchmark or set benchmark.config")

// resolveWorkflow returns the installed workflow, or builds one from the
// configuration. The returned release function must run once the command ends.
func resolveWorkflow(cmd *cobra.Command, requireBenchmark bool) (domain.Workflow, func(), error) {
	if workflow != nil {
		return workflow, func() {}, nil
	}

	return newWorkflow(cmd, requireBenchmark)
}

func newWorkflow(cmd *cobra.Command, requireBenchmark bool) (domain.Workflow, func(), error) {
	workspace := adapter.NewLocalWorkspace()

	var benchmark adapter.BenchmarkProvider

	if path := viper.GetString(benchmarkConfigKey); path != "" {
		cfg, err := adapter.LoadBenchmarkConfig(path)
		if err != nil {
			slog.Error("Failed to load benchmark config", "path", path, "error", err)
			return nil, nil, err
		}

		benchmark = adapter.NewCommandBenchmark(cfg, workspace)
	} else if requireBenchmark {
		return nil, nil, errNoBenchmark
	}

	cache, err := adapter.OpenAnalysisCache(viper.GetString(analysisCacheDirKey))
	if err != nil {
		return nil, nil, err
	}

	shutdownTracing, err := telemetry.SetupTracing(viper.GetString(traceFileKey))
	if err != nil {
		_ = cache.Close()
		return nil, nil, err
	}

	analysis := adapter.NewCachedAnalyzer(
		adapter.NewProcessAnalyzer(viper.GetString(analysisCommandKey), secondsKey(analysisTimeoutKey)),
		cache,
	)

	var repairer adapter.Repairer = adapter.NewCommandRepairer(viper.GetString(repairerCommandKey), secondsKey(repairerTimeoutKey))
	if rate := viper.GetFloat64(rateLimitKey); rate > 0 {
		repairer = adapter.NewRateLimitedRepairer(repairer, rate)
	}

	output := m.Path(viper.GetString(outputFlagName))
	metrics := telemetry.NewMetrics()

	wf := domain.NewWorkflow(
		benchmark,
		analysis,
		repairer,
		workspace,
		adapter.NewPatchEmitter(output, workspace),
		adapter.NewReportStore(output, viper.GetInt(chainLengthKey)),
		controller.NewUI(cmd, true),
		metrics,
	)

	release := func() {
		if err := metrics.WriteFile(viper.GetString(metricsFileKey)); err != nil {
			slog.Warn("Failed to write metrics", "error", err)
		}

		if err := shutdownTracing(context.Background()); err != nil {
			slog.Warn("Failed to shut down tracing", "error", err)
		}

		if err := cache.Close(); err != nil {
			slog.Warn("Failed to close analysis cache", "error", err)
		}
	}

	return wf, release, nil
}

// runWorkflow resolves the workflow and runs fn with it.
func runWorkflow(cmd *cobra.Command, requireBenchmark bool, fn func(context.Context, domain.Workflow) error) error {
	wf, release, err := resolveWorkflow(cmd, requireBenchmark)
	if err != nil {
		return fmt.Errorf("failed to set up: %w", err)
	}
	defer release()

	return fn(cmd.Context(), wf)
}
