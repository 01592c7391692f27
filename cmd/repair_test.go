package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LinnaX7/PReMM/internal/domain"
	domainmocks "github.com/LinnaX7/PReMM/internal/domain/mocks"
)

func rootWith(sub *cobra.Command) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func installWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func TestRepairCmd_PassesBugsAndDefaultSettings(t *testing.T) {
	mockWorkflow := installWorkflow(t)
	cmd := rootWith(newRepairCmd())

	mockWorkflow.On("Repair", mock.Anything, mock.MatchedBy(func(args domain.RepairArgs) bool {
		return assert.ObjectsAreEqual([]string{"Chart-1", "Lang-7"}, args.Bugs) &&
			!args.All &&
			args.Settings.MaxTries == defaultMaxTries &&
			args.Settings.MaxFaultTop == defaultMaxFaultTop &&
			args.Settings.PerfectLocalization &&
			args.Settings.Policy == domain.PolicyStrict
	})).Return(nil)

	cmd.SetArgs([]string{"repair", "Chart-1", "Lang-7"})
	require.NoError(t, cmd.Execute())
}

func TestRepairCmd_FlagsOverrideSettings(t *testing.T) {
	mockWorkflow := installWorkflow(t)
	cmd := rootWith(newRepairCmd())

	mockWorkflow.On("Repair", mock.Anything, mock.MatchedBy(func(args domain.RepairArgs) bool {
		s := args.Settings
		return s.MaxTries == 1 &&
			s.MaxFaultTop == 2 &&
			s.ChainLength == 8 &&
			!s.PerfectLocalization &&
			!s.Clustering &&
			s.Tolerance == 10 &&
			s.Policy == domain.PolicyRelated &&
			s.AnalysisWorkers == 6 &&
			s.KeepWorkDir
	})).Return(nil)

	cmd.SetArgs([]string{
		"repair",
		"--max-tries", "1",
		"--max-fault-top", "2",
		"--chain-length", "8",
		"--perfect=false",
		"--clustering=false",
		"--tolerance", "10",
		"--policy", "related",
		"--workers", "6",
		"--keep-workdir",
		"Math-2",
	})
	require.NoError(t, cmd.Execute())
}

func TestRepairCmd_All(t *testing.T) {
	mockWorkflow := installWorkflow(t)
	cmd := rootWith(newRepairCmd())

	mockWorkflow.On("Repair", mock.Anything, mock.MatchedBy(func(args domain.RepairArgs) bool {
		return args.All
	})).Return(nil)

	cmd.SetArgs([]string{"repair", "all"})
	require.NoError(t, cmd.Execute())
}

func TestRepairCmd_RateLimitIsBound(t *testing.T) {
	mockWorkflow := installWorkflow(t)
	cmd := rootWith(newRepairCmd())

	mockWorkflow.On("Repair", mock.Anything, mock.Anything).Return(nil)

	cmd.SetArgs([]string{"repair", "--rate-limit", "0.5", "Chart-1"})
	require.NoError(t, cmd.Execute())
	assert.InDelta(t, 0.5, viper.GetFloat64(rateLimitKey), 1e-9)
}

func TestRepairCmd_RequiresABug(t *testing.T) {
	installWorkflow(t)
	cmd := rootWith(newRepairCmd())

	cmd.SetArgs([]string{"repair"})
	assert.Error(t, cmd.Execute())
}

func TestRepairCmd_RequiresABenchmark(t *testing.T) {
	originalWorkflow := workflow
	workflow = nil

	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := rootWith(newRepairCmd())
	cmd.SetArgs([]string{"repair", "Chart-1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoBenchmark)
}

func TestRepairCmd_UnreadableBenchmark(t *testing.T) {
	originalWorkflow := workflow
	workflow = nil

	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := rootWith(newRepairCmd())
	cmd.SetArgs([]string{"repair", "-b", filepath.Join(t.TempDir(), "missing.yaml"), "Chart-1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read benchmark config")
}
