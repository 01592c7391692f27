package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LinnaX7/PReMM/internal/domain"
)

func TestClustersCmd_PassesBugAndSettings(t *testing.T) {
	mockWorkflow := installWorkflow(t)
	cmd := rootWith(newClustersCmd())

	mockWorkflow.On("Clusters", mock.Anything, mock.MatchedBy(func(args domain.ClustersArgs) bool {
		return args.BugID == "Chart-1" && !args.Settings.PerfectLocalization && args.Settings.AnalysisWorkers == 2
	})).Return(nil)

	cmd.SetArgs([]string{"clusters", "--perfect=false", "--workers", "2", "Chart-1"})
	require.NoError(t, cmd.Execute())
}

func TestClustersCmd_ReturnsWorkflowError(t *testing.T) {
	mockWorkflow := installWorkflow(t)
	cmd := rootWith(newClustersCmd())

	mockWorkflow.On("Clusters", mock.Anything, mock.Anything).Return(errors.New("analysis failed"))

	cmd.SetArgs([]string{"clusters", "Chart-1"})
	assert.EqualError(t, cmd.Execute(), "analysis failed")
}

func TestClustersCmd_ExactlyOneBug(t *testing.T) {
	installWorkflow(t)

	for _, args := range [][]string{{"clusters"}, {"clusters", "Chart-1", "Chart-2"}} {
		cmd := rootWith(newClustersCmd())
		cmd.SetArgs(args)
		assert.Error(t, cmd.Execute(), args)
	}
}
