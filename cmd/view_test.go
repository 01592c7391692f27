package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LinnaX7/PReMM/internal/domain"
)

func TestViewCmd_ShowsEveryBugByDefault(t *testing.T) {
	mockWorkflow := installWorkflow(t)
	cmd := rootWith(newViewCmd())

	mockWorkflow.On("View", mock.Anything, domain.ViewArgs{}).Return(nil)

	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_FiltersByBug(t *testing.T) {
	mockWorkflow := installWorkflow(t)
	cmd := rootWith(newViewCmd())

	mockWorkflow.On("View", mock.Anything, domain.ViewArgs{BugID: "Lang-7"}).Return(nil)

	cmd.SetArgs([]string{"view", "Lang-7"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_AtMostOneBug(t *testing.T) {
	installWorkflow(t)
	cmd := rootWith(newViewCmd())

	cmd.SetArgs([]string{"view", "Lang-7", "Lang-8"})
	require.Error(t, cmd.Execute())
}
