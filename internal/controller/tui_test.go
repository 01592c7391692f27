package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/LinnaX7/PReMM/internal/model"
)

func TestTUI_DisplayResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	err := tui.DisplayResults(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No results found")
}

func TestTUI_DisplayResults_PrintsWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	rows := []m.RankResult{
		{BugID: "Closure-3", Rank: 1, Result: m.RepairSuccess, AttemptCount: 2},
	}

	err := tui.DisplayResults(context.Background(), rows, nil)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Repair results")
	assert.Contains(t, output, "Closure-3")
	assert.Contains(t, output, "REPAIR_SUCCESS")
	assert.NotContains(t, output, "q: quit")
}

func TestTUI_DisplayClusters(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)
	clusters, groups := sampleClusters()

	err := tui.DisplayClusters(context.Background(), "Math-5", clusters, groups)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Clusters of Math-5")
	assert.Contains(t, output, "Baz#qux()")
	assert.Contains(t, output, "Merged groups")
}

func TestTUI_DisplayAttempts(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	err := tui.DisplayAttempts(context.Background(), "Math-5", sampleAttempts())
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Attempts of Math-5")
	assert.Contains(t, output, "REPAIR_EXCEPTION")
}

func TestTUI_ViewModeDoesNotStartProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)
	ctx := context.Background()

	require.NoError(t, tui.Start(ctx, WithViewMode()))
	assert.Nil(t, tui.program)

	// Events without a running program are dropped.
	tui.DisplayBugStarted(ctx, "Chart-1", "run")
	tui.Wait(ctx)
	tui.Close(ctx)

	assert.Empty(t, buf.String())
}

func TestProgressModel_Update(t *testing.T) {
	var model tea.Model = newProgressModel()

	model, _ = model.Update(bugStartedMsg{bugID: "Chart-1", runID: "0f8fad5b-d9cb"})
	model, _ = model.Update(attemptStartedMsg("Chart-1 [top-1] try 1"))

	view := model.View()
	assert.Contains(t, view, "Chart-1")
	assert.Contains(t, view, "0f8fad5b")
	assert.Contains(t, view, "Chart-1 [top-1] try 1")

	model, _ = model.Update(lineMsg("  [top-1] try 1 REPAIR_FAILED"))
	model, cmd := model.Update(finishedMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	view = model.View()
	assert.Contains(t, view, "REPAIR_FAILED")
	assert.NotContains(t, view, "try 1\n", "finished view drops the in-flight line")
}

func TestProgressModel_KeepsRecentLines(t *testing.T) {
	pm := newProgressModel()

	for i := 0; i < maxProgressLines+5; i++ {
		pm = pm.appendLine("line")
	}

	assert.Len(t, pm.lines, maxProgressLines)
}

func TestPagerModel_Navigation(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "row"
	}

	pg := newPagerModel(lines)
	pg.height = 12

	require.True(t, pg.needsPagination())
	assert.Equal(t, 10, pg.itemsPerPage())
	assert.Equal(t, 20, pg.maxOffset())

	press := func(key string) {
		model, _ := pg.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		pg = model.(pagerModel)
	}

	press("j")
	assert.Equal(t, 1, pg.offset)

	press("d")
	assert.Equal(t, 11, pg.offset)

	press("G")
	assert.Equal(t, 20, pg.offset)

	press("j")
	assert.Equal(t, 20, pg.offset)

	press("u")
	assert.Equal(t, 10, pg.offset)

	press("g")
	assert.Equal(t, 0, pg.offset)

	press("k")
	assert.Equal(t, 0, pg.offset)

	assert.True(t, strings.Contains(pg.View(), "Lines 1-10 of 30"))

	_, cmd := pg.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPagerModel_SmallContentIsNotPaged(t *testing.T) {
	pg := newPagerModel([]string{"a", "b"})
	pg.height = 40

	assert.False(t, pg.needsPagination())
	assert.Equal(t, "a\nb\n", pg.View())
}
