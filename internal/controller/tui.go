package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/LinnaX7/PReMM/internal/model"
)

const maxProgressLines = 200

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	partialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

func styleState(state m.RepairState) string {
	switch state {
	case m.RepairSuccess:
		return successStyle.Render(state.String())
	case m.RepairTestSuccess:
		return partialStyle.Render(state.String())
	case m.NotRepaired:
		return dimStyle.Render(state.String())
	default:
		return failureStyle.Render(state.String())
	}
}

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress view in repair mode. View mode renders on demand.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := &StartConfig{}
	for _, option := range options {
		option(cfg)
	}

	if cfg.mode != ModeRepair {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.program != nil {
		return nil
	}

	program := tea.NewProgram(newProgressModel(), tea.WithOutput(p.output), tea.WithInput(nil), tea.WithContext(ctx))
	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	p.program = program
	p.done = done

	return nil
}

// Close stops the progress view and waits for its final render.
func (p *TUI) Close(_ context.Context) {
	p.mu.Lock()
	program, done := p.program, p.done
	p.program, p.done = nil, nil
	p.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(finishedMsg{})
	<-done
}

// Wait lets the progress view render its final state.
func (p *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.send(finishedMsg{})
}

func (p *TUI) send(msg tea.Msg) {
	p.mu.Lock()
	program := p.program
	p.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// DisplayBugStarted implements UI.
func (p *TUI) DisplayBugStarted(ctx context.Context, bugID, runID string) {
	if ctx.Err() != nil {
		return
	}

	p.send(bugStartedMsg{bugID: bugID, runID: runID})
}

// DisplayBugSkipped implements UI.
func (p *TUI) DisplayBugSkipped(ctx context.Context, bugID string) {
	if ctx.Err() != nil {
		return
	}

	p.send(lineMsg(dimStyle.Render("skipped " + bugID + ": results already exist")))
}

// DisplayAttemptStarted implements UI.
func (p *TUI) DisplayAttemptStarted(ctx context.Context, bugID string, rank, try int) {
	if ctx.Err() != nil {
		return
	}

	p.send(attemptStartedMsg(fmt.Sprintf("%s [%s] try %d", bugID, rankLabel(rank), try)))
}

// DisplayAttemptResult implements UI.
func (p *TUI) DisplayAttemptResult(ctx context.Context, state *m.MasterState) {
	if ctx.Err() != nil {
		return
	}

	p.send(lineMsg(fmt.Sprintf("  [%s] try %d %s %s",
		rankLabel(state.Rank), state.Try, styleState(state.Result),
		dimStyle.Render(fmt.Sprintf("%d cluster(s), tokens %s", len(state.Clusters), formatTokens(state.Tokens))))))
}

// DisplayRankResult implements UI.
func (p *TUI) DisplayRankResult(ctx context.Context, row m.RankResult) {
	if ctx.Err() != nil {
		return
	}

	p.send(lineMsg(fmt.Sprintf("  [%s] %s after %d attempt(s)", rankLabel(row.Rank), styleState(row.Result), row.AttemptCount)))
}

// DisplayBugSummary implements UI.
func (p *TUI) DisplayBugSummary(ctx context.Context, summary m.RunSummary) {
	if ctx.Err() != nil {
		return
	}

	line := fmt.Sprintf("%s %s, patch %s", titleStyle.Render(summary.BugID), styleState(summary.Result), formatPatch(summary.Patch))
	if summary.Error != "" {
		line += "\n  " + failureStyle.Render(truncate(summary.Error))
	}

	p.send(lineMsg(line))
}

// DisplayClusters implements UI.
func (p *TUI) DisplayClusters(ctx context.Context, bugID string, clusters []*m.ClusterState, groups []*m.MergedGroup) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := titleStyle.Render("Clusters of "+bugID) + "\n\n" + renderClustersTable(clusters) +
		"\n" + titleStyle.Render("Merged groups") + "\n\n" + renderGroupsTable(groups)

	return p.page(content)
}

// DisplayResults implements UI.
func (p *TUI) DisplayResults(ctx context.Context, rows []m.RankResult, summaries []m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(rows) == 0 && len(summaries) == 0 {
		_, err := fmt.Fprintln(p.output, dimStyle.Render("No results found"))
		return err
	}

	content := titleStyle.Render("Repair results") + "\n\n" + renderResultsTable(rows)
	if len(summaries) > 0 {
		content += "\n" + titleStyle.Render("Bug runs") + "\n\n" + renderSummariesTable(summaries)
	}

	return p.page(content)
}

// DisplayAttempts implements UI.
func (p *TUI) DisplayAttempts(ctx context.Context, bugID string, records []m.AttemptRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.page(titleStyle.Render("Attempts of "+bugID) + "\n\n" + renderAttemptsTable(records))
}

// page prints content, paging it when it does not fit the terminal.
func (p *TUI) page(content string) error {
	model := newPagerModel(strings.Split(strings.TrimRight(content, "\n"), "\n"))

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

type (
	bugStartedMsg struct {
		bugID string
		runID string
	}
	attemptStartedMsg string
	lineMsg           string
	finishedMsg       struct{}
)

// progressModel streams repair progress under a spinner.
type progressModel struct {
	spinner spinner.Model
	current string
	lines   []string
	done    bool
}

func newProgressModel() progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = titleStyle

	return progressModel{spinner: s}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd

	case bugStartedMsg:
		pm.current = msg.bugID
		pm = pm.appendLine(titleStyle.Render(msg.bugID) + dimStyle.Render(" run "+shortID(msg.runID)))

		return pm, nil

	case attemptStartedMsg:
		pm.current = string(msg)

		return pm, nil

	case lineMsg:
		pm = pm.appendLine(string(msg))

		return pm, nil

	case finishedMsg:
		pm.done = true
		pm.current = ""

		return pm, tea.Quit
	}

	return pm, nil
}

func (pm progressModel) appendLine(line string) progressModel {
	pm.lines = append(pm.lines, line)
	if len(pm.lines) > maxProgressLines {
		pm.lines = pm.lines[len(pm.lines)-maxProgressLines:]
	}

	return pm
}

func (pm progressModel) View() string {
	var b strings.Builder

	for _, line := range pm.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if !pm.done && pm.current != "" {
		fmt.Fprintf(&b, "%s %s\n", pm.spinner.View(), pm.current)
	}

	return b.String()
}

// pagerModel scrolls pre-rendered lines.
type pagerModel struct {
	lines  []string
	height int
	width  int
	offset int
}

func newPagerModel(lines []string) pagerModel {
	return pagerModel{lines: lines}
}

func (pg pagerModel) Init() tea.Cmd {
	return nil
}

func (pg pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pg.height = msg.Height
		pg.width = msg.Width

		return pg, nil

	case tea.KeyMsg:
		return pg.handleKeyPress(msg)
	}

	return pg, nil
}

func (pg pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // We only handle specific navigation keys
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return pg, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		return pg, tea.Quit
	case "down", "j":
		pg.offset = min(pg.offset+1, pg.maxOffset())
	case "up", "k":
		pg.offset = max(pg.offset-1, 0)
	case "g", "home":
		pg.offset = 0
	case "G", "end":
		pg.offset = pg.maxOffset()
	case "d", "pgdown":
		pg.offset = min(pg.offset+pg.itemsPerPage(), pg.maxOffset())
	case "u", "pgup":
		pg.offset = max(pg.offset-pg.itemsPerPage(), 0)
	}

	return pg, nil
}

// itemsPerPage reserves two lines for the footer.
func (pg pagerModel) itemsPerPage() int {
	if pg.height == 0 {
		return 10
	}

	return max(pg.height-2, 1)
}

func (pg pagerModel) maxOffset() int {
	return max(len(pg.lines)-pg.itemsPerPage(), 0)
}

func (pg pagerModel) needsPagination() bool {
	return pg.height > 0 && len(pg.lines) > pg.itemsPerPage()
}

func (pg pagerModel) View() string {
	var b strings.Builder

	lines := pg.lines
	paged := pg.needsPagination()

	if paged {
		end := min(pg.offset+pg.itemsPerPage(), len(lines))
		lines = lines[pg.offset:end]
	}

	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if paged {
		fmt.Fprintf(&b, "%s\n", dimStyle.Render(fmt.Sprintf("Lines %d-%d of %d | ↑/k ↓/j g G | q: quit",
			pg.offset+1, min(pg.offset+pg.itemsPerPage(), len(pg.lines)), len(pg.lines))))
	}

	return b.String()
}
