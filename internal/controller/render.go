package controller

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	m "github.com/LinnaX7/PReMM/internal/model"
)

const maxCellWidth = 60

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderClustersTable(clusters []*m.ClusterState) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Cluster", "Methods", "Files", "Failing Tests", "Paths"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	methods := 0

	for _, c := range clusters {
		signatures := make([]string, 0, len(c.FaultCodes))
		for _, code := range c.FaultCodes {
			signatures = append(signatures, code.Signature)
		}

		methods += len(signatures)

		table.Append([]string{
			fmt.Sprintf("%d", c.ID),
			truncate(strings.Join(signatures, ", ")),
			truncate(strings.Join(m.Strings(c.FaultFiles()), ", ")),
			truncate(strings.Join(c.RelatedTests, ", ")),
			fmt.Sprintf("%d", len(c.InvocationPaths)),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(clusters)),
		fmt.Sprintf("%d methods", methods),
		"", "", "",
	})

	table.Render()

	return buf.String()
}

func renderGroupsTable(groups []*m.MergedGroup) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Group", "Clusters", "Tests"})

	for i, g := range groups {
		ids := make([]string, 0, len(g.Clusters))
		for _, c := range g.Clusters {
			ids = append(ids, fmt.Sprintf("%d", c.ID))
		}

		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			strings.Join(ids, ", "),
			truncate(g.Key),
		})
	}

	table.Render()

	return buf.String()
}

func renderResultsTable(rows []m.RankResult) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Bug", "Rank", "Result", "Attempts", "Iterations", "Last Tokens", "Total Tokens"})

	var (
		succeeded int
		total     m.TokenCounters
	)

	for _, row := range rows {
		if row.Result == m.RepairSuccess {
			succeeded++
		}

		total.Add(row.TotalTokens)

		table.Append([]string{
			row.BugID,
			rankLabel(row.Rank),
			row.Result.String(),
			fmt.Sprintf("%d", row.AttemptCount),
			fmt.Sprintf("%d", row.IterativeCount),
			formatTokens(row.LastTokens),
			formatTokens(row.TotalTokens),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Rows %d", len(rows)),
		"",
		fmt.Sprintf("%d repaired", succeeded),
		"", "", "",
		formatTokens(total),
	})

	table.Render()

	return buf.String()
}

func renderSummariesTable(summaries []m.RunSummary) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Bug", "Result", "Ranks", "Attempts", "Tokens", "Patch", "Duration", "Started"})

	for _, s := range summaries {
		table.Append([]string{
			s.BugID,
			s.Result.String(),
			fmt.Sprintf("%d", s.Ranks),
			fmt.Sprintf("%d", s.Attempts),
			formatTokens(s.Tokens),
			formatPatch(s.Patch),
			s.Duration.Round(time.Second).String(),
			humanize.Time(s.Started),
		})
	}

	table.Render()

	return buf.String()
}

func renderAttemptsTable(records []m.AttemptRecord) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Rank", "Try", "Result", "Clusters", "Groups", "Tokens", "Duration", "Error"})

	for _, r := range records {
		states := make([]string, 0, len(r.Clusters))
		for _, c := range r.Clusters {
			states = append(states, fmt.Sprintf("%d:%s", c.ID, c.State))
		}

		table.Append([]string{
			rankLabel(r.Rank),
			fmt.Sprintf("%d", r.Try),
			r.Result.String(),
			truncate(strings.Join(states, ", ")),
			fmt.Sprintf("%d", r.Groups),
			formatTokens(r.Tokens),
			r.Duration.Round(time.Second).String(),
			truncate(r.Error),
		})
	}

	table.Render()

	return buf.String()
}

func formatTokens(t m.TokenCounters) string {
	return humanize.Comma(int64(t.Prompt)) + " / " + humanize.Comma(int64(t.Completion))
}

func formatPatch(p *m.PatchStats) string {
	if p == nil {
		return "-"
	}

	return fmt.Sprintf("%d file(s) +%d -%d", p.Files, p.Added, p.Deleted)
}

func truncate(s string) string {
	if len(s) <= maxCellWidth {
		return s
	}

	return s[:maxCellWidth-3] + "..."
}
