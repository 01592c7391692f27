package adapter

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	m "github.com/LinnaX7/PReMM/internal/model"
	"github.com/LinnaX7/PReMM/pkg"
)

const (
	summaryFileName = "summary.yaml"
	journalFileName = "attempts.gob"
)

// ReportStore persists per-bug results.
type ReportStore interface {
	// HasResult reports whether the bug already has a result table.
	HasResult(bugID string) bool
	// AppendResult appends one rank row to the bug's result table.
	AppendResult(ctx context.Context, row m.RankResult) error
	// SaveSummary writes the bug's run summary.
	SaveSummary(ctx context.Context, summary m.RunSummary) error
	// LoadResults reads every stored result row, ordered by bug.
	LoadResults(ctx context.Context) ([]m.RankResult, error)
	// LoadSummaries reads every stored run summary, ordered by bug.
	LoadSummaries(ctx context.Context) ([]m.RunSummary, error)
	// AppendAttempt adds one attempt to the bug's attempt journal.
	AppendAttempt(ctx context.Context, record m.AttemptRecord) error
	// LoadAttempts reads the bug's attempt journal in the order it was written.
	LoadAttempts(ctx context.Context, bugID string) ([]m.AttemptRecord, error)
}

// FileReportStore keeps results as <output>/<bug>/repair_result-<chain>.csv,
// <output>/<bug>/summary.yaml and the attempt journal <output>/<bug>/attempts.gob.
type FileReportStore struct {
	output      m.Path
	chainLength int
}

// NewReportStore returns a store rooted at output. chainLength names the result table.
func NewReportStore(output m.Path, chainLength int) *FileReportStore {
	return &FileReportStore{output: output, chainLength: chainLength}
}

func (s *FileReportStore) resultFile(bugID string) string {
	return filepath.Join(string(s.output), bugID, fmt.Sprintf("repair_result-%d.csv", s.chainLength))
}

// HasResult implements ReportStore.
func (s *FileReportStore) HasResult(bugID string) bool {
	_, err := os.Stat(s.resultFile(bugID))
	return err == nil
}

// AppendResult implements ReportStore.
func (s *FileReportStore) AppendResult(ctx context.Context, row m.RankResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.resultFile(row.BugID)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create result directory: %w", err)
	}

	_, statErr := os.Stat(path)
	writeHeader := errors.Is(statErr, os.ErrNotExist)

	// #nosec G304 - path is built from the configured output directory
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		slog.Error("Failed to open result table", "path", path, "error", err)
		return fmt.Errorf("failed to open result table: %w", err)
	}

	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(m.ResultHeader); err != nil {
			return fmt.Errorf("failed to write result header: %w", err)
		}
	}

	if err := w.Write(row.Record()); err != nil {
		return fmt.Errorf("failed to write result row: %w", err)
	}

	w.Flush()

	return w.Error()
}

// SaveSummary implements ReportStore.
func (s *FileReportStore) SaveSummary(ctx context.Context, summary m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Join(string(s.output), summary.BugID)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create result directory: %w", err)
	}

	raw, err := marshalYAML(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, summaryFileName), raw, 0o600); err != nil {
		slog.Error("Failed to write summary", "bug", summary.BugID, "error", err)
		return fmt.Errorf("failed to write summary: %w", err)
	}

	return nil
}

// LoadResults implements ReportStore.
func (s *FileReportStore) LoadResults(ctx context.Context) ([]m.RankResult, error) {
	bugs, err := s.bugDirs()
	if err != nil {
		return nil, err
	}

	var rows []m.RankResult

	for _, bug := range bugs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		bugRows, err := readResultTable(s.resultFile(bug))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to load results of %s: %w", bug, err)
		}

		rows = append(rows, bugRows...)
	}

	return rows, nil
}

// LoadSummaries implements ReportStore.
func (s *FileReportStore) LoadSummaries(ctx context.Context) ([]m.RunSummary, error) {
	bugs, err := s.bugDirs()
	if err != nil {
		return nil, err
	}

	var summaries []m.RunSummary

	for _, bug := range bugs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// #nosec G304 - path is built from the configured output directory
		raw, err := os.ReadFile(filepath.Join(string(s.output), bug, summaryFileName))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read summary of %s: %w", bug, err)
		}

		var summary m.RunSummary
		if err := yaml.Unmarshal(raw, &summary); err != nil {
			return nil, fmt.Errorf("failed to decode summary of %s: %w", bug, err)
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (s *FileReportStore) journalFile(bugID string) string {
	return filepath.Join(string(s.output), bugID, journalFileName)
}

// AppendAttempt implements ReportStore.
func (s *FileReportStore) AppendAttempt(ctx context.Context, record m.AttemptRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	journal, err := pkg.OpenFileSpill[m.AttemptRecord](s.journalFile(record.BugID))
	if err != nil {
		return fmt.Errorf("failed to open attempt journal: %w", err)
	}

	appendErr := journal.Append(record)
	closeErr := journal.Close()

	if appendErr != nil {
		slog.Error("Failed to journal attempt", "bug", record.BugID, "rank", record.Rank, "try", record.Try, "error", appendErr)
		return fmt.Errorf("failed to journal attempt: %w", appendErr)
	}

	return closeErr
}

// LoadAttempts implements ReportStore. A bug without a journal has no attempts.
func (s *FileReportStore) LoadAttempts(ctx context.Context, bugID string) ([]m.AttemptRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.journalFile(bugID)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	journal, err := pkg.OpenFileSpill[m.AttemptRecord](path)
	if err != nil {
		return nil, fmt.Errorf("failed to open attempt journal of %s: %w", bugID, err)
	}

	defer func() { _ = journal.Close() }()

	records := make([]m.AttemptRecord, 0, journal.Len())

	err = journal.Range(func(_ uint64, record m.AttemptRecord) error {
		records = append(records, record)
		return ctx.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read attempt journal of %s: %w", bugID, err)
	}

	return records, nil
}

func (s *FileReportStore) bugDirs() ([]string, error) {
	entries, err := os.ReadDir(string(s.output))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.output, err)
	}

	var bugs []string

	for _, entry := range entries {
		if entry.IsDir() {
			bugs = append(bugs, entry.Name())
		}
	}

	sort.Strings(bugs)

	return bugs, nil
}

func readResultTable(path string) ([]m.RankResult, error) {
	// #nosec G304 - path is built from the configured output directory
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(m.ResultHeader)

	var rows []m.RankResult

	for line := 0; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		if line == 0 {
			continue
		}

		row, err := parseRankResult(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}

		row.Rank = line
		rows = append(rows, row)
	}

	return rows, nil
}

func parseRankResult(record []string) (m.RankResult, error) {
	state, err := m.ParseRepairState(record[1])
	if err != nil {
		return m.RankResult{}, err
	}

	nums := make([]int, 0, len(record)-2)
	for _, field := range record[2:] {
		n, err := strconv.Atoi(field)
		if err != nil {
			return m.RankResult{}, fmt.Errorf("invalid number %q: %w", field, err)
		}

		nums = append(nums, n)
	}

	return m.RankResult{
		BugID:          record[0],
		Result:         state,
		AttemptCount:   nums[0],
		IterativeCount: nums[1],
		LastTokens:     m.TokenCounters{Prompt: nums[2], Completion: nums[3]},
		TotalTokens:    m.TokenCounters{Prompt: nums[4], Completion: nums[5]},
	}, nil
}
