package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sourcegraph/go-diff/diff"

	m "github.com/LinnaX7/PReMM/internal/model"
)

// PatchEmitter writes the artifacts of an accepted repair.
type PatchEmitter interface {
	// EmitDiff writes a unified diff of the touched files against their
	// originals and returns its statistics.
	EmitDiff(ctx context.Context, bugID string, workDir m.Path, files []m.Path) (m.PatchStats, error)
	// EmitPatchFile writes the repaired code of every fault code.
	EmitPatchFile(ctx context.Context, bugID string, codes []*m.FaultCodeInfo) error
}

// FilePatchEmitter writes patches under <output>/<bug>/.
type FilePatchEmitter struct {
	output    m.Path
	workspace Workspace
}

// NewPatchEmitter returns an emitter reading originals from workspace.
func NewPatchEmitter(output m.Path, workspace Workspace) *FilePatchEmitter {
	return &FilePatchEmitter{output: output, workspace: workspace}
}

type patchEntry struct {
	Signature    string `yaml:"signature"`
	FilePath     m.Path `yaml:"file_path"`
	LineBegin    int    `yaml:"line_begin"`
	LineEnd      int    `yaml:"line_end"`
	FaultCode    string `yaml:"fault_code"`
	RepairedCode string `yaml:"repaired_code"`
}

// EmitDiff implements PatchEmitter.
func (e *FilePatchEmitter) EmitDiff(ctx context.Context, bugID string, workDir m.Path, files []m.Path) (m.PatchStats, error) {
	var sb strings.Builder

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return m.PatchStats{}, err
		}

		original, ok := e.workspace.Original(workDir, file)
		if !ok {
			slog.Warn("No original snapshot for touched file", "bug", bugID, "file", file)
			continue
		}

		current, err := e.workspace.ReadFile(workDir, file)
		if err != nil {
			return m.PatchStats{}, fmt.Errorf("failed to read patched file %s: %w", file, err)
		}

		text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(original)),
			B:        difflib.SplitLines(string(current)),
			FromFile: "a/" + string(file),
			ToFile:   "b/" + string(file),
			Context:  3,
		})
		if err != nil {
			return m.PatchStats{}, fmt.Errorf("failed to diff %s: %w", file, err)
		}

		sb.WriteString(text)
	}

	patch := sb.String()

	stats, err := diffStats(patch)
	if err != nil {
		return m.PatchStats{}, err
	}

	target, err := e.bugFile(bugID, bugID+".diff")
	if err != nil {
		return m.PatchStats{}, err
	}

	if err := os.WriteFile(target, []byte(patch), 0o600); err != nil {
		slog.Error("Failed to write patch diff", "path", target, "error", err)
		return m.PatchStats{}, fmt.Errorf("failed to write patch diff: %w", err)
	}

	slog.Info("Patch diff written", "bug", bugID, "path", target, "files", stats.Files, "added", stats.Added, "deleted", stats.Deleted)

	return stats, nil
}

// EmitPatchFile implements PatchEmitter.
func (e *FilePatchEmitter) EmitPatchFile(ctx context.Context, bugID string, codes []*m.FaultCodeInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries := make([]patchEntry, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, patchEntry{
			Signature:    code.Signature,
			FilePath:     code.FilePath,
			LineBegin:    code.LineBegin,
			LineEnd:      code.LineEnd,
			FaultCode:    code.FaultCode,
			RepairedCode: code.RepairedCode,
		})
	}

	raw, err := marshalYAML(entries)
	if err != nil {
		return fmt.Errorf("failed to encode patch file: %w", err)
	}

	target, err := e.bugFile(bugID, bugID+".patch.yaml")
	if err != nil {
		return err
	}

	if err := os.WriteFile(target, raw, 0o600); err != nil {
		slog.Error("Failed to write patch file", "path", target, "error", err)
		return fmt.Errorf("failed to write patch file: %w", err)
	}

	return nil
}

func (e *FilePatchEmitter) bugFile(bugID, name string) (string, error) {
	dir := filepath.Join(string(e.output), bugID)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	return filepath.Join(dir, name), nil
}

// diffStats counts files and changed lines of a unified diff.
func diffStats(patch string) (m.PatchStats, error) {
	if strings.TrimSpace(patch) == "" {
		return m.PatchStats{}, nil
	}

	fileDiffs, err := diff.NewMultiFileDiffReader(strings.NewReader(patch)).ReadAllFiles()
	if err != nil {
		return m.PatchStats{}, fmt.Errorf("failed to parse patch diff: %w", err)
	}

	stats := m.PatchStats{Files: len(fileDiffs)}

	for _, fd := range fileDiffs {
		for _, hunk := range fd.Hunks {
			for _, line := range strings.Split(string(hunk.Body), "\n") {
				switch {
				case strings.HasPrefix(line, "+"):
					stats.Added++
				case strings.HasPrefix(line, "-"):
					stats.Deleted++
				}
			}
		}
	}

	return stats, nil
}
