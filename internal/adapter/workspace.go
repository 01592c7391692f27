package adapter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	m "github.com/LinnaX7/PReMM/internal/model"
)

// Workspace is the file mutation primitive. It writes repaired code into a
// working copy and restores the original content on demand.
type Workspace interface {
	// ModifyFiles writes every patch's snippets into its file. Applying the
	// same patches twice leaves the file unchanged after the first call.
	ModifyFiles(ctx context.Context, workDir m.Path, patches []m.FilePatch) error
	// RecoverFiles restores files to the content they had before the first
	// ModifyFiles touching them. Unknown files are left alone.
	RecoverFiles(ctx context.Context, workDir m.Path, files []m.Path) error
	// Original returns the pre-modification content of a file.
	Original(workDir, file m.Path) ([]byte, bool)
	// ReadFile returns the current content of a file.
	ReadFile(workDir, file m.Path) ([]byte, error)
	// Forget drops every snapshot under workDir.
	Forget(workDir m.Path)
	// RemoveAll deletes a working copy.
	RemoveAll(ctx context.Context, workDir m.Path) error
}

// LocalWorkspace snapshots originals in memory and writes files atomically.
type LocalWorkspace struct {
	mu        sync.Mutex
	originals map[string][]byte
}

// NewLocalWorkspace constructs an empty LocalWorkspace.
func NewLocalWorkspace() *LocalWorkspace {
	return &LocalWorkspace{originals: make(map[string][]byte)}
}

// ModifyFiles implements Workspace. Snippets are applied onto the original
// snapshot from the bottom of the file up so earlier line numbers stay valid.
func (w *LocalWorkspace) ModifyFiles(ctx context.Context, workDir m.Path, patches []m.FilePatch) error {
	for _, patch := range patches {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := resolve(workDir, patch.FilePath)

		original, err := w.snapshot(path)
		if err != nil {
			slog.Error("Failed to snapshot file", "path", path, "error", err)
			return fmt.Errorf("failed to snapshot %s: %w", patch.FilePath, err)
		}

		patched, err := applySnippets(original, patch.Snippets)
		if err != nil {
			return fmt.Errorf("failed to patch %s: %w", patch.FilePath, err)
		}

		if err := writeIfChanged(path, patched); err != nil {
			slog.Error("Failed to write patched file", "path", path, "error", err)
			return fmt.Errorf("failed to write %s: %w", patch.FilePath, err)
		}
	}

	return nil
}

// RecoverFiles implements Workspace.
func (w *LocalWorkspace) RecoverFiles(ctx context.Context, workDir m.Path, files []m.Path) error {
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		original, ok := w.Original(workDir, file)
		if !ok {
			continue
		}

		path := resolve(workDir, file)
		if err := writeIfChanged(path, original); err != nil {
			slog.Error("Failed to recover file", "path", path, "error", err)
			return fmt.Errorf("failed to recover %s: %w", file, err)
		}
	}

	return nil
}

// Original implements Workspace.
func (w *LocalWorkspace) Original(workDir, file m.Path) ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	content, ok := w.originals[resolve(workDir, file)]

	return content, ok
}

// ReadFile implements Workspace.
func (w *LocalWorkspace) ReadFile(workDir, file m.Path) ([]byte, error) {
	return os.ReadFile(resolve(workDir, file))
}

// Forget implements Workspace.
func (w *LocalWorkspace) Forget(workDir m.Path) {
	w.mu.Lock()
	defer w.mu.Unlock()

	prefix := filepath.Clean(string(workDir)) + string(filepath.Separator)
	for path := range w.originals {
		if strings.HasPrefix(path, prefix) {
			delete(w.originals, path)
		}
	}
}

// RemoveAll implements Workspace.
func (w *LocalWorkspace) RemoveAll(_ context.Context, workDir m.Path) error {
	w.Forget(workDir)
	return os.RemoveAll(string(workDir))
}

func (w *LocalWorkspace) snapshot(path string) ([]byte, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if content, ok := w.originals[path]; ok {
		return content, nil
	}

	// #nosec G304 - path is a fault file inside the working copy
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	w.originals[path] = content

	return content, nil
}

func resolve(workDir, file m.Path) string {
	if filepath.IsAbs(string(file)) {
		return filepath.Clean(string(file))
	}

	return filepath.Join(string(workDir), string(file))
}

func applySnippets(original []byte, snippets []*m.FaultCodeInfo) ([]byte, error) {
	lines := strings.SplitAfter(string(original), "\n")

	ordered := make([]*m.FaultCodeInfo, len(snippets))
	copy(ordered, snippets)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].LineBegin > ordered[j].LineBegin
	})

	total := lineCount(lines)
	limit := total + 1

	for _, snippet := range ordered {
		if snippet.LineBegin < 1 || snippet.LineEnd < snippet.LineBegin || snippet.LineEnd > total {
			return nil, fmt.Errorf("snippet %s has invalid line range %d-%d", snippet.Signature, snippet.LineBegin, snippet.LineEnd)
		}

		if snippet.LineEnd >= limit {
			return nil, fmt.Errorf("snippet %s overlaps a later snippet", snippet.Signature)
		}

		code := snippet.RepairedCode
		if code != "" && !strings.HasSuffix(code, "\n") && strings.HasSuffix(lines[snippet.LineEnd-1], "\n") {
			code += "\n"
		}

		replaced := make([]string, 0, len(lines))
		replaced = append(replaced, lines[:snippet.LineBegin-1]...)
		replaced = append(replaced, code)
		replaced = append(replaced, lines[snippet.LineEnd:]...)
		lines = replaced
		limit = snippet.LineBegin
	}

	return []byte(strings.Join(lines, "")), nil
}

// lineCount returns the number of lines in the result of SplitAfter on "\n",
// not counting the empty element after a trailing newline.
func lineCount(lines []string) int {
	if n := len(lines); n > 0 && lines[n-1] == "" {
		return n - 1
	}

	return len(lines)
}

// writeIfChanged replaces path with content through a temp file and rename,
// skipping the write when the file already holds content.
func writeIfChanged(path string, content []byte) error {
	// #nosec G304 - path is a fault file inside the working copy
	current, err := os.ReadFile(path)
	if err == nil && bytes.Equal(current, content) {
		return nil
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".premm-*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, mode); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
