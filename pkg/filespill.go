// Package pkg provides persistence utilities shared by premm's adapters.
package pkg

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ErrSpillClosed is returned by Append after Close.
var ErrSpillClosed = errors.New("filespill is closed")

// FileSpill is an append-only on-disk log of items of type T.
//
// Every item is stored as its own length-prefixed gob frame, so a spill
// reopened by a later run keeps appending to the same file.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(f func(index uint64, item T) error) error
	Close() error
}

type fileSpillImpl[T any] struct {
	path   string
	file   *os.File
	mu     sync.Mutex
	length uint64
}

// OpenFileSpill opens the spill at path, creating the file and its directory
// when missing. Existing frames are counted so Len covers earlier runs.
func OpenFileSpill[T any](path string) (FileSpill[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		slog.Error("failed to create spill directory", "path", path, "error", err)
		return nil, fmt.Errorf("failed to create spill directory: %w", err)
	}

	// #nosec G304 - path is built by the caller from its configured output
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o600)
	if err != nil {
		slog.Error("failed to open spill", "path", path, "error", err)
		return nil, fmt.Errorf("failed to open spill: %w", err)
	}

	length, err := countFrames(file)
	if err != nil {
		_ = file.Close()

		slog.Error("failed to scan spill", "path", path, "frames", length, "error", err)

		return nil, fmt.Errorf("failed to scan spill %s: %w", path, err)
	}

	slog.Debug("opened filespill", "path", path, "length", length)

	return &fileSpillImpl[T]{path: path, file: file, length: length}, nil
}

func countFrames(r io.Reader) (uint64, error) {
	br := bufio.NewReader(r)

	var n uint64

	for {
		size, err := binary.ReadUvarint(br)
		if errors.Is(err, io.EOF) {
			return n, nil
		}

		if err != nil {
			return n, fmt.Errorf("corrupt frame header %d: %w", n, err)
		}

		if _, err := br.Discard(int(size)); err != nil {
			return n, fmt.Errorf("truncated frame %d: %w", n, err)
		}

		n++
	}
}

// Append implements FileSpill.
func (f *fileSpillImpl[T]) Append(item T) error {
	var payload bytes.Buffer
	if err := gob.NewEncoder(&payload).Encode(item); err != nil {
		slog.Error("failed to encode item", "path", f.path, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	frame := binary.AppendUvarint(make([]byte, 0, binary.MaxVarintLen64+payload.Len()), uint64(payload.Len()))
	frame = append(frame, payload.Bytes()...)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return ErrSpillClosed
	}

	if _, err := f.file.Write(frame); err != nil {
		slog.Error("failed to write item", "path", f.path, "index", f.length, "error", err)
		return fmt.Errorf("failed to write item: %w", err)
	}

	f.length++
	slog.Debug("appended item", "path", f.path, "index", f.length-1)

	return nil
}

// Path implements FileSpill.
func (f *fileSpillImpl[T]) Path() string {
	return f.path
}

// AppendBatch implements FileSpill.
func (f *fileSpillImpl[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := f.Append(item); err != nil {
			return err
		}
	}

	return nil
}

// Close implements FileSpill. Closing twice is a no-op.
func (f *fileSpillImpl[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}

	err := f.file.Close()
	f.file = nil

	if err != nil {
		slog.Error("failed to close file", "path", f.path, "error", err)
		return err
	}

	slog.Debug("closed filespill", "path", f.path, "length", f.length)

	return nil
}

// Get implements FileSpill.
func (f *fileSpillImpl[T]) Get(index uint64) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var found T

	if index >= f.length {
		slog.Warn("get index out of bounds", "path", f.path, "index", index, "length", f.length)
		return found, fmt.Errorf("index %d out of bounds (length %d)", index, f.length)
	}

	err := f.scan(index+1, func(i uint64, item T) error {
		if i == index {
			found = item
		}

		return nil
	})

	return found, err
}

// Len implements FileSpill.
func (f *fileSpillImpl[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

// Range implements FileSpill.
func (f *fileSpillImpl[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.scan(f.length, fn)
}

// scan decodes the first limit frames in order. The caller holds mu.
func (f *fileSpillImpl[T]) scan(limit uint64, fn func(index uint64, item T) error) error {
	// #nosec G304 - same path the spill was opened with
	file, err := os.Open(f.path)
	if err != nil {
		slog.Error("failed to open file for reading", "path", f.path, "error", err)
		return fmt.Errorf("failed to open file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close file", "path", f.path, "error", err)
		}
	}()

	br := bufio.NewReader(file)

	for i := range limit {
		size, err := binary.ReadUvarint(br)
		if err != nil {
			return fmt.Errorf("failed to read frame %d: %w", i, err)
		}

		payload := make([]byte, size)
		if _, err := io.ReadFull(br, payload); err != nil {
			return fmt.Errorf("failed to read frame %d: %w", i, err)
		}

		var item T
		if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&item); err != nil {
			slog.Error("failed to decode item", "path", f.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			slog.Warn("range callback error", "path", f.path, "index", i, "error", err)
			return err
		}
	}

	return nil
}
