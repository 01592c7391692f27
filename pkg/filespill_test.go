package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type journalEntry struct {
	Name   string
	Counts []int
	Tags   map[string]string
}

func openSpill[T any](t *testing.T, path string) FileSpill[T] {
	t.Helper()

	spill, err := OpenFileSpill[T](path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = spill.Close() })

	return spill
}

func TestFileSpill(t *testing.T) {
	t.Run("OpenFileSpill creates the file and its directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "items.gob")
		spill := openSpill[int](t, path)

		assert.Equal(t, path, spill.Path())
		assert.Equal(t, uint64(0), spill.Len())

		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("Append and Get", func(t *testing.T) {
		spill := openSpill[string](t, filepath.Join(t.TempDir(), "items.gob"))

		require.NoError(t, spill.Append("first"))
		require.NoError(t, spill.Append("second"))

		val, err := spill.Get(0)
		require.NoError(t, err)
		assert.Equal(t, "first", val)

		val, err = spill.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "second", val)

		val, err = spill.Get(3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of bounds")
		assert.Empty(t, val)
	})

	t.Run("AppendBatch adds items in order", func(t *testing.T) {
		spill := openSpill[int](t, filepath.Join(t.TempDir(), "items.gob"))

		require.NoError(t, spill.AppendBatch([]int{10, 20, 30, 40, 50}))
		assert.Equal(t, uint64(5), spill.Len())

		val, err := spill.Get(4)
		require.NoError(t, err)
		assert.Equal(t, 50, val)
	})

	t.Run("Range iterates all items in order", func(t *testing.T) {
		spill := openSpill[int](t, filepath.Join(t.TempDir(), "items.gob"))
		require.NoError(t, spill.AppendBatch([]int{3, 1, 2}))

		var indices []uint64

		var values []int

		err := spill.Range(func(index uint64, item int) error {
			indices = append(indices, index)
			values = append(values, item)

			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, []uint64{0, 1, 2}, indices)
		assert.Equal(t, []int{3, 1, 2}, values)
	})

	t.Run("Range stops at the first callback error", func(t *testing.T) {
		spill := openSpill[int](t, filepath.Join(t.TempDir(), "items.gob"))
		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))

		stop := errors.New("stop")
		visited := 0

		err := spill.Range(func(_ uint64, item int) error {
			visited++
			if item == 2 {
				return stop
			}

			return nil
		})

		assert.ErrorIs(t, err, stop)
		assert.Equal(t, 2, visited)
	})

	t.Run("structs keep every field", func(t *testing.T) {
		spill := openSpill[journalEntry](t, filepath.Join(t.TempDir(), "items.gob"))

		first := journalEntry{Name: "Chart-1", Counts: []int{1, 2}, Tags: map[string]string{"rank": "top-1"}}
		second := journalEntry{Name: "Lang-7"}

		require.NoError(t, spill.Append(first))
		require.NoError(t, spill.Append(second))

		got, err := spill.Get(0)
		require.NoError(t, err)
		assert.Equal(t, first, got)

		got, err = spill.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "Lang-7", got.Name)
		assert.Empty(t, got.Counts, "fields of earlier frames never leak into later ones")
		assert.Empty(t, got.Tags)
	})
}

func TestFileSpill_ReopenKeepsAppending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.gob")

	spill, err := OpenFileSpill[string](path)
	require.NoError(t, err)
	require.NoError(t, spill.AppendBatch([]string{"a", "b"}))
	require.NoError(t, spill.Close())

	reopened := openSpill[string](t, path)
	assert.Equal(t, uint64(2), reopened.Len())

	require.NoError(t, reopened.Append("c"))

	var all []string

	require.NoError(t, reopened.Range(func(_ uint64, item string) error {
		all = append(all, item)
		return nil
	}))
	assert.Equal(t, []string{"a", "b", "c"}, all)
}

func TestFileSpill_CloseIsIdempotent(t *testing.T) {
	spill, err := OpenFileSpill[int](filepath.Join(t.TempDir(), "items.gob"))
	require.NoError(t, err)

	require.NoError(t, spill.Close())
	require.NoError(t, spill.Close())
	assert.ErrorIs(t, spill.Append(1), ErrSpillClosed)
}

func TestFileSpill_TruncatedFileIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.gob")

	spill, err := OpenFileSpill[string](path)
	require.NoError(t, err)
	require.NoError(t, spill.Append("complete frame"))
	require.NoError(t, spill.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, os.Truncate(path, info.Size()-2))

	_, err = OpenFileSpill[string](path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "truncated frame 0")
}

func TestFileSpill_UnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := OpenFileSpill[int](filepath.Join(blocker, "items.gob"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create spill directory")
}
