package index

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"kit.dev/kit/internal/object"
)

func TestIndexPersistence(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "index")

	idx, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 0, idx.Len())

	require.NoError(t, idx.Stage("a.txt", object.Hash("aaaa")))
	require.NoError(t, idx.Stage("dir/b.txt", object.Hash("bbbb")))

	// Every mutation flushes: a fresh load sees the entries.
	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, reloaded.Len())
	h, ok := reloaded.Get("a.txt")
	require.True(t, ok)
	require.Equal(t, object.Hash("aaaa"), h)
}

func TestStageOverwrites(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "index")

	idx, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, idx.Stage("a.txt", object.Hash("v1")))
	require.NoError(t, idx.Stage("a.txt", object.Hash("v2")))

	require.Equal(t, 1, idx.Len())
	h, _ := idx.Get("a.txt")
	require.Equal(t, object.Hash("v2"), h)
}

func TestUnstage(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "index")

	idx, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, idx.Stage("a.txt", object.Hash("aaaa")))
	require.NoError(t, idx.Unstage("a.txt"))
	require.NoError(t, idx.Unstage("missing.txt")) // no-op

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 0, reloaded.Len())
}

func TestClear(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "index")

	idx, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, idx.Stage("a.txt", object.Hash("aaaa")))
	require.NoError(t, idx.Stage("b.txt", object.Hash("bbbb")))
	require.NoError(t, idx.Clear())

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 0, reloaded.Len())
}

func TestSnapshotIsACopy(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "index")

	idx, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, idx.Stage("a.txt", object.Hash("aaaa")))

	snap := idx.Snapshot()
	snap["a.txt"] = object.Hash("mutated")

	h, _ := idx.Get("a.txt")
	require.Equal(t, object.Hash("aaaa"), h)
}
