package repo_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	kiterrors "kit.dev/kit/internal/errors"
	"kit.dev/kit/testhelpers"
)

func TestStatusFreshRepository(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t)

	st, err := scene.Repo.Status()
	require.NoError(t, err)
	require.Equal(t, "refs/heads/master", st.Branch)
	require.True(t, st.Head.IsZero())
	require.Empty(t, st.Staged)
	require.Empty(t, st.Modified)
}

func TestStatusStagedAndModified(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t)

	scene.WriteFile(t, "a.txt", "v1")
	require.NoError(t, scene.Repo.Add("a.txt"))

	st, err := scene.Repo.Status()
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt"}, st.Staged)
	require.Empty(t, st.Modified)

	// Edit after staging: the working copy now differs from the staged blob.
	scene.WriteFile(t, "a.txt", "v2")
	st, err = scene.Repo.Status()
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt"}, st.Staged)
	require.Equal(t, []string{"a.txt"}, st.Modified)
}

// TestEndToEndScenario walks the full init/add/commit/status/diff sequence.
func TestEndToEndScenario(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t)

	scene.WriteFile(t, "a.txt", "1")
	require.NoError(t, scene.Repo.Add("a.txt"))
	_, err := scene.Repo.Commit("c1", "tester <t@example.com>")
	require.NoError(t, err)

	// After the commit the index is empty and the HEAD ref is non-empty.
	st, err := scene.Repo.Status()
	require.NoError(t, err)
	require.Empty(t, st.Staged)
	require.False(t, st.Head.IsZero())

	// Overwrite the file: status reports it modified-unstaged even though
	// the index no longer holds an entry for it (HEAD tree reconciliation).
	scene.WriteFile(t, "a.txt", "2")
	st, err = scene.Repo.Status()
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt"}, st.Modified)

	// The unstaged diff shows a single-line removal of "1" and addition of "2".
	diff, err := scene.Repo.DiffUnstaged()
	require.NoError(t, err)
	require.Contains(t, diff, "--- a/a.txt")
	require.Contains(t, diff, "+++ b/a.txt")
	require.Contains(t, diff, "-1")
	require.Contains(t, diff, "+2")
	require.Equal(t, 1, strings.Count(diff, "\n-1"))
	require.Equal(t, 1, strings.Count(diff, "\n+2"))
}

func TestAddMissingPath(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t)

	err := scene.Repo.Add("nope.txt")
	require.True(t, errors.Is(err, kiterrors.ErrPathNotFound))
}

func TestAddDirectoryStagesRecursively(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t)

	scene.WriteFile(t, "src/a.txt", "a")
	scene.WriteFile(t, "src/nested/b.txt", "b")
	require.NoError(t, scene.Repo.Add("src"))

	st, err := scene.Repo.Status()
	require.NoError(t, err)
	require.Equal(t, []string{"src/a.txt", "src/nested/b.txt"}, st.Staged)
}

func TestAddDotSkipsMetadataDir(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t)

	scene.WriteFile(t, "a.txt", "a")
	require.NoError(t, scene.Repo.Add("."))

	st, err := scene.Repo.Status()
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt"}, st.Staged)
}

func TestRm(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t)

	scene.WriteFile(t, "a.txt", "a")
	require.NoError(t, scene.Repo.Add("a.txt"))
	require.NoError(t, scene.Repo.Rm("a.txt"))

	require.False(t, scene.Exists("a.txt"))
	st, err := scene.Repo.Status()
	require.NoError(t, err)
	require.Empty(t, st.Staged)

	err = scene.Repo.Rm("a.txt")
	require.True(t, errors.Is(err, kiterrors.ErrPathNotFound))
}

func TestReset(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t)

	scene.WriteFile(t, "a.txt", "a")
	require.NoError(t, scene.Repo.Add("a.txt"))
	require.NoError(t, scene.Repo.Reset("a.txt"))

	// The working file survives a reset; only the index entry is dropped.
	require.True(t, scene.Exists("a.txt"))
	st, err := scene.Repo.Status()
	require.NoError(t, err)
	require.Empty(t, st.Staged)

	err = scene.Repo.Reset("a.txt")
	require.True(t, errors.Is(err, kiterrors.ErrPathNotFound))
}
