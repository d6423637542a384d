package repo_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	kiterrors "kit.dev/kit/internal/errors"
	"kit.dev/kit/testhelpers"
)

// connect registers dst's metadata root as a remote of src.
func connect(t *testing.T, src, dst *testhelpers.Scene, name string) {
	t.Helper()
	require.NoError(t, src.Repo.AddRemote(name, "file://"+dst.Repo.MetaDir()))
}

func TestFetchCopiesObjectsAndTrackingRefs(t *testing.T) {
	t.Parallel()
	remote := testhelpers.NewScene(t)
	local := testhelpers.NewScene(t)
	connect(t, local, remote, "origin")

	remote.CommitFile(t, "a.txt", "1", "c1")
	remote.CommitFile(t, "a.txt", "2", "c2")
	remoteTip, err := remote.Repo.HeadCommit()
	require.NoError(t, err)

	res, err := local.Repo.Fetch("origin")
	require.NoError(t, err)
	require.Equal(t, []string{"master"}, res.Branches)
	// c1, c2, and the two a.txt blobs.
	require.Equal(t, 4, res.ObjectsCopied)

	// The remote tip is readable locally through the tracking namespace.
	c, err := local.Repo.Objects().ReadCommit(remoteTip)
	require.NoError(t, err)
	require.Equal(t, "c2", c.Message)
}

func TestFetchDedupsOnSecondRun(t *testing.T) {
	t.Parallel()
	remote := testhelpers.NewScene(t)
	local := testhelpers.NewScene(t)
	connect(t, local, remote, "origin")

	remote.CommitFile(t, "a.txt", "1", "c1")

	first, err := local.Repo.Fetch("origin")
	require.NoError(t, err)
	require.Positive(t, first.ObjectsCopied)

	second, err := local.Repo.Fetch("origin")
	require.NoError(t, err)
	require.Zero(t, second.ObjectsCopied)
}

func TestPushOverwritesRemoteBranch(t *testing.T) {
	t.Parallel()
	remote := testhelpers.NewScene(t)
	local := testhelpers.NewScene(t)
	connect(t, local, remote, "origin")

	local.CommitFile(t, "a.txt", "1", "c1")
	tip, err := local.Repo.HeadCommit()
	require.NoError(t, err)

	copied, err := local.Repo.Push("origin", "master")
	require.NoError(t, err)
	require.Positive(t, copied)

	remoteTip, err := remote.Repo.HeadCommit()
	require.NoError(t, err)
	require.Equal(t, tip, remoteTip)

	// Push is unconditional: diverge locally and push again; the remote
	// head follows with no non-fast-forward rejection.
	local.CommitFile(t, "b.txt", "x", "c2")
	_, err = local.Repo.Push("origin", "master")
	require.NoError(t, err)
	newTip, err := local.Repo.HeadCommit()
	require.NoError(t, err)
	remoteTip, err = remote.Repo.HeadCommit()
	require.NoError(t, err)
	require.Equal(t, newTip, remoteTip)
}

func TestPushMissingBranch(t *testing.T) {
	t.Parallel()
	remote := testhelpers.NewScene(t)
	local := testhelpers.NewScene(t)
	connect(t, local, remote, "origin")

	_, err := local.Repo.Push("origin", "ghost")
	require.True(t, errors.Is(err, kiterrors.ErrRefNotFound))
}

func TestPullFastForwards(t *testing.T) {
	t.Parallel()
	remote := testhelpers.NewScene(t)
	local := testhelpers.NewScene(t)
	connect(t, local, remote, "origin")

	// Share history by pushing c1, then advance the remote by one commit.
	local.CommitFile(t, "a.txt", "1", "c1")
	_, err := local.Repo.Push("origin", "master")
	require.NoError(t, err)

	remote.CommitFile(t, "a.txt", "2", "c2")
	remoteTip, err := remote.Repo.HeadCommit()
	require.NoError(t, err)

	res, err := local.Repo.Pull("origin", "master")
	require.NoError(t, err)
	require.True(t, res.FastForward)
	require.Equal(t, remoteTip, res.Hash)

	head, err := local.Repo.HeadCommit()
	require.NoError(t, err)
	require.Equal(t, remoteTip, head)
}

func TestPullDivergedCreatesMergeCommit(t *testing.T) {
	t.Parallel()
	remote := testhelpers.NewScene(t)
	local := testhelpers.NewScene(t)
	connect(t, local, remote, "origin")

	local.CommitFile(t, "a.txt", "1", "c1")
	_, err := local.Repo.Push("origin", "master")
	require.NoError(t, err)

	// Both sides advance independently.
	remote.CommitFile(t, "remote.txt", "r", "remote work")
	remoteTip, err := remote.Repo.HeadCommit()
	require.NoError(t, err)
	local.CommitFile(t, "local.txt", "l", "local work")
	localTip, err := local.Repo.HeadCommit()
	require.NoError(t, err)

	res, err := local.Repo.Pull("origin", "master")
	require.NoError(t, err)
	require.False(t, res.FastForward)

	c, err := local.Repo.Objects().ReadCommit(res.Hash)
	require.NoError(t, err)
	require.Equal(t, localTip, c.Parent)
	require.Equal(t, remoteTip, c.Parent2)
}

func TestPullMissingRemoteBranch(t *testing.T) {
	t.Parallel()
	remote := testhelpers.NewScene(t)
	local := testhelpers.NewScene(t)
	connect(t, local, remote, "origin")

	// An unborn remote branch mirrors as an unborn tracking ref and the
	// pull no-ops against it.
	require.NoError(t, remote.Repo.CreateBranch("master"))
	res, err := local.Repo.Pull("origin", "master")
	require.NoError(t, err)
	require.True(t, res.NoOp)

	_, err = local.Repo.Pull("origin", "ghost")
	require.True(t, errors.Is(err, kiterrors.ErrRefNotFound))
}

func TestUnsupportedRemoteScheme(t *testing.T) {
	t.Parallel()
	local := testhelpers.NewScene(t)
	require.NoError(t, local.Repo.AddRemote("web", "https://example.com/repo.kit"))

	_, err := local.Repo.Fetch("web")
	require.True(t, errors.Is(err, kiterrors.ErrUnsupportedRemoteScheme))

	_, err = local.Repo.Push("web", "master")
	require.True(t, errors.Is(err, kiterrors.ErrUnsupportedRemoteScheme))
}

func TestFetchMissingRemoteDirectory(t *testing.T) {
	t.Parallel()
	local := testhelpers.NewScene(t)

	// The registered URL points at a metadata root that was never created.
	missing := filepath.Join(t.TempDir(), "nowhere", ".kit")
	require.NoError(t, local.Repo.AddRemote("origin", "file://"+missing))

	_, err := local.Repo.Fetch("origin")
	require.True(t, errors.Is(err, kiterrors.ErrPathNotFound))
	// Fetch is a read: it must not scaffold anything at the bogus path.
	require.NoDirExists(t, missing)

	_, err = local.Repo.Push("origin", "master")
	require.True(t, errors.Is(err, kiterrors.ErrPathNotFound))
	require.NoDirExists(t, missing)
}

func TestFetchUnknownRemote(t *testing.T) {
	t.Parallel()
	local := testhelpers.NewScene(t)

	_, err := local.Repo.Fetch("nowhere")
	require.True(t, errors.Is(err, kiterrors.ErrRefNotFound))
}

func TestRemoteRegistry(t *testing.T) {
	t.Parallel()
	local := testhelpers.NewScene(t)

	require.NoError(t, local.Repo.AddRemote("origin", "file:///somewhere/.kit"))
	require.NoError(t, local.Repo.AddRemote("backup", "file:///elsewhere/.kit"))

	remotes, err := local.Repo.Remotes()
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"origin": "file:///somewhere/.kit",
		"backup": "file:///elsewhere/.kit",
	}, remotes)
}
