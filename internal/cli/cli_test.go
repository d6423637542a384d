package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"kit.dev/kit/internal/cli"
)

// runKit executes the root command in-process with the given arguments.
func runKit(t *testing.T, args ...string) error {
	t.Helper()
	cmd := cli.NewRootCmd("test")
	cmd.SetArgs(args)
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	return cmd.Execute()
}

// inTempRepo chdirs into a fresh temp directory for the duration of the test.
func inTempRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
	return dir
}

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, rel), []byte(content), 0o644))
}

func TestInitAddCommitWorkflow(t *testing.T) {
	dir := inTempRepo(t)

	require.NoError(t, runKit(t, "init"))
	require.DirExists(t, filepath.Join(dir, ".kit"))

	writeFile(t, dir, "file.txt", "hello")
	require.NoError(t, runKit(t, "add", "file.txt"))
	require.NoError(t, runKit(t, "commit", "-m", "init"))

	require.NoError(t, runKit(t, "status"))
	require.NoError(t, runKit(t, "log"))

	// The commit emptied the index.
	data, err := os.ReadFile(filepath.Join(dir, ".kit", "index"))
	require.NoError(t, err)
	require.JSONEq(t, "{}", string(data))
}

func TestBranchCheckoutMergeWorkflow(t *testing.T) {
	dir := inTempRepo(t)

	require.NoError(t, runKit(t, "init"))
	writeFile(t, dir, "a.txt", "base")
	require.NoError(t, runKit(t, "add", "a.txt"))
	require.NoError(t, runKit(t, "commit", "-m", "base"))

	require.NoError(t, runKit(t, "branch", "feature"))
	require.NoError(t, runKit(t, "checkout", "feature"))

	writeFile(t, dir, "a.txt", "feature change")
	require.NoError(t, runKit(t, "add", "a.txt"))
	require.NoError(t, runKit(t, "commit", "-m", "feat"))

	require.NoError(t, runKit(t, "checkout", "master"))
	require.NoError(t, runKit(t, "merge", "feature"))

	// Fast-forward: master's ref file now matches feature's.
	masterRef, err := os.ReadFile(filepath.Join(dir, ".kit", "refs", "heads", "master"))
	require.NoError(t, err)
	featureRef, err := os.ReadFile(filepath.Join(dir, ".kit", "refs", "heads", "feature"))
	require.NoError(t, err)
	require.Equal(t, string(featureRef), string(masterRef))
}

func TestStashWorkflow(t *testing.T) {
	dir := inTempRepo(t)

	require.NoError(t, runKit(t, "init"))
	writeFile(t, dir, "x.txt", "1")
	require.NoError(t, runKit(t, "add", "x.txt"))
	require.NoError(t, runKit(t, "commit", "-m", "c"))

	writeFile(t, dir, "x.txt", "2")
	require.NoError(t, runKit(t, "stash"))
	require.NoError(t, runKit(t, "stash", "list"))

	writeFile(t, dir, "x.txt", "3")
	require.NoError(t, runKit(t, "stash", "pop"))

	data, err := os.ReadFile(filepath.Join(dir, "x.txt"))
	require.NoError(t, err)
	require.Equal(t, "2", string(data))
}

func TestConfigCommand(t *testing.T) {
	inTempRepo(t)

	require.NoError(t, runKit(t, "init"))
	require.NoError(t, runKit(t, "config", "--name", "Ada", "--email", "ada@example.com"))
	require.NoError(t, runKit(t, "config"))
}

func TestCommandsFailOutsideRepository(t *testing.T) {
	inTempRepo(t)

	require.Error(t, runKit(t, "status"))
	require.Error(t, runKit(t, "log"))
	require.Error(t, runKit(t, "commit", "-m", "x"))
}

func TestUnknownCommand(t *testing.T) {
	inTempRepo(t)

	require.Error(t, runKit(t, "frobnicate"))
}

func TestRemoteSyncWorkflow(t *testing.T) {
	dir := inTempRepo(t)

	// Side repository acting as the remote.
	remoteDir := t.TempDir()

	require.NoError(t, runKit(t, "init"))
	writeFile(t, dir, "a.txt", "1")
	require.NoError(t, runKit(t, "add", "a.txt"))
	require.NoError(t, runKit(t, "commit", "-m", "c1"))

	// Initialize the remote by pointing a remote record at its metadata
	// root; push creates the object and ref files there.
	require.NoError(t, os.MkdirAll(filepath.Join(remoteDir, ".kit"), 0o755))
	require.NoError(t, runKit(t, "remote", "add", "origin", "file://"+filepath.Join(remoteDir, ".kit")))
	require.NoError(t, runKit(t, "remote"))

	require.NoError(t, runKit(t, "push", "origin", "master"))
	require.FileExists(t, filepath.Join(remoteDir, ".kit", "refs", "heads", "master"))

	require.NoError(t, runKit(t, "fetch", "origin"))
	require.FileExists(t, filepath.Join(dir, ".kit", "refs", "remotes", "origin", "heads", "master"))

	require.NoError(t, runKit(t, "pull", "origin", "master"))
}
