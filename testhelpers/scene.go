// Package testhelpers provides scene-based fixtures for kit tests: each
// scene is an initialized repository in a fresh temporary directory.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"kit.dev/kit/internal/repo"
)

// Scene represents a test scene: a temporary working tree with an
// initialized kit repository.
type Scene struct {
	Dir  string
	Repo *repo.Repository
}

// NewScene creates a scene in a fresh temp directory. Cleanup is handled by
// t.TempDir(). Safe for parallel tests: nothing touches the process working
// directory.
func NewScene(t *testing.T) *Scene {
	t.Helper()
	dir := t.TempDir()
	r, err := repo.Init(dir, nil)
	if err != nil {
		t.Fatalf("init repository: %v", err)
	}
	return &Scene{Dir: dir, Repo: r}
}

// WriteFile writes content to a path relative to the scene's working tree,
// creating parent directories as needed.
func (s *Scene) WriteFile(t *testing.T, rel, content string) {
	t.Helper()
	path := filepath.Join(s.Dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

// ReadFile reads a working-tree file relative to the scene directory.
func (s *Scene) ReadFile(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(s.Dir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

// Exists reports whether a working-tree path exists.
func (s *Scene) Exists(rel string) bool {
	_, err := os.Stat(filepath.Join(s.Dir, filepath.FromSlash(rel)))
	return err == nil
}

// CommitFile writes, stages, and commits a single file, returning nothing;
// it fails the test on any error.
func (s *Scene) CommitFile(t *testing.T, rel, content, message string) {
	t.Helper()
	s.WriteFile(t, rel, content)
	if err := s.Repo.Add(rel); err != nil {
		t.Fatalf("add %s: %v", rel, err)
	}
	if _, err := s.Repo.Commit(message, "tester <tester@example.com>"); err != nil {
		t.Fatalf("commit %s: %v", message, err)
	}
}
