// Package refs implements the reference store: durable named pointers to
// commit hashes, one file per ref under the repository metadata directory.
// HEAD is symbolic: it stores a ref NAME, and resolving it to a commit
// takes one extra indirection read.
package refs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"kit.dev/kit/internal/errors"
	"kit.dev/kit/internal/object"
)

// Well-known ref namespaces.
const (
	HeadsPrefix   = "refs/heads"
	RemotesPrefix = "refs/remotes"
	StashPrefix   = "refs/stash"
	headFile      = "HEAD"
)

// BranchRef returns the full ref name for a local branch.
func BranchRef(branch string) string {
	return HeadsPrefix + "/" + branch
}

// RemoteBranchRef returns the remote-tracking ref name for remote/branch.
func RemoteBranchRef(remote, branch string) string {
	return RemotesPrefix + "/" + remote + "/heads/" + branch
}

// StashRef returns the ref name for stash slot n.
func StashRef(n int) string {
	return fmt.Sprintf("%s/%d", StashPrefix, n)
}

// Store manages refs as files rooted at the metadata directory, so ref
// names map directly onto relative file paths.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at the metadata directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, HeadsPrefix), 0o755); err != nil {
		return nil, fmt.Errorf("create refs dirs: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, RemotesPrefix), 0o755); err != nil {
		return nil, fmt.Errorf("create refs dirs: %w", err)
	}
	return &Store{dir: dir}, nil
}

// OpenStore returns a handle on an existing metadata directory without
// creating anything on disk. Write still creates parent directories for
// the refs it sets.
func OpenStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, filepath.FromSlash(name))
}

// Read resolves a ref name to a commit hash. A present-but-empty ref reads
// as the zero hash (unborn). A missing ref fails with RefNotFound.
func (s *Store) Read(name string) (object.Hash, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewRefNotFoundError(name)
		}
		return "", fmt.Errorf("read ref %s: %w", name, err)
	}
	return object.Hash(strings.TrimSpace(string(data))), nil
}

// Write sets a ref to the given hash. The zero hash marks the ref as
// existing but unborn.
func (s *Store) Write(name string, h object.Hash) error {
	path := s.path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create ref dir: %w", err)
	}
	if err := object.SafeWrite(path, []byte(h), 0o644); err != nil {
		return fmt.Errorf("write ref %s: %w", name, err)
	}
	return nil
}

// Delete removes a ref. Deleting a missing ref fails with RefNotFound.
func (s *Store) Delete(name string) error {
	if err := os.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return errors.NewRefNotFoundError(name)
		}
		return fmt.Errorf("delete ref %s: %w", name, err)
	}
	return nil
}

// Has checks if a ref exists.
func (s *Store) Has(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// List returns the names of all refs under prefix, sorted. A missing
// namespace lists as empty.
func (s *Store) List(prefix string) ([]string, error) {
	root := s.path(prefix)
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}
	var names []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.dir, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list refs under %s: %w", prefix, err)
	}
	sort.Strings(names)
	return names, nil
}

// ReadSymbolic returns the ref name HEAD currently points at.
func (s *Store) ReadSymbolic() (string, error) {
	data, err := os.ReadFile(s.path(headFile))
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteSymbolic points HEAD at the given ref name.
func (s *Store) WriteSymbolic(name string) error {
	if err := object.SafeWrite(s.path(headFile), []byte(name), 0o644); err != nil {
		return fmt.Errorf("write HEAD: %w", err)
	}
	return nil
}

// HasSymbolic checks if the HEAD file exists.
func (s *Store) HasSymbolic() bool {
	return s.Has(headFile)
}
