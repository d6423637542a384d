// Package index implements the staging area: a durable mapping from
// working-tree-relative path to blob hash, recording what the next commit
// will contain. Every mutation is flushed to disk immediately; no staged
// state lives only in memory across process invocations.
package index

import (
	"encoding/json"
	"fmt"
	"os"

	"kit.dev/kit/internal/object"
)

// Index is the staging area, backed by a single JSON file.
type Index struct {
	path    string
	entries map[string]object.Hash
}

// Load reads the index file at path, or starts empty when the file does not
// exist yet.
func Load(path string) (*Index, error) {
	idx := &Index{path: path, entries: map[string]object.Hash{}}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return idx, nil
		}
		return nil, fmt.Errorf("read index: %w", err)
	}
	if err := json.Unmarshal(data, &idx.entries); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}
	return idx, nil
}

// save persists the entries with sorted keys so the on-disk form is
// reproducible for identical content.
func (i *Index) save() error {
	data, err := json.MarshalIndent(i.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}
	if err := object.SafeWrite(i.path, data, 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// Stage records path -> hash, overwriting any previous entry for path.
func (i *Index) Stage(path string, h object.Hash) error {
	i.entries[path] = h
	return i.save()
}

// Unstage drops the entry for path, if any.
func (i *Index) Unstage(path string) error {
	if _, ok := i.entries[path]; !ok {
		return nil
	}
	delete(i.entries, path)
	return i.save()
}

// Clear removes every entry. Called exactly once per successful commit.
func (i *Index) Clear() error {
	i.entries = map[string]object.Hash{}
	return i.save()
}

// Get returns the staged hash for path and whether one exists.
func (i *Index) Get(path string) (object.Hash, bool) {
	h, ok := i.entries[path]
	return h, ok
}

// Len returns the number of staged entries.
func (i *Index) Len() int { return len(i.entries) }

// Snapshot returns a copy of the full path -> hash mapping.
func (i *Index) Snapshot() map[string]object.Hash {
	out := make(map[string]object.Hash, len(i.entries))
	for p, h := range i.entries {
		out[p] = h
	}
	return out
}
