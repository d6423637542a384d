package object

import (
	"fmt"
	"os"
	"path/filepath"

	"kit.dev/kit/internal/errors"
)

// Store manages hash-addressed immutable objects, one file per object
// under the objects/ directory, filename = content hash.
type Store struct {
	dir string
}

// NewStore creates a Store at the given directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create objects dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// OpenStore returns a handle on an existing (possibly remote) objects
// directory without creating anything on disk.
func OpenStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(h Hash) string {
	return filepath.Join(s.dir, string(h))
}

// put writes payload under its hash. If the object already exists the write
// is a no-op: content addressing gives deduplication for free.
func (s *Store) put(h Hash, payload []byte) error {
	path := s.path(h)
	if _, err := os.Stat(path); err == nil {
		return nil // already exists
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create objects dir: %w", err)
	}
	if err := safeWrite(path, payload, 0o644); err != nil {
		return fmt.Errorf("write object: %w", err)
	}
	return nil
}

func (s *Store) get(h Hash) ([]byte, error) {
	data, err := os.ReadFile(s.path(h))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewObjectNotFoundError(string(h))
		}
		return nil, fmt.Errorf("read object %s: %w", h, err)
	}
	return data, nil
}

// WriteBlob stores raw file content, returning its hash.
func (s *Store) WriteBlob(data []byte) (Hash, error) {
	h := hashObject(blobTag, data)
	if err := s.put(h, data); err != nil {
		return "", err
	}
	return h, nil
}

// ReadBlob returns the content of the blob identified by h.
func (s *Store) ReadBlob(h Hash) ([]byte, error) {
	return s.get(h)
}

// WriteCommit stores a commit in canonical form, returning its hash.
func (s *Store) WriteCommit(c *Commit) (Hash, error) {
	raw, err := marshalCommit(c)
	if err != nil {
		return "", err
	}
	h := hashObject(commitTag, raw)
	if err := s.put(h, raw); err != nil {
		return "", err
	}
	return h, nil
}

// ReadCommit loads and decodes the commit identified by h.
func (s *Store) ReadCommit(h Hash) (*Commit, error) {
	raw, err := s.get(h)
	if err != nil {
		return nil, err
	}
	return unmarshalCommit(raw)
}

// Has checks if an object exists.
func (s *Store) Has(h Hash) bool {
	_, err := os.Stat(s.path(h))
	return err == nil
}

// List returns the hashes of every stored object. A store whose directory
// has not been created yet lists as empty.
func (s *Store) List() ([]Hash, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list objects: %w", err)
	}
	hashes := make([]Hash, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		hashes = append(hashes, Hash(e.Name()))
	}
	return hashes, nil
}

// CopyTo writes the raw bytes of object h into dst, skipping the copy when
// dst already has it. Used by the local-filesystem sync transport.
func (s *Store) CopyTo(dst *Store, h Hash) (copied bool, err error) {
	if dst.Has(h) {
		return false, nil
	}
	raw, err := s.get(h)
	if err != nil {
		return false, err
	}
	if err := dst.put(h, raw); err != nil {
		return false, err
	}
	return true, nil
}
