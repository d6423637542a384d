package repo

import (
	"io/fs"
	"os"
	"path/filepath"

	"kit.dev/kit/internal/errors"
	"kit.dev/kit/internal/index"
)

// Add stages a file, or every regular file beneath a directory, recording
// each at its own repository-relative path. The metadata directory is
// always excluded.
func (r *Repository) Add(path string) error {
	unlock, err := r.lock()
	if err != nil {
		return err
	}
	defer unlock()

	target := filepath.Join(r.workdir, filepath.FromSlash(path))
	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewPathNotFoundError(path)
		}
		return err
	}

	idx, err := r.loadIndex()
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return r.stageFile(idx, target)
	}

	return filepath.WalkDir(target, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p == r.metaDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return r.stageFile(idx, p)
	})
}

func (r *Repository) stageFile(idx *index.Index, abs string) error {
	data, err := os.ReadFile(abs)
	if err != nil {
		return err
	}
	h, err := r.objects.WriteBlob(data)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(r.workdir, abs)
	if err != nil {
		return err
	}
	rel = filepath.ToSlash(rel)
	r.log.Debug("staged", "path", rel, "blob", h.Short())
	return idx.Stage(rel, h)
}

// Rm deletes the working file if present and drops its index entry. A path
// that is neither on disk nor staged fails with PathNotFound.
func (r *Repository) Rm(path string) error {
	unlock, err := r.lock()
	if err != nil {
		return err
	}
	defer unlock()

	idx, err := r.loadIndex()
	if err != nil {
		return err
	}
	_, staged := idx.Get(path)

	target := filepath.Join(r.workdir, filepath.FromSlash(path))
	if _, err := os.Stat(target); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		if !staged {
			return errors.NewPathNotFoundError(path)
		}
	} else if err := os.Remove(target); err != nil {
		return err
	}
	return idx.Unstage(path)
}

// Reset drops the index entry for path without touching the working file.
func (r *Repository) Reset(path string) error {
	unlock, err := r.lock()
	if err != nil {
		return err
	}
	defer unlock()

	idx, err := r.loadIndex()
	if err != nil {
		return err
	}
	if _, ok := idx.Get(path); !ok {
		return errors.NewPathNotFoundError(path)
	}
	return idx.Unstage(path)
}
