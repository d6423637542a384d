// Package repo implements the repository engine: commit creation, graph
// traversal, checkout and merge policy, stashing, diff selection, and the
// local-filesystem fetch/push/pull protocol. All state lives on disk and is
// read fresh at the start of each operation; every mutation is flushed
// immediately.
package repo

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"

	"kit.dev/kit/internal/config"
	"kit.dev/kit/internal/index"
	"kit.dev/kit/internal/object"
	"kit.dev/kit/internal/refs"
)

// MetaDirName is the repository metadata directory, colocated with the
// working tree.
const MetaDirName = ".kit"

// DefaultBranch is the branch HEAD points at after init.
const DefaultBranch = "master"

// Repository is the handle passed to every engine operation. It owns the
// durable stores; it never reaches around them to touch object or ref
// files directly.
type Repository struct {
	workdir string
	metaDir string

	objects *object.Store
	refs    *refs.Store
	log     *log.Logger
}

// Open opens an existing repository whose working tree is rooted at
// workdir. It fails if the metadata directory is missing.
func Open(workdir string, logger *log.Logger) (*Repository, error) {
	abs, err := filepath.Abs(workdir)
	if err != nil {
		return nil, fmt.Errorf("resolve workdir: %w", err)
	}
	metaDir := filepath.Join(abs, MetaDirName)
	if _, err := os.Stat(metaDir); err != nil {
		return nil, fmt.Errorf("not a kit repository (run 'kit init' first): %s", abs)
	}
	return open(abs, metaDir, logger)
}

// Init creates the repository structure at workdir (idempotent) and returns
// a handle to it.
func Init(workdir string, logger *log.Logger) (*Repository, error) {
	abs, err := filepath.Abs(workdir)
	if err != nil {
		return nil, fmt.Errorf("resolve workdir: %w", err)
	}
	metaDir := filepath.Join(abs, MetaDirName)
	r, err := open(abs, metaDir, logger)
	if err != nil {
		return nil, err
	}
	if !r.refs.HasSymbolic() {
		if err := r.refs.WriteSymbolic(refs.BranchRef(DefaultBranch)); err != nil {
			return nil, err
		}
	}
	if _, err := os.Stat(r.configPath()); os.IsNotExist(err) {
		if err := config.Save(r.configPath(), &config.Config{}); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func open(workdir, metaDir string, logger *log.Logger) (*Repository, error) {
	if logger == nil {
		logger = log.New(os.Stderr)
		logger.SetLevel(log.FatalLevel)
	}
	objects, err := object.NewStore(filepath.Join(metaDir, "objects"))
	if err != nil {
		return nil, err
	}
	refStore, err := refs.NewStore(metaDir)
	if err != nil {
		return nil, err
	}
	return &Repository{
		workdir: workdir,
		metaDir: metaDir,
		objects: objects,
		refs:    refStore,
		log:     logger,
	}, nil
}

// Workdir returns the working tree root.
func (r *Repository) Workdir() string { return r.workdir }

// MetaDir returns the metadata directory path.
func (r *Repository) MetaDir() string { return r.metaDir }

// Objects exposes the object store (read-only use by callers).
func (r *Repository) Objects() *object.Store { return r.objects }

func (r *Repository) indexPath() string  { return filepath.Join(r.metaDir, "index") }
func (r *Repository) configPath() string { return filepath.Join(r.metaDir, "config") }

func (r *Repository) loadIndex() (*index.Index, error) {
	return index.Load(r.indexPath())
}

// Config loads the repository configuration.
func (r *Repository) Config() (*config.Config, error) {
	return config.Load(r.configPath())
}

// SetUser updates the committer identity. Empty arguments leave the
// corresponding field untouched.
func (r *Repository) SetUser(name, email string) error {
	unlock, err := r.lock()
	if err != nil {
		return err
	}
	defer unlock()

	cfg, err := r.Config()
	if err != nil {
		return err
	}
	if name != "" {
		cfg.User.Name = name
	}
	if email != "" {
		cfg.User.Email = email
	}
	return config.Save(r.configPath(), cfg)
}

// lock takes the repository-wide advisory lock. Every mutating operation
// holds it for its whole duration; readers do not lock (single-writer
// model).
func (r *Repository) lock() (func(), error) {
	fl := flock.New(filepath.Join(r.metaDir, "lock"))
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("acquire repository lock: %w", err)
	}
	return func() {
		if err := fl.Unlock(); err != nil {
			r.log.Error("release repository lock", "err", err)
		}
	}, nil
}

// HeadRef returns the ref name HEAD points at.
func (r *Repository) HeadRef() (string, error) {
	return r.refs.ReadSymbolic()
}

// HeadCommit resolves HEAD through its symbolic indirection to a commit
// hash. The zero hash means the current branch is unborn.
func (r *Repository) HeadCommit() (object.Hash, error) {
	name, err := r.refs.ReadSymbolic()
	if err != nil {
		return "", err
	}
	if !r.refs.Has(name) {
		return "", nil
	}
	return r.refs.Read(name)
}

// workFiles returns the repository-relative paths (slash-separated, sorted)
// of every regular file in the working tree outside the metadata directory.
func (r *Repository) workFiles() ([]string, error) {
	var files []string
	err := filepath.WalkDir(r.workdir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == r.metaDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(r.workdir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk working tree: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

func (r *Repository) readWorkFile(rel string) ([]byte, error) {
	return os.ReadFile(filepath.Join(r.workdir, filepath.FromSlash(rel)))
}

// materializeTree writes every (path, hash) pair of tree into the working
// area. It does not delete anything; destructive replacement is checkout's
// job.
func (r *Repository) materializeTree(tree map[string]object.Hash) error {
	paths := make([]string, 0, len(tree))
	for p := range tree {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		data, err := r.objects.ReadBlob(tree[p])
		if err != nil {
			return err
		}
		dest := filepath.Join(r.workdir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("create dir for %s: %w", p, err)
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", p, err)
		}
	}
	return nil
}

// branchName strips the refs/heads/ prefix from a full ref name.
func branchName(ref string) string {
	return strings.TrimPrefix(ref, refs.HeadsPrefix+"/")
}
