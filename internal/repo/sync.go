package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kit.dev/kit/internal/config"
	"kit.dev/kit/internal/errors"
	"kit.dev/kit/internal/object"
	"kit.dev/kit/internal/refs"
)

// fileScheme is the only supported remote transport: a local-filesystem
// address pointing at another repository's metadata root.
const fileScheme = "file://"

// AddRemote registers a named remote URL in the repository config.
func (r *Repository) AddRemote(name, url string) error {
	unlock, err := r.lock()
	if err != nil {
		return err
	}
	defer unlock()

	cfg, err := r.Config()
	if err != nil {
		return err
	}
	cfg.Remotes[name] = url
	return config.Save(r.configPath(), cfg)
}

// Remotes returns the remote name -> URL registry.
func (r *Repository) Remotes() (map[string]string, error) {
	cfg, err := r.Config()
	if err != nil {
		return nil, err
	}
	return cfg.Remotes, nil
}

// remoteStores resolves a remote name to handles on its object and ref
// stores. A missing remote fails with RefNotFound; a URL outside the
// file:// scheme fails with UnsupportedRemoteScheme; a URL whose metadata
// directory does not exist fails with PathNotFound. Nothing is created at
// the remote path here, so fetch never mutates the remote.
func (r *Repository) remoteStores(name string) (*object.Store, *refs.Store, error) {
	remotes, err := r.Remotes()
	if err != nil {
		return nil, nil, err
	}
	url, ok := remotes[name]
	if !ok {
		return nil, nil, errors.NewRefNotFoundError(name)
	}
	if !strings.HasPrefix(url, fileScheme) {
		return nil, nil, errors.NewUnsupportedRemoteSchemeError(name, url)
	}
	metaDir, err := filepath.Abs(filepath.FromSlash(strings.TrimPrefix(url, fileScheme)))
	if err != nil {
		return nil, nil, fmt.Errorf("resolve remote path: %w", err)
	}
	if _, err := os.Stat(metaDir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.NewPathNotFoundError(metaDir)
		}
		return nil, nil, fmt.Errorf("stat remote %s: %w", name, err)
	}
	return object.OpenStore(filepath.Join(metaDir, "objects")), refs.OpenStore(metaDir), nil
}

// copyObjects copies every object present in src but absent in dst,
// returning how many were actually copied. Content addressing makes
// "already present" the dedup check.
func copyObjects(src, dst *object.Store) (int, error) {
	hashes, err := src.List()
	if err != nil {
		return 0, err
	}
	copied := 0
	for _, h := range hashes {
		did, err := src.CopyTo(dst, h)
		if err != nil {
			return copied, err
		}
		if did {
			copied++
		}
	}
	return copied, nil
}

// FetchResult reports what a fetch transferred.
type FetchResult struct {
	ObjectsCopied int
	Branches      []string
}

// Fetch copies every remote object absent locally, then mirrors the
// remote's branch heads into this repository's remote-tracking namespace.
func (r *Repository) Fetch(remote string) (FetchResult, error) {
	unlock, err := r.lock()
	if err != nil {
		return FetchResult{}, err
	}
	defer unlock()
	return r.fetch(remote)
}

func (r *Repository) fetch(remote string) (FetchResult, error) {
	srcObjects, srcRefs, err := r.remoteStores(remote)
	if err != nil {
		return FetchResult{}, err
	}
	copied, err := copyObjects(srcObjects, r.objects)
	if err != nil {
		return FetchResult{}, err
	}

	var res FetchResult
	res.ObjectsCopied = copied
	heads, err := srcRefs.List(refs.HeadsPrefix)
	if err != nil {
		return FetchResult{}, err
	}
	for _, name := range heads {
		branch := branchName(name)
		h, err := srcRefs.Read(name)
		if err != nil {
			return FetchResult{}, err
		}
		if err := r.refs.Write(refs.RemoteBranchRef(remote, branch), h); err != nil {
			return FetchResult{}, err
		}
		res.Branches = append(res.Branches, branch)
	}
	r.log.Debug("fetched", "remote", remote, "objects", copied, "branches", len(res.Branches))
	return res, nil
}

// Push copies every local object absent at the remote, then overwrites the
// remote's branch head unconditionally; non-fast-forward pushes are not
// rejected.
func (r *Repository) Push(remote, branch string) (int, error) {
	unlock, err := r.lock()
	if err != nil {
		return 0, err
	}
	defer unlock()

	dstObjects, dstRefs, err := r.remoteStores(remote)
	if err != nil {
		return 0, err
	}
	ref := refs.BranchRef(branch)
	if !r.refs.Has(ref) {
		return 0, errors.NewRefNotFoundError(ref)
	}
	copied, err := copyObjects(r.objects, dstObjects)
	if err != nil {
		return copied, err
	}
	tip, err := r.refs.Read(ref)
	if err != nil {
		return copied, err
	}
	if err := dstRefs.Write(ref, tip); err != nil {
		return copied, err
	}
	r.log.Debug("pushed", "remote", remote, "branch", branch, "objects", copied)
	return copied, nil
}

// Pull fetches from the remote, then applies the fast-forward-or-merge
// policy using the freshly fetched remote-tracking ref as the target.
func (r *Repository) Pull(remote, branch string) (MergeResult, error) {
	unlock, err := r.lock()
	if err != nil {
		return MergeResult{}, err
	}
	defer unlock()

	if _, err := r.fetch(remote); err != nil {
		return MergeResult{}, err
	}
	tracking := refs.RemoteBranchRef(remote, branch)
	if !r.refs.Has(tracking) {
		return MergeResult{}, errors.NewRefNotFoundError(tracking)
	}
	target, err := r.refs.Read(tracking)
	if err != nil {
		return MergeResult{}, err
	}
	msg := fmt.Sprintf("Merge remote %s/%s", remote, branch)
	return r.mergeTarget(target, msg)
}
