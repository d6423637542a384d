package repo

import (
	"kit.dev/kit/internal/errors"
	"kit.dev/kit/internal/object"
	"kit.dev/kit/internal/refs"
)

// Branches returns the local branch names, sorted.
func (r *Repository) Branches() ([]string, error) {
	names, err := r.refs.List(refs.HeadsPrefix)
	if err != nil {
		return nil, err
	}
	branches := make([]string, 0, len(names))
	for _, n := range names {
		branches = append(branches, branchName(n))
	}
	return branches, nil
}

// CreateBranch points a new branch ref at the current HEAD commit. On an
// unborn HEAD the branch is created unborn too.
func (r *Repository) CreateBranch(name string) error {
	unlock, err := r.lock()
	if err != nil {
		return err
	}
	defer unlock()

	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	return r.refs.Write(refs.BranchRef(name), head)
}

// DeleteBranch removes a branch ref. Unless forced, it refuses when the
// branch tip is not reachable from HEAD along first-parent links.
func (r *Repository) DeleteBranch(name string, force bool) error {
	unlock, err := r.lock()
	if err != nil {
		return err
	}
	defer unlock()

	ref := refs.BranchRef(name)
	if !r.refs.Has(ref) {
		return errors.NewRefNotFoundError(ref)
	}
	if !force {
		tip, err := r.refs.Read(ref)
		if err != nil {
			return err
		}
		head, err := r.HeadCommit()
		if err != nil {
			return err
		}
		if !tip.IsZero() && !head.IsZero() && tip != head {
			merged, err := r.IsAncestor(tip, head)
			if err != nil {
				return err
			}
			if !merged {
				return errors.NewUnmergedBranchDeleteError(name)
			}
		}
	}
	return r.refs.Delete(ref)
}

// IsAncestor reports whether a lies on b's first-parent chain (b itself
// included). Second parents of merge commits are not traversed, so
// ancestry through a historical merge's non-first side goes undetected;
// the merge fast-forward policy and branch-delete safety both rely on
// exactly this walk.
func (r *Repository) IsAncestor(a, b object.Hash) (bool, error) {
	for h := b; !h.IsZero(); {
		if h == a {
			return true, nil
		}
		c, err := r.objects.ReadCommit(h)
		if err != nil {
			return false, err
		}
		h = c.Parent
	}
	return false, nil
}
