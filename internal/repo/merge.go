package repo

import (
	"fmt"

	"kit.dev/kit/internal/errors"
	"kit.dev/kit/internal/object"
	"kit.dev/kit/internal/refs"
)

// MergeResult describes the outcome of a merge or pull.
type MergeResult struct {
	// FastForward is true when the current branch ref was advanced to the
	// target with no new commit object.
	FastForward bool
	// Hash is the commit the current branch now points at: the target tip
	// for fast-forwards, the new merge commit otherwise. Zero when the
	// merge was a no-op against an unborn target.
	Hash object.Hash
	// NoOp is true when the target was unborn and nothing happened.
	NoOp bool
}

// Merge merges the named local branch into the current branch: fast-forward
// when HEAD lies on the target's first-parent chain, otherwise a merge
// commit. The merge commit's tree is the CURRENT INDEX SNAPSHOT; there is
// no conflict detection, so callers stage the desired result beforehand.
func (r *Repository) Merge(branch string) (MergeResult, error) {
	unlock, err := r.lock()
	if err != nil {
		return MergeResult{}, err
	}
	defer unlock()

	ref := refs.BranchRef(branch)
	if !r.refs.Has(ref) {
		return MergeResult{}, errors.NewRefNotFoundError(ref)
	}
	target, err := r.refs.Read(ref)
	if err != nil {
		return MergeResult{}, err
	}
	headRef, err := r.refs.ReadSymbolic()
	if err != nil {
		return MergeResult{}, err
	}
	msg := fmt.Sprintf("Merge branch %s into %s", branch, branchName(headRef))
	return r.mergeTarget(target, msg)
}

// mergeTarget applies the fast-forward-or-merge-commit policy against a
// resolved target commit. Callers hold the repository lock.
func (r *Repository) mergeTarget(target object.Hash, message string) (MergeResult, error) {
	if target.IsZero() {
		return MergeResult{NoOp: true}, nil
	}
	head, err := r.HeadCommit()
	if err != nil {
		return MergeResult{}, err
	}
	if !head.IsZero() {
		ff, err := r.IsAncestor(head, target)
		if err != nil {
			return MergeResult{}, err
		}
		if ff {
			headRef, err := r.refs.ReadSymbolic()
			if err != nil {
				return MergeResult{}, err
			}
			if err := r.refs.Write(headRef, target); err != nil {
				return MergeResult{}, err
			}
			r.log.Debug("fast-forward", "to", target.Short())
			return MergeResult{FastForward: true, Hash: target}, nil
		}
	}
	h, err := r.commitIndex(message, "", target)
	if err != nil {
		return MergeResult{}, err
	}
	r.log.Debug("merge commit", "hash", h.Short(), "parent2", target.Short())
	return MergeResult{Hash: h}, nil
}
