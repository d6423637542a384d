package repo

import (
	"os"
	"path/filepath"

	"kit.dev/kit/internal/errors"
	"kit.dev/kit/internal/refs"
)

// Checkout switches HEAD to the given branch, optionally creating it at the
// current HEAD commit first, and materializes the branch tip's tree onto
// the working area. The materialization is a destructive overwrite: every
// regular file outside the metadata directory is deleted before the target
// tree is written out, so uncommitted local edits are lost.
func (r *Repository) Checkout(branch string, create bool) error {
	unlock, err := r.lock()
	if err != nil {
		return err
	}
	defer unlock()

	ref := refs.BranchRef(branch)
	if create {
		head, err := r.HeadCommit()
		if err != nil {
			return err
		}
		if err := r.refs.Write(ref, head); err != nil {
			return err
		}
	} else if !r.refs.Has(ref) {
		return errors.NewRefNotFoundError(ref)
	}

	if err := r.refs.WriteSymbolic(ref); err != nil {
		return err
	}

	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	if head.IsZero() {
		// Unborn branch: nothing to materialize, working tree untouched.
		return nil
	}
	c, err := r.objects.ReadCommit(head)
	if err != nil {
		return err
	}

	files, err := r.workFiles()
	if err != nil {
		return err
	}
	for _, rel := range files {
		if err := os.Remove(filepath.Join(r.workdir, filepath.FromSlash(rel))); err != nil {
			return err
		}
	}
	r.log.Debug("checkout", "branch", branch, "commit", head.Short(), "files", len(c.Tree))
	return r.materializeTree(c.Tree)
}
