package repo

import (
	"sort"

	"kit.dev/kit/internal/object"
)

// Status is a point-in-time reconciliation of HEAD, the index, and the
// working tree. It reports; it never repairs the index.
type Status struct {
	// Branch is the ref name HEAD points at.
	Branch string
	// Head is the commit HEAD resolves to; zero when unborn.
	Head object.Hash
	// Staged lists the paths in the index, sorted.
	Staged []string
	// Modified lists working files whose content differs from their staged
	// blob, or, when unstaged, from their entry in HEAD's tree. Sorted.
	Modified []string
}

// Status computes the current status report.
func (r *Repository) Status() (*Status, error) {
	branch, err := r.refs.ReadSymbolic()
	if err != nil {
		return nil, err
	}
	head, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	idx, err := r.loadIndex()
	if err != nil {
		return nil, err
	}

	st := &Status{Branch: branch, Head: head}
	for p := range idx.Snapshot() {
		st.Staged = append(st.Staged, p)
	}
	sort.Strings(st.Staged)

	var headTree map[string]object.Hash
	if !head.IsZero() {
		c, err := r.objects.ReadCommit(head)
		if err != nil {
			return nil, err
		}
		headTree = c.Tree
	}

	files, err := r.workFiles()
	if err != nil {
		return nil, err
	}
	for _, rel := range files {
		data, err := r.readWorkFile(rel)
		if err != nil {
			return nil, err
		}
		h := object.HashBlob(data)
		if staged, ok := idx.Get(rel); ok {
			if staged != h {
				st.Modified = append(st.Modified, rel)
			}
			continue
		}
		if tracked, ok := headTree[rel]; ok && tracked != h {
			st.Modified = append(st.Modified, rel)
		}
	}
	return st, nil
}
