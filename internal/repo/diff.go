package repo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"kit.dev/kit/internal/object"
)

// unifiedDiff renders one file's change as a unified diff with a/ and b/
// path labels. An empty string means the two sides are identical.
func unifiedDiff(path, a, b string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", path, err)
	}
	return text, nil
}

func (r *Repository) blobText(h object.Hash) (string, error) {
	if h.IsZero() {
		return "", nil
	}
	data, err := r.objects.ReadBlob(h)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DiffStaged renders the differences between HEAD's tree and the index:
// the union of both path sets, each side decoded to text ("" when the path
// is absent on that side).
func (r *Repository) DiffStaged() (string, error) {
	idx, err := r.loadIndex()
	if err != nil {
		return "", err
	}
	staged := idx.Snapshot()

	headTree := map[string]object.Hash{}
	head, err := r.HeadCommit()
	if err != nil {
		return "", err
	}
	if !head.IsZero() {
		c, err := r.objects.ReadCommit(head)
		if err != nil {
			return "", err
		}
		headTree = c.Tree
	}

	seen := map[string]bool{}
	var paths []string
	for p := range headTree {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	for p := range staged {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)

	var out strings.Builder
	for _, p := range paths {
		a, err := r.blobText(headTree[p])
		if err != nil {
			return "", err
		}
		b, err := r.blobText(staged[p])
		if err != nil {
			return "", err
		}
		text, err := unifiedDiff(p, a, b)
		if err != nil {
			return "", err
		}
		out.WriteString(text)
	}
	return out.String(), nil
}

// DiffUnstaged renders the differences between the working tree and what
// the next commit would record: each working file is compared against its
// staged blob when one exists, otherwise against its entry in HEAD's tree.
// Untracked, unstaged files produce no output.
func (r *Repository) DiffUnstaged() (string, error) {
	idx, err := r.loadIndex()
	if err != nil {
		return "", err
	}

	headTree := map[string]object.Hash{}
	head, err := r.HeadCommit()
	if err != nil {
		return "", err
	}
	if !head.IsZero() {
		c, err := r.objects.ReadCommit(head)
		if err != nil {
			return "", err
		}
		headTree = c.Tree
	}

	files, err := r.workFiles()
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, rel := range files {
		base, ok := idx.Get(rel)
		if !ok {
			base, ok = headTree[rel]
		}
		if !ok {
			continue
		}
		a, err := r.blobText(base)
		if err != nil {
			return "", err
		}
		data, err := r.readWorkFile(rel)
		if err != nil {
			return "", err
		}
		if a == string(data) {
			continue
		}
		text, err := unifiedDiff(rel, a, string(data))
		if err != nil {
			return "", err
		}
		out.WriteString(text)
	}
	return out.String(), nil
}
