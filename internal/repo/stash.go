package repo

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"kit.dev/kit/internal/errors"
	"kit.dev/kit/internal/object"
	"kit.dev/kit/internal/refs"
)

// stashMessage marks stash snapshots in the object store.
const stashMessage = "WIP stash"

// StashEntry names one stash slot and the snapshot it points at.
type StashEntry struct {
	Slot int
	Hash object.Hash
}

// StashSave snapshots every working file into fresh blobs, wraps them in a
// parentless commit-shaped object, and appends it under the next unused
// numbered stash slot.
func (r *Repository) StashSave() (StashEntry, error) {
	unlock, err := r.lock()
	if err != nil {
		return StashEntry{}, err
	}
	defer unlock()

	files, err := r.workFiles()
	if err != nil {
		return StashEntry{}, err
	}
	tree := make(map[string]object.Hash, len(files))
	for _, rel := range files {
		data, err := r.readWorkFile(rel)
		if err != nil {
			return StashEntry{}, err
		}
		h, err := r.objects.WriteBlob(data)
		if err != nil {
			return StashEntry{}, err
		}
		tree[rel] = h
	}
	h, err := r.objects.WriteCommit(&object.Commit{
		Tree:      tree,
		Message:   stashMessage,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return StashEntry{}, err
	}

	slot := 0
	for r.refs.Has(refs.StashRef(slot)) {
		slot++
	}
	if err := r.refs.Write(refs.StashRef(slot), h); err != nil {
		return StashEntry{}, err
	}
	r.log.Debug("stash saved", "slot", slot, "hash", h.Short())
	return StashEntry{Slot: slot, Hash: h}, nil
}

// StashList enumerates the stash slots in numeric order.
func (r *Repository) StashList() ([]StashEntry, error) {
	names, err := r.refs.List(refs.StashPrefix)
	if err != nil {
		return nil, err
	}
	entries := make([]StashEntry, 0, len(names))
	for _, name := range names {
		n, err := strconv.Atoi(strings.TrimPrefix(name, refs.StashPrefix+"/"))
		if err != nil {
			continue
		}
		h, err := r.refs.Read(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, StashEntry{Slot: n, Hash: h})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Slot < entries[j].Slot })
	return entries, nil
}

// StashPop materializes the highest-numbered stash onto the working area
// (write-only; unlike checkout it deletes nothing first) and consumes the
// slot. An empty stash fails with RefNotFound.
func (r *Repository) StashPop() (StashEntry, error) {
	unlock, err := r.lock()
	if err != nil {
		return StashEntry{}, err
	}
	defer unlock()

	entries, err := r.StashList()
	if err != nil {
		return StashEntry{}, err
	}
	if len(entries) == 0 {
		return StashEntry{}, errors.NewRefNotFoundError(refs.StashPrefix)
	}
	top := entries[len(entries)-1]
	c, err := r.objects.ReadCommit(top.Hash)
	if err != nil {
		return StashEntry{}, err
	}
	if err := r.materializeTree(c.Tree); err != nil {
		return StashEntry{}, err
	}
	if err := r.refs.Delete(refs.StashRef(top.Slot)); err != nil {
		return StashEntry{}, err
	}
	r.log.Debug("stash popped", "slot", top.Slot, "hash", top.Hash.Short())
	return top, nil
}
