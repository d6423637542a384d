package repo

import (
	"time"

	"kit.dev/kit/internal/object"
)

// Commit records the current index snapshot as a new commit, advances the
// ref HEAD points at, and clears the index. A commit is always created,
// even when the tree is identical to the parent's.
func (r *Repository) Commit(message, author string) (object.Hash, error) {
	unlock, err := r.lock()
	if err != nil {
		return "", err
	}
	defer unlock()
	return r.commitIndex(message, author, "")
}

// commitIndex writes a commit whose tree is the current index snapshot.
// parent2 is set only for merge commits. Callers hold the repository lock.
func (r *Repository) commitIndex(message, author string, parent2 object.Hash) (object.Hash, error) {
	idx, err := r.loadIndex()
	if err != nil {
		return "", err
	}
	parent, err := r.HeadCommit()
	if err != nil {
		return "", err
	}
	c := &object.Commit{
		Tree:      idx.Snapshot(),
		Parent:    parent,
		Parent2:   parent2,
		Author:    author,
		Message:   message,
		Timestamp: time.Now().Unix(),
	}
	h, err := r.objects.WriteCommit(c)
	if err != nil {
		return "", err
	}
	headRef, err := r.refs.ReadSymbolic()
	if err != nil {
		return "", err
	}
	if err := r.refs.Write(headRef, h); err != nil {
		return "", err
	}
	if err := idx.Clear(); err != nil {
		return "", err
	}
	r.log.Debug("committed", "hash", h.Short(), "parent", parent.Short(), "files", len(c.Tree))
	return h, nil
}

// LogEntry pairs a commit hash with its decoded record.
type LogEntry struct {
	Hash   object.Hash
	Commit *object.Commit
}

// Log walks the first-parent chain from HEAD, newest first, returning at
// most limit entries (limit <= 0 means no cap).
func (r *Repository) Log(limit int) ([]LogEntry, error) {
	h, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	var entries []LogEntry
	for !h.IsZero() {
		if limit > 0 && len(entries) >= limit {
			break
		}
		c, err := r.objects.ReadCommit(h)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LogEntry{Hash: h, Commit: c})
		h = c.Parent
	}
	return entries, nil
}

// Timestamp formats a log entry's commit time for display.
func (e LogEntry) Timestamp() time.Time {
	return time.Unix(e.Commit.Timestamp, 0)
}
