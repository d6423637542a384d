package object

import (
	"encoding/json"
	"fmt"
)

// Commit is a snapshot record. Tree maps working-tree-relative paths
// directly to blob hashes (flat, no directory objects). Parent2 is set only
// on merge commits. The zero Parent marks a root commit.
type Commit struct {
	Tree      map[string]Hash `json:"tree"`
	Parent    Hash            `json:"parent,omitempty"`
	Parent2   Hash            `json:"parent2,omitempty"`
	Author    string          `json:"author,omitempty"`
	Message   string          `json:"message"`
	Timestamp int64           `json:"timestamp"`
}

// marshalCommit produces the canonical serialization used for hashing and
// storage: encoding/json emits struct fields in declaration order and map
// keys sorted, so identical logical content always yields identical bytes.
func marshalCommit(c *Commit) ([]byte, error) {
	if c.Tree == nil {
		c.Tree = map[string]Hash{}
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal commit: %w", err)
	}
	return raw, nil
}

func unmarshalCommit(raw []byte) (*Commit, error) {
	var c Commit
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("unmarshal commit: %w", err)
	}
	if c.Tree == nil {
		c.Tree = map[string]Hash{}
	}
	return &c, nil
}
