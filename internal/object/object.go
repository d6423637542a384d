// Package object implements the content-addressed object store. Two object
// kinds exist: blobs (raw file bytes) and commits (snapshot records). An
// object's identity is the SHA-1 of its type tag concatenated with its
// payload, so a blob and a commit can never collide even with byte-identical
// payloads.
package object

import (
	"crypto/sha1"
	"encoding/hex"
)

// Hash is the hex-encoded SHA-1 identity of a stored object.
// The zero value means "no object" (e.g. an unborn ref).
type Hash string

// IsZero reports whether h identifies no object.
func (h Hash) IsZero() bool { return h == "" }

func (h Hash) String() string { return string(h) }

// Short returns an abbreviated form of the hash for display.
func (h Hash) Short() string {
	if len(h) < 8 {
		return string(h)
	}
	return string(h[:8])
}

// Type tags keep blob and commit identities in separate hash domains.
const (
	blobTag   = "blob "
	commitTag = "commit "
)

func hashObject(tag string, payload []byte) Hash {
	d := sha1.New()
	d.Write([]byte(tag))
	d.Write(payload)
	return Hash(hex.EncodeToString(d.Sum(nil)))
}

// HashBlob computes the identity a blob with the given content would have,
// without storing anything.
func HashBlob(data []byte) Hash {
	return hashObject(blobTag, data)
}
