package object

import "time"

// Hash is a 64-character hex-encoded SHA-256 digest.
type Hash string

// Kind identifies the kind of object stored.
type Kind string

const (
	KindBlob   Kind = "blob"
	KindTree   Kind = "tree"
	KindCommit Kind = "commit"
)

// Blob holds raw file data.
type Blob struct {
	Data []byte
}

// TreeEntry is one entry in a tree object: a working path and the blob
// it was staged as.
type TreeEntry struct {
	Path     string
	BlobHash Hash
}

// Tree holds the path-to-blob mapping for one commit's snapshot.
// Entries keep staging order; the mapping alone determines the digest.
type Tree struct {
	Entries []TreeEntry
}

// Lookup returns the blob hash for path, or "" when the tree has no
// entry for it.
func (t *Tree) Lookup(path string) Hash {
	for _, e := range t.Entries {
		if e.Path == path {
			return e.BlobHash
		}
	}
	return ""
}

// Commit represents a commit pointing to a tree with metadata. Parent is
// empty for the first commit on a branch; whether the serialized form
// carries a parent line is an encoding detail.
type Commit struct {
	TreeHash  Hash
	Parent    Hash
	Author    string
	Timestamp time.Time
	Message   string
}

// HasParent reports whether the commit references an ancestor.
func (c *Commit) HasParent() bool {
	return c.Parent != ""
}
