package object

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/renameio"
)

// ErrNotFound reports a digest with no stored object behind it.
var ErrNotFound = errors.New("object not found")

// Store is a content-addressed object store with a flat namespace: the
// digest is both the key and the filename under objects/. Objects are
// write-once; there is no update or delete.
type Store struct {
	root string
}

// NewStore creates a Store rooted at the given directory. The objects/
// subdirectory is created lazily on first write.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// objectPath returns the filesystem path for a given hash.
func (s *Store) objectPath(h Hash) string {
	return filepath.Join(s.root, "objects", string(h))
}

// Has reports whether the store contains an object with the given hash.
func (s *Store) Has(h Hash) bool {
	if h == "" {
		return false
	}
	_, err := os.Stat(s.objectPath(h))
	return err == nil
}

// Put stores an object and returns its content hash. The on-disk format
// is "kind len\0payload". Re-writing identical content is a no-op: the
// digest is returned without touching the existing file. Writes go
// through a temp file and rename, so a crash never leaves a partial
// object behind.
func (s *Store) Put(kind Kind, payload []byte) (Hash, error) {
	h := HashObject(kind, payload)

	// Fast path: already exists.
	if s.Has(h) {
		return h, nil
	}

	dir := filepath.Join(s.root, "objects")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("object put mkdir: %w", err)
	}

	envelope := fmt.Sprintf("%s %d\x00", kind, len(payload))
	raw := append([]byte(envelope), payload...)

	if err := renameio.WriteFile(s.objectPath(h), raw, 0o644); err != nil {
		return "", fmt.Errorf("object put %s: %w", h, err)
	}
	return h, nil
}

// Get retrieves an object by hash, returning its kind and raw payload.
// Unknown digests yield ErrNotFound.
func (s *Store) Get(h Hash) (Kind, []byte, error) {
	raw, err := os.ReadFile(s.objectPath(h))
	if err != nil {
		if os.IsNotExist(err) || h == "" {
			return "", nil, fmt.Errorf("object get %s: %w", h, ErrNotFound)
		}
		return "", nil, fmt.Errorf("object get %s: %w", h, err)
	}

	// Parse envelope: "kind len\0payload"
	nulIdx := bytes.IndexByte(raw, 0)
	if nulIdx < 0 {
		return "", nil, fmt.Errorf("object get %s: invalid format (no NUL)", h)
	}
	header := string(raw[:nulIdx])
	payload := raw[nulIdx+1:]

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("object get %s: invalid header %q", h, header)
	}
	kind := Kind(parts[0])
	length, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", nil, fmt.Errorf("object get %s: invalid length %q: %w", h, parts[1], err)
	}
	if len(payload) != length {
		return "", nil, fmt.Errorf("object get %s: length mismatch (header=%d, actual=%d)", h, length, len(payload))
	}

	return kind, payload, nil
}

// ---------------------------------------------------------------------------
// Typed convenience methods
// ---------------------------------------------------------------------------

// PutBlob serializes and stores a Blob.
func (s *Store) PutBlob(b *Blob) (Hash, error) {
	return s.Put(KindBlob, MarshalBlob(b))
}

// GetBlob reads and deserializes a Blob.
func (s *Store) GetBlob(h Hash) (*Blob, error) {
	kind, payload, err := s.Get(h)
	if err != nil {
		return nil, err
	}
	if kind != KindBlob {
		return nil, fmt.Errorf("object %s: kind mismatch: got %q, want %q", h, kind, KindBlob)
	}
	return UnmarshalBlob(payload)
}

// PutTree serializes and stores a Tree.
func (s *Store) PutTree(t *Tree) (Hash, error) {
	return s.Put(KindTree, MarshalTree(t))
}

// GetTree reads and deserializes a Tree.
func (s *Store) GetTree(h Hash) (*Tree, error) {
	kind, payload, err := s.Get(h)
	if err != nil {
		return nil, err
	}
	if kind != KindTree {
		return nil, fmt.Errorf("object %s: kind mismatch: got %q, want %q", h, kind, KindTree)
	}
	return UnmarshalTree(payload)
}

// PutCommit serializes and stores a Commit.
func (s *Store) PutCommit(c *Commit) (Hash, error) {
	return s.Put(KindCommit, MarshalCommit(c))
}

// GetCommit reads and deserializes a Commit.
func (s *Store) GetCommit(h Hash) (*Commit, error) {
	kind, payload, err := s.Get(h)
	if err != nil {
		return nil, err
	}
	if kind != KindCommit {
		return nil, fmt.Errorf("object %s: kind mismatch: got %q, want %q", h, kind, KindCommit)
	}
	return UnmarshalCommit(payload)
}
