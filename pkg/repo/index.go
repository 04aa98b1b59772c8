package repo

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio"
	"go.uber.org/zap"

	"github.com/okrauss/nit/pkg/object"
)

// IndexEntry records the staged state of a single file: its repo-relative
// path and the blob it was stored as.
type IndexEntry struct {
	Path     string
	BlobHash object.Hash
}

func (r *Repo) indexPath() string {
	return filepath.Join(r.NitDir, "index")
}

// StagedEntries loads the staging index from .nit/index, preserving the
// staging order. A missing or empty index file yields no entries.
func (r *Repo) StagedEntries() ([]IndexEntry, error) {
	data, err := os.ReadFile(r.indexPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read index: %w", err)
	}

	var entries []IndexEntry
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		path, hash, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("read index: malformed entry %q", line)
		}
		entries = append(entries, IndexEntry{Path: path, BlobHash: object.Hash(hash)})
	}
	return entries, nil
}

// Stage stores the working file at path as a blob and records it in the
// index, replacing any prior entry for the same path in place so the
// relative order of other entries is preserved. Staging a nonexistent
// file fails with ErrFileNotFound and leaves the index unchanged.
func (r *Repo) Stage(path string) (object.Hash, error) {
	relPath := r.relPath(path)

	content, err := os.ReadFile(filepath.Join(r.RootDir, filepath.FromSlash(relPath)))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("stage %q: %w", relPath, ErrFileNotFound)
		}
		return "", fmt.Errorf("stage %q: %w", relPath, err)
	}

	hash, err := r.Store.PutBlob(&object.Blob{Data: content})
	if err != nil {
		return "", fmt.Errorf("stage %q: %w", relPath, err)
	}

	entries, err := r.StagedEntries()
	if err != nil {
		return "", fmt.Errorf("stage %q: %w", relPath, err)
	}

	replaced := false
	for i := range entries {
		if entries[i].Path == relPath {
			entries[i].BlobHash = hash
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, IndexEntry{Path: relPath, BlobHash: hash})
	}

	if err := r.writeIndex(entries); err != nil {
		return "", fmt.Errorf("stage %q: %w", relPath, err)
	}
	r.log.Debug("staged file", zap.String("path", relPath), zap.String("blob", string(hash)))
	return hash, nil
}

// ClearIndex empties the staging index. Called after a successful commit.
func (r *Repo) ClearIndex() error {
	if err := r.writeIndex(nil); err != nil {
		return fmt.Errorf("clear index: %w", err)
	}
	return nil
}

// writeIndex atomically persists the index as one "path\tdigest" line per
// entry.
func (r *Repo) writeIndex(entries []IndexEntry) error {
	var buf bytes.Buffer
	for _, e := range entries {
		fmt.Fprintf(&buf, "%s\t%s\n", e.Path, string(e.BlobHash))
	}
	if err := renameio.WriteFile(r.indexPath(), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// relPath converts a path the user gave (absolute, or relative to the
// repo root) into the slash-separated repo-relative form used by the
// index and trees.
func (r *Repo) relPath(p string) string {
	if filepath.IsAbs(p) {
		if rel, err := filepath.Rel(r.RootDir, p); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(filepath.Clean(p))
}
