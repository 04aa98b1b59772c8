package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/okrauss/nit/pkg/object"
)

// StatusReport describes the repository's working state: the staged
// entries in index order, and tracked paths whose live content differs
// from what is staged (or, when unstaged, from the HEAD snapshot).
// Untracked files — no index entry and no HEAD tree entry — are not
// reported.
type StatusReport struct {
	Branch    string // "" when HEAD is detached
	HasCommit bool
	Staged    []IndexEntry
	Modified  []string // sorted
}

// Status performs a single-pass comparison over the tracked paths (index
// union HEAD tree). There is no separate "deleted" or "added" notion:
// a tracked file missing from disk is simply not reported as modified.
func (r *Repo) Status() (*StatusReport, error) {
	staged, err := r.StagedEntries()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}

	branch, err := r.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	current, err := r.CurrentCommit()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	headTree := r.TreeMap(current)

	stagedByPath := make(map[string]object.Hash, len(staged))
	for _, e := range staged {
		stagedByPath[e.Path] = e.BlobHash
	}

	tracked := make(map[string]struct{}, len(staged)+len(headTree))
	for _, e := range staged {
		tracked[e.Path] = struct{}{}
	}
	for p := range headTree {
		tracked[p] = struct{}{}
	}

	var modified []string
	for p := range tracked {
		content, err := os.ReadFile(filepath.Join(r.RootDir, filepath.FromSlash(p)))
		if err != nil {
			// Missing on disk: not "modified" in this model.
			continue
		}
		live := object.HashObject(object.KindBlob, content)

		if stagedHash, inIndex := stagedByPath[p]; inIndex {
			if live != stagedHash {
				modified = append(modified, p)
			}
			continue
		}
		if headHash, inHead := headTree[p]; inHead && live != headHash {
			modified = append(modified, p)
		}
	}
	sort.Strings(modified)

	return &StatusReport{
		Branch:    branch,
		HasCommit: current != "",
		Staged:    staged,
		Modified:  modified,
	}, nil
}
