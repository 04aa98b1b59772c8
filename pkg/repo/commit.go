package repo

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/okrauss/nit/pkg/object"
)

// Commit creates a new commit from the current staging index.
//
//  1. Read the index; an empty index is ErrNothingStaged.
//  2. Build the tree payload from the entries in index order and store it.
//  3. Resolve the current commit as parent (absent for a first commit).
//  4. Store the commit object.
//  5. If HEAD is symbolic, advance that branch; a detached HEAD stores
//     the commit without advancing anything.
//  6. Clear the index.
//
// Steps 2-4 are idempotent (dedup on identical content), so a crash
// mid-way leaves the store consistent and the operation safely
// re-runnable; there is no rollback.
func (r *Repo) Commit(message, author string) (object.Hash, error) {
	entries, err := r.StagedEntries()
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("commit: %w", ErrNothingStaged)
	}

	tree := &object.Tree{Entries: make([]object.TreeEntry, 0, len(entries))}
	for _, e := range entries {
		tree.Entries = append(tree.Entries, object.TreeEntry{Path: e.Path, BlobHash: e.BlobHash})
	}
	treeHash, err := r.Store.PutTree(tree)
	if err != nil {
		return "", fmt.Errorf("commit: write tree: %w", err)
	}

	parent, err := r.CurrentCommit()
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	commitHash, err := r.Store.PutCommit(&object.Commit{
		TreeHash:  treeHash,
		Parent:    parent,
		Author:    author,
		Timestamp: time.Now().UTC().Truncate(time.Second),
		Message:   message,
	})
	if err != nil {
		return "", fmt.Errorf("commit: write commit: %w", err)
	}

	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	if strings.HasPrefix(head, headsPrefix) {
		branch := strings.TrimPrefix(head, headsPrefix)
		if err := r.setBranchTip(branch, commitHash, "commit: "+firstLine(message)); err != nil {
			return "", fmt.Errorf("commit: %w", err)
		}
	} else {
		// Detached HEAD: the commit is stored but no branch advances.
		r.log.Debug("commit on detached HEAD, no branch advanced",
			zap.String("commit", string(commitHash)))
	}

	if err := r.ClearIndex(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return commitHash, nil
}

// TreeMap resolves a commit digest to its snapshot's path-to-blob
// mapping. An absent or unreadable commit yields an empty map: the
// zero-commit state is "no data", not an error.
func (r *Repo) TreeMap(commitHash object.Hash) map[string]object.Hash {
	result := make(map[string]object.Hash)
	if commitHash == "" {
		return result
	}
	commit, err := r.Store.GetCommit(commitHash)
	if err != nil {
		return result
	}
	tree, err := r.Store.GetTree(commit.TreeHash)
	if err != nil {
		return result
	}
	for _, e := range tree.Entries {
		result[e.Path] = e.BlobHash
	}
	return result
}

// WalkAncestry lazily walks the commit chain from start toward the root,
// yielding each commit with its digest in child-to-parent order. The
// walk ends at a commit with no parent, or at the first digest that
// cannot be read (treated as end-of-history, not an error).
func (r *Repo) WalkAncestry(start object.Hash) iter.Seq2[object.Hash, *object.Commit] {
	return func(yield func(object.Hash, *object.Commit) bool) {
		current := start
		for current != "" {
			commit, err := r.Store.GetCommit(current)
			if err != nil {
				return
			}
			if !yield(current, commit) {
				return
			}
			current = commit.Parent
		}
	}
}

// LogEntry pairs a commit with its digest for history listings.
type LogEntry struct {
	Hash   object.Hash
	Commit *object.Commit
}

// Log collects up to limit ancestors of start, newest first. A limit of
// zero or less means the full chain.
func (r *Repo) Log(start object.Hash, limit int) []LogEntry {
	var entries []LogEntry
	for h, c := range r.WalkAncestry(start) {
		entries = append(entries, LogEntry{Hash: h, Commit: c})
		if limit > 0 && len(entries) >= limit {
			break
		}
	}
	return entries
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
