package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/renameio"
	"go.uber.org/zap"

	"github.com/okrauss/nit/pkg/object"
)

// Checkout materializes the target commit's tree into the working
// directory and returns the restored paths in sorted order.
//
// The target accepts anything ResolveRef does: a literal digest, "HEAD",
// a branch name, or refs/heads/<name>. Every file in the target tree is
// fully overwritten (parent directories created as needed); working
// files absent from the target tree are left untouched — tracked-file
// deletion on checkout is deliberately not performed. An empty tree map
// is a valid "nothing to checkout" result, not an error: no files are
// restored and HEAD does not move.
//
// When detach is true, HEAD is pointed directly at the resolved digest.
// Otherwise HEAD management is left to the caller (SwitchBranch uses
// this to keep HEAD symbolic).
func (r *Repo) Checkout(target string, detach bool) ([]string, error) {
	h, err := r.ResolveRef(target)
	if err != nil {
		return nil, fmt.Errorf("checkout %q: %w", target, err)
	}

	treeMap := r.TreeMap(h)
	if len(treeMap) == 0 {
		return nil, nil
	}

	paths := make([]string, 0, len(treeMap))
	for p := range treeMap {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		blob, err := r.Store.GetBlob(treeMap[p])
		if err != nil {
			return nil, fmt.Errorf("checkout: read blob for %q: %w", p, err)
		}

		absPath := filepath.Join(r.RootDir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
			return nil, fmt.Errorf("checkout: mkdir for %q: %w", p, err)
		}
		if err := renameio.WriteFile(absPath, blob.Data, 0o644); err != nil {
			return nil, fmt.Errorf("checkout: write %q: %w", p, err)
		}
		r.log.Debug("restored file", zap.String("path", p))
	}

	if detach {
		if err := r.DetachHeadTo(h); err != nil {
			return nil, fmt.Errorf("checkout: %w", err)
		}
	}
	return paths, nil
}

// SwitchBranch restores the named branch's tip snapshot (when the branch
// has commits) and points HEAD at the branch. The returned tip is ""
// when the branch exists but has no commits yet. A missing branch is
// ErrRefNotFound.
func (r *Repo) SwitchBranch(name string) (object.Hash, error) {
	if !r.BranchExists(name) {
		return "", fmt.Errorf("switch %q: %w", name, ErrRefNotFound)
	}

	tip, err := r.readBranch(name)
	if err != nil {
		return "", fmt.Errorf("switch %q: %w", name, err)
	}

	if tip != "" {
		// Restore files first; HEAD stays under our control so it ends
		// up symbolic, not detached.
		if _, err := r.Checkout(string(tip), false); err != nil {
			return "", fmt.Errorf("switch %q: %w", name, err)
		}
	}
	if err := r.PointHeadToBranch(name); err != nil {
		return "", fmt.Errorf("switch %q: %w", name, err)
	}
	return tip, nil
}
