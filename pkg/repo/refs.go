package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/renameio"
	"go.uber.org/zap"

	"github.com/okrauss/nit/pkg/object"
)

const headsPrefix = "refs/heads/"

// Head reads .nit/HEAD and returns its content: either a symbolic ref
// path ("refs/heads/<branch>") or a raw commit digest when detached.
// A missing HEAD in an otherwise present repository signals on-disk
// tampering and is fatal.
func (r *Repo) Head() (string, error) {
	data, err := os.ReadFile(filepath.Join(r.NitDir, "HEAD"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("head: %w", ErrCorruptedState)
		}
		return "", fmt.Errorf("head: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// CurrentBranch returns the branch name HEAD points at, or "" when HEAD
// is detached.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(head, headsPrefix) {
		return strings.TrimPrefix(head, headsPrefix), nil
	}
	return "", nil
}

// CurrentCommit resolves HEAD to a commit digest. When HEAD is symbolic
// and the branch has no commits yet, it returns "" with no error.
func (r *Repo) CurrentCommit() (object.Hash, error) {
	head, err := r.Head()
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(head, headsPrefix) {
		return r.readBranch(strings.TrimPrefix(head, headsPrefix))
	}
	// Detached HEAD: the value is a digest.
	return object.Hash(head), nil
}

// ResolveRef resolves a name to a commit digest.
//
// Resolution order:
//  1. "HEAD" resolves via the current branch (or the detached digest).
//  2. A fully-qualified "refs/heads/<name>" reads that branch.
//  3. A bare branch name reads refs/heads/<name>.
//  4. Anything else is taken as a literal digest if the store has it.
//
// Unresolvable names (including empty branches) yield ErrRefNotFound.
func (r *Repo) ResolveRef(name string) (object.Hash, error) {
	if name == "HEAD" {
		h, err := r.CurrentCommit()
		if err != nil {
			return "", err
		}
		if h == "" {
			return "", fmt.Errorf("resolve HEAD: %w", ErrRefNotFound)
		}
		return h, nil
	}

	branch := name
	qualified := strings.HasPrefix(name, headsPrefix)
	if qualified {
		branch = strings.TrimPrefix(name, headsPrefix)
	}
	if h, err := r.readBranch(branch); err == nil && h != "" {
		return h, nil
	}
	if !qualified {
		if h := object.Hash(name); r.Store.Has(h) {
			return h, nil
		}
	}
	return "", fmt.Errorf("resolve ref %q: %w", name, ErrRefNotFound)
}

// BranchExists reports whether a ref file exists for the branch, even
// when the branch has no commits yet.
func (r *Repo) BranchExists(name string) bool {
	_, err := os.Stat(r.branchPath(name))
	return err == nil
}

// readBranch reads a branch's tip digest. A missing or empty ref file
// means "no commits yet" and returns "" without an error.
func (r *Repo) readBranch(name string) (object.Hash, error) {
	data, err := os.ReadFile(r.branchPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read branch %q: %w", name, err)
	}
	return object.Hash(strings.TrimSpace(string(data))), nil
}

func (r *Repo) branchPath(name string) string {
	return filepath.Join(r.NitDir, "refs", "heads", name)
}

// SetBranchTip points the branch at the given commit digest.
func (r *Repo) SetBranchTip(name string, h object.Hash) error {
	return r.setBranchTip(name, h, "update")
}

// setBranchTip atomically rewrites the branch ref file and appends a
// reflog entry. Concurrent writers are last-writer-wins; only the
// individual file write is atomic.
func (r *Repo) setBranchTip(name string, h object.Hash, reason string) error {
	old, err := r.readBranch(name)
	if err != nil {
		return fmt.Errorf("set branch tip %q: %w", name, err)
	}

	if err := os.MkdirAll(filepath.Dir(r.branchPath(name)), 0o755); err != nil {
		return fmt.Errorf("set branch tip %q: mkdir: %w", name, err)
	}
	if err := renameio.WriteFile(r.branchPath(name), []byte(string(h)+"\n"), 0o644); err != nil {
		return fmt.Errorf("set branch tip %q: %w", name, err)
	}

	r.log.Debug("updated branch tip",
		zap.String("branch", name),
		zap.String("old", string(old)),
		zap.String("new", string(h)))
	if err := r.appendReflog(headsPrefix+name, old, h, reason); err != nil {
		return fmt.Errorf("set branch tip %q: %w", name, err)
	}
	return nil
}

// CreateBranch creates refs/heads/<name> pointing at start. Branching an
// empty history is rejected with ErrNoCommitsYet; a taken name is
// rejected with ErrBranchExists.
func (r *Repo) CreateBranch(name string, start object.Hash) error {
	if start == "" {
		return fmt.Errorf("create branch %q: %w", name, ErrNoCommitsYet)
	}
	if r.BranchExists(name) {
		return fmt.Errorf("create branch %q: %w", name, ErrBranchExists)
	}
	return r.setBranchTip(name, start, "branch: created")
}

// BranchInfo describes one branch for listing purposes.
type BranchInfo struct {
	Name    string
	Tip     object.Hash // "" when the branch has no commits
	Current bool        // pointed to by HEAD
}

// ListBranches reads refs/heads/ and returns the branches sorted by name.
func (r *Repo) ListBranches() ([]BranchInfo, error) {
	entries, err := os.ReadDir(filepath.Join(r.NitDir, "refs", "heads"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list branches: %w", err)
	}

	current, err := r.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}

	var branches []BranchInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		tip, err := r.readBranch(e.Name())
		if err != nil {
			return nil, fmt.Errorf("list branches: %w", err)
		}
		branches = append(branches, BranchInfo{
			Name:    e.Name(),
			Tip:     tip,
			Current: e.Name() == current,
		})
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches, nil
}

// PointHeadToBranch makes HEAD symbolic, pointing at the named branch.
func (r *Repo) PointHeadToBranch(name string) error {
	old, err := r.CurrentCommit()
	if err != nil {
		return err
	}
	tip, err := r.readBranch(name)
	if err != nil {
		return err
	}
	if err := r.writeHead(headsPrefix + name); err != nil {
		return err
	}
	return r.appendReflog("HEAD", old, tip, "switch: to "+name)
}

// DetachHeadTo points HEAD directly at a commit digest (detached state).
func (r *Repo) DetachHeadTo(h object.Hash) error {
	old, err := r.CurrentCommit()
	if err != nil {
		return err
	}
	if err := r.writeHead(string(h)); err != nil {
		return err
	}
	return r.appendReflog("HEAD", old, h, "checkout: detached")
}

func (r *Repo) writeHead(content string) error {
	if err := renameio.WriteFile(filepath.Join(r.NitDir, "HEAD"), []byte(content+"\n"), 0o644); err != nil {
		return fmt.Errorf("write HEAD: %w", err)
	}
	r.log.Debug("moved HEAD", zap.String("to", content))
	return nil
}
