package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/okrauss/nit/pkg/object"
)

const defaultBranch = "main"

// Init creates a new nit repository at path: the .nit/ directory with
// objects/, refs/heads/ (holding an empty main ref), logs/, a HEAD
// pointing at main, and an empty index. Returns ErrRepositoryExists if
// .nit/ is already present.
func Init(path string, opts ...Option) (*Repo, error) {
	nitDir := filepath.Join(path, ".nit")

	if _, err := os.Stat(nitDir); err == nil {
		return nil, fmt.Errorf("init %s: %w", nitDir, ErrRepositoryExists)
	}

	dirs := []string{
		filepath.Join(nitDir, "objects"),
		filepath.Join(nitDir, "refs", "heads"),
		filepath.Join(nitDir, "logs", "refs", "heads"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("init: mkdir %s: %w", d, err)
		}
	}

	// HEAD points at main symbolically; the branch itself starts with no
	// commits, which an empty ref file represents.
	if err := os.WriteFile(filepath.Join(nitDir, "HEAD"), []byte("refs/heads/"+defaultBranch+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("init: write HEAD: %w", err)
	}
	if err := os.WriteFile(filepath.Join(nitDir, "refs", "heads", defaultBranch), nil, 0o644); err != nil {
		return nil, fmt.Errorf("init: write %s ref: %w", defaultBranch, err)
	}
	if err := os.WriteFile(filepath.Join(nitDir, "index"), nil, 0o644); err != nil {
		return nil, fmt.Errorf("init: write index: %w", err)
	}

	r := &Repo{
		RootDir: path,
		NitDir:  nitDir,
		Store:   object.NewStore(nitDir),
	}
	r.applyOptions(opts)
	r.log.Debug("initialized repository", zap.String("dir", nitDir))
	return r, nil
}

// Open searches upward from path for a .nit/ directory and opens the
// repository. Returns ErrRepositoryNotFound if no .nit/ directory is
// found up to the filesystem root.
func Open(path string, opts ...Option) (*Repo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("open: abs path: %w", err)
	}

	cur := abs
	for {
		nitDir := filepath.Join(cur, ".nit")
		info, err := os.Stat(nitDir)
		if err == nil && info.IsDir() {
			r := &Repo{
				RootDir: cur,
				NitDir:  nitDir,
				Store:   object.NewStore(nitDir),
			}
			r.applyOptions(opts)
			return r, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return nil, fmt.Errorf("open %s: %w", abs, ErrRepositoryNotFound)
		}
		cur = parent
	}
}
