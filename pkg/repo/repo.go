package repo

import (
	"go.uber.org/zap"

	"github.com/okrauss/nit/pkg/object"
)

// Repo represents an opened nit repository. It is an explicit handle
// passed to every operation; there is no global state.
type Repo struct {
	RootDir string        // working directory root
	NitDir  string        // .nit/ directory
	Store   *object.Store // content-addressed object store

	log *zap.Logger
}

// Option configures a Repo handle at Init/Open time.
type Option func(*Repo)

// WithLogger attaches a structured logger to the repository handle.
// Without it, logging is a no-op.
func WithLogger(l *zap.Logger) Option {
	return func(r *Repo) {
		if l != nil {
			r.log = l
		}
	}
}

func (r *Repo) applyOptions(opts []Option) {
	r.log = zap.NewNop()
	for _, opt := range opts {
		opt(r)
	}
}
