package repo

import "errors"

// Recoverable error kinds are reported at the command boundary and leave
// no state change behind. ErrRepositoryNotFound and ErrCorruptedState are
// fatal and abort the invocation.
var (
	ErrRepositoryNotFound = errors.New("not a nit repository")
	ErrRepositoryExists   = errors.New("repository already exists")
	ErrCorruptedState     = errors.New("repository corrupted: HEAD missing")
	ErrRefNotFound        = errors.New("ref not found")
	ErrFileNotFound       = errors.New("file not found")
	ErrNothingStaged      = errors.New("nothing staged")
	ErrBranchExists       = errors.New("branch already exists")
	ErrNoCommitsYet       = errors.New("no commits yet")
)
