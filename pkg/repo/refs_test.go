package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRefForms(t *testing.T) {
	r := initRepo(t)
	h := stageAndCommit(t, r, "first", map[string]string{"a.txt": "x"})

	for _, target := range []string{"HEAD", "main", "refs/heads/main", string(h)} {
		got, err := r.ResolveRef(target)
		require.NoError(t, err, "target %q", target)
		assert.Equal(t, h, got, "target %q", target)
	}
}

func TestResolveRefNotFound(t *testing.T) {
	r := initRepo(t)

	_, err := r.ResolveRef("nope")
	assert.ErrorIs(t, err, ErrRefNotFound)

	// HEAD on an empty branch is unresolvable too.
	_, err = r.ResolveRef("HEAD")
	assert.ErrorIs(t, err, ErrRefNotFound)
}

func TestCreateBranchRequiresCommit(t *testing.T) {
	r := initRepo(t)

	err := r.CreateBranch("feature", "")
	assert.ErrorIs(t, err, ErrNoCommitsYet)
}

func TestCreateBranchCollision(t *testing.T) {
	r := initRepo(t)
	h := stageAndCommit(t, r, "first", map[string]string{"a.txt": "x"})

	require.NoError(t, r.CreateBranch("feature", h))
	err := r.CreateBranch("feature", h)
	assert.ErrorIs(t, err, ErrBranchExists)
}

func TestListBranches(t *testing.T) {
	r := initRepo(t)
	h := stageAndCommit(t, r, "first", map[string]string{"a.txt": "x"})
	require.NoError(t, r.CreateBranch("feature", h))

	branches, err := r.ListBranches()
	require.NoError(t, err)
	require.Len(t, branches, 2)

	// Sorted by name; main is current.
	assert.Equal(t, "feature", branches[0].Name)
	assert.False(t, branches[0].Current)
	assert.Equal(t, "main", branches[1].Name)
	assert.True(t, branches[1].Current)
	assert.Equal(t, h, branches[1].Tip)
}

func TestDetachAndRepointHead(t *testing.T) {
	r := initRepo(t)
	h := stageAndCommit(t, r, "first", map[string]string{"a.txt": "x"})

	require.NoError(t, r.DetachHeadTo(h))
	branch, err := r.CurrentBranch()
	require.NoError(t, err)
	assert.Empty(t, branch)

	current, err := r.CurrentCommit()
	require.NoError(t, err)
	assert.Equal(t, h, current)

	require.NoError(t, r.PointHeadToBranch("main"))
	head, err := r.Head()
	require.NoError(t, err)
	assert.Equal(t, "refs/heads/main", head)
}

func TestSetBranchTipLastWriterWins(t *testing.T) {
	r := initRepo(t)
	first := stageAndCommit(t, r, "first", map[string]string{"a.txt": "1"})
	second := stageAndCommit(t, r, "second", map[string]string{"a.txt": "2"})

	require.NoError(t, r.SetBranchTip("main", first))
	tip, err := r.readBranch("main")
	require.NoError(t, err)
	assert.Equal(t, first, tip)

	require.NoError(t, r.SetBranchTip("main", second))
	tip, err = r.readBranch("main")
	require.NoError(t, err)
	assert.Equal(t, second, tip)
}
