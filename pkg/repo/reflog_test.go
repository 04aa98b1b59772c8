package repo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflogRecordsCommits(t *testing.T) {
	r := initRepo(t)
	first := stageAndCommit(t, r, "first", map[string]string{"a.txt": "1"})
	second := stageAndCommit(t, r, "second", map[string]string{"a.txt": "2"})

	entries, err := r.ReadReflog("main", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, second, entries[0].NewHash)
	assert.Equal(t, first, entries[0].OldHash)
	assert.True(t, strings.HasPrefix(entries[0].Reason, "commit: "))

	assert.Equal(t, first, entries[1].NewHash)
	assert.Equal(t, zeroHash, string(entries[1].OldHash))
}

func TestReflogLimit(t *testing.T) {
	r := initRepo(t)
	stageAndCommit(t, r, "first", map[string]string{"a.txt": "1"})
	stageAndCommit(t, r, "second", map[string]string{"a.txt": "2"})
	stageAndCommit(t, r, "third", map[string]string{"a.txt": "3"})

	entries, err := r.ReadReflog("main", 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestReflogDefaultsToCurrentBranch(t *testing.T) {
	r := initRepo(t)
	h := stageAndCommit(t, r, "first", map[string]string{"a.txt": "1"})

	entries, err := r.ReadReflog("", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "refs/heads/main", entries[0].Ref)
	assert.Equal(t, h, entries[0].NewHash)
}

func TestReflogMissingIsEmpty(t *testing.T) {
	r := initRepo(t)
	entries, err := r.ReadReflog("ghost", 0)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestReflogTracksHeadMovement(t *testing.T) {
	r := initRepo(t)
	h := stageAndCommit(t, r, "first", map[string]string{"a.txt": "1"})

	require.NoError(t, r.DetachHeadTo(h))
	require.NoError(t, r.PointHeadToBranch("main"))

	entries, err := r.ReadReflog("HEAD", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "switch: to main", entries[0].Reason)
	assert.Equal(t, "checkout: detached", entries[1].Reason)
}
