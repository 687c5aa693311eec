package codebase

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherPicksUpNewFile(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)
	w := NewFileWatcher(c)

	path := filepath.Join(dir, "domain.pddl")
	require.NoError(t, os.WriteFile(path, []byte("(define (domain fresh))"), 0o644))

	w.scan()

	f := c.GetFile(path)
	require.NotNil(t, f)
	assert.Equal(t, "fresh", f.Info.Name)
}

func TestWatcherPicksUpModification(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)
	w := NewFileWatcher(c)

	path := filepath.Join(dir, "domain.pddl")
	require.NoError(t, os.WriteFile(path, []byte("(define (domain before))"), 0o644))
	w.scan()
	require.Equal(t, "before", c.GetFile(path).Info.Name)

	// Bump the mod time explicitly so the change is seen regardless of
	// filesystem timestamp granularity.
	require.NoError(t, os.WriteFile(path, []byte("(define (domain after))"), 0o644))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))
	w.scan()

	assert.Equal(t, "after", c.GetFile(path).Info.Name)
}

func TestWatcherDropsDeletedFile(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)
	w := NewFileWatcher(c)

	path := filepath.Join(dir, "domain.pddl")
	require.NoError(t, os.WriteFile(path, []byte("(define (domain gone))"), 0o644))
	w.scan()
	require.NotNil(t, c.GetFile(path))

	require.NoError(t, os.Remove(path))
	w.scan()

	assert.Nil(t, c.GetFile(path))
}

func TestWatcherIgnoresOtherFilesAndHiddenDirs(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)
	w := NewFileWatcher(c)

	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("not pddl"), 0o644))

	hidden := filepath.Join(dir, ".cache")
	require.NoError(t, os.Mkdir(hidden, 0o755))
	skipped := filepath.Join(hidden, "stale.pddl")
	require.NoError(t, os.WriteFile(skipped, []byte("(define (domain stale))"), 0o644))

	w.scan()

	assert.Nil(t, c.GetFile(notes))
	assert.Nil(t, c.GetFile(skipped))
}
