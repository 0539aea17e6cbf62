package repo

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pst966/git/pkg/errors"
)

// initRepo creates a temporary git repository and returns its root.
func initRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	cmd := exec.Command("git", "init", "-q")
	cmd.Dir = dir
	require.NoError(t, cmd.Run())

	// Resolve symlinks so comparisons against rev-parse output hold on
	// systems where TempDir lives behind a symlink (macOS /var -> /private/var).
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return resolved
}

func TestDiscover(t *testing.T) {
	root := initRepo(t)

	r, err := Discover(root)
	require.NoError(t, err)

	assert.Equal(t, root, r.Root)
	assert.Equal(t, filepath.Join(root, ".git"), r.GitDir)
	assert.Equal(t, "", r.Prefix)
}

func TestDiscoverFromSubdirectory(t *testing.T) {
	root := initRepo(t)
	sub := filepath.Join(root, "sub", "dir")
	require.NoError(t, os.MkdirAll(sub, 0755))

	r, err := Discover(sub)
	require.NoError(t, err)

	assert.Equal(t, root, r.Root)
	assert.Equal(t, "sub/dir/", r.Prefix)
}

func TestDiscoverOutsideRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", dir)

	_, err := Discover(dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRepoDiscovery))
}

func TestInfoExcludePath(t *testing.T) {
	r := &Repo{GitDir: "/repo/.git"}
	assert.Equal(t, filepath.Join("/repo/.git", "info", "exclude"), r.InfoExcludePath())
}
