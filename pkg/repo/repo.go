// Package repo locates the enclosing git repository and the pieces of it
// the ignore machinery needs: the work tree root, the git directory and
// the prefix of the current working directory inside the work tree.
package repo

import (
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pst966/git/pkg/errors"
	"github.com/pst966/git/pkg/logging"
)

// Repo describes a discovered repository.
type Repo struct {
	// Root is the absolute work tree root.
	Root string
	// GitDir is the absolute git directory path.
	GitDir string
	// Prefix is the working directory relative to Root, slash-terminated
	// when non-empty ("sub/dir/"), empty at the root.
	Prefix string
}

// Discover locates the repository enclosing dir. An empty dir means the
// process working directory. Discovery failure is fatal to the run.
func Discover(dir string) (*Repo, error) {
	logger := logging.GetLogger("repo")

	root, err := revParse(dir, "--show-toplevel")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRepoDiscovery, "not inside a git work tree")
	}

	gitDir, err := revParse(dir, "--absolute-git-dir")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRepoDiscovery, "cannot locate git directory")
	}

	prefix, err := revParse(dir, "--show-prefix")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRepoDiscovery, "cannot compute working directory prefix")
	}

	logger.Debug().
		Str("root", root).
		Str("gitDir", gitDir).
		Str("prefix", prefix).
		Msg("Repository discovered")

	return &Repo{
		Root:   root,
		GitDir: gitDir,
		Prefix: prefix,
	}, nil
}

// InfoExcludePath returns the path of the repository-local exclude file.
func (r *Repo) InfoExcludePath() string {
	return filepath.Join(r.GitDir, "info", "exclude")
}

// revParse runs one git rev-parse query in dir.
func revParse(dir, flag string) (string, error) {
	args := []string{"rev-parse", flag}
	logging.LogCommand("git", args)

	cmd := exec.Command("git", args...)
	if dir != "" {
		cmd.Dir = dir
	}

	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(string(output), "\n"), nil
}
