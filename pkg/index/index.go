// Package index answers whether paths are already tracked by the
// repository. Tracked paths are never reported as ignored, keeping
// ignore checking consistent with status/add tooling.
package index

import (
	"os/exec"
	"strings"

	"github.com/pst966/git/pkg/errors"
	"github.com/pst966/git/pkg/logging"
)

// Index is the tracked-path registry consulted before any ignore rule.
type Index interface {
	// Seen reports, for each repository-relative path, whether it exactly
	// names a tracked entry. The whole batch is answered from a single
	// registry pass.
	Seen(paths []string) ([]bool, error)
}

// GitIndex reads the tracked-path set from the repository once and
// answers lookups from memory.
type GitIndex struct {
	tracked map[string]struct{}
}

// Open loads the tracked-path set for the repository rooted at root.
// A corrupt or unreadable registry is fatal before any path evaluation.
func Open(root string) (*GitIndex, error) {
	logger := logging.GetLogger("index")

	args := []string{"-C", root, "ls-files", "-z", "--cached"}
	logging.LogCommand("git", args)

	output, err := exec.Command("git", args...).Output()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIndexCorrupt, "index file corrupt")
	}

	tracked := make(map[string]struct{})
	for _, entry := range strings.Split(string(output), "\x00") {
		if entry == "" {
			continue
		}
		tracked[entry] = struct{}{}
	}

	logger.Debug().Int("entries", len(tracked)).Msg("Tracked path set loaded")

	return &GitIndex{tracked: tracked}, nil
}

// Seen implements Index.
func (idx *GitIndex) Seen(paths []string) ([]bool, error) {
	seen := make([]bool, len(paths))
	for i, p := range paths {
		_, seen[i] = idx.tracked[p]
	}
	return seen, nil
}

// Memory is an in-memory Index for wiring the core without a repository.
type Memory struct {
	tracked map[string]struct{}
}

// NewMemory builds an in-memory index over the given tracked paths.
func NewMemory(paths ...string) *Memory {
	tracked := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		tracked[p] = struct{}{}
	}
	return &Memory{tracked: tracked}
}

// Seen implements Index.
func (m *Memory) Seen(paths []string) ([]bool, error) {
	seen := make([]bool, len(paths))
	for i, p := range paths {
		_, seen[i] = m.tracked[p]
	}
	return seen, nil
}
