// Package exclude decides which ignore rule, if any, applies to a
// repository-relative path. Rule sources are layered the way users
// expect: a global excludes file is outranked by the repository's
// info/exclude file, which is outranked by .gitignore files, with
// deeper directories outranking shallower ones and later lines
// outranking earlier ones within one file.
//
// Pattern matching itself is delegated to the pathrules engine; this
// package owns source layering, precedence across sources, and rule
// provenance (which file, which line, which pattern text).
package exclude

import (
	"os"
	"path/filepath"
)

// MatchedRule is the highest-priority rule applying to one path,
// with enough provenance to explain the decision.
type MatchedRule struct {
	// Source identifies the rule list the rule came from.
	Source string
	// Line is the 1-based line number of the rule inside Source.
	Line int
	// Pattern is the rule text without the leading "!" and trailing "/".
	Pattern string
	// Negated reports a re-include rule.
	Negated bool
	// DirOnly reports a rule that only matches directories.
	DirOnly bool
}

// Resolver finds the single highest-priority rule matching a path.
// A nil rule with a nil error means no rule matched.
type Resolver interface {
	// Match evaluates the repository-relative path. isDir reports whether
	// a repository-relative path denotes a directory; implementations may
	// call it for the path itself.
	Match(rel string, isDir func(string) bool) (*MatchedRule, error)
}

// DirTypeCache memoizes directory-type lookups for one run. The cache
// is discarded with the run; results are never persisted.
type DirTypeCache struct {
	root  string
	types map[string]bool
}

// NewDirTypeCache returns a cache answering directory-type questions
// against the work tree rooted at root.
func NewDirTypeCache(root string) *DirTypeCache {
	return &DirTypeCache{
		root:  root,
		types: make(map[string]bool),
	}
}

// IsDir reports whether the repository-relative path names a directory.
// Unknown or nonexistent paths report false.
func (c *DirTypeCache) IsDir(rel string) bool {
	if isDir, ok := c.types[rel]; ok {
		return isDir
	}

	info, err := os.Lstat(filepath.Join(c.root, filepath.FromSlash(rel)))
	isDir := err == nil && info.IsDir()
	c.types[rel] = isDir
	return isDir
}
