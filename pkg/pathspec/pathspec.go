// Package pathspec normalizes user-supplied path arguments into
// repository-relative paths and guards against paths whose leading
// components cross a symbolic link out of the intended work tree
// interpretation.
package pathspec

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pst966/git/pkg/errors"
)

// Resolver normalizes raw path arguments against a work tree root.
type Resolver struct {
	root string
}

// NewResolver returns a Resolver anchored at the absolute work tree root.
func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// Resolve joins the working-directory prefix with a raw argument and
// normalizes the result to a clean repository-relative slash path. A
// path escaping the work tree is rejected. If the path crosses a
// nested-repository mount point it is canonicalized to that boundary.
func (r *Resolver) Resolve(raw, prefix string) (string, error) {
	var joined string
	if filepath.IsAbs(raw) {
		rel, err := filepath.Rel(r.root, raw)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", errors.Newf(errors.ErrPathOutsideRepo, "%q is outside repository", raw)
		}
		joined = filepath.ToSlash(rel)
	} else {
		joined = prefix + filepath.ToSlash(raw)
	}

	cleaned := path.Clean(joined)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", errors.Newf(errors.ErrPathOutsideRepo, "%q is outside repository", raw)
	}
	if cleaned == "." {
		cleaned = ""
	}

	return r.normalizeNestedRepo(cleaned), nil
}

// CheckSymlinkBoundary fails when any leading directory component of
// the repository-relative path is a symbolic link, since the bytes past
// that component would then name something outside the path's
// repository-relative interpretation. The terminal component itself may
// be a symlink.
func (r *Resolver) CheckSymlinkBoundary(rel string) error {
	for _, dir := range leadingDirs(rel) {
		info, err := os.Lstat(filepath.Join(r.root, filepath.FromSlash(dir)))
		if err != nil {
			// Nonexistent components cannot be symlinks; ignore checking
			// is defined for paths that need not exist.
			return nil
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return errors.Newf(errors.ErrSymlinkEscape, "pathspec %q is beyond a symbolic link", rel)
		}
		if !info.IsDir() {
			return nil
		}
	}
	return nil
}

// normalizeNestedRepo canonicalizes a path crossing a nested-repository
// mount point to the mount boundary itself.
func (r *Resolver) normalizeNestedRepo(rel string) string {
	for _, dir := range leadingDirs(rel) {
		if _, err := os.Lstat(filepath.Join(r.root, filepath.FromSlash(dir), ".git")); err == nil {
			return dir
		}
	}
	return rel
}

// leadingDirs returns every proper leading directory of rel, shortest first.
func leadingDirs(rel string) []string {
	var dirs []string
	for i := 0; i < len(rel); i++ {
		if rel[i] == '/' {
			dirs = append(dirs, rel[:i])
		}
	}
	return dirs
}
