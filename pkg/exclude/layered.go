package exclude

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/pathrules"

	"github.com/pst966/git/pkg/errors"
	"github.com/pst966/git/pkg/logging"
)

const ignoreFileName = ".gitignore"

// Options configures a Layered resolver.
type Options struct {
	// Root is the absolute work tree root.
	Root string
	// GlobalFile is the lowest-precedence excludes file; empty skips it.
	GlobalFile string
	// InfoExclude is the repository-local excludes file; empty skips it.
	InfoExclude string
	// IgnoreCase enables case-insensitive matching.
	IgnoreCase bool
}

// source is one compiled rule list with provenance.
type source struct {
	// label identifies the source in output.
	label string
	// prefix is the repository-relative directory the source is scoped
	// to; empty for repository-wide sources.
	prefix string
	// matcher is nil when the underlying file does not exist.
	matcher *pathrules.Matcher
	lines   []ruleLine
}

// Layered resolves paths against global, repository and per-directory
// rule sources. Directory sources are loaded lazily and cached for the
// resolver's lifetime.
type Layered struct {
	opts Options
	// static holds repository-wide sources, lowest precedence first.
	static []*source
	// dirCache maps repository-relative directories to their rule source.
	dirCache map[string]*source
}

// NewLayered builds a resolver over the configured rule sources.
// Repository-wide sources load eagerly so corrupt files fail before any
// path is evaluated.
func NewLayered(opts Options) (*Layered, error) {
	l := &Layered{
		opts:     opts,
		dirCache: make(map[string]*source),
	}

	logger := logging.GetLogger("exclude")
	for _, file := range []string{opts.GlobalFile, opts.InfoExclude} {
		if file == "" {
			continue
		}
		src, err := l.loadFile(file, sourceLabel(opts.Root, file), "")
		if err != nil {
			return nil, err
		}
		if src.matcher == nil {
			logger.Debug().Str("file", file).Msg("Rule source absent")
			continue
		}
		l.static = append(l.static, src)
	}

	return l, nil
}

// Match implements Resolver. Sources are consulted lowest precedence
// first and the last source reporting a match wins; within one source
// the engine already applies last-line-wins.
func (l *Layered) Match(rel string, isDir func(string) bool) (*MatchedRule, error) {
	pathIsDir := isDir(rel)

	var best *MatchedRule
	for _, src := range l.static {
		apply(src, rel, pathIsDir, &best)
	}

	for _, dir := range dirChain(rel) {
		src, err := l.dirSource(dir)
		if err != nil {
			return nil, err
		}
		if src == nil || src.matcher == nil {
			continue
		}
		apply(src, rel, pathIsDir, &best)
	}

	return best, nil
}

// apply evaluates one source and replaces best on a match.
func apply(src *source, rel string, isDir bool, best **MatchedRule) {
	candidate := rel
	if src.prefix != "" {
		// A directory's rule file governs paths below it, not the
		// directory itself.
		if rel == src.prefix {
			return
		}
		candidate = strings.TrimPrefix(rel, src.prefix+"/")
		if candidate == rel {
			return
		}
	}

	decision := src.matcher.Decide(candidate, isDir)
	if !decision.Matched {
		return
	}

	rule := src.lines[decision.RuleIndex]
	*best = &MatchedRule{
		Source:  src.label,
		Line:    rule.line,
		Pattern: rule.pattern,
		Negated: rule.negated,
		DirOnly: rule.dirOnly,
	}
}

// dirSource returns the cached rule source for one repository-relative
// directory, loading it on first use.
func (l *Layered) dirSource(dir string) (*source, error) {
	if src, ok := l.dirCache[dir]; ok {
		return src, nil
	}

	file := filepath.Join(l.opts.Root, filepath.FromSlash(dir), ignoreFileName)
	label := ignoreFileName
	if dir != "" {
		label = dir + "/" + ignoreFileName
	}

	src, err := l.loadFile(file, label, dir)
	if err != nil {
		return nil, err
	}

	l.dirCache[dir] = src
	return src, nil
}

// loadFile parses and compiles one rule file. A missing file yields a
// source with a nil matcher; any other failure is fatal.
func (l *Layered) loadFile(file, label, prefix string) (*source, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return &source{label: label, prefix: prefix}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrRuleSourceLoad, "cannot read %s", file)
	}

	lines, rules, err := parseSource(bytes.NewReader(content))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleSourceLoad, "cannot parse %s", file)
	}

	matcher, err := pathrules.NewMatcher(rules, pathrules.MatcherOptions{
		CaseInsensitive: l.opts.IgnoreCase,
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleSourceLoad, "cannot compile %s", file)
	}

	logger := logging.GetLogger("exclude")
	logger.Debug().
		Str("file", file).
		Int("rules", len(rules)).
		Msg("Rule source loaded")

	return &source{
		label:   label,
		prefix:  prefix,
		matcher: matcher,
		lines:   lines,
	}, nil
}

// dirChain lists the directories whose rule files govern rel, shallowest
// first: the root, then each leading directory.
func dirChain(rel string) []string {
	dirs := []string{""}
	for i := 0; i < len(rel); i++ {
		if rel[i] == '/' {
			dirs = append(dirs, rel[:i])
		}
	}
	return dirs
}

// sourceLabel renders a rule file path relative to the work tree when
// possible, mirroring how repository tooling names its rule lists.
func sourceLabel(root, file string) string {
	rel, err := filepath.Rel(root, file)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return file
	}
	return filepath.ToSlash(rel)
}
