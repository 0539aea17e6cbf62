package checkignore

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/pst966/git/pkg/errors"
	"github.com/pst966/git/pkg/exclude"
	"github.com/pst966/git/pkg/index"
	"github.com/pst966/git/pkg/logging"
	"github.com/pst966/git/pkg/pathspec"
)

// Runner evaluates path arguments in input order and writes one output
// record per input (or none for suppressed non-matches). It accumulates
// the ignored count that decides the process exit status.
type Runner struct {
	opts    Options
	paths   *pathspec.Resolver
	idx     index.Index
	rules   exclude.Resolver
	enc     *Encoder
	dirType func(string) bool
	logger  zerolog.Logger
}

// NewRunner wires a Runner over the collaborators for one run. dirType
// answers directory-type questions and is expected to memoize within
// the run.
func NewRunner(opts Options, paths *pathspec.Resolver, idx index.Index, rules exclude.Resolver, out io.Writer, dirType func(string) bool) *Runner {
	return &Runner{
		opts:    opts,
		paths:   paths,
		idx:     idx,
		rules:   rules,
		enc:     NewEncoder(out, opts),
		dirType: dirType,
		logger:  logging.GetLogger("checkignore"),
	}
}

// Run evaluates the argument vector and returns the number of paths a
// rule matched. Output is flushed before returning, also on a fatal
// mid-batch error, so records already produced reach the consumer.
func (r *Runner) Run(args []string, prefix string) (int, error) {
	count, err := r.runBatch(args, prefix)
	if ferr := r.enc.Flush(); err == nil {
		err = ferr
	}
	return count, err
}

// runBatch is the shared per-path pipeline used by both the one-shot
// and the stream mode.
func (r *Runner) runBatch(args []string, prefix string) (int, error) {
	if len(args) == 0 {
		if r.opts.Quiet {
			return 0, nil
		}
		return 0, errors.New(errors.ErrNoPathspec, "no pathspec given")
	}

	resolved := make([]string, len(args))
	for i, arg := range args {
		rel, err := r.paths.Resolve(arg, prefix)
		if err != nil {
			return 0, err
		}
		resolved[i] = rel
	}

	// One bulk pass over the tracked-path registry for the whole batch.
	seen, err := r.idx.Seen(resolved)
	if err != nil {
		return 0, err
	}

	count := 0
	for i, arg := range args {
		rel := resolved[i]
		if err := r.paths.CheckSymlinkBoundary(rel); err != nil {
			return count, err
		}

		outcome := noRuleOutcome()
		if seen[i] {
			// Tracked paths are never ignored; the resolver is not consulted.
			outcome = trackedOutcome()
		} else {
			rule, err := r.rules.Match(rel, r.dirType)
			if err != nil {
				return count, err
			}
			if rule != nil {
				outcome = ruleOutcome(rule)
			}
		}

		r.logger.Debug().
			Str("path", arg).
			Str("resolved", rel).
			Int("kind", int(outcome.Kind)).
			Msg("Path evaluated")

		if !r.opts.Quiet {
			if err := r.enc.Encode(arg, outcome); err != nil {
				return count, err
			}
		}
		if outcome.Ignored() {
			count++
		}
	}

	return count, nil
}
