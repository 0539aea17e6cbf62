// Package checkignore evaluates path arguments against the layered
// ignore machinery and renders one output record per input in the
// configured encoding. It is the orchestration core behind the
// check-ignore command.
package checkignore

import (
	"github.com/pst966/git/pkg/errors"
)

// Options is the run configuration, fixed before any path is evaluated.
type Options struct {
	// Quiet suppresses all output; only the exit status remains.
	Quiet bool
	// Verbose adds rule provenance to each output record.
	Verbose bool
	// NonMatching also emits records for paths no rule matched.
	// Meaningful only with Verbose.
	NonMatching bool
	// Stdin reads paths from standard input instead of arguments.
	Stdin bool
	// NullTerm switches stdin records and output records to NUL
	// termination. Meaningful only with Stdin.
	NullTerm bool
}

// Validate checks the option combination against the number of path
// arguments. It must be called before any evaluation; a violation
// aborts the run with no output produced.
func (o Options) Validate(nargs int) error {
	if o.Stdin {
		if nargs > 0 {
			return errors.New(errors.ErrConfigInvalid, "cannot specify pathnames with --stdin")
		}
	} else {
		if o.NullTerm {
			return errors.New(errors.ErrConfigInvalid, "-z only makes sense with --stdin")
		}
		if nargs == 0 {
			return errors.New(errors.ErrConfigInvalid, "no path specified")
		}
	}
	if o.Quiet {
		if nargs > 1 {
			return errors.New(errors.ErrConfigInvalid, "--quiet is only valid with a single pathname")
		}
		if o.Verbose {
			return errors.New(errors.ErrConfigInvalid, "cannot have both --quiet and --verbose")
		}
	}
	if o.NonMatching && !o.Verbose {
		return errors.New(errors.ErrConfigInvalid, "--non-matching is only valid with --verbose")
	}
	return nil
}
