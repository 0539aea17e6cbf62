package checkignore

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pst966/git/pkg/errors"
	"github.com/pst966/git/pkg/quote"
)

// Encoder renders (path, outcome) pairs in the configured encoding.
// Quiet mode is handled by the caller; the encoder only branches on
// Verbose and NullTerm.
type Encoder struct {
	w    *bufio.Writer
	opts Options
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer, opts Options) *Encoder {
	return &Encoder{
		w:    bufio.NewWriter(w),
		opts: opts,
	}
}

// Encode writes the output record for one evaluated path. Paths with no
// matched rule produce output only when NonMatching is set; a matched
// rule is always written.
func (e *Encoder) Encode(path string, outcome Outcome) error {
	rule := outcome.Rule
	if rule == nil && !e.opts.NonMatching {
		return nil
	}

	bang := ""
	slash := ""
	if rule != nil && rule.Negated {
		bang = "!"
	}
	if rule != nil && rule.DirOnly {
		slash = "/"
	}

	var err error
	switch {
	case !e.opts.NullTerm && !e.opts.Verbose:
		_, err = fmt.Fprintf(e.w, "%s\n", quote.Quote(path))

	case !e.opts.NullTerm:
		if rule != nil {
			_, err = fmt.Fprintf(e.w, "%s:%d:%s%s%s\t%s\n",
				quote.Quote(rule.Source), rule.Line,
				bang, rule.Pattern, slash,
				quote.QuoteAlways(path))
		} else {
			_, err = fmt.Fprintf(e.w, "::\t%s\n", quote.QuoteAlways(path))
		}

	case !e.opts.Verbose:
		_, err = fmt.Fprintf(e.w, "%s\x00", path)

	default:
		if rule != nil {
			_, err = fmt.Fprintf(e.w, "%s\x00%d\x00%s%s%s\x00%s\x00",
				rule.Source, rule.Line, bang, rule.Pattern, slash, path)
		} else {
			_, err = fmt.Fprintf(e.w, "\x00\x00\x00%s\x00", path)
		}
	}

	if err != nil {
		return errors.Wrap(err, errors.ErrIO, "check-ignore to stdout")
	}
	return nil
}

// Flush forces buffered output out; a failure is a fatal I/O error.
func (e *Encoder) Flush() error {
	if err := e.w.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrIO, "check-ignore to stdout")
	}
	return nil
}
