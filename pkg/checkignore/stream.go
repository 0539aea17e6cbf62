package checkignore

import (
	"bufio"
	"io"
	"strings"

	"github.com/pst966/git/pkg/errors"
	"github.com/pst966/git/pkg/quote"
)

// RunStdin evaluates one path per input record. Records are terminated
// by NUL when NullTerm is set, else by newline; newline-terminated
// records starting with a double quote are C-unquoted first. Output is
// flushed after every record so a piping consumer sees results
// incrementally. A malformed record or failed flush aborts the stream.
func (r *Runner) RunStdin(in io.Reader, prefix string) (int, error) {
	delim := byte('\n')
	if r.opts.NullTerm {
		delim = 0
	}

	reader := bufio.NewReader(in)
	count := 0
	for {
		record, err := reader.ReadString(delim)
		if err != nil && err != io.EOF {
			return count, errors.Wrap(err, errors.ErrIO, "reading pathnames from stdin")
		}
		atEOF := err == io.EOF
		if atEOF && record == "" {
			break
		}

		record = strings.TrimSuffix(record, string(delim))
		if !r.opts.NullTerm && strings.HasPrefix(record, `"`) {
			record, err = quote.Unquote(record)
			if err != nil {
				return count, errors.Wrap(err, errors.ErrBadlyQuoted, "line is badly quoted")
			}
		}

		n, err := r.runBatch([]string{record}, prefix)
		count += n
		if err != nil {
			return count, err
		}
		if err := r.enc.Flush(); err != nil {
			return count, err
		}

		if atEOF {
			break
		}
	}

	return count, nil
}
