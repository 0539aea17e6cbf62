package exclude

import (
	"bufio"
	"io"
	"strings"

	"github.com/woozymasta/pathrules"

	"github.com/pst966/git/pkg/errors"
)

// ruleLine is one parsed rule with its provenance inside a source.
type ruleLine struct {
	// line is the 1-based source line number.
	line int
	// pattern is the rule text without "!" and trailing "/".
	pattern string
	negated bool
	dirOnly bool
}

// parseSource reads one ignore file, keeping per-rule provenance
// alongside the rule list handed to the matching engine. The two
// returned slices are parallel.
func parseSource(r io.Reader) ([]ruleLine, []pathrules.Rule, error) {
	var lines []ruleLine
	var rules []pathrules.Rule

	s := bufio.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSuffix(s.Text(), "\r")
		line = trimTrailingSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, `\#`) {
			line = line[1:]
		}

		negated := false
		if strings.HasPrefix(line, "!") {
			negated = true
			line = line[1:]
		} else if strings.HasPrefix(line, `\!`) {
			line = line[1:]
		}

		// Lines that are all slashes cannot match anything.
		if strings.Trim(line, "/") == "" {
			continue
		}

		dirOnly := strings.HasSuffix(line, "/")

		action := pathrules.ActionExclude
		if negated {
			action = pathrules.ActionInclude
		}
		rules = append(rules, pathrules.Rule{
			Pattern: line,
			Action:  action,
		})

		lines = append(lines, ruleLine{
			line:    lineNo,
			pattern: strings.TrimSuffix(line, "/"),
			negated: negated,
			dirOnly: dirOnly,
		})
	}
	if err := s.Err(); err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrRuleSourceLoad, "scan rules")
	}

	return lines, rules, nil
}

// trimTrailingSpace removes trailing spaces unless escaped by a backslash.
func trimTrailingSpace(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			return s[:len(s)-2] + s[len(s)-1:]
		}
		s = s[:len(s)-1]
	}
	return s
}
