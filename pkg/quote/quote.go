// Package quote implements the C-style path quoting convention used on
// the tool's text output and accepted on its stdin: paths containing
// special bytes are wrapped in double quotes with control, quote,
// backslash and non-ASCII bytes escaped (named escapes where they
// exist, three-digit octal otherwise).
package quote

import (
	"strings"

	"github.com/pst966/git/pkg/errors"
)

const octalDigits = "01234567"

// escapes maps bytes with a named C escape to their mnemonic.
var escapes = map[byte]byte{
	'\a': 'a',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\v': 'v',
	'\\': '\\',
	'"':  '"',
}

// unescapes is the inverse of escapes.
var unescapes = map[byte]byte{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\\': '\\',
	'"':  '"',
}

// needsQuoting reports whether b forces the whole string into quoted form.
func needsQuoting(b byte) bool {
	if _, ok := escapes[b]; ok {
		return true
	}
	return b < 0x20 || b == 0x7f || b >= 0x80
}

// Quote returns s in C-quoted form when it contains special bytes,
// otherwise s unchanged.
func Quote(s string) string {
	for i := 0; i < len(s); i++ {
		if needsQuoting(s[i]) {
			return QuoteAlways(s)
		}
	}
	return s
}

// QuoteAlways returns s wrapped in double quotes with all special bytes escaped.
func QuoteAlways(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if esc, ok := escapes[c]; ok {
			b.WriteByte('\\')
			b.WriteByte(esc)
			continue
		}
		if c < 0x20 || c == 0x7f || c >= 0x80 {
			b.WriteByte('\\')
			b.WriteByte(octalDigits[c>>6])
			b.WriteByte(octalDigits[(c>>3)&7])
			b.WriteByte(octalDigits[c&7])
			continue
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

// Unquote parses a C-quoted string back to its raw byte form. The input
// must begin and end with a double quote with no trailing garbage.
func Unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' {
		return "", errors.Newf(errors.ErrBadlyQuoted, "not a quoted string: %q", s)
	}

	var b strings.Builder
	b.Grow(len(s))
	i := 1
	for i < len(s) {
		c := s[i]
		switch c {
		case '"':
			if i != len(s)-1 {
				return "", errors.Newf(errors.ErrBadlyQuoted, "trailing garbage after closing quote: %q", s)
			}
			return b.String(), nil
		case '\\':
			i++
			if i >= len(s) {
				return "", errors.Newf(errors.ErrBadlyQuoted, "dangling backslash: %q", s)
			}
			e := s[i]
			if raw, ok := unescapes[e]; ok {
				b.WriteByte(raw)
				i++
				continue
			}
			if e >= '0' && e <= '7' {
				val := 0
				n := 0
				for n < 3 && i < len(s) && s[i] >= '0' && s[i] <= '7' {
					val = val<<3 | int(s[i]-'0')
					i++
					n++
				}
				if val > 0xff {
					return "", errors.Newf(errors.ErrBadlyQuoted, "octal escape out of range: %q", s)
				}
				b.WriteByte(byte(val))
				continue
			}
			return "", errors.Newf(errors.ErrBadlyQuoted, "unknown escape %q in %q", e, s)
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", errors.Newf(errors.ErrBadlyQuoted, "missing closing quote: %q", s)
}
