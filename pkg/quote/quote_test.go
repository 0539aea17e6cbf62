package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pst966/git/pkg/errors"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain path stays unquoted", "build/output.o", "build/output.o"},
		{"space alone does not trigger quoting", "a b", "a b"},
		{"embedded quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"tab", "a\tb", `"a\tb"`},
		{"newline", "a\nb", `"a\nb"`},
		{"control byte octal", "a\x01b", `"a\001b"`},
		{"del byte", "a\x7fb", `"a\177b"`},
		{"non-ascii bytes", "caf\xc3\xa9", `"caf\303\251"`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.in))
		})
	}
}

func TestQuoteAlways(t *testing.T) {
	assert.Equal(t, `"plain"`, QuoteAlways("plain"))
	assert.Equal(t, `""`, QuoteAlways(""))
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", `"quoted path"`, "quoted path"},
		{"escaped quote", `"say \"hi\""`, `say "hi"`},
		{"escaped backslash", `"a\\b"`, `a\b`},
		{"named escapes", `"a\tb\nc"`, "a\tb\nc"},
		{"three digit octal", `"a\001b"`, "a\x01b"},
		{"short octal stops at non digit", `"a\1b"`, "a\x01b"},
		{"high octal", `"\303\251"`, "\xc3\xa9"},
		{"empty", `""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unquote(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnquoteErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"no leading quote", `plain`},
		{"missing closing quote", `"open`},
		{"trailing garbage", `"done"tail`},
		{"dangling backslash", `"a\`},
		{"unknown escape", `"a\qb"`},
		{"octal out of range", `"\777"`},
		{"too short", `"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unquote(tt.in)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrBadlyQuoted))
		})
	}
}

// Paths written through the quoting encoder and read back through stdin
// unquoting must reproduce the original bytes exactly.
func TestQuoteUnquoteRoundTrip(t *testing.T) {
	paths := []string{
		"simple.txt",
		"with space.txt",
		`quotes "inside".txt`,
		"tab\there",
		"newline\nhere",
		"ctrl\x01\x02\x03",
		"utf8 \xc3\xa9\xe2\x82\xac",
		"back\\slash",
		"\x7f\x80\xff",
	}

	for _, p := range paths {
		got, err := Unquote(QuoteAlways(p))
		require.NoError(t, err, "path %q", p)
		assert.Equal(t, p, got, "round trip for %q", p)
	}
}
