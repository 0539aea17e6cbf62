package exclude

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/pathrules"
)

func TestParseSource(t *testing.T) {
	input := strings.Join([]string{
		"# build artifacts",
		"*.o",
		"",
		"!keep.o",
		"build/",
		`\#literal`,
		`\!literal`,
		"trailing.txt   ",
		"/",
	}, "\n")

	lines, rules, err := parseSource(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, lines, 6)
	require.Len(t, rules, 6)

	assert.Equal(t, ruleLine{line: 2, pattern: "*.o"}, lines[0])
	assert.Equal(t, ruleLine{line: 4, pattern: "keep.o", negated: true}, lines[1])
	assert.Equal(t, ruleLine{line: 5, pattern: "build", dirOnly: true}, lines[2])
	assert.Equal(t, ruleLine{line: 6, pattern: "#literal"}, lines[3])
	assert.Equal(t, ruleLine{line: 7, pattern: "!literal"}, lines[4])
	assert.Equal(t, ruleLine{line: 8, pattern: "trailing.txt"}, lines[5])

	// Rules handed to the engine keep the trailing slash and carry the action.
	assert.Equal(t, "build/", rules[2].Pattern)
	assert.Equal(t, pathrules.ActionInclude, rules[1].Action)
	assert.Equal(t, pathrules.ActionExclude, rules[0].Action)
}

func TestParseSourceCRLF(t *testing.T) {
	lines, _, err := parseSource(strings.NewReader("*.log\r\n!important.log\r\n"))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "*.log", lines[0].pattern)
	assert.Equal(t, "important.log", lines[1].pattern)
}

func TestParseSourceEmpty(t *testing.T) {
	lines, rules, err := parseSource(strings.NewReader("\n# only a comment\n\n"))
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Empty(t, rules)
}

func TestTrimTrailingSpace(t *testing.T) {
	assert.Equal(t, "a", trimTrailingSpace("a   "))
	assert.Equal(t, "a ", trimTrailingSpace(`a\ `))
	assert.Equal(t, "", trimTrailingSpace("   "))
	assert.Equal(t, "a\tb", trimTrailingSpace("a\tb\t"))
}
