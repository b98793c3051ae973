package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/pyoutline/internal/parser"
	"github.com/mvp-joe/pyoutline/internal/pytoken"
)

// Test Plan for body ranges and kept comments:
// - Ranges cover first to last body statement of every function and method
// - Nested functions get their own range, in pre-order
// - Docstrings are part of the range
// - Comments at column 0 outside every range are kept in source order
// - Indented comments and comments inside a range are dropped

func parseTree(t *testing.T, src string) *parser.Tree {
	t.Helper()
	tree, err := parser.NewPythonParser().Parse([]byte(src))
	require.NoError(t, err)
	t.Cleanup(tree.Close)
	return tree
}

func TestCollectBodyRanges(t *testing.T) {
	t.Parallel()

	src := `def outer():
    def inner():
        return 1
    return inner


class C:
    def m(self):
        """Doc."""
        pass

    x = 1
`
	tree := parseTree(t, src)

	ranges := CollectBodyRanges(tree.Root())
	assert.Equal(t, []BodyRange{
		{Start: 2, End: 4},
		{Start: 3, End: 3},
		{Start: 9, End: 10},
	}, ranges)
}

func TestCollectBodyRanges_NoFunctions(t *testing.T) {
	t.Parallel()

	tree := parseTree(t, "import os\nclass C:\n    x = 1\n")
	assert.Empty(t, CollectBodyRanges(tree.Root()))
}

func TestCollectBodyRanges_TrailingCommentNotInRange(t *testing.T) {
	t.Parallel()

	src := `def f():
    return 1
    # trailing


def g():
    pass
`
	tree := parseTree(t, src)
	assert.Equal(t, []BodyRange{{Start: 2, End: 2}, {Start: 7, End: 7}}, CollectBodyRanges(tree.Root()))
}

func TestBodyRange_Contains(t *testing.T) {
	t.Parallel()

	r := BodyRange{Start: 3, End: 5}
	assert.False(t, r.Contains(2))
	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(6))
}

func TestKeptComments(t *testing.T) {
	t.Parallel()

	src := `# first
def f():
    # indented
    x = 1
# inside body
    return x
# between

class C:  # trailing
    pass
# last
`
	tree := parseTree(t, src)
	ranges := CollectBodyRanges(tree.Root())

	comments, err := pytoken.Comments([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"# first", "# between", "# last"}, KeptComments(comments, ranges))
}

func TestKeptComments_NoRanges(t *testing.T) {
	t.Parallel()

	comments := []pytoken.Comment{
		{Line: 1, Column: 0, Text: "# a", LineText: "# a"},
		{Line: 2, Column: 4, Text: "# b", LineText: "    # b"},
		{Line: 3, Column: 0, Text: "#!", LineText: "#!"},
	}
	assert.Equal(t, []string{"# a", "#!"}, KeptComments(comments, nil))
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "def f():", Assemble(nil, "def f():"))
	assert.Equal(t, "# a\n# b\n\ndef f():", Assemble([]string{"# a", "# b"}, "def f():"))
	assert.Equal(t, "# a\n\n", Assemble([]string{"# a"}, ""))
}
