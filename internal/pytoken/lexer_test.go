package pytoken

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Comments:
// - Plain comments report 1-based line, 0-based column, token and line text
// - '#' inside single, triple-quoted and prefixed strings is not a comment
// - f-string replacement fields, format specs and nested quotes
// - Escaped quotes and doubled braces
// - CRLF line endings
// - Columns count characters, not bytes
// - Unterminated strings are errors

func TestComments_Positions(t *testing.T) {
	t.Parallel()

	src := "# top\ndef f():\n    # inner\n    return 1  # trailing\n"
	comments, err := Comments([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, []Comment{
		{Line: 1, Column: 0, Text: "# top", LineText: "# top"},
		{Line: 3, Column: 4, Text: "# inner", LineText: "    # inner"},
		{Line: 4, Column: 14, Text: "# trailing", LineText: "    return 1  # trailing"},
	}, comments)
}

func TestComments_IgnoresHashInStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		texts []string
	}{
		{name: "double quoted", src: `x = "# not a comment"  # real`, texts: []string{"# real"}},
		{name: "single quoted", src: `x = '#'`, texts: nil},
		{name: "triple quoted", src: "s = \"\"\"\n# inside\n\"\"\"\n# outside\n", texts: []string{"# outside"}},
		{name: "triple single", src: "s = '''a ' # b '' c'''\n", texts: nil},
		{name: "raw bytes", src: `p = rb'#\d+'  # pattern`, texts: []string{"# pattern"}},
		{name: "escaped quote", src: `s = "a\"#"  # c`, texts: []string{"# c"}},
		{name: "f-string format spec", src: `s = f"{x:#x}"  # hex`, texts: []string{"# hex"}},
		{name: "f-string nested quotes", src: `s = f"{d['#']}"`, texts: nil},
		{name: "f-string doubled braces", src: `s = f"{{#}}"  # c`, texts: []string{"# c"}},
		{name: "f-string nested field in spec", src: `s = f"{x:{width}}"  # c`, texts: []string{"# c"}},
		{name: "f-string dict literal", src: `s = f"{ {'#': 1}['#'] }"  # c`, texts: []string{"# c"}},
		{name: "identifier ending in prefix letter", src: `rf = 1  # c`, texts: []string{"# c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			comments, err := Comments([]byte(tt.src))
			require.NoError(t, err)

			var texts []string
			for _, c := range comments {
				texts = append(texts, c.Text)
			}
			assert.Equal(t, tt.texts, texts)
		})
	}
}

func TestComments_CRLF(t *testing.T) {
	t.Parallel()

	comments, err := Comments([]byte("a = 1\r\n# c\r\nb = 2\r\n"))
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, Comment{Line: 2, Column: 0, Text: "# c", LineText: "# c"}, comments[0])
}

func TestComments_ColumnsCountCharacters(t *testing.T) {
	t.Parallel()

	comments, err := Comments([]byte("s = \"é\"  # c\n"))
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, 9, comments[0].Column)
}

func TestComments_LineContinuationInTripleString(t *testing.T) {
	t.Parallel()

	src := "s = \"\"\"one\ntwo\nthree\"\"\"\n# after\n"
	comments, err := Comments([]byte(src))
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, 4, comments[0].Line)
}

func TestComments_Unterminated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		msg  string
		line int
		col  int
	}{
		{name: "single line", src: "s = \"abc\n", msg: "unterminated string literal", line: 1, col: 4},
		{name: "at end of file", src: "s = 'abc", msg: "unterminated string literal", line: 1, col: 4},
		{name: "triple quoted", src: "x = 1\ns = \"\"\"abc\n", msg: "unterminated triple-quoted string literal", line: 2, col: 4},
		{name: "prefixed", src: "s = rb'abc\n", msg: "unterminated string literal", line: 1, col: 4},
		{name: "f-string field", src: "s = f\"{x", msg: "f-string: expecting '}'", line: 1, col: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Comments([]byte(tt.src))
			require.Error(t, err)

			var lexErr *Error
			require.True(t, errors.As(err, &lexErr))
			assert.Equal(t, tt.msg, lexErr.Msg)
			assert.Equal(t, tt.line, lexErr.Line)
			assert.Equal(t, tt.col, lexErr.Column)
		})
	}
}
