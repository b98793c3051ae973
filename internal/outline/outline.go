// Package outline turns a Python module into its outline: signatures,
// docstrings and top-level comments, with every function body replaced by a
// placeholder.
//
// The pipeline runs in a fixed order on one file:
//
//	parse -> collect body ranges -> scan comments -> transform -> render
//
// Body ranges and comments are both taken from the source as written, before
// the outline is built.
package outline

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/mvp-joe/pyoutline/internal/parser"
	"github.com/mvp-joe/pyoutline/internal/pytoken"
)

// ErrInvalidEncoding is returned for source that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("source is not valid UTF-8")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Outliner builds outlines of Python source.
type Outliner interface {
	// Outline returns the outline of source.
	Outline(source []byte) (string, error)
}

type outliner struct {
	parser *parser.PythonParser
}

// New creates an Outliner backed by the tree-sitter Python grammar.
func New() Outliner {
	return &outliner{parser: parser.NewPythonParser()}
}

// Outline runs the full pipeline on source.
func (o *outliner) Outline(source []byte) (string, error) {
	if !utf8.Valid(source) {
		return "", ErrInvalidEncoding
	}
	source = bytes.TrimPrefix(source, utf8BOM)

	tree, err := o.parser.Parse(source)
	if err != nil {
		return "", err
	}
	defer tree.Close()

	root := tree.Root()
	ranges := CollectBodyRanges(root)

	tokens, err := pytoken.Comments(source)
	if err != nil {
		return "", err
	}
	comments := KeptComments(tokens, ranges)

	code := Render(Transform(root, source))
	return Assemble(comments, code), nil
}

// File reads the file at path and returns its outline. Errors name the path.
func File(o Outliner, path string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	out, err := o.Outline(source)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
