package parser

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// SyntaxError reports source that is not valid Python.
// Line and Column are 1-based and point at the offending node. Msg is empty
// for plain parse failures, which read as "invalid syntax".
type SyntaxError struct {
	Line   int
	Column int
	Near   string
	Msg    string
}

func (e *SyntaxError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "invalid syntax"
	}
	if e.Near == "" {
		return fmt.Sprintf("%s (line %d, column %d)", msg, e.Line, e.Column)
	}
	return fmt.Sprintf("%s (line %d, column %d) near %q", msg, e.Line, e.Column, e.Near)
}

// Tree is a parsed Python module. It must be closed after use.
type Tree struct {
	tree   *sitter.Tree
	source []byte
}

// Root returns the module node.
func (t *Tree) Root() *sitter.Node {
	return t.tree.RootNode()
}

// Source returns the bytes the tree was parsed from.
func (t *Tree) Source() []byte {
	return t.source
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

// PythonParser parses Python source into tree-sitter syntax trees.
type PythonParser struct {
	language *sitter.Language
}

// NewPythonParser creates a new Python parser.
func NewPythonParser() *PythonParser {
	return &PythonParser{
		language: sitter.NewLanguage(python.Language()),
	}
}

// Parse parses source and rejects it with a *SyntaxError if tree-sitter had
// to recover from any error, or if the tree holds a construct the grammar
// accepts but Python does not.
func (p *PythonParser) Parse(source []byte) (*Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(p.language); err != nil {
		return nil, fmt.Errorf("failed to load python grammar: %w", err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse python source")
	}

	root := tree.RootNode()
	if root.HasError() {
		err := syntaxErrorAt(root, source)
		tree.Close()
		return nil, err
	}
	if err := checkTree(root, source); err != nil {
		tree.Close()
		return nil, err
	}

	return &Tree{tree: tree, source: source}, nil
}

// syntaxErrorAt locates the first ERROR or MISSING node below root.
func syntaxErrorAt(root *sitter.Node, source []byte) *SyntaxError {
	var bad *sitter.Node
	Walk(root, func(n *sitter.Node) bool {
		if bad != nil {
			return false
		}
		if n.IsError() || n.IsMissing() {
			bad = n
			return false
		}
		return n.HasError()
	})
	if bad == nil {
		bad = root
	}

	pos := bad.StartPosition()
	near := ""
	if bad.IsMissing() {
		near = bad.Kind()
	} else {
		near = firstLine(Text(bad, source))
	}
	return &SyntaxError{
		Line:   int(pos.Row) + 1,
		Column: int(pos.Column) + 1,
		Near:   near,
	}
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' || s[i] == '\r' {
			return s[:i]
		}
	}
	return s
}
