package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Node kinds of the tree-sitter Python grammar the outliner cares about.
const (
	KindModule              = "module"
	KindClassDefinition     = "class_definition"
	KindFunctionDefinition  = "function_definition"
	KindDecoratedDefinition = "decorated_definition"
	KindDecorator           = "decorator"
	KindExpressionStatement = "expression_statement"
	KindString              = "string"
	KindConcatenatedString  = "concatenated_string"
	KindComment             = "comment"
)

// Text extracts the source text of a node.
func Text(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// StartLine returns the 1-based line a node starts on.
func StartLine(node *sitter.Node) int {
	return int(node.StartPosition().Row) + 1
}

// EndLine returns the 1-based line a node ends on. A node whose span stops
// at column 0 of a later row ends on the line before.
func EndLine(node *sitter.Node) int {
	end := node.EndPosition()
	if end.Column == 0 && end.Row > node.StartPosition().Row {
		return int(end.Row)
	}
	return int(end.Row) + 1
}

// Walk recursively walks a tree and calls visit for each node.
// Children are skipped when visit returns false.
func Walk(node *sitter.Node, visit func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		Walk(node.Child(i), visit)
	}
}

// Statements returns the named children of a module or block, minus comments.
func Statements(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	var stmts []*sitter.Node
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil || child.Kind() == KindComment {
			continue
		}
		stmts = append(stmts, child)
	}
	return stmts
}

// Decorators returns the decorator children of a decorated_definition.
func Decorators(node *sitter.Node) []*sitter.Node {
	var decorators []*sitter.Node
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child != nil && child.Kind() == KindDecorator {
			decorators = append(decorators, child)
		}
	}
	return decorators
}

// IsAsync reports whether a function_definition carries the async keyword.
func IsAsync(node *sitter.Node) bool {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "async":
			return true
		case "def":
			return false
		}
	}
	return false
}

// TextWithoutComments extracts the source text of a node with every comment
// below it removed. A line left holding only the removed comment is dropped
// along with its line break.
func TextWithoutComments(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	start, end := int(node.StartByte()), int(node.EndByte())

	var cuts [][2]int
	Walk(node, func(n *sitter.Node) bool {
		if n.Kind() != KindComment {
			return true
		}
		from, to := int(n.StartByte()), int(n.EndByte())
		for from > start && (source[from-1] == ' ' || source[from-1] == '\t') {
			from--
		}
		if from > start && source[from-1] == '\n' {
			if to < end && source[to] == '\r' {
				to++
			}
			if to < end && source[to] == '\n' {
				to++
			}
		}
		cuts = append(cuts, [2]int{from, to})
		return false
	})
	if len(cuts) == 0 {
		return string(source[start:end])
	}

	var b strings.Builder
	pos := start
	for _, cut := range cuts {
		if cut[0] > pos {
			b.Write(source[pos:cut[0]])
		}
		if cut[1] > pos {
			pos = cut[1]
		}
	}
	if pos < end {
		b.Write(source[pos:end])
	}
	return b.String()
}
