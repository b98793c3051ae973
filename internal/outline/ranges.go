package outline

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/mvp-joe/pyoutline/internal/parser"
)

// CollectBodyRanges records the body range of every function and method in
// the tree, at any nesting depth. It must run on the tree as parsed.
func CollectBodyRanges(root *sitter.Node) []BodyRange {
	var ranges []BodyRange
	parser.Walk(root, func(n *sitter.Node) bool {
		if n.Kind() != parser.KindFunctionDefinition {
			return true
		}
		if r, ok := bodyRange(n); ok {
			ranges = append(ranges, r)
		}
		return true
	})
	return ranges
}

// bodyRange spans from the first body statement to the end of the last one.
// Functions without a body node are skipped.
func bodyRange(fn *sitter.Node) (BodyRange, bool) {
	body := fn.ChildByFieldName("body")
	if body == nil {
		return BodyRange{}, false
	}

	stmts := parser.Statements(body)
	if len(stmts) == 0 {
		return BodyRange{
			Start: parser.StartLine(fn) + 1,
			End:   parser.EndLine(fn),
		}, true
	}

	return BodyRange{
		Start: parser.StartLine(stmts[0]),
		End:   parser.EndLine(stmts[len(stmts)-1]),
	}, true
}
