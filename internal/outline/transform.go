package outline

import (
	"regexp"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/mvp-joe/pyoutline/internal/parser"
)

// scope is where a definition sits; it decides which definitions survive.
type scope int

const (
	moduleScope scope = iota
	classScope
)

// Transform reduces a parsed module to its outline. It reads the tree and
// builds new nodes, so the tree and the body ranges taken from it stay valid.
func Transform(root *sitter.Node, source []byte) *Module {
	stmts := parser.Statements(root)
	m := &Module{Doc: docstring(stmts, source, false)}
	for _, n := range stmts {
		if s := transform(n, source, moduleScope); s != nil {
			m.Body = append(m.Body, s)
		}
	}
	return m
}

// transform returns the outline of a statement, or nil when the statement is
// dropped.
func transform(n *sitter.Node, source []byte, sc scope) Stmt {
	switch n.Kind() {
	case parser.KindFunctionDefinition:
		return transformFunction(n, source)
	case parser.KindClassDefinition:
		// Nested classes are dropped along with other class attributes.
		if sc != moduleScope {
			return nil
		}
		return transformClass(n, source)
	case parser.KindDecoratedDefinition:
		def := n.ChildByFieldName("definition")
		if def == nil {
			return nil
		}
		s := transform(def, source, sc)
		if s == nil {
			return nil
		}
		decorators := decoratorTexts(n, source)
		switch s := s.(type) {
		case *Function:
			s.Decorators = decorators
		case *Class:
			s.Decorators = decorators
		}
		return s
	default:
		return nil
	}
}

func transformClass(n *sitter.Node, source []byte) *Class {
	var header strings.Builder
	header.WriteString("class ")
	header.WriteString(parser.Text(n.ChildByFieldName("name"), source))
	header.WriteString(parser.TextWithoutComments(n.ChildByFieldName("type_parameters"), source))
	header.WriteString(parser.TextWithoutComments(n.ChildByFieldName("superclasses"), source))
	header.WriteString(":")

	stmts := parser.Statements(n.ChildByFieldName("body"))
	c := &Class{
		Header: header.String(),
		Doc:    docstring(stmts, source, false),
	}
	for _, child := range stmts {
		if s := transform(child, source, classScope); s != nil {
			c.Body = append(c.Body, s)
		}
	}
	return c
}

func transformFunction(n *sitter.Node, source []byte) *Function {
	var header strings.Builder
	if parser.IsAsync(n) {
		header.WriteString("async ")
	}
	header.WriteString("def ")
	header.WriteString(parser.Text(n.ChildByFieldName("name"), source))
	header.WriteString(parser.TextWithoutComments(n.ChildByFieldName("type_parameters"), source))
	header.WriteString(parser.TextWithoutComments(n.ChildByFieldName("parameters"), source))
	if ret := n.ChildByFieldName("return_type"); ret != nil {
		header.WriteString(" -> ")
		header.WriteString(parser.TextWithoutComments(ret, source))
	}
	header.WriteString(":")

	return &Function{
		Header:      header.String(),
		TypeComment: typeComment(n, source),
		Doc:         docstring(parser.Statements(n.ChildByFieldName("body")), source, true),
	}
}

var typeCommentPattern = regexp.MustCompile(`^#[ \t]*type:[ \t]*(.*?)[ \t]*$`)

// typeComment returns the text after "# type:" of the comment that types a
// function, or "". A "# type: ignore" on the def line, or right after the
// colon, wins over a signature comment. A signature comment is the first
// other type comment between the colon and the first body statement.
// Type comments inside the parameter list are dropped.
func typeComment(fn *sitter.Node, source []byte) string {
	stmts := parser.Statements(fn.ChildByFieldName("body"))
	if len(stmts) == 0 {
		return ""
	}
	bodyStart := stmts[0].StartByte()

	var colon *sitter.Node
	for i := uint(0); i < fn.ChildCount(); i++ {
		if child := fn.Child(i); child != nil && child.Kind() == ":" && child.EndByte() <= bodyStart {
			colon = child
		}
	}
	if colon == nil {
		return ""
	}
	defLine := parser.StartLine(fn)
	colonLine := parser.StartLine(colon)

	var ignore, signature string
	parser.Walk(fn, func(n *sitter.Node) bool {
		if n.StartByte() >= bodyStart {
			return false
		}
		if n.Kind() != parser.KindComment {
			return true
		}

		m := typeCommentPattern.FindStringSubmatch(parser.Text(n, source))
		if m == nil {
			return false
		}
		value := m[1]
		line := parser.StartLine(n)
		afterColon := n.StartByte() >= colon.EndByte()

		switch {
		case isTypeIgnore(value):
			if ignore == "" && (line == defLine || (afterColon && line == colonLine)) {
				ignore = value
			}
		case afterColon && signature == "":
			signature = value
		}
		return false
	})

	if ignore != "" {
		return ignore
	}
	return signature
}

// isTypeIgnore reports whether a type comment is "ignore", optionally with
// a tag such as "ignore[attr-defined]".
func isTypeIgnore(value string) bool {
	rest, ok := strings.CutPrefix(value, "ignore")
	if !ok {
		return false
	}
	if rest == "" {
		return true
	}
	c := rest[0]
	return !(c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'))
}

func decoratorTexts(n *sitter.Node, source []byte) []string {
	var decorators []string
	for _, d := range parser.Decorators(n) {
		text := strings.TrimRight(parser.TextWithoutComments(d, source), " \t\r\n")
		decorators = append(decorators, text)
	}
	return decorators
}

// docstring returns the first statement when it is a plain string literal.
// In a function body, a literal equal to the placeholder is the marker of an
// earlier outline pass, not documentation; skipMarker enables that rule.
func docstring(stmts []*sitter.Node, source []byte, skipMarker bool) *Docstring {
	if len(stmts) == 0 {
		return nil
	}
	first := stmts[0]
	if first.Kind() != parser.KindExpressionStatement || first.NamedChildCount() != 1 {
		return nil
	}

	expr := first.NamedChild(0)
	for expr != nil && expr.Kind() == "parenthesized_expression" && expr.NamedChildCount() == 1 {
		expr = expr.NamedChild(0)
	}
	if expr == nil {
		return nil
	}

	var parts []*sitter.Node
	switch expr.Kind() {
	case parser.KindString:
		parts = []*sitter.Node{expr}
	case parser.KindConcatenatedString:
		for i := uint(0); i < expr.NamedChildCount(); i++ {
			if part := expr.NamedChild(i); part.Kind() == parser.KindString {
				parts = append(parts, part)
			}
		}
	default:
		return nil
	}

	var value strings.Builder
	for _, part := range parts {
		prefix, content, ok := splitStringLiteral(parser.Text(part, source))
		if !ok || strings.ContainsAny(prefix, "fFtTbB") {
			return nil
		}
		value.WriteString(content)
	}
	if skipMarker && value.String() == Placeholder {
		return nil
	}

	return &Docstring{Literal: parser.TextWithoutComments(first, source)}
}

// splitStringLiteral splits a string literal into its prefix and the raw
// text between its quotes.
func splitStringLiteral(lit string) (prefix, content string, ok bool) {
	i := strings.IndexAny(lit, `"'`)
	if i < 0 {
		return "", "", false
	}
	prefix, body := lit[:i], lit[i:]

	quote := body[:1]
	if len(body) >= 6 && (strings.HasPrefix(body, `"""`) || strings.HasPrefix(body, `'''`)) {
		quote = body[:3]
	}
	if len(body) < 2*len(quote) || !strings.HasSuffix(body, quote) {
		return "", "", false
	}
	return prefix, body[len(quote) : len(body)-len(quote)], true
}
