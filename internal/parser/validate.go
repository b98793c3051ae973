package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// The grammar accepts a superset of Python 3. These checks reject the
// constructs it lets through that the Python compiler refuses.

// checkTree walks a tree that parsed without ERROR nodes and returns the
// first construct Python would reject, or nil.
func checkTree(root *sitter.Node, source []byte) *SyntaxError {
	var bad *SyntaxError
	Walk(root, func(n *sitter.Node) bool {
		if bad != nil {
			return false
		}
		bad = checkNode(n, source)
		return bad == nil
	})
	return bad
}

func checkNode(n *sitter.Node, source []byte) *SyntaxError {
	switch n.Kind() {
	case "print_statement":
		return syntaxErrorFor(n, source, "Missing parentheses in call to 'print'")
	case "exec_statement":
		return syntaxErrorFor(n, source, "Missing parentheses in call to 'exec'")
	case "parameters", "lambda_parameters":
		return checkParameters(n, source)
	case "argument_list":
		return checkArguments(n, source)
	case "for_in_clause":
		return checkForIn(n, source)
	case "augmented_assignment":
		left := n.ChildByFieldName("left")
		if left != nil && !isSingleTarget(left) {
			return syntaxErrorFor(left, source, "illegal expression for augmented assignment")
		}
	case "delete_statement":
		for _, target := range namedChildren(n) {
			if bad := checkDeleteTarget(target); bad != nil {
				return syntaxErrorFor(bad, source, "cannot delete expression")
			}
		}
	}
	return nil
}

// checkParameters enforces Python's parameter order: no non-default
// positional parameter after a default one, one star, named parameters
// after a bare star, and nothing after **kwargs.
func checkParameters(n *sitter.Node, source []byte) *SyntaxError {
	var (
		seenDefault bool
		seenStar    bool
		bareStar    *sitter.Node
		seenKwargs  bool
	)

	for _, p := range namedChildren(n) {
		kind := p.Kind()
		if kind == "typed_parameter" {
			if inner := p.NamedChild(0); inner != nil && (inner.Kind() == "list_splat_pattern" || inner.Kind() == "dictionary_splat_pattern") {
				kind = inner.Kind()
			}
		}

		if seenKwargs {
			return syntaxErrorFor(p, source, "arguments cannot follow var-keyword argument")
		}

		switch kind {
		case "identifier", "typed_parameter":
			if seenDefault && !seenStar {
				return syntaxErrorFor(p, source, "parameter without a default follows parameter with a default")
			}
			bareStar = nil
		case "default_parameter", "typed_default_parameter":
			if !seenStar {
				seenDefault = true
			}
			bareStar = nil
		case "list_splat_pattern", "keyword_separator":
			if seenStar {
				return syntaxErrorFor(p, source, "* argument may appear only once")
			}
			seenStar = true
			if kind == "keyword_separator" {
				bareStar = p
			}
		case "dictionary_splat_pattern":
			if bareStar != nil {
				return syntaxErrorFor(bareStar, source, "named arguments must follow bare *")
			}
			seenKwargs = true
		case "positional_separator":
			if seenStar {
				return syntaxErrorFor(p, source, "/ must be ahead of *")
			}
		case "tuple_pattern":
			return syntaxErrorFor(p, source, "tuple parameter unpacking is not supported")
		}
	}

	if bareStar != nil {
		return syntaxErrorFor(bareStar, source, "named arguments must follow bare *")
	}
	return nil
}

// checkArguments enforces call argument order: positional arguments before
// keyword arguments and no *x after **y.
func checkArguments(n *sitter.Node, source []byte) *SyntaxError {
	var seenKeyword, seenDoubleStar bool

	for _, a := range namedChildren(n) {
		switch a.Kind() {
		case "keyword_argument":
			seenKeyword = true
		case "dictionary_splat":
			seenDoubleStar = true
		case "list_splat":
			if seenDoubleStar {
				return syntaxErrorFor(a, source, "iterable argument unpacking follows keyword argument unpacking")
			}
		default:
			if seenDoubleStar {
				return syntaxErrorFor(a, source, "positional argument follows keyword argument unpacking")
			}
			if seenKeyword {
				return syntaxErrorFor(a, source, "positional argument follows keyword argument")
			}
		}
	}
	return nil
}

// checkForIn rejects an unparenthesized tuple after "in" in a comprehension
// or generator. This also catches f(x for x in y, z), which the grammar
// reads as a generator over the tuple "y, z".
func checkForIn(n *sitter.Node, source []byte) *SyntaxError {
	afterIn := false
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "in":
			afterIn = true
		case ",":
			if afterIn {
				return syntaxErrorFor(n, source, "invalid syntax")
			}
		}
	}
	return nil
}

// isSingleTarget reports whether n can be the target of an augmented
// assignment.
func isSingleTarget(n *sitter.Node) bool {
	switch n.Kind() {
	case "identifier", "attribute", "subscript":
		return true
	case "parenthesized_expression", "tuple_pattern":
		inner := namedChildren(n)
		return len(inner) == 1 && !hasComma(n) && isSingleTarget(inner[0])
	}
	return false
}

func hasComma(n *sitter.Node) bool {
	for i := uint(0); i < n.ChildCount(); i++ {
		if child := n.Child(i); child != nil && child.Kind() == "," {
			return true
		}
	}
	return false
}

// checkDeleteTarget returns the first part of a del target that cannot be
// deleted, or nil.
func checkDeleteTarget(n *sitter.Node) *sitter.Node {
	switch n.Kind() {
	case "identifier", "attribute", "subscript":
		return nil
	case "expression_list", "tuple", "list", "parenthesized_expression", "pattern_list", "tuple_pattern", "list_pattern":
		for _, child := range namedChildren(n) {
			if bad := checkDeleteTarget(child); bad != nil {
				return bad
			}
		}
		return nil
	}
	return n
}

// namedChildren returns the named children of n, minus comments.
func namedChildren(n *sitter.Node) []*sitter.Node {
	return Statements(n)
}

func syntaxErrorFor(n *sitter.Node, source []byte, msg string) *SyntaxError {
	pos := n.StartPosition()
	return &SyntaxError{
		Line:   int(pos.Row) + 1,
		Column: int(pos.Column) + 1,
		Near:   firstLine(Text(n, source)),
		Msg:    msg,
	}
}
