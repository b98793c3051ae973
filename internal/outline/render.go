package outline

import (
	"strconv"
	"strings"
)

const indentUnit = "    "

// Render serializes an outline as Python source. Layout follows ast.unparse:
// a blank line precedes every def and class unless it opens the output, and
// nothing trails the last line.
func Render(m *Module) string {
	r := &renderer{}
	if m.Doc != nil {
		r.fill(m.Doc.Literal)
	}
	for _, s := range m.Body {
		r.stmt(s)
	}
	return r.b.String()
}

// Assemble joins the kept comment lines and the rendered code. The comment
// block and its blank-line separator are left out when there are no comments.
func Assemble(comments []string, code string) string {
	var pieces []string
	if len(comments) > 0 {
		pieces = append(pieces, strings.Join(comments, "\n"))
	}
	pieces = append(pieces, code)
	return strings.Join(pieces, "\n\n")
}

type renderer struct {
	b      strings.Builder
	indent int
}

func (r *renderer) maybeNewline() {
	if r.b.Len() > 0 {
		r.b.WriteByte('\n')
	}
}

// fill starts a new line at the current indentation.
func (r *renderer) fill(text string) {
	r.maybeNewline()
	r.b.WriteString(strings.Repeat(indentUnit, r.indent))
	r.b.WriteString(text)
}

func (r *renderer) stmt(s Stmt) {
	switch s := s.(type) {
	case *Class:
		r.maybeNewline()
		for _, d := range s.Decorators {
			r.fill(d)
		}
		r.fill(s.Header)
		r.indent++
		if s.Doc != nil {
			r.fill(s.Doc.Literal)
		}
		for _, child := range s.Body {
			r.stmt(child)
		}
		if s.Doc == nil && len(s.Body) == 0 {
			r.fill("pass")
		}
		r.indent--
	case *Function:
		r.maybeNewline()
		for _, d := range s.Decorators {
			r.fill(d)
		}
		header := s.Header
		if s.TypeComment != "" {
			header += " # type: " + s.TypeComment
		}
		r.fill(header)
		r.indent++
		if s.Doc != nil {
			r.fill(s.Doc.Literal)
		}
		r.fill(strconv.Quote(Placeholder))
		r.indent--
	}
}
