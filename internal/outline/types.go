package outline

// Placeholder is the marker left in place of every stripped function body.
const Placeholder = "(implementation not shown)"

// BodyRange is the inclusive, 1-based line span of one function body.
type BodyRange struct {
	Start int
	End   int
}

// Contains reports whether line falls inside the range.
func (r BodyRange) Contains(line int) bool {
	return line >= r.Start && line <= r.End
}

// Stmt is a statement kept in an outline: *Class or *Function.
type Stmt interface {
	stmt()
}

// Module is the root of an outline.
type Module struct {
	Doc  *Docstring
	Body []Stmt
}

// Class is a class definition reduced to its docstring and methods.
type Class struct {
	Decorators []string
	Header     string // "class Name(Base):"
	Doc        *Docstring
	Body       []Stmt
}

// Function is a function or method definition whose body is reduced to its
// docstring and the placeholder marker.
type Function struct {
	Decorators  []string
	Header      string // "async def name(params) -> T:"
	TypeComment string // text after "# type:", e.g. "(int) -> str" or "ignore"
	Doc         *Docstring
}

// Docstring is a string literal in docstring position, kept as written.
type Docstring struct {
	Literal string
}

func (*Class) stmt()    {}
func (*Function) stmt() {}
