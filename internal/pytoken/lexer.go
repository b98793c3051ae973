// Package pytoken is a minimal Python lexer that recovers comment tokens.
//
// Comments are not part of the syntax tree, so they are found by
// re-tokenizing the raw source. The lexer only distinguishes what it must to
// place comments correctly: string literals (every prefix, single and triple
// quoted, f-string replacement fields with nested strings and format specs)
// and line boundaries. Everything else is skipped character by character.
package pytoken

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Comment is a comment token together with the physical line it sits on.
type Comment struct {
	Line     int    // 1-based line number
	Column   int    // 0-based column, counted in characters
	Text     string // the token itself, starting with '#'
	LineText string // the full physical line, without its terminator
}

// Error reports source the lexer cannot tokenize.
type Error struct {
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (line %d, column %d)", e.Msg, e.Line, e.Column)
}

// Comments returns every comment token in src, in source order.
func Comments(src []byte) ([]Comment, error) {
	l := &lexer{src: src, line: 1}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.comments, nil
}

type lexer struct {
	src       []byte
	pos       int
	line      int
	col       int
	lineStart int
	comments  []Comment
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.src)
}

func (l *lexer) peek(k int) byte {
	if l.pos+k >= len(l.src) {
		return 0
	}
	return l.src[l.pos+k]
}

// next consumes one character. "\r\n" counts as a single newline.
func (l *lexer) next() {
	if l.eof() {
		return
	}
	switch c := l.src[l.pos]; c {
	case '\r':
		l.pos++
		if l.peek(0) == '\n' {
			l.pos++
		}
		l.newline()
	case '\n':
		l.pos++
		l.newline()
	default:
		if c < utf8.RuneSelf {
			l.pos++
		} else {
			_, size := utf8.DecodeRune(l.src[l.pos:])
			l.pos += size
		}
		l.col++
	}
}

func (l *lexer) newline() {
	l.line++
	l.col = 0
	l.lineStart = l.pos
}

func (l *lexer) errorf(line, col int, format string, args ...any) *Error {
	return &Error{Line: line, Column: col, Msg: fmt.Sprintf(format, args...)}
}

func isNewline(c byte) bool {
	return c == '\n' || c == '\r'
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= utf8.RuneSelf
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// stringPrefixes lists the valid (lower-cased) string prefixes.
var stringPrefixes = map[string]bool{
	"r": true, "u": true, "b": true, "f": true, "t": true,
	"br": true, "rb": true, "fr": true, "rf": true, "tr": true, "rt": true,
}

func (l *lexer) run() error {
	for !l.eof() {
		if err := l.step(); err != nil {
			return err
		}
	}
	return nil
}

// step consumes one token-ish unit of code.
func (l *lexer) step() error {
	c := l.peek(0)
	switch {
	case c == '#':
		l.comment()
	case isQuote(c):
		return l.str("")
	case isIdentStart(c):
		return l.identifier()
	default:
		l.next()
	}
	return nil
}

// identifier consumes a name and, when it is a string prefix directly
// followed by a quote, the string literal it introduces.
func (l *lexer) identifier() error {
	start := l.pos
	for !l.eof() && isIdentPart(l.peek(0)) {
		l.next()
	}
	name := string(l.src[start:l.pos])
	if isQuote(l.peek(0)) && stringPrefixes[strings.ToLower(name)] {
		return l.str(strings.ToLower(name))
	}
	return nil
}

func (l *lexer) comment() {
	line, col := l.line, l.col
	start := l.pos
	for !l.eof() && !isNewline(l.peek(0)) {
		l.next()
	}
	l.comments = append(l.comments, Comment{
		Line:     line,
		Column:   col,
		Text:     string(l.src[start:l.pos]),
		LineText: string(l.src[l.lineStart:l.pos]),
	})
}

// str consumes a string literal whose prefix has already been read.
func (l *lexer) str(prefix string) error {
	line, col := l.line, l.col-len(prefix)
	formatted := strings.ContainsAny(prefix, "ft")
	quote := l.peek(0)
	triple := l.peek(1) == quote && l.peek(2) == quote
	if triple {
		l.next()
		l.next()
	}
	l.next()

	for {
		if l.eof() {
			if triple {
				return l.errorf(line, col, "unterminated triple-quoted string literal")
			}
			return l.errorf(line, col, "unterminated string literal")
		}
		c := l.peek(0)
		switch {
		case c == '\\':
			l.next()
			if formatted && (l.peek(0) == '{' || l.peek(0) == '}') {
				continue
			}
			l.next()
		case c == quote:
			if !triple {
				l.next()
				return nil
			}
			if l.peek(1) == quote && l.peek(2) == quote {
				l.next()
				l.next()
				l.next()
				return nil
			}
			l.next()
		case isNewline(c) && !triple:
			return l.errorf(line, col, "unterminated string literal")
		case formatted && c == '{':
			if l.peek(1) == '{' {
				l.next()
				l.next()
				continue
			}
			l.next()
			if err := l.replacementField(); err != nil {
				return err
			}
		case formatted && c == '}':
			l.next()
			if l.peek(0) == '}' {
				l.next()
			}
		default:
			l.next()
		}
	}
}

// replacementField consumes an f-string expression up to and including its
// closing brace. The opening brace has already been read.
func (l *lexer) replacementField() error {
	line, col := l.line, l.col
	depth := 0
	for {
		if l.eof() {
			return l.errorf(line, col, "f-string: expecting '}'")
		}
		c := l.peek(0)
		switch {
		case c == '(' || c == '[' || c == '{':
			depth++
			l.next()
		case c == ')' || c == ']':
			depth--
			l.next()
		case c == '}':
			l.next()
			if depth == 0 {
				return nil
			}
			depth--
		case c == ':' && depth == 0:
			l.next()
			return l.formatSpec()
		case c == '#':
			l.comment()
		case isQuote(c):
			if err := l.str(""); err != nil {
				return err
			}
		case isIdentStart(c):
			if err := l.identifier(); err != nil {
				return err
			}
		default:
			l.next()
		}
	}
}

// formatSpec consumes a format spec up to and including the brace that
// closes its replacement field. Nested fields are allowed.
func (l *lexer) formatSpec() error {
	line, col := l.line, l.col
	for {
		if l.eof() {
			return l.errorf(line, col, "f-string: expecting '}'")
		}
		switch l.peek(0) {
		case '{':
			l.next()
			if err := l.replacementField(); err != nil {
				return err
			}
		case '}':
			l.next()
			return nil
		default:
			l.next()
		}
	}
}
