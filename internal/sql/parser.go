package sql

import (
	"fmt"
	"strings"
)

// Parse parses a single SQL statement string into an AST Statement.
// The input must hold exactly one statement terminated by ';'; anything
// but whitespace after the ';' is an error.
func Parse(query string) (Statement, error) {
	p := &parser{src: query}
	p.skipSpace()
	if p.eof() {
		return nil, p.errorf(0, 0, "empty statement")
	}

	stmt, err := p.statement()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errorf(p.pos, len(p.src)-p.pos, "unexpected input after end of statement")
	}
	return stmt, nil
}

// ParseStatement parses the first statement of query, including its
// terminating ';', and returns whatever input follows it.
func ParseStatement(query string) (Statement, string, error) {
	p := &parser{src: query}
	stmt, err := p.statement()
	if err != nil {
		return nil, query, err
	}
	return stmt, query[p.pos:], nil
}

// ParseAll parses a script of ';'-terminated statements. Error offsets
// are relative to the whole script.
func ParseAll(script string) ([]Statement, error) {
	p := &parser{src: script}
	var out []Statement
	for {
		p.skipSpace()
		if p.eof() {
			return out, nil
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		out = append(out, stmt)
	}
}

// parser is a hand-written recursive-descent parser over the raw input.
// pos is a byte offset into src; every error is anchored to it.
type parser struct {
	src string
	pos int
}

// statement dispatches on the leading keyword. Once the keyword has been
// recognised the statement rule owns the input: its failures are reported
// as-is rather than retried as another statement kind.
func (p *parser) statement() (Statement, error) {
	p.skipSpace()
	word := strings.ToLower(p.peekWord())

	var (
		stmt Statement
		err  error
	)
	switch word {
	case "create":
		stmt, err = within(p, "Create Table", p.parseCreateTable)
	case "drop":
		stmt, err = within(p, "Drop Table", p.parseDropTable)
	case "insert":
		stmt, err = within(p, "Insert", p.parseInsert)
	case "select":
		stmt, err = within(p, "Select", p.parseSelect)
	case "update":
		stmt, err = within(p, "Update", p.parseUpdate)
	case "delete":
		stmt, err = within(p, "Delete", p.parseDelete)
	default:
		return nil, p.errorf(p.pos, p.tokenLen(),
			"expected a statement (CREATE, DROP, INSERT, SELECT, UPDATE, DELETE)")
	}
	if err != nil {
		return nil, err
	}

	if err := p.terminator(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// terminator consumes the closing ';' and the whitespace around it.
func (p *parser) terminator() error {
	p.skipSpace()
	if !p.tryChar(';') {
		return p.errorf(p.pos, p.tokenLen(), "expected ';' at end of statement")
	}
	p.skipSpace()
	return nil
}

// within runs fn as the named grammar rule; a ParseError coming out of
// it gets a context frame for that rule.
func within[T any](p *parser, rule string, fn func() (T, error)) (T, error) {
	start := p.pos
	v, err := fn()
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Context = append(pe.Context, Frame{Rule: rule, Offset: start})
		}
	}
	return v, err
}

func (p *parser) errorf(offset, length int, format string, args ...any) *ParseError {
	return &ParseError{
		Offset: offset,
		Length: length,
		Reason: fmt.Sprintf(format, args...),
	}
}
