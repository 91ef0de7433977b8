package sql

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// identAt reports whether an identifier character starts at byte offset i.
func (p *parser) identAt(i int) bool {
	if i >= len(p.src) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(p.src[i:])
	return isIdentRune(r)
}

func (p *parser) skipSpace() {
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

// peekWord returns the run of identifier characters at the cursor
// without consuming it.
func (p *parser) peekWord() string {
	end := p.pos
	for end < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[end:])
		if !isIdentRune(r) {
			break
		}
		end += size
	}
	return p.src[p.pos:end]
}

// tokenLen is the width of whatever sits at the cursor, used to size
// error spans: a whole word, a single character, or nothing at the end.
func (p *parser) tokenLen() int {
	if p.eof() {
		return 0
	}
	if w := p.peekWord(); w != "" {
		return len(w)
	}
	_, size := utf8.DecodeRuneInString(p.src[p.pos:])
	return size
}

func (p *parser) tryChar(c byte) bool {
	if !p.eof() && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expectChar(c byte) error {
	if p.tryChar(c) {
		return nil
	}
	return p.errorf(p.pos, p.tokenLen(), "expected '%c'", c)
}

// tryKeyword consumes kw (case-insensitive) if it is at the cursor and is
// not just the prefix of a longer identifier.
func (p *parser) tryKeyword(kw string) bool {
	end := p.pos + len(kw)
	if end > len(p.src) || !strings.EqualFold(p.src[p.pos:end], kw) || p.identAt(end) {
		return false
	}
	p.pos = end
	return true
}

func (p *parser) keyword(kw string) error {
	if p.tryKeyword(kw) {
		return nil
	}
	return p.errorf(p.pos, p.tokenLen(), "expected keyword %s", strings.ToUpper(kw))
}

// keywords matches a sequence of keywords separated by whitespace.
func (p *parser) keywords(kws ...string) error {
	for i, kw := range kws {
		if i > 0 {
			p.skipSpace()
		}
		if err := p.keyword(kw); err != nil {
			return err
		}
	}
	return nil
}

// identifier parses one or more letters, digits or underscores.
// Case is preserved.
func (p *parser) identifier() (string, error) {
	w := p.peekWord()
	if w == "" {
		return "", p.errorf(p.pos, p.tokenLen(), "expected identifier")
	}
	p.pos += len(w)
	return w, nil
}

// tableName is the identifier following FROM / INTO / TABLE / UPDATE.
func (p *parser) tableName() (string, error) {
	return within(p, "Table Name", p.identifier)
}

func (p *parser) columnName() (string, error) {
	return within(p, "Column Name", p.identifier)
}

// dataType parses a column type keyword.
func (p *parser) dataType() (DataType, error) {
	switch {
	case p.tryKeyword("string"):
		return TypeString, nil
	case p.tryKeyword("int"):
		return TypeInt, nil
	}
	return TypeUnknown, p.errorf(p.pos, p.tokenLen(), "expected column type STRING or INT")
}

// value parses an integer or a single-quoted string literal. The integer
// form is tried first.
func (p *parser) value() (Value, error) {
	if v, ok, err := p.intLiteral(); ok || err != nil {
		return v, err
	}
	if !p.eof() && p.src[p.pos] == '\'' {
		return p.stringLiteral()
	}
	return Value{}, p.errorf(p.pos, p.tokenLen(), "expected a value (integer or quoted string)")
}

// intLiteral parses an optionally signed decimal integer. ok is false and
// the cursor untouched when no digits are present.
func (p *parser) intLiteral() (Value, bool, error) {
	start := p.pos
	i := p.pos
	if i < len(p.src) && (p.src[i] == '-' || p.src[i] == '+') {
		i++
	}
	digits := i
	for i < len(p.src) && p.src[i] >= '0' && p.src[i] <= '9' {
		i++
	}
	if i == digits {
		return Value{}, false, nil
	}

	n, err := strconv.ParseInt(p.src[start:i], 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Value{}, true, p.errorf(start, i-start, "integer literal %s does not fit in 32 bits", p.src[start:i])
		}
		return Value{}, true, p.errorf(start, i-start, "invalid integer literal %s", p.src[start:i])
	}
	p.pos = i
	return IntValue(int32(n)), true, nil
}

// stringLiteral parses '...'. A backslash escapes the next character, so
// \' and \\ stand for a quote and a backslash. Carriage returns are
// rejected because the csv table format cannot keep them.
func (p *parser) stringLiteral() (Value, error) {
	start := p.pos
	p.pos++ // opening quote

	var b strings.Builder
	for !p.eof() {
		c := p.src[p.pos]
		if c == '\r' || (c == '\\' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '\r') {
			return Value{}, p.errorf(p.pos, 1, "carriage return is not allowed in a string literal")
		}
		switch c {
		case '\'':
			p.pos++
			return StringValue(b.String()), nil
		case '\\':
			if p.pos+1 < len(p.src) {
				r, size := utf8.DecodeRuneInString(p.src[p.pos+1:])
				b.WriteRune(r)
				p.pos += 1 + size
				continue
			}
			p.pos++
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			b.WriteRune(r)
			p.pos += size
		}
	}
	p.pos = start
	return Value{}, p.errorf(start, len(p.src)-start, "unterminated string literal")
}

// cmpOp parses a comparison operator, two-character forms first so that
// "<=" is never read as "<" followed by "=".
func (p *parser) cmpOp() (CmpOp, error) {
	ops := []struct {
		tok string
		op  CmpOp
	}{
		{"<=", OpLe},
		{"<>", OpNe},
		{">=", OpGe},
		{"<", OpLt},
		{">", OpGt},
		{"=", OpEq},
	}
	for _, o := range ops {
		if strings.HasPrefix(p.src[p.pos:], o.tok) {
			p.pos += len(o.tok)
			return o.op, nil
		}
	}
	return OpEq, p.errorf(p.pos, p.tokenLen(), "expected comparison operator (=, <>, <, <=, >, >=)")
}

// commaList parses item (',' item)* with optional whitespace around the
// commas. The list must be non-empty.
func commaList[T any](p *parser, item func() (T, error)) ([]T, error) {
	var out []T
	for {
		p.skipSpace()
		v, err := item()
		if err != nil {
			return nil, err
		}
		out = append(out, v)

		save := p.pos
		p.skipSpace()
		if !p.tryChar(',') {
			p.pos = save
			return out, nil
		}
	}
}
