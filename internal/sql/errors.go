package sql

import (
	"fmt"
	"strings"
)

// Frame names a grammar rule that was being parsed when an error occurred,
// and the offset at which that rule started.
type Frame struct {
	Rule   string
	Offset int
}

// ParseError is returned by the parser. Offset and Length select the
// offending bytes of the original input; Context lists the enclosing
// grammar rules, innermost first.
type ParseError struct {
	Offset  int
	Length  int
	Reason  string
	Context []Frame
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse error at offset %d: %s", e.Offset, e.Reason)
	if len(e.Context) > 0 {
		rules := make([]string, len(e.Context))
		for i, f := range e.Context {
			// outermost first reads better in a one-line message
			rules[len(e.Context)-1-i] = f.Rule
		}
		fmt.Fprintf(&b, " (while parsing %s)", strings.Join(rules, " > "))
	}
	return b.String()
}
