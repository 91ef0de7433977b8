// Package display renders execution results and errors for a terminal.
// It only reads the values it is given.
package display

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"flatdb/internal/engine"
	"flatdb/internal/sql"
)

// Response writes a human-readable form of resp to w.
func Response(w io.Writer, resp engine.Response) error {
	switch r := resp.(type) {
	case engine.Message:
		_, err := fmt.Fprintln(w, string(r))
		return err
	case engine.Count:
		noun := "rows"
		if r == 1 {
			noun = "row"
		}
		_, err := fmt.Fprintf(w, "%d %s affected\n", int(r), noun)
		return err
	case engine.View:
		return Table(w, r.Table)
	default:
		return fmt.Errorf("display: unsupported response %T", resp)
	}
}

// Table writes t as an aligned text table with a header rule, followed
// by a row count.
func Table(w io.Writer, t *sql.Table) error {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = runewidth.StringWidth(c.Name)
	}
	cells := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		cells[r] = make([]string, len(row))
		for i, v := range row {
			text := v.Text()
			cells[r][i] = text
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(text))
			}
		}
	}

	var b strings.Builder
	writeLine := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				b.WriteString(" │ ")
			}
			if i == len(fields)-1 {
				b.WriteString(f)
			} else {
				b.WriteString(runewidth.FillRight(f, widths[i]))
			}
		}
		b.WriteByte('\n')
	}

	writeLine(t.ColumnNames())
	for i, width := range widths {
		if i > 0 {
			b.WriteString("═╪═")
		}
		b.WriteString(strings.Repeat("═", width))
	}
	b.WriteByte('\n')
	for _, row := range cells {
		writeLine(row)
	}

	noun := "rows"
	if len(t.Rows) == 1 {
		noun = "row"
	}
	fmt.Fprintf(&b, "(%d %s)\n", len(t.Rows), noun)

	_, err := io.WriteString(w, b.String())
	return err
}

// Error writes err to w. Parse errors are shown against src with a caret
// under the offending span and the grammar rules that were active.
func Error(w io.Writer, err error, src string) error {
	var pe *sql.ParseError
	if errors.As(err, &pe) {
		_, werr := io.WriteString(w, Diagnostic(pe, src))
		return werr
	}
	_, werr := fmt.Fprintf(w, "Error: %v\n", err)
	return werr
}

// Diagnostic formats a parse error as a multi-line report:
//
//	Error: expected a value (integer or quoted string)
//	  |
//	1 | SELECT * FROM foo WHERE a = b;
//	  |                             ^ expected a value (integer or quoted string)
//	  = while parsing Value
func Diagnostic(pe *sql.ParseError, src string) string {
	offset := min(max(pe.Offset, 0), len(src))

	lineNo := strings.Count(src[:offset], "\n") + 1
	lineStart := strings.LastIndexByte(src[:offset], '\n') + 1
	lineEnd := len(src)
	if i := strings.IndexByte(src[offset:], '\n'); i >= 0 {
		lineEnd = offset + i
	}
	line := src[lineStart:lineEnd]

	spanEnd := min(offset+pe.Length, lineEnd)
	caretWidth := max(runewidth.StringWidth(src[offset:spanEnd]), 1)
	indent := runewidth.StringWidth(src[lineStart:offset])

	gutter := fmt.Sprintf("%d", lineNo)
	pad := strings.Repeat(" ", len(gutter))

	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", pe.Reason)
	fmt.Fprintf(&b, "%s |\n", pad)
	fmt.Fprintf(&b, "%s | %s\n", gutter, line)
	fmt.Fprintf(&b, "%s | %s%s %s\n", pad, strings.Repeat(" ", indent), strings.Repeat("^", caretWidth), pe.Reason)
	for _, f := range pe.Context {
		fmt.Fprintf(&b, "%s = while parsing %s\n", pad, f.Rule)
	}
	return b.String()
}
