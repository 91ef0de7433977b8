package engine

import (
	"cmp"
	"fmt"
	"strings"

	"flatdb/internal/sql"
)

// matcher reports whether a row satisfies a WHERE clause.
type matcher func(sql.Row) bool

func matchAll(sql.Row) bool { return true }

// compilePredicate checks a WHERE tree against the schema and turns it
// into a matcher. Every referenced column must exist and every literal
// must have its column's type; both are checked before any row is seen,
// so an empty table reports the same errors as a full one.
//
// A nil predicate matches every row.
func compilePredicate(cols []sql.Column, p sql.Predicate) (matcher, error) {
	switch n := p.(type) {
	case nil:
		return matchAll, nil

	case *sql.Comparison:
		idx := sql.ColumnIndex(cols, n.Column)
		if idx < 0 {
			return nil, columnDoesNotExist(n.Column)
		}
		col := cols[idx]
		if col.Type != sql.TypeUnknown && col.Type != n.Value.Type {
			return nil, typeMismatch("cannot compare %s column %s with %s value %s",
				col.Type, col.Name, n.Value.Type, n.Value.Literal())
		}
		op, want := n.Op, n.Value
		return func(r sql.Row) bool {
			v := r[idx]
			// cells that storage could not read never match
			if v.Type != want.Type {
				return false
			}
			ok, _ := Compare(v, op, want)
			return ok
		}, nil

	case *sql.NotExpr:
		inner, err := compilePredicate(cols, n.Inner)
		if err != nil {
			return nil, err
		}
		return func(r sql.Row) bool { return !inner(r) }, nil

	case *sql.BinaryExpr:
		left, err := compilePredicate(cols, n.Left)
		if err != nil {
			return nil, err
		}
		right, err := compilePredicate(cols, n.Right)
		if err != nil {
			return nil, err
		}
		if n.Op == sql.OpOr {
			return func(r sql.Row) bool { return left(r) || right(r) }, nil
		}
		return func(r sql.Row) bool { return left(r) && right(r) }, nil

	default:
		return nil, fmt.Errorf("unsupported predicate %T", p)
	}
}

// Compare evaluates "a op b". Ints compare numerically and strings
// lexicographically (byte-wise); values of different kinds, or Unknown
// values, cannot be compared and yield ErrTypeDoesNotMatch.
func Compare(a sql.Value, op sql.CmpOp, b sql.Value) (bool, error) {
	if a.Type != b.Type || a.Type == sql.TypeUnknown {
		return false, typeMismatch("cannot compare %s value %s with %s value %s",
			a.Type, a.Literal(), b.Type, b.Literal())
	}

	var c int
	if a.Type == sql.TypeInt {
		c = cmp.Compare(a.I32, b.I32)
	} else {
		c = strings.Compare(a.S, b.S)
	}

	switch op {
	case sql.OpEq:
		return c == 0, nil
	case sql.OpNe:
		return c != 0, nil
	case sql.OpLt:
		return c < 0, nil
	case sql.OpLe:
		return c <= 0, nil
	case sql.OpGt:
		return c > 0, nil
	case sql.OpGe:
		return c >= 0, nil
	default:
		return false, fmt.Errorf("unknown comparison operator %v", op)
	}
}

// projectColumns returns only the requested columns (in that order).
// requested is the list from SELECT; "*" expands to every column in
// schema order.
func projectColumns(cols []sql.Column, rows []sql.Row, requested []string) (*sql.Table, error) {
	var indexes []int
	for _, name := range requested {
		if name == sql.Wildcard {
			for i := range cols {
				indexes = append(indexes, i)
			}
			continue
		}
		idx := sql.ColumnIndex(cols, name)
		if idx < 0 {
			return nil, columnDoesNotExist(name)
		}
		indexes = append(indexes, idx)
	}

	// Project header.
	outCols := make([]sql.Column, len(indexes))
	for i, idx := range indexes {
		outCols[i] = cols[idx]
	}
	out := sql.NewTable(outCols)

	// Project each row.
	out.Rows = make([]sql.Row, 0, len(rows))
	for _, r := range rows {
		proj := make(sql.Row, len(indexes))
		for i, idx := range indexes {
			proj[i] = r[idx]
		}
		out.Rows = append(out.Rows, proj)
	}
	return out, nil
}
