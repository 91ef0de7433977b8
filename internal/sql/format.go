package sql

import (
	"strings"
)

// Literal renders v the way it would be written in a statement.
func (v Value) Literal() string {
	switch v.Type {
	case TypeString:
		var b strings.Builder
		b.WriteByte('\'')
		for _, r := range v.S {
			if r == '\'' || r == '\\' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
		b.WriteByte('\'')
		return b.String()
	case TypeInt:
		return v.Text()
	default:
		return UnknownText
	}
}

func (s *CreateTableStmt) String() string {
	defs := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		// STRING, INT, or UNKNOWN for a tag storage could not read
		defs[i] = c.Name + " " + strings.ToUpper(c.Type.String())
	}
	return "CREATE TABLE " + s.TableName + " (" + strings.Join(defs, ", ") + ");"
}

func (s *DropTableStmt) String() string {
	return "DROP TABLE " + s.TableName + ";"
}

func (s *InsertStmt) String() string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(s.TableName)
	if s.Columns != nil {
		b.WriteString(" (")
		b.WriteString(strings.Join(s.Columns, ", "))
		b.WriteString(")")
	}
	b.WriteString(" VALUES (")
	for i, v := range s.Values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.Literal())
	}
	b.WriteString(");")
	return b.String()
}

func (s *SelectStmt) String() string {
	return "SELECT " + strings.Join(s.Columns, ", ") + " FROM " + s.TableName + whereSuffix(s.Where) + ";"
}

func (s *UpdateStmt) String() string {
	sets := make([]string, len(s.Assignments))
	for i, a := range s.Assignments {
		sets[i] = a.Column + " = " + a.Value.Literal()
	}
	return "UPDATE " + s.TableName + " SET " + strings.Join(sets, ", ") + whereSuffix(s.Where) + ";"
}

func (s *DeleteStmt) String() string {
	return "DELETE FROM " + s.TableName + whereSuffix(s.Where) + ";"
}

func whereSuffix(p Predicate) string {
	if p == nil {
		return ""
	}
	return " WHERE " + p.String()
}

func (c *Comparison) String() string {
	return c.Column + " " + c.Op.String() + " " + c.Value.Literal()
}

func (n *NotExpr) String() string {
	return "NOT " + n.Inner.String()
}

func (b *BinaryExpr) String() string {
	return b.Left.String() + " " + b.Op.String() + " " + b.Right.String()
}
