package sql

import "strconv"

// DataType represents the logical type of a value in a column.
type DataType int

const (
	TypeUnknown DataType = iota
	TypeString
	TypeInt
)

// String returns the tag used for the type in stored tables.
func (t DataType) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeInt:
		return "Int"
	default:
		return "Unknown"
	}
}

// ParseDataType maps a stored type tag back to a DataType.
// Tags other than "String" and "Int" map to TypeUnknown.
func ParseDataType(tag string) DataType {
	switch tag {
	case "String":
		return TypeString
	case "Int":
		return TypeInt
	default:
		return TypeUnknown
	}
}

// UnknownText is how an Unknown value is written out as text.
const UnknownText = "Unknown"

// Value represents a single cell in a table (one column in one row).
// Only the field matching Type should be read. The zero Value is Unknown,
// which only storage produces when it cannot coerce a cell.
type Value struct {
	Type DataType

	I32 int32  // for TypeInt
	S   string // for TypeString; for TypeUnknown, the stored text if any
}

// StringValue returns a String value.
func StringValue(s string) Value { return Value{Type: TypeString, S: s} }

// IntValue returns an Int value.
func IntValue(i int32) Value { return Value{Type: TypeInt, I32: i} }

// UnknownValue returns the Unknown sentinel.
func UnknownValue() Value { return Value{Type: TypeUnknown} }

// UnknownFrom returns the Unknown sentinel for a stored cell that could
// not be coerced. It keeps the cell's text so that saving the table
// writes the same text back.
func UnknownFrom(text string) Value {
	if text == UnknownText {
		return UnknownValue()
	}
	return Value{Type: TypeUnknown, S: text}
}

// Text converts the value to its plain text form: strings verbatim,
// integers as decimal text, Unknown as UnknownText.
func (v Value) Text() string {
	switch v.Type {
	case TypeString:
		return v.S
	case TypeInt:
		return strconv.FormatInt(int64(v.I32), 10)
	default:
		return UnknownText
	}
}

// StoredText is the text storage writes for v. It equals Text except
// for an Unknown that still carries the text it was loaded from.
func (v Value) StoredText() string {
	if v.Type == TypeUnknown && v.S != "" {
		return v.S
	}
	return v.Text()
}

// DefaultValue is the value substituted for a column that an INSERT
// with an explicit column list leaves out.
func DefaultValue(t DataType) Value {
	switch t {
	case TypeString:
		return StringValue("NULL")
	case TypeInt:
		return IntValue(0)
	default:
		return UnknownValue()
	}
}

// Row represents one record in a table: a slice of Values, one per column.
type Row []Value

// Clone returns a copy of the row that shares no storage with r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Column describes metadata for a single column in a table.
type Column struct {
	Name string
	Type DataType
}

// Table is a schema plus its rows. Every row has len(Columns) values.
type Table struct {
	Columns []Column
	Rows    []Row
}

// NewTable returns an empty table with the given columns.
func NewTable(cols []Column) *Table {
	c := make([]Column, len(cols))
	copy(c, cols)
	return &Table{Columns: c, Rows: []Row{}}
}

// ColumnIndex returns the position of the named column in cols, or -1.
func ColumnIndex(cols []Column, name string) int {
	for i, c := range cols {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// ColumnNames returns the column names in schema order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}
