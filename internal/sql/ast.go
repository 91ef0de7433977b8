package sql

// Statement is the common interface for all SQL statements.
// The set of implementations is closed: CreateTableStmt, DropTableStmt,
// InsertStmt, SelectStmt, UpdateStmt and DeleteStmt.
type Statement interface {
	stmtNode()
	String() string
}

// CreateTableStmt represents a parsed CREATE TABLE statement.
type CreateTableStmt struct {
	TableName string
	Columns   []Column
}

// DropTableStmt represents a parsed DROP TABLE statement.
type DropTableStmt struct {
	TableName string
}

// InsertStmt represents INSERT INTO table [(cols...)] VALUES (...).
// Columns is nil when the statement has no explicit column list.
type InsertStmt struct {
	TableName string
	Columns   []string
	Values    Row
}

// Wildcard is the projection entry that expands to every column.
const Wildcard = "*"

// SelectStmt represents SELECT cols FROM table [WHERE ...].
// Columns may contain Wildcard.
type SelectStmt struct {
	TableName string
	Columns   []string
	Where     Predicate
}

// Assignment is a single "column = value" entry of an UPDATE SET list.
type Assignment struct {
	Column string
	Value  Value
}

// UpdateStmt represents UPDATE table SET ... [WHERE ...].
type UpdateStmt struct {
	TableName   string
	Assignments []Assignment
	Where       Predicate
}

// DeleteStmt represents DELETE FROM table [WHERE ...].
type DeleteStmt struct {
	TableName string
	Where     Predicate
}

func (*CreateTableStmt) stmtNode() {}
func (*DropTableStmt) stmtNode()   {}
func (*InsertStmt) stmtNode()      {}
func (*SelectStmt) stmtNode()      {}
func (*UpdateStmt) stmtNode()      {}
func (*DeleteStmt) stmtNode()      {}

// CmpOp is a comparison operator in a WHERE constraint.
type CmpOp int

const (
	OpEq CmpOp = iota
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

func (o CmpOp) String() string {
	switch o {
	case OpEq:
		return "="
	case OpNe:
		return "<>"
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	default:
		return "?"
	}
}

// BoolOp joins two predicates.
type BoolOp int

const (
	OpAnd BoolOp = iota
	OpOr
)

func (o BoolOp) String() string {
	if o == OpOr {
		return "OR"
	}
	return "AND"
}

// Predicate is a WHERE clause tree. Implementations are *Comparison,
// *NotExpr and *BinaryExpr. A nil Predicate means "no WHERE clause".
type Predicate interface {
	predNode()
	String() string
}

// Comparison is the leaf "column op value".
type Comparison struct {
	Column string
	Op     CmpOp
	Value  Value
}

// NotExpr negates a predicate. The parser only ever puts a *Comparison
// inside it: NOT applies to a single constraint, not to a parenthesised
// or compound expression.
type NotExpr struct {
	Inner Predicate
}

// BinaryExpr is "left AND right" or "left OR right". The parser builds
// these right-leaning: a AND b OR c is a AND (b OR c).
type BinaryExpr struct {
	Left  Predicate
	Op    BoolOp
	Right Predicate
}

func (*Comparison) predNode() {}
func (*NotExpr) predNode()    {}
func (*BinaryExpr) predNode() {}
