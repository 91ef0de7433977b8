package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatdb/internal/sql"
)

var filterCols = []sql.Column{
	{Name: "n", Type: sql.TypeInt},
	{Name: "s", Type: sql.TypeString},
}

// leaf returns a comparison that is true or false for the row {1, "a"}.
func leaf(truth bool) sql.Predicate {
	if truth {
		return &sql.Comparison{Column: "n", Op: sql.OpEq, Value: sql.IntValue(1)}
	}
	return &sql.Comparison{Column: "n", Op: sql.OpEq, Value: sql.IntValue(2)}
}

func TestPredicate_TruthTables(t *testing.T) {
	row := sql.Row{sql.IntValue(1), sql.StringValue("a")}

	for _, l := range []bool{false, true} {
		for _, r := range []bool{false, true} {
			and, err := compilePredicate(filterCols, &sql.BinaryExpr{Left: leaf(l), Op: sql.OpAnd, Right: leaf(r)})
			require.NoError(t, err)
			assert.Equal(t, l && r, and(row), "%v AND %v", l, r)

			or, err := compilePredicate(filterCols, &sql.BinaryExpr{Left: leaf(l), Op: sql.OpOr, Right: leaf(r)})
			require.NoError(t, err)
			assert.Equal(t, l || r, or(row), "%v OR %v", l, r)
		}

		not, err := compilePredicate(filterCols, &sql.NotExpr{Inner: leaf(l)})
		require.NoError(t, err)
		assert.Equal(t, !l, not(row), "NOT %v", l)
	}
}

func TestPredicate_NilMatchesEverything(t *testing.T) {
	m, err := compilePredicate(filterCols, nil)
	require.NoError(t, err)
	assert.True(t, m(sql.Row{sql.IntValue(0), sql.StringValue("")}))
}

func TestPredicate_ValidatesAgainstSchema(t *testing.T) {
	_, err := compilePredicate(filterCols, &sql.BinaryExpr{
		Left:  leaf(true),
		Op:    sql.OpOr,
		Right: &sql.Comparison{Column: "missing", Op: sql.OpEq, Value: sql.IntValue(1)},
	})
	assert.ErrorIs(t, err, ErrColumnDoesNotExist)

	_, err = compilePredicate(filterCols, &sql.NotExpr{
		Inner: &sql.Comparison{Column: "s", Op: sql.OpEq, Value: sql.IntValue(1)},
	})
	assert.ErrorIs(t, err, ErrTypeDoesNotMatch)
}

func TestPredicate_UnknownCellsNeverMatch(t *testing.T) {
	row := sql.Row{sql.UnknownValue(), sql.StringValue("a")}

	eq, err := compilePredicate(filterCols, leaf(true))
	require.NoError(t, err)
	assert.False(t, eq(row))

	ne, err := compilePredicate(filterCols, &sql.Comparison{Column: "n", Op: sql.OpNe, Value: sql.IntValue(1)})
	require.NoError(t, err)
	assert.False(t, ne(row))
}

func TestCompare_Ints(t *testing.T) {
	ops := []sql.CmpOp{sql.OpEq, sql.OpNe, sql.OpLt, sql.OpLe, sql.OpGt, sql.OpGe}
	native := func(a, b int32, op sql.CmpOp) bool {
		switch op {
		case sql.OpEq:
			return a == b
		case sql.OpNe:
			return a != b
		case sql.OpLt:
			return a < b
		case sql.OpLe:
			return a <= b
		case sql.OpGt:
			return a > b
		default:
			return a >= b
		}
	}

	nums := []int32{-2147483648, -1, 0, 1, 42, 2147483647}
	for _, a := range nums {
		for _, b := range nums {
			for _, op := range ops {
				got, err := Compare(sql.IntValue(a), op, sql.IntValue(b))
				require.NoError(t, err)
				assert.Equal(t, native(a, b, op), got, "%d %v %d", a, op, b)
			}
		}
	}
}

func TestCompare_Strings(t *testing.T) {
	testCases := []struct {
		a, b string
		op   sql.CmpOp
		want bool
	}{
		{"a", "a", sql.OpEq, true},
		{"a", "b", sql.OpNe, true},
		{"a", "b", sql.OpLt, true},
		{"ab", "a", sql.OpGt, true},
		{"B", "a", sql.OpLt, true},
		{"", "a", sql.OpLe, true},
		{"z", "z", sql.OpGe, true},
		{"z", "za", sql.OpGe, false},
	}
	for _, tc := range testCases {
		got, err := Compare(sql.StringValue(tc.a), tc.op, sql.StringValue(tc.b))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%q %v %q", tc.a, tc.op, tc.b)
	}
}

func TestCompare_MismatchedKindsIsAnError(t *testing.T) {
	_, err := Compare(sql.IntValue(1), sql.OpEq, sql.StringValue("1"))
	assert.ErrorIs(t, err, ErrTypeDoesNotMatch)

	_, err = Compare(sql.UnknownValue(), sql.OpEq, sql.UnknownValue())
	assert.ErrorIs(t, err, ErrTypeDoesNotMatch)
}
