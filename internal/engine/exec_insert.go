package engine

import (
	"fmt"

	"flatdb/internal/sql"
)

func (e *DBEngine) executeInsert(stmt *sql.InsertStmt) (Response, error) {
	t, err := e.loadTable(stmt.TableName)
	if err != nil {
		return nil, err
	}

	row, err := reconcileRow(t.Columns, stmt.Columns, stmt.Values)
	if err != nil {
		return nil, err
	}

	t.Rows = append(t.Rows, row)
	if err := e.saveTable(stmt.TableName, t); err != nil {
		return nil, err
	}
	return Message(fmt.Sprintf("1 row inserted into %s", stmt.TableName)), nil
}

// reconcileRow builds a full row in schema order.
//
// Without a column list the values are taken as-is and must match the
// schema in count and type. With a column list each value goes to the
// column named at the same position; table columns left out get
// sql.DefaultValue for their type ("NULL" for strings, 0 for ints).
func reconcileRow(cols []sql.Column, names []string, values sql.Row) (sql.Row, error) {
	if names == nil {
		if len(values) != len(cols) {
			return nil, typeMismatch("table has %d columns but %d values were given", len(cols), len(values))
		}
		for i, col := range cols {
			if err := checkType(col, values[i]); err != nil {
				return nil, err
			}
		}
		return values.Clone(), nil
	}

	if len(values) != len(names) {
		return nil, typeMismatch("%d columns listed but %d values were given", len(names), len(values))
	}

	// Map name -> index in VALUES
	valueIdx := make(map[string]int, len(names))
	for i, name := range names {
		valueIdx[name] = i
	}
	for _, name := range names {
		if sql.ColumnIndex(cols, name) < 0 {
			return nil, columnDoesNotExist(name)
		}
	}

	out := make(sql.Row, len(cols))
	for i, col := range cols {
		j, ok := valueIdx[col.Name]
		if !ok {
			out[i] = sql.DefaultValue(col.Type)
			continue
		}
		if err := checkType(col, values[j]); err != nil {
			return nil, err
		}
		out[i] = values[j]
	}
	return out, nil
}

// checkType verifies that v may be stored in col. A column whose type
// could not be read from storage accepts no writes: nothing written to
// it could be read back.
func checkType(col sql.Column, v sql.Value) error {
	if col.Type == sql.TypeUnknown {
		return typeMismatch("column %s has an unreadable type and cannot be written", col.Name)
	}
	if v.Type == col.Type {
		return nil
	}
	return typeMismatch("column %s is %s, got %s value %s", col.Name, col.Type, v.Type, v.Literal())
}
