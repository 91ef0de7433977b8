package engine

import (
	"flatdb/internal/sql"
)

// executeDelete removes every row matching WHERE. Without WHERE all rows
// are removed.
func (e *DBEngine) executeDelete(stmt *sql.DeleteStmt) (Response, error) {
	t, err := e.loadTable(stmt.TableName)
	if err != nil {
		return nil, err
	}

	match, err := compilePredicate(t.Columns, stmt.Where)
	if err != nil {
		return nil, err
	}

	newRows, deleted := applyDelete(t.Rows, match)

	t.Rows = newRows
	if err := e.saveTable(stmt.TableName, t); err != nil {
		return nil, err
	}
	return Count(deleted), nil
}
