package engine

import (
	"flatdb/internal/sql"
)

func (e *DBEngine) executeUpdate(stmt *sql.UpdateStmt) (Response, error) {
	t, err := e.loadTable(stmt.TableName)
	if err != nil {
		return nil, err
	}

	match, err := compilePredicate(t.Columns, stmt.Where)
	if err != nil {
		return nil, err
	}

	newRows, affected, err := applyUpdate(t.Columns, t.Rows, match, stmt.Assignments)
	if err != nil {
		return nil, err
	}

	t.Rows = newRows
	if err := e.saveTable(stmt.TableName, t); err != nil {
		return nil, err
	}
	return Count(affected), nil
}
