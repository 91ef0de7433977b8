package engine

import (
	"flatdb/internal/sql"
)

// executeSelect filters the table with WHERE, then projects the
// requested columns into a new table.
func (e *DBEngine) executeSelect(stmt *sql.SelectStmt) (Response, error) {
	t, err := e.loadTable(stmt.TableName)
	if err != nil {
		return nil, err
	}

	match, err := compilePredicate(t.Columns, stmt.Where)
	if err != nil {
		return nil, err
	}

	filtered := make([]sql.Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		if match(r) {
			filtered = append(filtered, r)
		}
	}

	view, err := projectColumns(t.Columns, filtered, stmt.Columns)
	if err != nil {
		return nil, err
	}
	return View{Table: view}, nil
}
