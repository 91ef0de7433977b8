package engine

import (
	"fmt"

	"flatdb/internal/sql"
)

// executeCreate stores a new empty table. It refuses to overwrite an
// existing one.
func (e *DBEngine) executeCreate(stmt *sql.CreateTableStmt) (Response, error) {
	if e.store.Exists(stmt.TableName) {
		return nil, &ExecError{Kind: ErrTableAlreadyExists, Name: stmt.TableName}
	}

	if err := e.saveTable(stmt.TableName, sql.NewTable(stmt.Columns)); err != nil {
		return nil, err
	}
	return Message(fmt.Sprintf("Table %s created", stmt.TableName)), nil
}
