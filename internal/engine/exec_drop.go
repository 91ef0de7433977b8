package engine

import (
	"fmt"

	"flatdb/internal/sql"
)

func (e *DBEngine) executeDrop(stmt *sql.DropTableStmt) (Response, error) {
	if err := e.store.Delete(stmt.TableName); err != nil {
		if isNotFound(err) {
			return nil, tableNotFound(stmt.TableName)
		}
		e.log.Warn("delete table failed", "table", stmt.TableName, "error", err)
		return nil, &ExecError{Kind: ErrTableDeleteFail, Name: stmt.TableName, Err: err}
	}
	return Message(fmt.Sprintf("Table %s dropped", stmt.TableName)), nil
}
