package engine

import (
	"errors"
	"fmt"

	"flatdb/internal/sql"
	"flatdb/internal/storage"
)

// Execute takes a parsed SQL Statement and executes it using the engine.
// On success the table changes (if any) have been saved; on error
// nothing has been written.
func (e *DBEngine) Execute(stmt sql.Statement) (Response, error) {
	if !e.started {
		return nil, fmt.Errorf("engine not started")
	}

	var (
		resp Response
		err  error
	)
	switch s := stmt.(type) {
	case *sql.CreateTableStmt:
		resp, err = e.executeCreate(s)
	case *sql.DropTableStmt:
		resp, err = e.executeDrop(s)
	case *sql.InsertStmt:
		resp, err = e.executeInsert(s)
	case *sql.SelectStmt:
		resp, err = e.executeSelect(s)
	case *sql.UpdateStmt:
		resp, err = e.executeUpdate(s)
	case *sql.DeleteStmt:
		resp, err = e.executeDelete(s)
	default:
		return nil, fmt.Errorf("unsupported statement type %T", stmt)
	}

	if err != nil {
		e.log.Debug("statement failed", "statement", stmt.String(), "error", err)
		return nil, err
	}
	e.log.Debug("statement executed", "statement", stmt.String())
	return resp, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
