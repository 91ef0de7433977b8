package engine

import (
	"fmt"
	"log/slog"

	"flatdb/internal/logger"
	"flatdb/internal/sql"
	"flatdb/internal/storage"
)

// DBEngine is the main database engine struct.
// It runs parsed statements one at a time against a storage.Store; every
// statement reads whole tables and writes whole tables back.
type DBEngine struct {
	started bool
	store   storage.Store
	log     *slog.Logger
}

// Option configures a DBEngine.
type Option func(*DBEngine)

// WithLogger sets the engine's logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *DBEngine) { e.log = l }
}

// New creates a new DBEngine instance on top of store.
func New(store storage.Store, opts ...Option) *DBEngine {
	e := &DBEngine{
		started: false,
		store:   store,
		log:     logger.Get(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Start runs initialization steps for the engine.
func (e *DBEngine) Start() error {
	if e.started {
		return fmt.Errorf("engine already started")
	}
	e.started = true
	return nil
}

// ListTables returns the names of all tables in the store.
func (e *DBEngine) ListTables() ([]string, error) {
	if !e.started {
		return nil, fmt.Errorf("engine not started")
	}
	return e.store.ListTables()
}

// TableSchema returns the column definitions for a table.
func (e *DBEngine) TableSchema(name string) ([]sql.Column, error) {
	if !e.started {
		return nil, fmt.Errorf("engine not started")
	}
	t, err := e.loadTable(name)
	if err != nil {
		return nil, err
	}
	return t.Columns, nil
}

// loadTable reads a table, translating storage errors into ExecErrors.
func (e *DBEngine) loadTable(name string) (*sql.Table, error) {
	t, err := e.store.Load(name)
	if err != nil {
		if isNotFound(err) {
			return nil, tableNotFound(name)
		}
		e.log.Warn("load table failed", "table", name, "error", err)
		return nil, &ExecError{Kind: ErrTableOpenFail, Name: name, Err: err}
	}
	return t, nil
}

func (e *DBEngine) saveTable(name string, t *sql.Table) error {
	if err := e.store.Save(name, t); err != nil {
		e.log.Warn("save table failed", "table", name, "error", err)
		return &ExecError{Kind: ErrTableSaveFail, Name: name, Err: err}
	}
	return nil
}
