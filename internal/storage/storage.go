package storage

import (
	"errors"
	"fmt"
	"unicode"

	"flatdb/internal/sql"
)

var (
	// ErrNotFound is returned by Load and Delete when no table is stored
	// under the given name.
	ErrNotFound = errors.New("table not found")

	// ErrInvalidTableName is returned for names that cannot be mapped to
	// a file name.
	ErrInvalidTableName = errors.New("invalid table name")
)

// Store persists whole tables by name.
//
// There is no partial write: every mutation loads the complete table,
// changes it in memory and saves the complete result back.
//
// Implementations:
//   - filestore: one file per table on disk (csv or json)
//   - memstore:  in-memory, for tests
type Store interface {
	// Exists reports whether a table is stored under name.
	Exists(name string) bool

	// Load reads the complete table. A missing table yields ErrNotFound.
	Load(name string) (*sql.Table, error)

	// Save replaces whatever is stored under name with t.
	Save(name string, t *sql.Table) error

	// Delete removes the table. A missing table yields ErrNotFound.
	Delete(name string) error

	// ListTables returns the names of all stored tables, sorted.
	ListTables() ([]string, error)
}

// ValidateTableName checks that name consists only of letters, digits and
// underscores, which keeps it safe to use as a file name.
func ValidateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTableName)
	}
	for _, r := range name {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("%w: %q", ErrInvalidTableName, name)
		}
	}
	return nil
}
