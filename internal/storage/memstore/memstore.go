package memstore

import (
	"fmt"
	"sort"
	"sync"

	"flatdb/internal/sql"
	"flatdb/internal/storage"
)

// Store keeps tables in memory. Engine and shell tests use it in place
// of the filestore.
//
// The Err fields make the matching operation fail with that error; tests
// use them to simulate I/O failures.
type Store struct {
	mu     sync.RWMutex
	tables map[string]*sql.Table

	LoadErr   error
	SaveErr   error
	DeleteErr error
}

var _ storage.Store = (*Store)(nil)

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		tables: make(map[string]*sql.Table),
	}
}

func (s *Store) Exists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tables[name]
	return ok
}

// Load returns a deep copy so callers cannot mutate stored data.
func (s *Store) Load(name string) (*sql.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	t, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("memstore: load %q: %w", name, storage.ErrNotFound)
	}
	return cloneTable(t), nil
}

func (s *Store) Save(name string, t *sql.Table) error {
	if err := storage.ValidateTableName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}

	// basic length validation for safety
	for _, r := range t.Rows {
		if len(r) != len(t.Columns) {
			return fmt.Errorf("memstore: column count mismatch: expected %d, got %d", len(t.Columns), len(r))
		}
	}

	s.tables[name] = cloneTable(t)
	return nil
}

func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	if _, ok := s.tables[name]; !ok {
		return fmt.Errorf("memstore: delete %q: %w", name, storage.ErrNotFound)
	}
	delete(s.tables, name)
	return nil
}

func (s *Store) ListTables() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func cloneTable(t *sql.Table) *sql.Table {
	out := sql.NewTable(t.Columns)
	out.Rows = make([]sql.Row, len(t.Rows))
	for i, r := range t.Rows {
		out.Rows[i] = r.Clone()
	}
	return out
}
