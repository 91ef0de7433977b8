package filestore

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"flatdb/internal/logger"
	"flatdb/internal/sql"
	"flatdb/internal/storage"
)

// Store is a simple on-disk storage engine.
// It stores one file per table in the given directory, named
// "<table>.<ext>" where ext depends on the format (csv or json).
//
// Every Save rewrites the whole file. The new content goes to a temporary
// file in the same directory which is then renamed over the old one.
type Store struct {
	dir    string
	format Format
	codec  codec
	log    *slog.Logger
}

var _ storage.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New creates a new Store keeping all tables in dir, which is created if
// needed.
func New(dir string, format Format, opts ...Option) (*Store, error) {
	c, err := codecFor(format)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create dir: %w", err)
	}

	s := &Store{
		dir:    dir,
		format: format,
		codec:  c,
		log:    logger.Get(),
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Dir returns the directory holding the table files.
func (s *Store) Dir() string { return s.dir }

// Format returns the on-disk format of this store.
func (s *Store) Format() Format { return s.format }

func (s *Store) tablePath(name string) (string, error) {
	if err := storage.ValidateTableName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name+"."+s.codec.ext()), nil
}

func (s *Store) Exists(name string) bool {
	path, err := s.tablePath(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads and decodes the table file. Cells that cannot be coerced
// to their column type load as Unknown instead of failing the table.
func (s *Store) Load(name string) (*sql.Table, error) {
	path, err := s.tablePath(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("filestore: load %q: %w", name, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("filestore: open table: %w", err)
	}
	defer f.Close()

	t, err := s.codec.decode(f, s.log.With("table", name))
	if err != nil {
		return nil, fmt.Errorf("filestore: decode %s: %w", path, err)
	}
	return t, nil
}

// Save writes the whole table, replacing any previous file.
func (s *Store) Save(name string, t *sql.Table) error {
	path, err := s.tablePath(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("filestore: create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := s.codec.encode(tmp, t); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("filestore: encode %q: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("filestore: sync %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("filestore: close %q: %w", name, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("filestore: replace %s: %w", path, err)
	}
	return nil
}

func (s *Store) Delete(name string) error {
	path, err := s.tablePath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("filestore: delete %q: %w", name, storage.ErrNotFound)
		}
		return fmt.Errorf("filestore: delete %q: %w", name, err)
	}
	return nil
}

// ListTables returns all tables of this store's format in the directory.
func (s *Store) ListTables() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("filestore: list tables: %w", err)
	}

	suffix := "." + s.codec.ext()
	var tables []string
	for _, ent := range entries {
		name := ent.Name()
		if ent.IsDir() || !strings.HasSuffix(name, suffix) {
			continue
		}
		// table name = filename without extension
		t := strings.TrimSuffix(name, suffix)
		if storage.ValidateTableName(t) == nil {
			tables = append(tables, t)
		}
	}
	sort.Strings(tables)
	return tables, nil
}
