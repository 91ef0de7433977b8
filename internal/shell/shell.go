// Package shell is the interactive front end: it reads lines, executes
// the statements they contain and prints results.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"flatdb/internal/display"
	"flatdb/internal/engine"
	"flatdb/internal/logger"
	"flatdb/internal/sql"
)

const (
	Prompt             = ">> "
	ContinuationPrompt = ".. "
)

// errExit is returned by meta commands that end the session.
var errExit = errors.New("exit")

// Shell executes SQL text and meta commands against one engine and
// writes everything it has to say to out.
type Shell struct {
	eng *engine.DBEngine
	out io.Writer
	log *slog.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the shell's logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) { s.log = l }
}

// New creates a Shell. The engine must already be started.
func New(eng *engine.DBEngine, out io.Writer, opts ...Option) *Shell {
	s := &Shell{eng: eng, out: out, log: logger.Get()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ExecSQL parses and executes every statement in src in order, printing
// each result. It stops at the first parse or execution error, prints it
// and returns it. Statements before the failing one stay applied.
func (s *Shell) ExecSQL(src string) error {
	rest := src
	for strings.TrimSpace(rest) != "" {
		stmt, next, err := sql.ParseStatement(rest)
		if err != nil {
			return s.report(err, rest)
		}
		rest = next

		resp, err := s.eng.Execute(stmt)
		if err != nil {
			return s.report(err, src)
		}
		if err := display.Response(s.out, resp); err != nil {
			return fmt.Errorf("shell: write result: %w", err)
		}
	}
	return nil
}

// report prints err against src and returns it. If printing fails, the
// write error is returned instead.
func (s *Shell) report(err error, src string) error {
	if werr := display.Error(s.out, err, src); werr != nil {
		return fmt.Errorf("shell: write error report: %w", werr)
	}
	return err
}

// ExecMeta runs a dot command such as ".tables". It returns errExit for
// ".exit" and ".quit", and an error only when output cannot be written.
func (s *Shell) ExecMeta(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch strings.ToLower(fields[0]) {
	case ".help":
		s.help()
	case ".exit", ".quit":
		return errExit
	case ".tables":
		names, err := s.eng.ListTables()
		if err != nil {
			return s.reportMeta(err, line)
		}
		for _, n := range names {
			fmt.Fprintln(s.out, n)
		}
	case ".schema":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "usage: .schema <table>")
			return nil
		}
		cols, err := s.eng.TableSchema(fields[1])
		if err != nil {
			return s.reportMeta(err, line)
		}
		fmt.Fprintln(s.out, (&sql.CreateTableStmt{TableName: fields[1], Columns: cols}).String())
	default:
		fmt.Fprintf(s.out, "unknown command: %s (try .help)\n", fields[0])
	}
	return nil
}

// reportMeta prints a failed meta command. The command's own error is
// not returned: it has been shown and the session goes on.
func (s *Shell) reportMeta(err error, line string) error {
	if werr := display.Error(s.out, err, line); werr != nil {
		return fmt.Errorf("shell: write error report: %w", werr)
	}
	return nil
}

func (s *Shell) help() {
	fmt.Fprintln(s.out, "Statements end with ';' and may span several lines. Input runs as soon")
	fmt.Fprintln(s.out, "as a line contains ';', so keep a string literal holding ';' on one line:")
	fmt.Fprintln(s.out, "  CREATE TABLE t (id int, name string);")
	fmt.Fprintln(s.out, "  DROP TABLE t;")
	fmt.Fprintln(s.out, "  INSERT INTO t [(col, ...)] VALUES (v, ...);")
	fmt.Fprintln(s.out, "  SELECT * | col, ... FROM t [WHERE ...];")
	fmt.Fprintln(s.out, "  UPDATE t SET col = v, ... [WHERE ...];")
	fmt.Fprintln(s.out, "  DELETE FROM t [WHERE ...];")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Meta commands:")
	fmt.Fprintln(s.out, "  .tables          List tables")
	fmt.Fprintln(s.out, "  .schema <table>  Show a table's columns")
	fmt.Fprintln(s.out, "  .help            Show this help message")
	fmt.Fprintln(s.out, "  .exit            Exit the shell")
}
