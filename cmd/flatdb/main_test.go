package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatdb/internal/engine"
	"flatdb/internal/sql"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExec_ArgsAndTables(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "", "--data-dir", dir, "exec",
		"CREATE TABLE users (id int, name string);",
		"INSERT INTO users VALUES (1, 'ann');")
	require.NoError(t, err)
	assert.Equal(t, "Table users created\n1 row inserted into users\n", out)
	assert.FileExists(t, filepath.Join(dir, "users.csv"))

	out, err = execute(t, "", "--data-dir", dir, "exec", "SELECT name FROM users WHERE id = 1;")
	require.NoError(t, err)
	assert.Equal(t, "name\n════\nann\n(1 row)\n", out)

	out, err = execute(t, "", "--data-dir", dir, "tables")
	require.NoError(t, err)
	assert.Equal(t, "users\n", out)
}

func TestExec_FileAndStdin(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(t.TempDir(), "setup.sql")
	require.NoError(t, os.WriteFile(script, []byte(
		"CREATE TABLE t (a int);\nINSERT INTO t VALUES (1);\nINSERT INTO t VALUES (2);\n"), 0o644))

	_, err := execute(t, "", "--data-dir", dir, "--format", "json", "exec", "-f", script)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "t.json"))

	out, err := execute(t, "DELETE FROM t WHERE a < 2;", "--data-dir", dir, "--format", "json", "exec", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, "1 row affected\n", out)
}

func TestExec_ParseErrorRunsNothing(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "", "--data-dir", dir, "exec",
		"CREATE TABLE t (a int);", "INSERT INTO t VALUES (1;")
	require.Error(t, err)

	var pe *sql.ParseError
	assert.ErrorAs(t, err, &pe)
	assert.Contains(t, out, "Error: expected ')'")
	assert.NoFileExists(t, filepath.Join(dir, "t.csv"))
}

func TestExec_StopsAtExecutionError(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "", "--data-dir", dir, "exec",
		"CREATE TABLE t (a int);", "INSERT INTO u VALUES (1);", "DROP TABLE t;")
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrTableNotFound)
	assert.Equal(t, "Table t created\nError: table u was not found\n", out)
	assert.FileExists(t, filepath.Join(dir, "t.csv"))
}

func TestExec_BadInvocation(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "", "--data-dir", dir, "exec")
	assert.ErrorContains(t, err, "no statements given")

	_, err = execute(t, "", "--data-dir", dir, "exec", "-f", "x.sql", "SELECT * FROM t;")
	assert.ErrorContains(t, err, "not both")

	_, err = execute(t, "", "--data-dir", dir, "--format", "xml", "tables")
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestExec_ErrorReportWriteFailure(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(failingWriter{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--data-dir", t.TempDir(), "exec", "SELECT * FROM missing;"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorContains(t, err, "write error report: pipe closed")

	var shown reportedError
	assert.False(t, errors.As(err, &shown), "main must still print this error")
}
