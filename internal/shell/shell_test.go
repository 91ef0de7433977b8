package shell

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatdb/internal/engine"
	"flatdb/internal/logger"
	"flatdb/internal/storage/memstore"
)

// scriptedReader replays fixed input. A nil error entry means the line
// is returned normally.
type scriptedReader struct {
	lines   []string
	errs    []error
	prompts []string
	history []string
}

func (r *scriptedReader) Prompt(p string) (string, error) {
	r.prompts = append(r.prompts, p)
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line, err := r.lines[0], r.errs[0]
	r.lines, r.errs = r.lines[1:], r.errs[1:]
	return line, err
}

func (r *scriptedReader) AppendHistory(item string) {
	r.history = append(r.history, item)
}

func script(lines ...string) *scriptedReader {
	return &scriptedReader{lines: lines, errs: make([]error, len(lines))}
}

func newShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()
	eng := engine.New(memstore.New(), engine.WithLogger(logger.Discard()))
	require.NoError(t, eng.Start())
	var out bytes.Buffer
	return New(eng, &out, WithLogger(logger.Discard())), &out
}

func TestShell_RunStatements(t *testing.T) {
	sh, out := newShell(t)
	in := script(
		"CREATE TABLE foo (col1 int, col2 string);",
		"INSERT INTO foo VALUES (1, 'a'); INSERT INTO foo VALUES (2, 'b');",
		"SELECT col2",
		"  FROM foo WHERE col1 > 1;",
		"DELETE FROM foo;",
	)

	require.NoError(t, sh.Run(in))

	got := out.String()
	assert.Contains(t, got, "Table foo created\n")
	assert.Equal(t, 2, strings.Count(got, "1 row inserted into foo\n"))
	assert.Contains(t, got, "col2\n════\nb\n(1 row)\n")
	assert.Contains(t, got, "2 rows affected\n")

	assert.Equal(t, []string{Prompt, Prompt, Prompt, ContinuationPrompt, Prompt, Prompt}, in.prompts)
	assert.Len(t, in.history, 5)
}

func TestShell_ErrorsDoNotEndSession(t *testing.T) {
	sh, out := newShell(t)
	in := script(
		"SELECT * FROM missing;",
		"SELEC * FROM foo;",
		"CREATE TABLE foo (a int);",
	)

	require.NoError(t, sh.Run(in))

	got := out.String()
	assert.Contains(t, got, "Error: table missing was not found\n")
	assert.Contains(t, got, "1 | SELEC * FROM foo;\n")
	assert.Contains(t, got, "  | ^^^^^ expected a statement")
	assert.Contains(t, got, "Table foo created\n")
}

func TestShell_AbortDiscardsPendingInput(t *testing.T) {
	sh, out := newShell(t)
	in := &scriptedReader{
		lines: []string{"CREATE TABLE foo (a int", "", "CREATE TABLE bar (a int);"},
		errs:  []error{nil, liner.ErrPromptAborted, nil},
	}

	require.NoError(t, sh.Run(in))

	assert.Equal(t, "Table bar created\n\n", out.String())
}

func TestShell_MetaCommands(t *testing.T) {
	sh, out := newShell(t)
	in := script(
		"CREATE TABLE zeta (a int);",
		"CREATE TABLE alpha (id int, name string);",
		".tables",
		".schema alpha",
		".schema",
		".schema nope",
		".bogus",
		".help",
		".exit",
		"DROP TABLE alpha;",
	)

	require.NoError(t, sh.Run(in))

	got := out.String()
	assert.Contains(t, got, "alpha\nzeta\n")
	assert.Contains(t, got, "CREATE TABLE alpha (id INT, name STRING);\n")
	assert.Contains(t, got, "usage: .schema <table>\n")
	assert.Contains(t, got, "Error: table nope was not found\n")
	assert.Contains(t, got, "unknown command: .bogus")
	assert.Contains(t, got, "keep a string literal holding ';' on one line")
	assert.NotContains(t, got, "dropped", "input after .exit must not run")
}

func TestShell_ExecSQLStopsAtFirstError(t *testing.T) {
	sh, out := newShell(t)

	err := sh.ExecSQL("CREATE TABLE t (a int); INSERT INTO t VALUES ('x'); INSERT INTO t VALUES (1);")
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrTypeDoesNotMatch)

	assert.NotContains(t, out.String(), "inserted")

	out.Reset()
	require.NoError(t, sh.ExecSQL("SELECT * FROM t;"))
	assert.Contains(t, out.String(), "(0 rows)")
}

func TestShell_ReadErrorIsReturned(t *testing.T) {
	sh, _ := newShell(t)
	boom := errors.New("tty gone")
	in := &scriptedReader{lines: []string{""}, errs: []error{boom}}

	assert.ErrorIs(t, sh.Run(in), boom)
}

type memHistory struct {
	items []string
}

func (h *memHistory) ReadHistory(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	h.items = strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	return len(h.items), nil
}

func (h *memHistory) WriteHistory(w io.Writer) (int, error) {
	for _, it := range h.items {
		if _, err := io.WriteString(w, it+"\n"); err != nil {
			return 0, err
		}
	}
	return len(h.items), nil
}

func TestHistory_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")

	require.NoError(t, loadHistory(&memHistory{}, path), "missing file is not an error")

	require.NoError(t, saveHistory(&memHistory{items: []string{"SELECT * FROM a;", ".tables"}}, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM a;\n.tables\n", string(data))

	h := &memHistory{}
	require.NoError(t, loadHistory(h, path))
	assert.Equal(t, []string{"SELECT * FROM a;", ".tables"}, h.items)

	assert.NoError(t, saveHistory(h, ""))
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestShell_ErrorReportWriteFailure(t *testing.T) {
	eng := engine.New(memstore.New(), engine.WithLogger(logger.Discard()))
	require.NoError(t, eng.Start())
	sh := New(eng, failingWriter{}, WithLogger(logger.Discard()))

	err := sh.ExecSQL("SELECT * FROM missing;")
	require.Error(t, err)
	assert.ErrorContains(t, err, "write error report: stdout closed")
	assert.NotErrorIs(t, err, engine.ErrTableNotFound)

	err = sh.ExecSQL("SELEC;")
	assert.ErrorContains(t, err, "write error report")

	err = sh.Run(script(".schema missing", "CREATE TABLE t (a int);"))
	assert.ErrorContains(t, err, "write error report")
	tables, lerr := eng.ListTables()
	require.NoError(t, lerr)
	assert.Empty(t, tables, "the session ends when output is gone")
}
