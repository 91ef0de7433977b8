package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"flatdb/internal/display"
	"flatdb/internal/sql"
)

func newExecCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "exec [statement...]",
		Short: "Execute SQL statements and exit",
		Long: "Execute SQL statements given as arguments, or read them from a file " +
			"with -f (use - for stdin). The whole script is parsed before anything runs.",
		Example: `  flatdb exec "CREATE TABLE t (id int, name string);"
  flatdb exec -f schema.sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readScript(cmd.InOrStdin(), file, args)
			if err != nil {
				return err
			}
			return a.runScript(cmd.OutOrStdout(), src)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read statements from file")
	return cmd
}

func readScript(stdin io.Reader, file string, args []string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", fmt.Errorf("exec: pass statements as arguments or with -f, not both")
	case file == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("exec: read stdin: %w", err)
		}
		return string(data), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("exec: %w", err)
		}
		return string(data), nil
	case len(args) == 0:
		return "", fmt.Errorf("exec: no statements given")
	default:
		return strings.Join(args, " "), nil
	}
}

// runScript parses all of src, then executes statements in order and
// stops at the first failure.
func (a *app) runScript(out io.Writer, src string) error {
	stmts, err := sql.ParseAll(src)
	if err != nil {
		return report(out, err, src)
	}

	for _, stmt := range stmts {
		resp, err := a.eng.Execute(stmt)
		if err != nil {
			return report(out, err, src)
		}
		if err := display.Response(out, resp); err != nil {
			return err
		}
	}
	return nil
}

// report prints err and marks it as shown. When printing fails the write
// error is returned so that main still reports something.
func report(out io.Writer, err error, src string) error {
	if werr := display.Error(out, err, src); werr != nil {
		return fmt.Errorf("exec: write error report: %w", werr)
	}
	return reportedError{err}
}
