package filestore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"flatdb/internal/sql"
)

type csvCodec struct{}

func (csvCodec) ext() string { return "csv" }

func (csvCodec) encode(w io.Writer, t *sql.Table) error {
	cw := csv.NewWriter(w)

	names := make([]string, len(t.Columns))
	tags := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
		tags[i] = c.Type.String()
	}
	if err := cw.Write(names); err != nil {
		return err
	}
	if err := cw.Write(tags); err != nil {
		return err
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row has %d values, table has %d columns", len(row), len(t.Columns))
		}
		for i, v := range row {
			text := v.StoredText()
			if strings.ContainsRune(text, '\r') {
				// the csv reader folds \r\n to \n inside quoted fields
				return fmt.Errorf("column %s: carriage return cannot be stored in csv", t.Columns[i].Name)
			}
			record[i] = text
		}

		// encoding/csv writes a lone empty field as a blank line, which
		// the reader skips; quote it explicitly so the row survives.
		if len(record) == 1 && record[0] == "" {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\"\"\n"); err != nil {
				return err
			}
			continue
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func (csvCodec) decode(r io.Reader, log *slog.Logger) (*sql.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	names, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing column name header")
		}
		return nil, err
	}
	tags, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing column type header")
		}
		return nil, err
	}

	cols := make([]sql.Column, len(names))
	for i, name := range names {
		typ := sql.TypeUnknown
		if i < len(tags) {
			typ = sql.ParseDataType(tags[i])
		}
		if typ == sql.TypeUnknown {
			log.Warn("unreadable column type, using Unknown", "column", name)
		}
		cols[i] = sql.Column{Name: name, Type: typ}
	}

	t := sql.NewTable(cols)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		t.Rows = append(t.Rows, buildRow(cols, record, line, log))
	}
	return t, nil
}
