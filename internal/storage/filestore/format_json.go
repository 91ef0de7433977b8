package filestore

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	json "github.com/goccy/go-json"

	"flatdb/internal/sql"
)

type jsonCodec struct{}

type jsonColumn struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type jsonTable struct {
	Columns []jsonColumn `json:"columns"`
	Rows    [][]any      `json:"rows"`
}

// jsonTableIn mirrors jsonTable but keeps cells raw so that each one can
// be coerced on its own.
type jsonTableIn struct {
	Columns []jsonColumn        `json:"columns"`
	Rows    [][]json.RawMessage `json:"rows"`
}

func (jsonCodec) ext() string { return "json" }

func (jsonCodec) encode(w io.Writer, t *sql.Table) error {
	out := jsonTable{
		Columns: make([]jsonColumn, len(t.Columns)),
		Rows:    make([][]any, len(t.Rows)),
	}
	for i, c := range t.Columns {
		out.Columns[i] = jsonColumn{Name: c.Name, Type: c.Type.String()}
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row has %d values, table has %d columns", len(row), len(t.Columns))
		}
		cells := make([]any, len(row))
		for j, v := range row {
			switch v.Type {
			case sql.TypeString:
				cells[j] = v.S
			case sql.TypeInt:
				cells[j] = v.I32
			default:
				if text := v.StoredText(); text != sql.UnknownText {
					cells[j] = text
				}
			}
		}
		out.Rows[i] = cells
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (jsonCodec) decode(r io.Reader, log *slog.Logger) (*sql.Table, error) {
	var in jsonTableIn
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, err
	}
	if len(in.Columns) == 0 {
		return nil, fmt.Errorf("missing columns")
	}

	cols := make([]sql.Column, len(in.Columns))
	for i, c := range in.Columns {
		typ := sql.ParseDataType(c.Type)
		if typ == sql.TypeUnknown {
			log.Warn("unreadable column type, using Unknown", "column", c.Name)
		}
		cols[i] = sql.Column{Name: c.Name, Type: typ}
	}

	t := sql.NewTable(cols)
	for i, raw := range in.Rows {
		cells := make([]string, len(raw))
		for j, cell := range raw {
			cells[j] = cellText(cell)
		}
		// rows are numbered from 1 like csv lines
		t.Rows = append(t.Rows, buildRow(cols, cells, i+1, log))
	}
	return t, nil
}

// cellText unwraps a JSON string; numbers and other literals keep their
// JSON text, and null becomes the Unknown placeholder.
func cellText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return sql.UnknownText
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	return string(trimmed)
}
