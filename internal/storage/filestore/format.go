package filestore

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"flatdb/internal/sql"
)

// Format selects how tables are laid out on disk.
type Format string

const (
	// FormatCSV is the flat tagged-text format:
	//
	//	record 1:    column names
	//	record 2:    column type tags (String | Int)
	//	record 3..N: one row each, every cell as plain text
	FormatCSV Format = "csv"

	// FormatJSON stores {"columns": [...], "rows": [[...], ...]}.
	FormatJSON Format = "json"
)

// ParseFormat accepts "csv" or "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("filestore: unknown format %q (want csv or json)", s)
}

type codec interface {
	ext() string
	encode(w io.Writer, t *sql.Table) error
	decode(r io.Reader, log *slog.Logger) (*sql.Table, error)
}

func codecFor(f Format) (codec, error) {
	switch f {
	case FormatCSV:
		return csvCodec{}, nil
	case FormatJSON:
		return jsonCodec{}, nil
	}
	return nil, fmt.Errorf("filestore: unknown format %q (want csv or json)", string(f))
}

// coerceCell turns stored text into a value of the column's type.
// ok is false when an Int column holds something that is not a 32-bit
// integer. Cells that cannot be coerced become Unknown but keep their
// text, so a later save does not overwrite it.
func coerceCell(text string, typ sql.DataType) (v sql.Value, ok bool) {
	switch typ {
	case sql.TypeString:
		return sql.StringValue(text), true
	case sql.TypeInt:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
		if err != nil {
			return sql.UnknownFrom(text), false
		}
		return sql.IntValue(int32(n)), true
	default:
		return sql.UnknownFrom(text), true
	}
}

// buildRow coerces one stored record against the schema. Short records
// are padded with Unknown and extra fields are dropped.
func buildRow(cols []sql.Column, cells []string, line int, log *slog.Logger) sql.Row {
	if len(cells) != len(cols) {
		log.Warn("row has wrong number of fields",
			"line", line, "want", len(cols), "got", len(cells))
	}

	row := make(sql.Row, len(cols))
	for i, col := range cols {
		if i >= len(cells) {
			row[i] = sql.UnknownValue()
			continue
		}
		v, ok := coerceCell(cells[i], col.Type)
		if !ok {
			log.Warn("cell does not match column type, loading as Unknown",
				"line", line, "column", col.Name, "type", col.Type.String(), "text", cells[i])
		}
		row[i] = v
	}
	return row
}
