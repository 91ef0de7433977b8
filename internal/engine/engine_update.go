package engine

import (
	"flatdb/internal/sql"
)

// applyUpdate returns a new rowset where all rows accepted by match are
// updated according to assigns. It returns the updated rows and the count
// of affected rows.
func applyUpdate(cols []sql.Column, rows []sql.Row, match matcher, assigns []sql.Assignment) ([]sql.Row, int, error) {
	// Precompute assignment indexes and check types
	assignIdx := make([]int, len(assigns))
	for i, a := range assigns {
		idx := sql.ColumnIndex(cols, a.Column)
		if idx < 0 {
			return nil, 0, columnDoesNotExist(a.Column)
		}
		if err := checkType(cols[idx], a.Value); err != nil {
			return nil, 0, err
		}
		assignIdx[i] = idx
	}

	// Copy rows so we don't mutate the original slice
	newRows := make([]sql.Row, len(rows))
	affected := 0

	for i, r := range rows {
		newRow := r.Clone()
		if match(r) {
			for j, a := range assigns {
				newRow[assignIdx[j]] = a.Value
			}
			affected++
		}
		newRows[i] = newRow
	}

	return newRows, affected, nil
}

// applyDelete returns a new rowset without the rows accepted by match,
// and the count of deleted rows.
func applyDelete(rows []sql.Row, match matcher) ([]sql.Row, int) {
	out := make([]sql.Row, 0, len(rows))
	deleted := 0

	for _, r := range rows {
		if match(r) {
			deleted++
			continue
		}
		out = append(out, r)
	}

	return out, deleted
}
