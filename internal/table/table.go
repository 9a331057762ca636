package table

// Table is a loaded tabular dataset: ordered column names plus string rows.
// Rows may be ragged; missing cells read as "".
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Values returns the full column as a slice, padding ragged rows with "".
func (t *Table) Values(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, Cell(row, idx))
	}
	return out
}

func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
