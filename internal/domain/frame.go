package domain

// Frame is a parsed tabular dataset: a header row plus data rows of
// string cells. Typing (numeric, datetime) is inferred downstream by the
// profiler; the frame itself stays untyped the way a freshly read CSV is.
type Frame struct {
	Columns []string
	Rows    [][]string
}

// NumRows returns the number of data rows.
func (f *Frame) NumRows() int {
	return len(f.Rows)
}

// ColumnIndex returns the position of the named column, or -1.
func (f *Frame) ColumnIndex(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// ColumnValues returns all cell values of the named column.
// Returns nil if the column does not exist.
func (f *Frame) ColumnValues(name string) []string {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	vals := make([]string, 0, len(f.Rows))
	for _, row := range f.Rows {
		if idx < len(row) {
			vals = append(vals, row[idx])
		} else {
			vals = append(vals, "")
		}
	}
	return vals
}
