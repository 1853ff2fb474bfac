package table

import (
	"fmt"
	"strings"
)

// Table is a column-oriented in-memory dataset. Cells are kept as raw
// strings; emptiness/null is decided by IsNull so the original input is
// preserved for comparison and rollback.
type Table struct {
	names []string
	cols  [][]string
	rows  int
}

// nullTokens are cell values treated as missing in addition to blank cells.
var nullTokens = map[string]struct{}{
	"na": {}, "n/a": {}, "null": {}, "nan": {}, "none": {},
}

// IsNull reports whether a raw cell value represents a missing value.
func IsNull(v string) bool {
	s := strings.ToLower(strings.TrimSpace(v))
	if s == "" {
		return true
	}
	_, ok := nullTokens[s]
	return ok
}

// New creates an empty table with the given column names.
func New(names []string) (*Table, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("table requires at least one column")
	}
	seen := make(map[string]struct{}, len(names))
	clean := make([]string, len(names))
	for i, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			n = fmt.Sprintf("column_%d", i+1)
		}
		// disambiguate duplicate headers the way spreadsheets do
		base := n
		for k := 1; ; k++ {
			if _, dup := seen[n]; !dup {
				break
			}
			n = fmt.Sprintf("%s_%d", base, k)
		}
		seen[n] = struct{}{}
		clean[i] = n
	}
	cols := make([][]string, len(clean))
	return &Table{names: clean, cols: cols}, nil
}

// AppendRow adds one row. Short rows are padded with empty cells, long rows
// are truncated to the column count.
func (t *Table) AppendRow(row []string) {
	for i := range t.cols {
		if i < len(row) {
			t.cols[i] = append(t.cols[i], row[i])
		} else {
			t.cols[i] = append(t.cols[i], "")
		}
	}
	t.rows++
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.names) }

// Shape returns (rows, columns).
func (t *Table) Shape() (int, int) { return t.rows, len(t.names) }

// Names returns a copy of the column names in order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]string, bool) {
	for i, n := range t.names {
		if n == name {
			return t.cols[i], true
		}
	}
	return nil, false
}

// ColumnAt returns the values of the i-th column.
func (t *Table) ColumnAt(i int) []string { return t.cols[i] }

// Cell returns the value at (row, col index).
func (t *Table) Cell(row, col int) string { return t.cols[col][row] }

// SetCell overwrites the value at (row, col index).
func (t *Table) SetCell(row, col int, v string) { t.cols[col][row] = v }

// Row materializes the i-th row.
func (t *Table) Row(i int) []string {
	out := make([]string, len(t.cols))
	for j := range t.cols {
		out[j] = t.cols[j][i]
	}
	return out
}

// Clone returns a deep copy. Engines that mutate a table operate on a clone
// so the caller's original stays intact.
func (t *Table) Clone() *Table {
	cp := &Table{
		names: make([]string, len(t.names)),
		cols:  make([][]string, len(t.cols)),
		rows:  t.rows,
	}
	copy(cp.names, t.names)
	for i, c := range t.cols {
		cc := make([]string, len(c))
		copy(cc, c)
		cp.cols[i] = cc
	}
	return cp
}

// Rename replaces all column names. The count must match.
func (t *Table) Rename(names []string) error {
	if len(names) != len(t.names) {
		return fmt.Errorf("rename: got %d names for %d columns", len(names), len(t.names))
	}
	t.names = make([]string, len(names))
	copy(t.names, names)
	return nil
}

// DropColumns removes the named columns, ignoring names that do not exist.
func (t *Table) DropColumns(names []string) {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	var keptNames []string
	var keptCols [][]string
	for i, n := range t.names {
		if _, ok := drop[n]; ok {
			continue
		}
		keptNames = append(keptNames, n)
		keptCols = append(keptCols, t.cols[i])
	}
	t.names = keptNames
	t.cols = keptCols
}

// KeepRows retains only the rows where keep[i] is true.
func (t *Table) KeepRows(keep []bool) {
	for j := range t.cols {
		dst := t.cols[j][:0]
		for i, v := range t.cols[j] {
			if i < len(keep) && keep[i] {
				dst = append(dst, v)
			}
		}
		t.cols[j] = dst
	}
	n := 0
	for i := 0; i < t.rows && i < len(keep); i++ {
		if keep[i] {
			n++
		}
	}
	t.rows = n
}

// NonNull returns the non-null values of a column, in order.
func NonNull(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !IsNull(v) {
			out = append(out, v)
		}
	}
	return out
}

// MissingCount returns how many values of a column are null.
func MissingCount(values []string) int {
	n := 0
	for _, v := range values {
		if IsNull(v) {
			n++
		}
	}
	return n
}

// DistinctNonNull returns the number of distinct non-null values, comparing
// trimmed cell text.
func DistinctNonNull(values []string) int {
	seen := make(map[string]struct{})
	for _, v := range values {
		if IsNull(v) {
			continue
		}
		seen[strings.TrimSpace(v)] = struct{}{}
	}
	return len(seen)
}

// rowSep separates cell values in duplicate keys; it cannot occur in CSV or
// XLSX cell text.
const rowSep = "\x1f"

// DuplicateMask marks every row that is an exact duplicate of an earlier row.
func (t *Table) DuplicateMask() []bool {
	seen := make(map[string]struct{}, t.rows)
	mask := make([]bool, t.rows)
	var b strings.Builder
	for i := 0; i < t.rows; i++ {
		b.Reset()
		for j := range t.cols {
			if j > 0 {
				b.WriteString(rowSep)
			}
			b.WriteString(t.cols[j][i])
		}
		key := b.String()
		if _, ok := seen[key]; ok {
			mask[i] = true
		} else {
			seen[key] = struct{}{}
		}
	}
	return mask
}

// DuplicateCount returns the number of rows that duplicate an earlier row.
func (t *Table) DuplicateCount() int {
	n := 0
	for _, d := range t.DuplicateMask() {
		if d {
			n++
		}
	}
	return n
}

// MissingStats returns the total missing cell count and its percentage of
// all cells.
func (t *Table) MissingStats() (count int, percentage float64) {
	for _, c := range t.cols {
		count += MissingCount(c)
	}
	total := t.rows * len(t.cols)
	if total > 0 {
		percentage = float64(count) * 100.0 / float64(total)
	}
	return count, percentage
}
