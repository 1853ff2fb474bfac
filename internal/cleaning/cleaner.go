package cleaning

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/KaramelBytes/tablecheck-cli/internal/quality"
	"github.com/KaramelBytes/tablecheck-cli/internal/semantic"
	"github.com/KaramelBytes/tablecheck-cli/internal/table"
)

// Cleaner applies a fixed sequence of cleaning operations to a working copy
// of a table. The input table is never mutated; every applied or skipped
// operation is appended to the report's operation log.
type Cleaner struct {
	cfg Config
}

// New returns a Cleaner for the given configuration.
func New(cfg Config) *Cleaner {
	return &Cleaner{cfg: cfg}
}

// Clean runs the configured operations in their fixed order and returns the
// cleaned table with its report. Column removals run before row operations so
// duplicate detection sees the final column set.
func (c *Cleaner) Clean(t *table.Table, sourceFile string) (*table.Table, *Report) {
	work := t.Clone()
	rep := &Report{
		SourceFile: sourceFile,
		Mode:       c.cfg.Mode,
	}
	rep.OriginalShape.Rows, rep.OriginalShape.Columns = t.Shape()

	if c.cfg.RemoveEmptyColumns {
		c.removeEmptyColumns(work, rep)
	}
	if c.cfg.RemoveHighMissingColumns {
		c.removeHighMissingColumns(work, rep)
	}
	if c.cfg.RemoveDuplicateRows {
		c.removeDuplicateRows(work, rep)
	}
	if c.cfg.RemoveConstantColumns {
		c.removeConstantColumns(work, rep)
	}
	if c.cfg.NormalizeColumnNames {
		c.normalizeColumnNames(work, rep)
	}
	if c.cfg.StripWhitespace {
		c.stripWhitespace(work, rep)
	}
	if c.cfg.ImputeNumeric {
		c.imputeNumericMedian(work, rep)
	}
	if c.cfg.ImputeCategorical {
		c.imputeCategoricalMode(work, rep)
	}
	if c.cfg.CoerceTypes {
		c.coerceTypes(work, rep)
	}

	rep.CleanedShape.Rows, rep.CleanedShape.Columns = work.Shape()
	rep.RowsRemoved = rep.OriginalShape.Rows - rep.CleanedShape.Rows
	rep.ColumnsRemoved = rep.OriginalShape.Columns - rep.CleanedShape.Columns
	log.Debug().
		Str("mode", string(c.cfg.Mode)).
		Int("rows_removed", rep.RowsRemoved).
		Int("columns_removed", rep.ColumnsRemoved).
		Msg("cleaning complete")
	return work, rep
}

func (c *Cleaner) removeEmptyColumns(t *table.Table, rep *Report) {
	var drop []string
	for i, name := range t.Names() {
		if table.MissingCount(t.ColumnAt(i)) == t.NumRows() {
			drop = append(drop, name)
		}
	}
	if len(drop) > 0 {
		t.DropColumns(drop)
		rep.Operations = append(rep.Operations, Operation{
			Name:   "remove_empty_columns",
			Detail: strings.Join(drop, ", "),
			Count:  len(drop),
		})
	}
}

func (c *Cleaner) removeHighMissingColumns(t *table.Table, rep *Report) {
	if t.NumRows() == 0 {
		return
	}
	var drop []string
	for i, name := range t.Names() {
		ratio := float64(table.MissingCount(t.ColumnAt(i))) / float64(t.NumRows())
		// strictly above the threshold; empty columns are gone already
		if ratio > c.cfg.MissingThreshold {
			drop = append(drop, name)
		}
	}
	if len(drop) > 0 {
		t.DropColumns(drop)
		rep.Operations = append(rep.Operations, Operation{
			Name:   "remove_high_missing_columns",
			Detail: fmt.Sprintf("above %.0f%% missing: %s", c.cfg.MissingThreshold*100, strings.Join(drop, ", ")),
			Count:  len(drop),
		})
	}
}

func (c *Cleaner) removeDuplicateRows(t *table.Table, rep *Report) {
	mask := t.DuplicateMask()
	removed := 0
	keep := make([]bool, len(mask))
	for i, dup := range mask {
		keep[i] = !dup
		if dup {
			removed++
		}
	}
	if removed > 0 {
		t.KeepRows(keep)
		rep.Operations = append(rep.Operations, Operation{
			Name:   "remove_duplicate_rows",
			Detail: "exact duplicates, first occurrence kept",
			Count:  removed,
		})
	}
}

func (c *Cleaner) removeConstantColumns(t *table.Table, rep *Report) {
	var drop []string
	for i, name := range t.Names() {
		col := t.ColumnAt(i)
		if len(table.NonNull(col)) > 0 && table.DistinctNonNull(col) == 1 {
			drop = append(drop, name)
		}
	}
	if len(drop) > 0 {
		t.DropColumns(drop)
		rep.Operations = append(rep.Operations, Operation{
			Name:   "remove_constant_columns",
			Detail: strings.Join(drop, ", "),
			Count:  len(drop),
		})
	}
}

var nameCleanRe = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeName lowercases, replaces non-alphanumeric runs with underscores,
// and trims leading/trailing underscores.
func normalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = nameCleanRe.ReplaceAllString(n, "_")
	n = strings.Trim(n, "_")
	if n == "" {
		n = "column"
	}
	return n
}

func (c *Cleaner) normalizeColumnNames(t *table.Table, rep *Report) {
	old := t.Names()
	renamed := 0
	seen := make(map[string]struct{}, len(old))
	fresh := make([]string, len(old))
	for i, name := range old {
		n := normalizeName(name)
		base := n
		for k := 2; ; k++ {
			if _, dup := seen[n]; !dup {
				break
			}
			n = fmt.Sprintf("%s_%d", base, k)
		}
		seen[n] = struct{}{}
		fresh[i] = n
		if n != name {
			renamed++
		}
	}
	if renamed > 0 {
		if err := t.Rename(fresh); err != nil {
			rep.Operations = append(rep.Operations, Operation{
				Name:   "normalize_column_names",
				Detail: err.Error(),
				Failed: true,
			})
			return
		}
		rep.Operations = append(rep.Operations, Operation{
			Name:   "normalize_column_names",
			Detail: "lowercase snake_case",
			Count:  renamed,
		})
	}
}

func (c *Cleaner) stripWhitespace(t *table.Table, rep *Report) {
	changed := 0
	for col := 0; col < t.NumCols(); col++ {
		for row := 0; row < t.NumRows(); row++ {
			v := t.Cell(row, col)
			trimmed := strings.TrimSpace(v)
			if trimmed != v {
				t.SetCell(row, col, trimmed)
				changed++
			}
		}
	}
	if changed > 0 {
		rep.Operations = append(rep.Operations, Operation{
			Name:   "strip_whitespace",
			Detail: "leading/trailing whitespace removed",
			Count:  changed,
		})
	}
}

// median sorts a copy so the caller's slice order is preserved.
func median(vals []float64) float64 {
	s := make([]float64, len(vals))
	copy(s, vals)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// formatNumeric renders an imputed value without trailing noise; whole
// numbers print without a decimal part.
func formatNumeric(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (c *Cleaner) imputeNumericMedian(t *table.Table, rep *Report) {
	filled := 0
	var cols []string
	for i, name := range t.Names() {
		col := t.ColumnAt(i)
		missing := table.MissingCount(col)
		if missing == 0 || missing == t.NumRows() {
			continue
		}
		detected, _ := semantic.Detect(col)
		if detected != semantic.Numeric {
			continue
		}
		var nums []float64
		for _, v := range col {
			if f, ok := semantic.ParseNumeric(v); ok {
				nums = append(nums, f)
			}
		}
		if len(nums) == 0 {
			continue
		}
		m := formatNumeric(median(nums))
		for row := 0; row < t.NumRows(); row++ {
			if table.IsNull(t.Cell(row, i)) {
				t.SetCell(row, i, m)
				filled++
			}
		}
		cols = append(cols, name)
	}
	if filled > 0 {
		rep.Operations = append(rep.Operations, Operation{
			Name:   "impute_numeric_median",
			Detail: strings.Join(cols, ", "),
			Count:  filled,
		})
	}
}

// modeValue returns the most frequent non-null value; ties break toward the
// value seen first.
func modeValue(values []string) (string, bool) {
	counts := make(map[string]int)
	var order []string
	for _, v := range values {
		if table.IsNull(v) {
			continue
		}
		s := strings.TrimSpace(v)
		if counts[s] == 0 {
			order = append(order, s)
		}
		counts[s]++
	}
	if len(order) == 0 {
		return "", false
	}
	best := order[0]
	for _, v := range order {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best, true
}

func (c *Cleaner) imputeCategoricalMode(t *table.Table, rep *Report) {
	filled := 0
	var cols []string
	for i, name := range t.Names() {
		col := t.ColumnAt(i)
		missing := table.MissingCount(col)
		if missing == 0 || missing == t.NumRows() {
			continue
		}
		detected, _ := semantic.Detect(col)
		if detected != semantic.Categorical && detected != semantic.Boolean {
			continue
		}
		m, ok := modeValue(col)
		if !ok {
			continue
		}
		for row := 0; row < t.NumRows(); row++ {
			if table.IsNull(t.Cell(row, i)) {
				t.SetCell(row, i, m)
				filled++
			}
		}
		cols = append(cols, name)
	}
	if filled > 0 {
		rep.Operations = append(rep.Operations, Operation{
			Name:   "impute_categorical_mode",
			Detail: strings.Join(cols, ", "),
			Count:  filled,
		})
	}
}

// coerceTypes rewrites columns whose inferred type has a canonical textual
// form: numerics are reprinted in dot-decimal form and dates in ISO 8601.
// A column that cannot be coerced is skipped and logged as failed; the run
// continues.
func (c *Cleaner) coerceTypes(t *table.Table, rep *Report) {
	for i, name := range t.Names() {
		col := t.ColumnAt(i)
		expected := semantic.InferExpected(name)
		detected, insufficient := semantic.Detect(col)
		if insufficient {
			continue
		}

		var target semantic.Type
		switch {
		case expected == semantic.Numeric && detected != semantic.Numeric:
			target = semantic.Numeric
		case expected == semantic.Date && detected != semantic.Date:
			target = semantic.Date
		case detected == semantic.Numeric:
			target = semantic.Numeric
		case detected == semantic.Date:
			target = semantic.Date
		default:
			continue
		}

		converted, nulled, err := c.coerceColumn(t, i, target)
		if err != nil {
			rep.Operations = append(rep.Operations, Operation{
				Name:   "coerce_types",
				Detail: err.Error(),
				Failed: true,
			})
			log.Warn().Str("column", name).Err(err).Msg("coercion skipped")
			continue
		}
		detail := fmt.Sprintf("%s to %s", name, target)
		if nulled > 0 {
			detail = fmt.Sprintf("%s (%d unparseable values nulled)", detail, nulled)
		}
		rep.Operations = append(rep.Operations, Operation{
			Name:   "coerce_types",
			Detail: detail,
			Count:  converted,
		})
	}
}

// coerceColumn rewrites the parseable cells of one column into the canonical
// form of the target type. The coercion applies only when the parseable
// fraction of non-null values clears the detection dominance threshold; the
// unparseable minority is nulled so the column ends up uniformly typed.
// Below the threshold the column is left untouched and an
// UnsupportedTypeError is returned.
func (c *Cleaner) coerceColumn(t *table.Table, col int, target semantic.Type) (converted, nulled int, err error) {
	name := t.Names()[col]
	values := t.ColumnAt(col)

	var canonical func(string) (string, bool)
	switch target {
	case semantic.Numeric:
		canonical = func(v string) (string, bool) {
			f, ok := semantic.ParseNumeric(v)
			if !ok {
				return "", false
			}
			return formatNumeric(f), true
		}
	case semantic.Date:
		canonical = func(v string) (string, bool) {
			d, ok := semantic.ParseDate(v)
			if !ok {
				return "", false
			}
			return d.Format("2006-01-02"), true
		}
	default:
		return 0, 0, &quality.UnsupportedTypeError{Column: name, Target: target,
			Reason: "no canonical form"}
	}

	out := make([]string, len(values))
	var nonNull, parseable int
	for row, v := range values {
		if table.IsNull(v) {
			out[row] = v
			continue
		}
		nonNull++
		if canon, ok := canonical(v); ok {
			out[row] = canon
			parseable++
		} else {
			out[row] = ""
		}
	}
	if nonNull == 0 {
		return 0, 0, nil
	}
	if float64(parseable)/float64(nonNull) < semantic.DetectDominance {
		return 0, 0, &quality.UnsupportedTypeError{Column: name, Target: target,
			Reason: fmt.Sprintf("only %d of %d values parse", parseable, nonNull)}
	}
	for row := range out {
		t.SetCell(row, col, out[row])
	}
	return parseable, nonNull - parseable, nil
}
