package cleaning

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/tablecheck-cli/internal/quality"
	"github.com/KaramelBytes/tablecheck-cli/internal/table"
)

func buildTable(t *testing.T, names []string, rows [][]string) *table.Table {
	t.Helper()
	tb, err := table.New(names)
	require.NoError(t, err)
	for _, r := range rows {
		tb.AppendRow(r)
	}
	return tb
}

func opNames(rep *Report) []string {
	out := make([]string, 0, len(rep.Operations))
	for _, op := range rep.Operations {
		out = append(out, op.Name)
	}
	return out
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	tb := buildTable(t, []string{"A Name ", "b"}, [][]string{
		{" x ", "1"},
		{" x ", "1"},
	})
	_, _ = New(AutoConfig()).Clean(tb, "in.csv")

	assert.Equal(t, 2, tb.NumRows(), "input table must stay intact")
	assert.Equal(t, " x ", tb.Cell(0, 0))
	// header whitespace is trimmed at construction, before cleaning runs
	assert.Equal(t, "A Name", tb.Names()[0])
}

func TestCleanRemovesDuplicates(t *testing.T) {
	tb := buildTable(t, []string{"a", "b"}, [][]string{
		{"1", "x"},
		{"2", "y"},
		{"1", "x"},
	})
	cleaned, rep := New(AutoConfig()).Clean(tb, "in.csv")

	assert.Equal(t, 2, cleaned.NumRows())
	assert.Equal(t, 1, rep.RowsRemoved)
	assert.Contains(t, opNames(rep), "remove_duplicate_rows")
}

func TestCleanDropsEmptyAndHighMissingColumns(t *testing.T) {
	tb := buildTable(t, []string{"keep", "empty", "sparse"}, [][]string{
		{"1", "", ""},
		{"2", "NA", ""},
		{"3", "", ""},
		{"4", "", ""},
		{"5", "", ""},
		{"6", "", "only one"},
	})
	cleaned, rep := New(AutoConfig()).Clean(tb, "in.csv")

	assert.Equal(t, 1, cleaned.NumCols())
	assert.Equal(t, 2, rep.ColumnsRemoved)
	names := opNames(rep)
	assert.Contains(t, names, "remove_empty_columns")
	assert.Contains(t, names, "remove_high_missing_columns")
}

func TestCleanAutoKeepsModeratelyMissingColumn(t *testing.T) {
	// 60% missing: dropped in aggressive mode (threshold 0.5) but kept in
	// auto mode (threshold 0.8).
	rows := [][]string{
		{"1", "a"}, {"2", ""}, {"3", ""}, {"4", ""}, {"5", "b"},
	}
	auto, _ := New(AutoConfig()).Clean(buildTable(t, []string{"id_code", "half"}, rows), "in.csv")
	assert.Equal(t, 2, auto.NumCols())

	aggr, _ := New(AggressiveConfig()).Clean(buildTable(t, []string{"id_code", "half"}, rows), "in.csv")
	assert.Equal(t, 1, aggr.NumCols())
}

func TestCleanNormalizesColumnNames(t *testing.T) {
	tb := buildTable(t, []string{"First Name", "Prix (EUR)", "ok_name"}, [][]string{
		{"a", "1", "x"},
	})
	cleaned, _ := New(AutoConfig()).Clean(tb, "in.csv")
	assert.Equal(t, []string{"first_name", "prix_eur", "ok_name"}, cleaned.Names())
}

func TestCleanStripsWhitespace(t *testing.T) {
	tb := buildTable(t, []string{"a"}, [][]string{
		{"  padded  "},
		{"clean"},
	})
	cleaned, rep := New(AutoConfig()).Clean(tb, "in.csv")
	assert.Equal(t, "padded", cleaned.Cell(0, 0))
	assert.Contains(t, opNames(rep), "strip_whitespace")
}

func TestCleanImputesNumericMedian(t *testing.T) {
	tb := buildTable(t, []string{"score"}, [][]string{
		{"10"}, {"20"}, {""}, {"30"}, {"40"},
	})
	cleaned, rep := New(AutoConfig()).Clean(tb, "in.csv")

	assert.Equal(t, "25", cleaned.Cell(2, 0), "median of 10,20,30,40")
	assert.Contains(t, opNames(rep), "impute_numeric_median")
}

func TestCleanImputesCategoricalMode(t *testing.T) {
	// unique first column keeps duplicate removal out of the way
	rows := make([][]string, 0, 20)
	for i := 0; i < 20; i++ {
		color := "red"
		switch {
		case i == 19:
			color = ""
		case i >= 12:
			color = "blue"
		}
		rows = append(rows, []string{fmt.Sprintf("row%02d", i), color})
	}
	tb := buildTable(t, []string{"label", "color"}, rows)

	cleaned, rep := New(AutoConfig()).Clean(tb, "in.csv")
	assert.Equal(t, "red", cleaned.Cell(19, 1))
	assert.Contains(t, opNames(rep), "impute_categorical_mode")
}

func TestCleanAggressiveDropsConstantColumns(t *testing.T) {
	tb := buildTable(t, []string{"a", "const"}, [][]string{
		{"1", "same"},
		{"2", "same"},
		{"3", "same"},
	})
	auto, _ := New(AutoConfig()).Clean(tb, "in.csv")
	assert.Equal(t, 2, auto.NumCols(), "auto mode keeps constant columns")

	aggr, rep := New(AggressiveConfig()).Clean(tb, "in.csv")
	assert.Equal(t, 1, aggr.NumCols())
	assert.Contains(t, opNames(rep), "remove_constant_columns")
}

func TestCleanAggressiveCoercesTypes(t *testing.T) {
	tb := buildTable(t, []string{"amount", "when_date"}, [][]string{
		{"1 234,5", "15/01/2024"},
		{"7", "2024-02-20"},
	})
	cleaned, _ := New(AggressiveConfig()).Clean(tb, "in.csv")

	assert.Equal(t, "1234.5", cleaned.Cell(0, 0))
	assert.Equal(t, "7", cleaned.Cell(1, 0))
	assert.Equal(t, "2024-01-15", cleaned.Cell(0, 1))
	assert.Equal(t, "2024-02-20", cleaned.Cell(1, 1))
}

func TestCleanCoercionNullsUnparseableMinority(t *testing.T) {
	tb := buildTable(t, []string{"amount"}, [][]string{
		{"10"}, {"20"}, {"7,5"}, {"40"}, {"50"}, {"60"}, {"70"}, {"not a number"},
	})
	cleaned, rep := New(AggressiveConfig()).Clean(tb, "in.csv")

	// 7 of 8 values parse: the majority is normalized, the typo is nulled
	assert.Equal(t, "7.5", cleaned.Cell(2, 0))
	assert.Equal(t, "", cleaned.Cell(7, 0))

	var coerce *Operation
	for i := range rep.Operations {
		if rep.Operations[i].Name == "coerce_types" {
			coerce = &rep.Operations[i]
		}
	}
	require.NotNil(t, coerce)
	assert.False(t, coerce.Failed)
	assert.Equal(t, 7, coerce.Count)
	assert.Contains(t, coerce.Detail, "nulled")
}

func TestCleanCoercionBelowThresholdIsLoggedNotFatal(t *testing.T) {
	tb := buildTable(t, []string{"amount"}, [][]string{
		{"10"}, {"abc"}, {"def"}, {"ghi"}, {"jkl"},
	})
	cleaned, rep := New(AggressiveConfig()).Clean(tb, "in.csv")

	// only 1 of 5 values parses: the column survives untouched
	assert.Equal(t, "abc", cleaned.Cell(1, 0))
	var failed *Operation
	for i := range rep.Operations {
		if rep.Operations[i].Name == "coerce_types" && rep.Operations[i].Failed {
			failed = &rep.Operations[i]
		}
	}
	require.NotNil(t, failed, "failed coercion must be logged")
}

func TestCleanIdempotent(t *testing.T) {
	tb := buildTable(t, []string{"Name ", "score"}, [][]string{
		{" alice ", "10"},
		{" alice ", "10"},
		{"bob", ""},
		{"carol", "30"},
	})
	cleaner := New(AutoConfig())
	once, _ := cleaner.Clean(tb, "in.csv")
	twice, rep := cleaner.Clean(once, "in.csv")

	assert.Equal(t, once.NumRows(), twice.NumRows())
	assert.Equal(t, once.Names(), twice.Names())
	for i := 0; i < once.NumRows(); i++ {
		assert.Equal(t, once.Row(i), twice.Row(i))
	}
	assert.Empty(t, rep.Operations, "second pass must be a no-op")
}

func TestCleanReportShapes(t *testing.T) {
	tb := buildTable(t, []string{"a", "empty"}, [][]string{
		{"1", ""},
		{"1", ""},
	})
	_, rep := New(AutoConfig()).Clean(tb, "in.csv")

	assert.Equal(t, Shape{Rows: 2, Columns: 2}, rep.OriginalShape)
	assert.Equal(t, Shape{Rows: 1, Columns: 1}, rep.CleanedShape)
	assert.Equal(t, 1, rep.RowsRemoved)
	assert.Equal(t, 1, rep.ColumnsRemoved)
}

func TestCleanImprovesQualityScore(t *testing.T) {
	tb := buildTable(t, []string{"customer_id", "age", "empty"}, [][]string{
		{"10001", "34", ""},
		{"10001", "34", ""},
		{"10002", "", ""},
		{"10003", "45", ""},
		{"10004", "52", ""},
	})
	before, err := quality.Analyze(tb, "in.csv")
	require.NoError(t, err)

	cleaned, _ := New(AutoConfig()).Clean(tb, "in.csv")
	after, err := quality.Analyze(cleaned, "in.csv")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, after.QualityScore, before.QualityScore,
		"cleaning must never lower the quality score")
}
