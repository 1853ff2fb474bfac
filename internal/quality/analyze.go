package quality

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/KaramelBytes/tablecheck-cli/internal/semantic"
	"github.com/KaramelBytes/tablecheck-cli/internal/table"
)

// Analyze runs the full inspection pass over a table and returns a report:
// per-column semantic profiles, dataset-level duplicate and missing
// statistics, the derived quality score, and recommendations. The table is
// only read, never mutated.
func Analyze(t *table.Table, sourceFile string) (*Report, error) {
	if t == nil || t.NumRows() == 0 {
		return nil, &InputError{Reason: "dataset contains no rows"}
	}
	if t.NumCols() == 0 {
		return nil, &InputError{Reason: "dataset contains no columns"}
	}

	rep := &Report{
		ID:           uuid.New().String(),
		SourceFile:   sourceFile,
		GeneratedAt:  time.Now().UTC(),
		TotalRows:    t.NumRows(),
		TotalColumns: t.NumCols(),
	}

	dupCount := t.DuplicateCount()
	rep.Duplicates = DuplicateStats{
		Count:      dupCount,
		Percentage: float64(dupCount) * 100.0 / float64(t.NumRows()),
	}

	missCount, missPct := t.MissingStats()
	rep.MissingValues = MissingStats{Count: missCount, Percentage: missPct}

	rep.Columns = make([]ColumnProfile, 0, t.NumCols())
	for i, name := range t.Names() {
		profile := profileColumn(name, t.ColumnAt(i), t.NumRows())
		rep.Columns = append(rep.Columns, profile)
		if profile.InsufficientData {
			log.Warn().Err(&InsufficientDataError{Column: name}).Msg("column skipped in aggregation")
			continue
		}
		log.Debug().
			Str("column", name).
			Str("expected", profile.ExpectedType.String()).
			Str("detected", profile.DetectedType.String()).
			Float64("conformity", profile.Conformity).
			Msg("column profiled")
	}

	rep.QualityScore = computeScore(rep.Columns, rep.Duplicates, rep.MissingValues)
	rep.Recommendations = Recommend(rep)

	log.Debug().
		Int("score", rep.QualityScore).
		Int("recommendations", len(rep.Recommendations)).
		Msg("analysis complete")
	return rep, nil
}

// profileColumn computes one column's semantic and statistical profile.
func profileColumn(name string, values []string, totalRows int) ColumnProfile {
	expected := semantic.InferExpected(name)
	detected, _ := semantic.Detect(values)
	conformity, insufficient := semantic.Conformity(expected, detected, values)

	missing := table.MissingCount(values)
	nonNull := totalRows - missing

	var uniqueness float64
	if nonNull > 0 {
		uniqueness = float64(table.DistinctNonNull(values)) / float64(nonNull)
	}

	p := ColumnProfile{
		Name:              name,
		ExpectedType:      expected,
		DetectedType:      detected,
		Conformity:        conformity,
		MissingCount:      missing,
		MissingPercentage: float64(missing) * 100.0 / float64(totalRows),
		UniquenessRatio:   uniqueness,
		InsufficientData:  insufficient,
	}

	if kind := formatKindFor(name); kind != "" {
		p.FormatKind = kind
		for _, v := range values {
			if table.IsNull(v) {
				continue
			}
			if !validFormat(kind, v) {
				p.FormatInvalidCount++
			}
		}
	}
	return p
}
