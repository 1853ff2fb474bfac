package quality

import (
	"fmt"

	"github.com/KaramelBytes/tablecheck-cli/internal/semantic"
)

// Materiality thresholds for recommendation priorities.
const (
	duplicateHighPct  = 5.0
	missingHighPct    = 80.0
	conformityWarnMax = 70.0
	lowCardinalityMax = 0.2
)

// Recommend derives prioritized action items from a finished report. It is
// deterministic: the same report always yields the same recommendations in
// the same order. Checks run in a fixed sequence (duplicates, missing,
// semantic, format, cardinality) and the result is grouped HIGH first, then
// MEDIUM, then LOW, preserving check order within each tier.
func Recommend(rep *Report) []Recommendation {
	var recs []Recommendation

	if rep.Duplicates.Count > 0 {
		priority := Medium
		if rep.Duplicates.Percentage >= duplicateHighPct {
			priority = High
		}
		recs = append(recs, Recommendation{
			Priority: priority,
			Category: "duplicates",
			Message: fmt.Sprintf("%d duplicate rows detected (%.1f%% of the dataset)",
				rep.Duplicates.Count, rep.Duplicates.Percentage),
			Action: "remove duplicate rows with `tablecheck clean`",
		})
	}

	for _, c := range rep.Columns {
		if c.MissingPercentage > missingHighPct {
			recs = append(recs, Recommendation{
				Priority: High,
				Category: "missing",
				Message: fmt.Sprintf("column %q is %.1f%% missing",
					c.Name, c.MissingPercentage),
				Action: "drop the column or review its data source",
			})
		}
	}

	for _, c := range rep.Columns {
		if c.InsufficientData {
			continue
		}
		if c.Conformity < conformityWarnMax {
			recs = append(recs, Recommendation{
				Priority: Medium,
				Category: "semantic",
				Message: fmt.Sprintf("column %q looks like %s but contains %s values (%.0f%% conformity)",
					c.Name, c.ExpectedType, c.DetectedType, c.Conformity),
				Action: "verify the column content or rename the column",
			})
		}
	}

	for _, c := range rep.Columns {
		if c.FormatKind != "" && c.FormatInvalidCount > 0 {
			recs = append(recs, Recommendation{
				Priority: Medium,
				Category: "format",
				Message: fmt.Sprintf("column %q has %d values failing %s format validation",
					c.Name, c.FormatInvalidCount, c.FormatKind),
				Action: "correct or remove the malformed values",
			})
		}
	}

	for _, c := range rep.Columns {
		if c.InsufficientData {
			continue
		}
		// Detect classifies low-cardinality content as categorical before
		// falling through to text, so both detected types qualify here.
		textLike := c.DetectedType == semantic.Text || c.DetectedType == semantic.Categorical
		if textLike && c.UniquenessRatio > 0 && c.UniquenessRatio < lowCardinalityMax {
			recs = append(recs, Recommendation{
				Priority: Low,
				Category: "cardinality",
				Message: fmt.Sprintf("column %q has few distinct values (%.0f%% unique)",
					c.Name, c.UniquenessRatio*100),
				Action: "consider treating the column as categorical",
			})
		}
	}

	return sortByPriority(recs)
}

// sortByPriority groups recommendations HIGH, MEDIUM, LOW while keeping
// insertion order inside each tier.
func sortByPriority(recs []Recommendation) []Recommendation {
	out := make([]Recommendation, 0, len(recs))
	for _, p := range []Priority{High, Medium, Low} {
		for _, r := range recs {
			if r.Priority == p {
				out = append(out, r)
			}
		}
	}
	return out
}
