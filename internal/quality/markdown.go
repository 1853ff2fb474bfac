package quality

import (
	"fmt"
	"strings"
)

// Markdown renders a compact human-readable report suitable for terminals or
// standalone docs.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET QUALITY]\n")
	if r.SourceFile != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.SourceFile))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.TotalRows))
	b.WriteString(fmt.Sprintf("Columns: %d\n", r.TotalColumns))
	b.WriteString(fmt.Sprintf("Score: %d/100\n", r.QualityScore))
	b.WriteString(fmt.Sprintf("Duplicates: %d (%.1f%%)\n", r.Duplicates.Count, r.Duplicates.Percentage))
	b.WriteString(fmt.Sprintf("Missing cells: %d (%.1f%%)\n\n", r.MissingValues.Count, r.MissingValues.Percentage))

	b.WriteString("[COLUMNS]\n")
	for _, c := range r.Columns {
		b.WriteString(fmt.Sprintf("- %s: expected %s, detected %s (conformity %.0f%%, missing %.1f%%)",
			c.Name, c.ExpectedType, c.DetectedType, c.Conformity, c.MissingPercentage))
		if c.InsufficientData {
			b.WriteString(" — no data")
		}
		if c.FormatKind != "" && c.FormatInvalidCount > 0 {
			b.WriteString(fmt.Sprintf("; %d invalid %s values", c.FormatInvalidCount, c.FormatKind))
		}
		b.WriteString("\n")
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("\n[RECOMMENDATIONS]\n")
		for _, rec := range r.Recommendations {
			b.WriteString(fmt.Sprintf("- [%s] %s: %s\n", rec.Priority, rec.Message, rec.Action))
		}
	}
	return b.String()
}
