package quality

import (
	"time"

	"github.com/KaramelBytes/tablecheck-cli/internal/semantic"
)

// ColumnProfile captures the semantic analysis of one column. Profiles are
// computed once per analysis pass and not mutated afterwards.
type ColumnProfile struct {
	Name              string        `json:"name" yaml:"name"`
	ExpectedType      semantic.Type `json:"expected_type" yaml:"expected_type"`
	DetectedType      semantic.Type `json:"detected_type" yaml:"detected_type"`
	Conformity        float64       `json:"conformity" yaml:"conformity"`
	MissingCount      int           `json:"missing_count" yaml:"missing_count"`
	MissingPercentage float64       `json:"missing_percentage" yaml:"missing_percentage"`
	UniquenessRatio   float64       `json:"uniqueness_ratio" yaml:"uniqueness_ratio"`
	InsufficientData  bool          `json:"insufficient_data,omitempty" yaml:"insufficient_data,omitempty"`

	// Format validation on name-matched columns (email, phone). Empty
	// FormatKind means no format rule applied.
	FormatKind         string `json:"format_kind,omitempty" yaml:"format_kind,omitempty"`
	FormatInvalidCount int    `json:"format_invalid_count,omitempty" yaml:"format_invalid_count,omitempty"`
}

// DuplicateStats summarizes exact duplicate rows.
type DuplicateStats struct {
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// MissingStats summarizes missing cells across the whole table.
type MissingStats struct {
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// Report is the read-only result of one analysis pass. Its quality score is
// always derived from the profiles and global statistics it carries, never
// set independently.
type Report struct {
	ID              string           `json:"id" yaml:"id"`
	SourceFile      string           `json:"source_file,omitempty" yaml:"source_file,omitempty"`
	GeneratedAt     time.Time        `json:"generated_at" yaml:"generated_at"`
	TotalRows       int              `json:"total_rows" yaml:"total_rows"`
	TotalColumns    int              `json:"total_columns" yaml:"total_columns"`
	QualityScore    int              `json:"quality_score" yaml:"quality_score"`
	Duplicates      DuplicateStats   `json:"duplicates" yaml:"duplicates"`
	MissingValues   MissingStats     `json:"missing_values" yaml:"missing_values"`
	Columns         []ColumnProfile  `json:"columns" yaml:"columns"`
	Recommendations []Recommendation `json:"recommendations" yaml:"recommendations"`
}

// Priority orders recommendations. The core emits the plain enumerated
// value; glyph and locale rendering belong to presentation layers.
type Priority string

const (
	High   Priority = "HIGH"
	Medium Priority = "MEDIUM"
	Low    Priority = "LOW"
)

// Recommendation is a prioritized, human-readable action item derived
// deterministically from a Report.
type Recommendation struct {
	Priority Priority `json:"priority" yaml:"priority"`
	Category string   `json:"category" yaml:"category"`
	Message  string   `json:"message" yaml:"message"`
	Action   string   `json:"action" yaml:"action"`
}
