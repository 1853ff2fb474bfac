// Package semantic classifies tabular columns into coarse semantic types,
// both from the column name (expected type) and from the column content
// (detected type), and scores how well content conforms to expectation.
package semantic

// Type is a coarse content classification for a column.
type Type string

const (
	Numeric     Type = "numeric"
	Date        Type = "date"
	Identifier  Type = "identifier"
	Categorical Type = "categorical"
	Boolean     Type = "boolean"
	Text        Type = "text"
)

func (t Type) String() string { return string(t) }
