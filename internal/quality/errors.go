package quality

import (
	"fmt"

	"github.com/KaramelBytes/tablecheck-cli/internal/semantic"
)

// InputError indicates the dataset cannot be analyzed at all (empty table,
// zero columns). It is fatal: no partial report is produced.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return fmt.Sprintf("invalid input: %s", e.Reason) }

// InsufficientDataError indicates a column has zero non-null values. It is
// non-fatal: the column is flagged in its profile and excluded from semantic
// aggregation rather than aborting the run.
type InsufficientDataError struct {
	Column string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("column %q has no non-null values", e.Column)
}

// UnsupportedTypeError indicates a requested coercion cannot be performed,
// e.g. non-numeric text with no parseable subset. The operation is skipped
// and logged; the run continues.
type UnsupportedTypeError struct {
	Column string
	Target semantic.Type
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("cannot coerce column %q to %s: %s", e.Column, e.Target, e.Reason)
}
