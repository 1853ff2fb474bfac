package semantic

// Conformity scores.
const (
	// ExactConformity is returned when expected and detected types agree,
	// without a per-value scan.
	ExactConformity = 100.0
	// CompatibleConformity is the partial score for expected types that
	// have no per-value predicate when the detected type is in their
	// compatibility set.
	CompatibleConformity = 85.0
	// BaselineConformity is the fallback partial score for predicate-less
	// expected types with an incompatible detected type.
	BaselineConformity = 50.0
)

// predicates gives the per-value consistency check for expected types that
// have one. Categorical and text have no value-level predicate.
var predicates = map[Type]func(string) bool{
	Numeric:    IsNumeric,
	Date:       IsDate,
	Boolean:    IsBoolean,
	Identifier: IsIdentifier,
}

// compatible lists detected types considered an acceptable rendering of a
// predicate-less expected type.
var compatible = map[Type][]Type{
	Categorical: {Text, Boolean},
	Text:        {Categorical},
}

// Conformity computes the percentage of non-null values consistent with the
// expected type. When expected == detected it short-circuits to 100 without
// scanning. When they differ and the expected type has a value predicate,
// the true consistent-value ratio is computed: a numeric column stored as
// text is still numerically parseable value by value, so partial conformity
// is common and mismatch never implies zero. A column with no non-null
// values has undefined conformity; the fixed policy is to return 0 with
// insufficient=true, and callers exclude such columns from aggregation.
func Conformity(expected, detected Type, values []string) (score float64, insufficient bool) {
	nonNull := make([]string, 0, len(values))
	for _, v := range values {
		if !isNullCell(v) {
			nonNull = append(nonNull, v)
		}
	}
	if len(nonNull) == 0 {
		return 0, true
	}
	if expected == detected {
		return ExactConformity, false
	}
	if pred, ok := predicates[expected]; ok {
		consistent := 0
		for _, v := range nonNull {
			if pred(v) {
				consistent++
			}
		}
		return float64(consistent) * 100.0 / float64(len(nonNull)), false
	}
	for _, t := range compatible[expected] {
		if detected == t {
			return CompatibleConformity, false
		}
	}
	return BaselineConformity, false
}
