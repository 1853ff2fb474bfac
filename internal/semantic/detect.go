package semantic

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Detection thresholds. The sample is the first DetectSampleSize non-null
// values of a column, which keeps detection deterministic on large datasets.
const (
	// DetectSampleSize bounds how many non-null values are inspected.
	DetectSampleSize = 1000
	// DetectDominance is the fraction of sampled values that must match a
	// parse-based check for it to classify the column.
	DetectDominance = 0.70
	// CategoricalMaxRatio is the distinct/total ceiling below which a
	// column with no dominant parse type is considered categorical.
	CategoricalMaxRatio = 0.20
)

var booleanTokens = map[string]struct{}{
	"true": {}, "false": {}, "yes": {}, "no": {}, "oui": {}, "non": {},
	"1": {}, "0": {}, "t": {}, "f": {}, "y": {}, "n": {}, "vrai": {}, "faux": {},
}

// IsBoolean reports whether a value belongs to a common two-valued domain.
func IsBoolean(v string) bool {
	_, ok := booleanTokens[strings.ToLower(strings.TrimSpace(v))]
	return ok
}

// ParseNumeric parses a cell as a float, tolerating comma decimals and
// grouping spaces.
func ParseNumeric(v string) (float64, bool) {
	raw := strings.TrimSpace(v)
	if raw == "" {
		return 0, false
	}
	raw = strings.ReplaceAll(raw, "\u00A0", "")
	raw = strings.ReplaceAll(raw, " ", "")
	raw = strings.ReplaceAll(raw, ",", ".")
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsNumeric reports whether a value parses as an integer or float.
func IsNumeric(v string) bool {
	_, ok := ParseNumeric(v)
	return ok
}

// dateLayouts is the fixed set of accepted date formats.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
}

// ParseDate parses a cell under the accepted date layouts.
func ParseDate(v string) (time.Time, bool) {
	s := strings.TrimSpace(v)
	if s == "" {
		return time.Time{}, false
	}
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsDate reports whether a value parses under one of the accepted layouts.
func IsDate(v string) bool {
	_, ok := ParseDate(v)
	return ok
}

var (
	identAlnumRe  = regexp.MustCompile(`^[A-Za-z0-9\-_]{5,}$`)
	identDigitsRe = regexp.MustCompile(`^\d{5,}$`)
	identUUIDRe   = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}`)
)

// IsIdentifier reports whether a value is shaped like an identifier: a long
// digit run, a UUID prefix, or an alphanumeric code containing at least one
// digit (plain words do not qualify).
func IsIdentifier(v string) bool {
	s := strings.TrimSpace(v)
	if identDigitsRe.MatchString(s) || identUUIDRe.MatchString(s) {
		return true
	}
	return identAlnumRe.MatchString(s) && strings.ContainsAny(s, "0123456789")
}

// isNullCell mirrors the table package's null semantics so detection can run
// on raw column slices without importing it.
func isNullCell(v string) bool {
	s := strings.ToLower(strings.TrimSpace(v))
	switch s {
	case "", "na", "n/a", "null", "nan", "none":
		return true
	}
	return false
}

// sampleNonNull returns the first DetectSampleSize non-null values.
func sampleNonNull(values []string) []string {
	out := make([]string, 0, min(len(values), DetectSampleSize))
	for _, v := range values {
		if isNullCell(v) {
			continue
		}
		out = append(out, v)
		if len(out) == DetectSampleSize {
			break
		}
	}
	return out
}

// Detect classifies column content into a semantic type. Checks run in a
// fixed priority order: boolean, numeric, date, identifier, then a
// cardinality test for categorical, defaulting to text. A column with no
// non-null values is classified as text with insufficient=true instead of
// erroring.
func Detect(values []string) (t Type, insufficient bool) {
	sample := sampleNonNull(values)
	if len(sample) == 0 {
		return Text, true
	}

	var boolCnt, numCnt, dateCnt, identCnt int
	distinct := make(map[string]struct{}, len(sample))
	for _, v := range sample {
		if IsBoolean(v) {
			boolCnt++
		}
		if IsNumeric(v) {
			numCnt++
		}
		if IsDate(v) {
			dateCnt++
		}
		if IsIdentifier(v) {
			identCnt++
		}
		distinct[strings.TrimSpace(v)] = struct{}{}
	}

	total := float64(len(sample))
	switch {
	case float64(boolCnt)/total >= DetectDominance:
		return Boolean, false
	case float64(numCnt)/total >= DetectDominance:
		return Numeric, false
	case float64(dateCnt)/total >= DetectDominance:
		return Date, false
	case float64(identCnt)/total >= DetectDominance:
		return Identifier, false
	}
	if float64(len(distinct))/total < CategoricalMaxRatio {
		return Categorical, false
	}
	return Text, false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
