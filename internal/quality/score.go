package quality

import (
	"math"

	"github.com/KaramelBytes/tablecheck-cli/internal/semantic"
)

// Scoring ladder constants. Each penalty category caps independently before
// the final clamp; penalties across categories are additive.
const (
	// Duplicate rows: percentage * rate, capped.
	duplicatePenaltyRate = 1.5
	duplicatePenaltyCap  = 15.0

	// Missing cells: percentage * rate, capped.
	missingPenaltyRate = 1.2
	missingPenaltyCap  = 25.0

	// Semantic inconsistency tiers, summed across columns and capped.
	conformityLowBand     = 50.0
	conformityMidBand     = 70.0
	conformityHighBand    = 90.0
	semanticPenaltyLow    = 3.0
	semanticPenaltyMid    = 2.0
	semanticPenaltyHigh   = 1.0
	semanticPenaltyCap    = 35.0

	// Low cardinality on key-like (identifier-named) columns.
	keyUniquenessFloor    = 0.8
	cardinalityPenaltyPer = 2.0
	cardinalityPenaltyCap = 10.0

	// Bonus for clean data: no duplicates and low missingness.
	cleanBonus           = 10.0
	cleanBonusMissingMax = 5.0
)

// duplicatePenalty is monotonic non-decreasing in the duplicate percentage.
func duplicatePenalty(pct float64) float64 {
	return math.Min(duplicatePenaltyCap, pct*duplicatePenaltyRate)
}

// missingPenalty is monotonic non-decreasing in the missing percentage.
func missingPenalty(pct float64) float64 {
	return math.Min(missingPenaltyCap, pct*missingPenaltyRate)
}

// semanticPenalty sums the per-column conformity tier penalties. Columns
// flagged as insufficient data are excluded from aggregation.
func semanticPenalty(profiles []ColumnProfile) float64 {
	var p float64
	for _, c := range profiles {
		if c.InsufficientData {
			continue
		}
		switch {
		case c.Conformity < conformityLowBand:
			p += semanticPenaltyLow
		case c.Conformity < conformityMidBand:
			p += semanticPenaltyMid
		case c.Conformity < conformityHighBand:
			p += semanticPenaltyHigh
		}
	}
	return math.Min(semanticPenaltyCap, p)
}

// cardinalityPenalty charges key-like columns whose uniqueness falls below
// the floor. A column is key-like when its name infers to identifier.
func cardinalityPenalty(profiles []ColumnProfile) float64 {
	var p float64
	for _, c := range profiles {
		if c.InsufficientData {
			continue
		}
		if semantic.InferExpected(c.Name) != semantic.Identifier {
			continue
		}
		if c.UniquenessRatio < keyUniquenessFloor {
			p += cardinalityPenaltyPer
		}
	}
	return math.Min(cardinalityPenaltyCap, p)
}

// computeScore applies the penalty/bonus ladder starting at 100. All
// intermediate values stay real; only the final score is rounded (half-up)
// and clamped to [0, 100].
func computeScore(profiles []ColumnProfile, dup DuplicateStats, missing MissingStats) int {
	penalties := duplicatePenalty(dup.Percentage) +
		missingPenalty(missing.Percentage) +
		semanticPenalty(profiles) +
		cardinalityPenalty(profiles)

	var bonus float64
	if dup.Count == 0 && missing.Percentage < cleanBonusMissingMax {
		bonus = cleanBonus
	}

	score := math.Round(100.0 - penalties + bonus)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}
