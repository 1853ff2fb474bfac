package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KaramelBytes/tablecheck-cli/internal/semantic"
)

func cleanProfile(name string) ColumnProfile {
	return ColumnProfile{
		Name:         name,
		ExpectedType: semantic.Text,
		DetectedType: semantic.Text,
		Conformity:   100,
	}
}

func TestComputeScorePerfectData(t *testing.T) {
	profiles := []ColumnProfile{cleanProfile("a"), cleanProfile("b")}
	score := computeScore(profiles, DuplicateStats{}, MissingStats{})
	assert.Equal(t, 100, score, "clean data clamps at 100 even with the bonus")
}

func TestComputeScoreBounds(t *testing.T) {
	// worst case: every penalty at its cap
	profiles := make([]ColumnProfile, 40)
	for i := range profiles {
		profiles[i] = ColumnProfile{
			Name:            "customer_id",
			ExpectedType:    semantic.Identifier,
			DetectedType:    semantic.Text,
			Conformity:      10,
			UniquenessRatio: 0.1,
		}
	}
	score := computeScore(profiles,
		DuplicateStats{Count: 90, Percentage: 90},
		MissingStats{Count: 900, Percentage: 90})
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
	// caps: 15 + 25 + 35 + 10 = 85 in penalties
	assert.Equal(t, 15, score)
}

func TestComputeScoreWorkedExample(t *testing.T) {
	// 2% duplicates (penalty 3), 15% missing (penalty 18), three columns in
	// the 50-70 conformity band (penalty 6): 100 - 27 = 73.
	profiles := []ColumnProfile{
		{Name: "a", Conformity: 55},
		{Name: "b", Conformity: 60},
		{Name: "c", Conformity: 65},
		{Name: "d", Conformity: 95},
	}
	score := computeScore(profiles,
		DuplicateStats{Count: 2, Percentage: 2},
		MissingStats{Count: 15, Percentage: 15})
	assert.Equal(t, 73, score)
}

func TestComputeScoreDuplicatePenaltyMonotonic(t *testing.T) {
	profiles := []ColumnProfile{cleanProfile("a")}
	prev := 101
	for pct := 0.0; pct <= 20; pct += 2 {
		count := 0
		if pct > 0 {
			count = 1
		}
		score := computeScore(profiles,
			DuplicateStats{Count: count, Percentage: pct}, MissingStats{})
		assert.LessOrEqual(t, score, prev, "score must not increase as duplicates grow")
		prev = score
	}
}

func TestComputeScoreMissingPenaltyMonotonic(t *testing.T) {
	profiles := []ColumnProfile{cleanProfile("a")}
	prev := 101
	for pct := 0.0; pct <= 40; pct += 5 {
		count := int(pct)
		score := computeScore(profiles,
			DuplicateStats{}, MissingStats{Count: count, Percentage: pct})
		assert.LessOrEqual(t, score, prev, "score must not increase as missing grows")
		prev = score
	}
}

func TestComputeScoreInsufficientColumnsExcluded(t *testing.T) {
	withFlag := []ColumnProfile{
		cleanProfile("a"),
		{Name: "empty_col", Conformity: 0, InsufficientData: true},
	}
	without := []ColumnProfile{cleanProfile("a")}
	assert.Equal(t,
		computeScore(without, DuplicateStats{}, MissingStats{}),
		computeScore(withFlag, DuplicateStats{}, MissingStats{}),
		"insufficient-data columns must not contribute semantic penalties")
}

func TestComputeScoreCardinalityPenalty(t *testing.T) {
	keyCol := []ColumnProfile{{
		Name:            "order_id",
		ExpectedType:    semantic.Identifier,
		DetectedType:    semantic.Identifier,
		Conformity:      100,
		UniquenessRatio: 0.5,
	}}
	// duplicates present so the clean bonus does not mask the penalty
	dup := DuplicateStats{Count: 1, Percentage: 0}
	withPenalty := computeScore(keyCol, dup, MissingStats{})

	keyCol[0].UniquenessRatio = 0.95
	withoutPenalty := computeScore(keyCol, dup, MissingStats{})
	assert.Equal(t, 2, withoutPenalty-withPenalty)
}

func TestComputeScoreCleanBonusRequiresNoDuplicates(t *testing.T) {
	profiles := []ColumnProfile{cleanProfile("a")}
	clean := computeScore(profiles, DuplicateStats{}, MissingStats{Percentage: 4})
	oneDup := computeScore(profiles, DuplicateStats{Count: 1, Percentage: 0.1}, MissingStats{Percentage: 4})
	assert.Greater(t, clean, oneDup)
}
