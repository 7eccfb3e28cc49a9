package classify

import (
	"github.com/civicwatch/complaint-api/schema"
)

const (
	lowTierScoreCap     = 25
	mediumTierScoreBase = 50
	highTierScoreBase   = 75
	highTierPositives   = 2
)

// ClassifyTier reduces the final tag set and working score into the
// canonical tier. The negative check runs before the positive count on
// purpose: any red flag dominates, no matter how much positive evidence
// is present.
func ClassifyTier(tags []schema.Tag, score int) (schema.AuthenticityTier, int) {
	hasNegative := false
	positives := 0
	for _, t := range tags {
		if schema.IsNegativeTag(t) {
			hasNegative = true
		}
		if schema.IsPositiveTag(t) {
			positives++
		}
	}

	switch {
	case hasNegative:
		return schema.TierLow, minInt(score, lowTierScoreCap)
	case positives >= highTierPositives:
		return schema.TierHigh, maxInt(score, highTierScoreBase)
	default:
		return schema.TierMedium, maxInt(score, mediumTierScoreBase)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
