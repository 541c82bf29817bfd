package extraction

// PatternPriority decides how ordered pattern lists rank their matches.
// Extractors assign confidence from the pattern's list position and the
// merger consumes candidates best-first, so this single constant controls
// whether specific label-anchored patterns or broad fallback patterns win
// when both match.
type PatternPriority int

const (
	// PreferLaterPatterns assigns confidence = pattern index + 1, ranking
	// matches from later (broader) patterns above earlier (more specific)
	// ones. This is the long-standing production ranking; see
	// TestPatternPriorityPolicy before changing the default.
	PreferLaterPatterns PatternPriority = iota

	// PreferEarlierPatterns inverts the ranking so the most specific
	// pattern that matched wins.
	PreferEarlierPatterns
)

// DefaultPatternPriority is the ranking used by NewEngine.
const DefaultPatternPriority = PreferLaterPatterns

// confidenceFor converts a pattern's list position into a candidate
// confidence under the given policy. Higher is better; nPatterns is the
// length of the pattern list.
func (p PatternPriority) confidenceFor(patternIndex, nPatterns int) int {
	if p == PreferEarlierPatterns {
		return nPatterns - patternIndex
	}
	return patternIndex + 1
}
