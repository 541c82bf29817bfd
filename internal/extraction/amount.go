package extraction

import (
	"regexp"
	"sort"
	"strings"
)

var (
	reCurrencyAmount = regexp.MustCompile(`(\d[\d.,]*)\s*(?:TL\b|₺)`)
	reNumericToken   = regexp.MustCompile(`\d[\d.,]*`)
)

// dateLineKeywords mark lines that talk about dates; numeric tokens on such
// lines are never amount candidates (OCR'd dates look like amounts).
var dateLineKeywords = []string{"tarih", "ödeme"}

// amountKeywords is the ordered keyword list for amount-labeled lines.
var amountKeywords = []string{"tutar", "toplam"}

// isDateLine reports whether a line contains both a date-shaped token and a
// date keyword.
func isDateLine(line string) bool {
	if !reDateToken.MatchString(line) {
		return false
	}
	lower := strings.ToLower(line)
	for _, kw := range dateLineKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// AmountCandidates scans every non-date line for a numeric token adjacent to
// a currency marker or an amount keyword. Values outside (0, MaxAmount] are
// dropped by CleanAmount.
func AmountCandidates(text string, policy PatternPriority) []FieldCandidate {
	// pattern 0: currency-adjacent number; 1..n: keyword-labeled lines
	n := 1 + len(amountKeywords)
	var out []FieldCandidate

	add := func(patternIdx int, raw, line string) {
		value := CleanAmount(raw)
		if value == "" {
			return
		}
		out = append(out, FieldCandidate{
			Kind:       FieldAmount,
			Value:      value,
			Confidence: policy.confidenceFor(patternIdx, n),
			SourceLine: strings.TrimSpace(line),
		})
	}

	for _, line := range strings.Split(text, "\n") {
		if isDateLine(line) {
			continue
		}
		if m := reCurrencyAmount.FindStringSubmatch(line); m != nil {
			add(0, m[1], line)
		}
		lower := strings.ToLower(line)
		for k, kw := range amountKeywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			if tok := reNumericToken.FindString(line); tok != "" {
				add(1+k, tok, line)
			}
		}
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Confidence > out[b].Confidence })
	return out
}
