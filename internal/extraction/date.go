package extraction

import (
	"sort"
	"strings"
	"time"
)

// DatePurpose parameterizes the date extractor: the same scan runs for the
// issue date and the payment deadline with different labels and a different
// plausibility direction.
type DatePurpose int

const (
	PurposeInvoiceDate DatePurpose = iota
	PurposeDueDate
)

func (p DatePurpose) fieldKind() FieldKind {
	if p == PurposeDueDate {
		return FieldDueDate
	}
	return FieldInvoiceDate
}

// plausible reports whether a resolved date is on the expected side of now:
// due dates should not be in the past, invoice dates not in the future.
func (p DatePurpose) plausible(date string, now time.Time) bool {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if p == PurposeDueDate {
		return !t.Before(today)
	}
	return !t.After(today)
}

// Date extraction pattern positions: labeled same-line, labeled next-line,
// then the whole-document fallback scan.
const (
	datePatternSameLine = iota
	datePatternNextLine
	datePatternAnywhere
	dateNPatterns
)

// DateCandidates finds purpose-specific labeled dates, falling back to any
// date-shaped token in the document. Fallback candidates on the plausible
// side of now get a one-point boost. All values are normalized to
// YYYY-MM-DD; tokens that fail NormalizeDate are dropped.
func DateCandidates(text string, purpose DatePurpose, now time.Time, policy PatternPriority) []FieldCandidate {
	lines := strings.Split(text, "\n")
	kind := purpose.fieldKind()
	var out []FieldCandidate

	add := func(patternIdx int, token, line string, boost int) {
		value := NormalizeDate(token)
		if value == "" {
			return
		}
		out = append(out, FieldCandidate{
			Kind:       kind,
			Value:      value,
			Confidence: policy.confidenceFor(patternIdx, dateNPatterns) + boost,
			SourceLine: strings.TrimSpace(line),
		})
	}

	labeled := false
	for i, line := range lines {
		if _, idx := findLabel(line, kind); idx < 0 {
			continue
		}
		if tok := reDateToken.FindString(line); tok != "" {
			add(datePatternSameLine, tok, line, 0)
			labeled = true
			continue
		}
		if i+1 < len(lines) {
			if tok := reDateToken.FindString(lines[i+1]); tok != "" {
				add(datePatternNextLine, tok, lines[i+1], 0)
				labeled = true
			}
		}
	}

	if !labeled {
		for _, line := range lines {
			for _, tok := range reDateToken.FindAllString(line, -1) {
				boost := 0
				if norm := NormalizeDate(tok); norm != "" && purpose.plausible(norm, now) {
					boost = 1
				}
				add(datePatternAnywhere, tok, line, boost)
			}
		}
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Confidence > out[b].Confidence })
	return out
}
