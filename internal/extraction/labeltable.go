package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var reWideSpace = regexp.MustCompile(`\s{3,}`)

// LabelPair is one "label: value" association recovered from the text.
type LabelPair struct {
	Kind  FieldKind
	Label string
	Value string
	Line  string
}

// isLabelRow classifies a line as a table row: it must contain a known field
// label and either a colon, a run of 3+ spaces, or follow another table row
// (multi-line label blocks propagate the classification).
func isLabelRow(line string, prevWasRow bool) bool {
	if !hasAnyLabel(line) {
		return false
	}
	return strings.Contains(line, ":") || reWideSpace.MatchString(line) || prevWasRow
}

// ParseLabelTable scans consecutive lines for label/value rows. For each
// label the value is taken from, in order: the colon split, the wide-space
// split, then the remainder of the line after the label; the first non-empty
// result wins. The first occurrence of a field across the document wins and
// later duplicates are ignored.
func ParseLabelTable(text string) []LabelPair {
	var pairs []LabelPair
	seen := map[FieldKind]bool{}

	prevWasRow := false
	for _, line := range strings.Split(text, "\n") {
		if !isLabelRow(line, prevWasRow) {
			prevWasRow = false
			continue
		}
		prevWasRow = true

		for _, kind := range labelScanOrder {
			if seen[kind] {
				continue
			}
			label, idx := findLabel(line, kind)
			if idx < 0 {
				continue
			}
			value := extractLabelValue(line, label, idx)
			if value == "" {
				continue
			}
			seen[kind] = true
			pairs = append(pairs, LabelPair{Kind: kind, Label: label, Value: value, Line: strings.TrimSpace(line)})
		}
	}
	return pairs
}

// extractLabelValue pulls the value following a label occurrence. labelIdx is
// a byte offset into the lowered line; ToLower keeps rune counts but not byte
// counts ('İ' shrinks from 2 bytes to 1), so the offset is mapped back onto
// the original line through rune positions.
func extractLabelValue(line, label string, labelIdx int) string {
	lower := strings.ToLower(line)
	afterLabel := utf8.RuneCountInString(lower[:labelIdx]) + utf8.RuneCountInString(label)
	rest := line[runeOffset(line, afterLabel):]

	// a later label on the same line ends this value
	if cut := nextLabelIndex(rest); cut > 0 {
		rest = rest[:cut]
	}

	if i := strings.Index(rest, ":"); i >= 0 {
		if v := strings.TrimSpace(rest[i+1:]); v != "" {
			return v
		}
	}
	if loc := reWideSpace.FindStringIndex(rest); loc != nil {
		if v := strings.TrimSpace(rest[loc[1]:]); v != "" {
			return v
		}
	}
	return strings.TrimSpace(strings.TrimLeft(rest, ":. "))
}

// nextLabelIndex returns the byte offset in s of the first known label, or -1.
func nextLabelIndex(s string) int {
	lower := strings.ToLower(s)
	best := -1
	for _, kind := range labelScanOrder {
		for _, syn := range labelSynonyms[kind] {
			if idx := strings.Index(lower, syn); idx >= 0 && (best < 0 || idx < best) {
				best = idx
			}
		}
	}
	if best < 0 {
		return -1
	}
	return runeOffset(s, utf8.RuneCountInString(lower[:best]))
}

// runeOffset returns the byte offset of the nth rune of s.
func runeOffset(s string, n int) int {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}
