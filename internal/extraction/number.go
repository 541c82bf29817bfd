package extraction

import (
	"regexp"
	"sort"
	"strings"
)

// invoiceNumberPatterns is the ordered pattern list for invoice numbers,
// most specific first. Ranking between patterns is decided by the
// PatternPriority policy, not by list order alone.
var invoiceNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)fatura\s*no\s*[:.]?\s*(\d[\d ]*)`),
	regexp.MustCompile(`(?i)fatura\s*numarası\s*[:.]?\s*(\d[\d ]*)`),
	regexp.MustCompile(`(?i)\bno\s*[:.]\s*(\d[\d ]*)`),
	regexp.MustCompile(`\b(\d{6,16})\b`),
	nil, // label line followed by a digits-only next line; handled in code
	regexp.MustCompile(`\b(\d{9})\b`),
}

var reDigitsOnlyLine = regexp.MustCompile(`^\s*\d[\d ]*\s*$`)

// InvoiceNumberCandidates applies the ordered pattern list to the full text
// and returns validated candidates, best-first under the given policy.
// Values failing the 6..16 digit check are dropped, not emitted.
func InvoiceNumberCandidates(text string, policy PatternPriority) []FieldCandidate {
	lines := strings.Split(text, "\n")
	n := len(invoiceNumberPatterns)
	var out []FieldCandidate

	add := func(patternIdx int, raw, sourceLine string) {
		value := CleanInvoiceNumber(raw)
		if value == "" {
			return
		}
		out = append(out, FieldCandidate{
			Kind:       FieldInvoiceNumber,
			Value:      value,
			Confidence: policy.confidenceFor(patternIdx, n),
			SourceLine: strings.TrimSpace(sourceLine),
		})
	}

	for i, re := range invoiceNumberPatterns {
		if re == nil {
			// pattern 4: any label line whose next line is a plain digit run
			for j := 0; j < len(lines)-1; j++ {
				if hasAnyLabel(lines[j]) && reDigitsOnlyLine.MatchString(lines[j+1]) {
					add(i, lines[j+1], lines[j+1])
				}
			}
			continue
		}
		for _, line := range lines {
			for _, m := range re.FindAllStringSubmatch(line, -1) {
				add(i, m[1], line)
			}
		}
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Confidence > out[b].Confidence })
	return out
}
