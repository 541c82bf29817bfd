package extraction

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/enerjitakip/fatura-extract/constants"
)

var reKWhToken = regexp.MustCompile(`(?i)(\d[\d.,]*)\s*kwh`)

// spatialKinds are the only fields the spatial table may resolve: columns
// holding amounts, dates and identifier numbers.
var spatialKinds = map[FieldKind]bool{
	FieldAmount:             true,
	FieldInvoiceDate:        true,
	FieldDueDate:            true,
	FieldInvoiceNumber:      true,
	FieldAccountNumber:      true,
	FieldInstallationNumber: true,
	FieldCustomerNumber:     true,
}

// mergeInput carries everything the merger reconciles: independent heuristic
// outputs over the same recognition result.
type mergeInput struct {
	fullText   string
	labelPairs []LabelPair
	table      Table
	hasTable   bool
	candidates map[FieldKind][]FieldCandidate
}

// mergeFields resolves every field in a fixed priority order: label table,
// spatial table, candidate extractors, keyword detectors, derived fields.
// Unresolved fields are recorded with an explicit unresolved source and an
// empty value; nothing is ever backfilled with a literal.
func mergeFields(in mergeInput) map[FieldKind]Resolution {
	out := map[FieldKind]Resolution{}

	byLabel := map[FieldKind]LabelPair{}
	for _, p := range in.labelPairs {
		if _, ok := byLabel[p.Kind]; !ok {
			byLabel[p.Kind] = p
		}
	}

	resolve := func(kind FieldKind) {
		if p, ok := byLabel[kind]; ok {
			if v := validateFor(kind, p.Value); v != "" {
				out[kind] = Resolution{Kind: kind, Value: v, Source: SourceLabelTable}
				return
			}
		}
		if in.hasTable && spatialKinds[kind] {
			if v := spatialValue(in.table, kind); v != "" {
				out[kind] = Resolution{Kind: kind, Value: v, Source: SourceSpatialTable}
				return
			}
		}
		if cands := in.candidates[kind]; len(cands) > 0 {
			best := cands[0]
			out[kind] = Resolution{Kind: kind, Value: best.Value, Source: SourceExtractor, Confidence: best.Confidence}
			return
		}
		out[kind] = Resolution{Kind: kind, Source: SourceUnresolved}
	}

	for _, kind := range []FieldKind{
		FieldInvoiceNumber, FieldInvoiceDate, FieldDueDate, FieldAmount,
		FieldAccountNumber, FieldInstallationNumber, FieldCustomerNumber,
		FieldFullName, FieldAddress, FieldConsumerGroup,
		FieldPeriod, FieldConsumption,
	} {
		resolve(kind)
	}

	// domain keyword detectors
	if p, ok := constants.DetectProvider(in.fullText); ok {
		out[FieldProvider] = Resolution{Kind: FieldProvider, Value: p, Source: SourceKeyword}
	} else {
		out[FieldProvider] = Resolution{Kind: FieldProvider, Source: SourceUnresolved}
	}
	if t, ok := constants.DetectInvoiceType(in.fullText); ok {
		out[FieldInvoiceType] = Resolution{Kind: FieldInvoiceType, Value: string(t), Source: SourceKeyword}
	} else {
		out[FieldInvoiceType] = Resolution{Kind: FieldInvoiceType, Source: SourceUnresolved}
	}

	// derived: billing period from the resolved invoice date
	if out[FieldPeriod].Value == "" {
		if period := derivePeriod(out[FieldInvoiceDate].Value); period != "" {
			out[FieldPeriod] = Resolution{Kind: FieldPeriod, Value: period, Source: SourceDerived}
		}
	}

	// derived: total consumption via the max-kWh heuristic
	if out[FieldConsumption].Value == "" {
		if c := maxConsumption(in.fullText); c != "" {
			out[FieldConsumption] = Resolution{Kind: FieldConsumption, Value: c, Source: SourceDerived}
		}
	}

	return out
}

// validateFor runs the type-specific validator for kind so no unvalidated
// value reaches the output. Free-text kinds are only trimmed.
func validateFor(kind FieldKind, raw string) string {
	switch kind {
	case FieldInvoiceNumber, FieldAccountNumber, FieldInstallationNumber, FieldCustomerNumber:
		return CleanInvoiceNumber(raw)
	case FieldInvoiceDate, FieldDueDate:
		if tok := reDateToken.FindString(raw); tok != "" {
			return NormalizeDate(tok)
		}
		return ""
	case FieldAmount:
		return CleanAmount(raw)
	default:
		return strings.TrimSpace(raw)
	}
}

// spatialValue looks for a labeled cell and reads the next populated cell in
// the same row as the field value.
func spatialValue(t Table, kind FieldKind) string {
	cells := append([]TableCell(nil), t.Cells...)
	sort.SliceStable(cells, func(a, b int) bool {
		if cells[a].Row != cells[b].Row {
			return cells[a].Row < cells[b].Row
		}
		return cells[a].Col < cells[b].Col
	})
	for i, c := range cells {
		if _, idx := findLabel(c.Content, kind); idx < 0 {
			continue
		}
		for _, next := range cells[i+1:] {
			if next.Row != c.Row {
				break
			}
			if v := validateFor(kind, next.Content); v != "" {
				return v
			}
		}
	}
	return ""
}

// derivePeriod maps a normalized invoice date to a localized "month year"
// billing-period label.
func derivePeriod(invoiceDate string) string {
	if invoiceDate == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", invoiceDate)
	if err != nil {
		return ""
	}
	name, ok := constants.MonthNames[int(t.Month())]
	if !ok {
		return ""
	}
	return name + " " + t.Format("2006")
}

// maxConsumption scans lines containing both "Toplam" and a kWh suffix and
// keeps the numerically largest kWh token, returned verbatim.
func maxConsumption(text string) string {
	best := ""
	bestV := 0.0
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "toplam") || !strings.Contains(lower, "kwh") {
			continue
		}
		for _, m := range reKWhToken.FindAllStringSubmatch(line, -1) {
			v, ok := parseDecimal(m[1])
			if !ok {
				continue
			}
			if best == "" || v > bestV {
				best, bestV = m[1], v
			}
		}
	}
	return best
}
