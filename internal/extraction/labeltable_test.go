package extraction

import "testing"

func pairValue(pairs []LabelPair, kind FieldKind) string {
	for _, p := range pairs {
		if p.Kind == kind {
			return p.Value
		}
	}
	return ""
}

func TestParseLabelTableColonSplit(t *testing.T) {
	pairs := ParseLabelTable("Fatura No: 123456789")
	if got := pairValue(pairs, FieldInvoiceNumber); got != "123456789" {
		t.Errorf("invoice number = %q, want 123456789", got)
	}
}

func TestParseLabelTableWideSpaceSplit(t *testing.T) {
	pairs := ParseLabelTable("Müşteri No      70080090")
	if got := pairValue(pairs, FieldCustomerNumber); got != "70080090" {
		t.Errorf("customer number = %q, want 70080090", got)
	}
}

// A label line with neither colon nor wide spaces still becomes a table row
// when the previous line was one; the value is the remainder after the label.
func TestParseLabelTablePropagation(t *testing.T) {
	text := "Abone No: 12345678\nMüşteri No 87654321"
	pairs := ParseLabelTable(text)
	if got := pairValue(pairs, FieldAccountNumber); got != "12345678" {
		t.Errorf("account number = %q, want 12345678", got)
	}
	if got := pairValue(pairs, FieldCustomerNumber); got != "87654321" {
		t.Errorf("customer number = %q, want 87654321 (propagation rule)", got)
	}
}

func TestParseLabelTableNoPropagationAfterGap(t *testing.T) {
	text := "serbest metin satırı\nMüşteri No 87654321"
	pairs := ParseLabelTable(text)
	if got := pairValue(pairs, FieldCustomerNumber); got != "" {
		t.Errorf("line without colon/spacing/propagation classified as row: %q", got)
	}
}

func TestParseLabelTableFirstOccurrenceWins(t *testing.T) {
	text := "Tutar: 420,75 TL\nTutar: 999,99 TL"
	pairs := ParseLabelTable(text)
	if got := pairValue(pairs, FieldAmount); got != "420,75 TL" {
		t.Errorf("amount = %q, want first occurrence 420,75 TL", got)
	}
}

// Dotted capital İ (U+0130) lowercases to a shorter byte sequence, so byte
// offsets found in the lowered line must be mapped back before slicing the
// original. An all-caps label row exercises exactly that path.
func TestParseLabelTableTurkishUppercaseLabel(t *testing.T) {
	text := "Fatura No: 123456\nSON ÖDEME TARİHİ 15.04.2024"
	pairs := ParseLabelTable(text)
	if got := pairValue(pairs, FieldDueDate); got != "15.04.2024" {
		t.Errorf("due date = %q, want 15.04.2024", got)
	}
}

func TestParseLabelTableMultipleLabelsPerLine(t *testing.T) {
	pairs := ParseLabelTable("Fatura No: 123456789   Fatura Tarihi: 05.03.2024")
	if got := pairValue(pairs, FieldInvoiceNumber); got != "123456789" {
		t.Errorf("invoice number = %q, want 123456789 (truncated at next label)", got)
	}
	if got := pairValue(pairs, FieldInvoiceDate); got != "05.03.2024" {
		t.Errorf("invoice date = %q, want 05.03.2024", got)
	}
}
