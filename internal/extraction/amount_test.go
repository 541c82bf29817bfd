package extraction

import "testing"

func TestAmountCandidates(t *testing.T) {
	text := "Tutar: 420,75 TL"
	cands := AmountCandidates(text, DefaultPatternPriority)
	if len(cands) == 0 {
		t.Fatal("expected candidates")
	}
	if cands[0].Value != "420.75" {
		t.Errorf("best candidate = %q, want 420.75", cands[0].Value)
	}
}

// Lines that talk about dates are never amount candidates even when the
// OCR'd date fragment parses as a number.
func TestAmountSkipsDateLines(t *testing.T) {
	text := "Son Ödeme Tarihi: 15.04.2024 TL\nToplam: 89,90 TL"
	cands := AmountCandidates(text, DefaultPatternPriority)
	for _, c := range cands {
		if c.SourceLine == "Son Ödeme Tarihi: 15.04.2024 TL" {
			t.Errorf("amount candidate taken from a date line: %+v", c)
		}
	}
	if len(cands) == 0 || cands[0].Value != "89.90" {
		t.Fatalf("want 89.90 from the Toplam line, got %+v", cands)
	}
}

func TestAmountCurrencySymbol(t *testing.T) {
	cands := AmountCandidates("Ödenecek 1.234,56 ₺", DefaultPatternPriority)
	if len(cands) == 0 || cands[0].Value != "1234.56" {
		t.Fatalf("want 1234.56, got %+v", cands)
	}
}

func TestAmountRejectsImplausible(t *testing.T) {
	for _, text := range []string{
		"Toplam: 250000 TL", // above ceiling
		"Tutar: 0 TL",       // not positive
		"Tutar: abc TL",
	} {
		if cands := AmountCandidates(text, DefaultPatternPriority); len(cands) != 0 {
			t.Errorf("%q: implausible value emitted: %+v", text, cands)
		}
	}
}

func TestIsDateLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Son Ödeme Tarihi: 15.04.2024", true},
		{"Fatura Tarihi 05.03.2024", true},
		{"Tutar: 420,75 TL", false},    // no date token
		{"15.04.2024", false},          // date token but no date keyword
		{"Ödeme noktaları", false},     // keyword but no date token
	}
	for _, tt := range tests {
		if got := isDateLine(tt.line); got != tt.want {
			t.Errorf("isDateLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
