package extraction

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

func TestDateCandidatesSameLine(t *testing.T) {
	text := "Fatura Tarihi: 05.03.2024"
	cands := DateCandidates(text, PurposeInvoiceDate, testNow, DefaultPatternPriority)
	if len(cands) == 0 || cands[0].Value != "2024-03-05" {
		t.Fatalf("want 2024-03-05, got %+v", cands)
	}
	if cands[0].Kind != FieldInvoiceDate {
		t.Errorf("kind = %v, want %v", cands[0].Kind, FieldInvoiceDate)
	}
}

func TestDateCandidatesNextLine(t *testing.T) {
	text := "Son Ödeme Tarihi\n15.04.2024"
	cands := DateCandidates(text, PurposeDueDate, testNow, DefaultPatternPriority)
	if len(cands) == 0 || cands[0].Value != "2024-04-15" {
		t.Fatalf("want 2024-04-15, got %+v", cands)
	}
}

// With no labeled date anywhere, the whole document is scanned and the date
// on the plausible side of now wins: due dates on/after today, invoice
// dates on/before today.
func TestDateFallbackPlausibility(t *testing.T) {
	text := "bir satır 15.03.2024\nbaşka satır 15.04.2024"

	due := DateCandidates(text, PurposeDueDate, testNow, DefaultPatternPriority)
	if len(due) == 0 || due[0].Value != "2024-04-15" {
		t.Fatalf("due date: want 2024-04-15 preferred, got %+v", due)
	}

	inv := DateCandidates(text, PurposeInvoiceDate, testNow, DefaultPatternPriority)
	if len(inv) == 0 || inv[0].Value != "2024-03-15" {
		t.Fatalf("invoice date: want 2024-03-15 preferred, got %+v", inv)
	}
}

func TestDateCandidatesRejectInvalid(t *testing.T) {
	text := "Fatura Tarihi: 13.45.2024"
	cands := DateCandidates(text, PurposeInvoiceDate, testNow, DefaultPatternPriority)
	for _, c := range cands {
		if c.SourceLine == "Fatura Tarihi: 13.45.2024" && c.Value != "" {
			t.Errorf("invalid month emitted: %+v", c)
		}
	}
}

func TestDatePurposeLabelsAreDistinct(t *testing.T) {
	text := "Fatura Tarihi: 05.03.2024\nSon Ödeme Tarihi: 15.04.2024"

	inv := DateCandidates(text, PurposeInvoiceDate, testNow, DefaultPatternPriority)
	if len(inv) == 0 || inv[0].Value != "2024-03-05" {
		t.Fatalf("invoice date: want 2024-03-05, got %+v", inv)
	}
	due := DateCandidates(text, PurposeDueDate, testNow, DefaultPatternPriority)
	if len(due) == 0 || due[0].Value != "2024-04-15" {
		t.Fatalf("due date: want 2024-04-15, got %+v", due)
	}
}
