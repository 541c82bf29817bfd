package extraction

import "testing"

func TestInvoiceNumberCandidates(t *testing.T) {
	text := "Fatura No: 123456789\nAdres: Test Mah. No:4"

	cands := InvoiceNumberCandidates(text, PreferEarlierPatterns)
	if len(cands) == 0 {
		t.Fatal("expected candidates")
	}
	if cands[0].Value != "123456789" {
		t.Errorf("best candidate = %q, want 123456789", cands[0].Value)
	}
	// "No:4" cleans to a single digit and must be dropped, not emitted
	for _, c := range cands {
		if c.Value == "4" {
			t.Errorf("invalid short candidate emitted: %+v", c)
		}
	}
}

func TestInvoiceNumberNextLineRule(t *testing.T) {
	text := "Fatura No\n123456789"
	cands := InvoiceNumberCandidates(text, PreferEarlierPatterns)
	found := false
	for _, c := range cands {
		if c.Value == "123456789" {
			found = true
		}
	}
	if !found {
		t.Errorf("label line followed by digit line not picked up: %+v", cands)
	}
}

// The ranking between specific and fallback patterns is a deliberate,
// switchable policy; this test pins both orderings.
func TestPatternPriorityPolicy(t *testing.T) {
	text := "Fatura No: 123456\nReferans 987654321"

	later := InvoiceNumberCandidates(text, PreferLaterPatterns)
	if later[0].Value != "987654321" {
		t.Errorf("PreferLaterPatterns best = %q, want 987654321 (broad 9-digit fallback)", later[0].Value)
	}

	earlier := InvoiceNumberCandidates(text, PreferEarlierPatterns)
	if earlier[0].Value != "123456" {
		t.Errorf("PreferEarlierPatterns best = %q, want 123456 (label-anchored match)", earlier[0].Value)
	}
}

func TestInvoiceNumberCandidatesSorted(t *testing.T) {
	text := "Fatura No: 123456789\nBelgeler 111222333\n"
	for _, policy := range []PatternPriority{PreferLaterPatterns, PreferEarlierPatterns} {
		cands := InvoiceNumberCandidates(text, policy)
		for i := 1; i < len(cands); i++ {
			if cands[i].Confidence > cands[i-1].Confidence {
				t.Errorf("policy %v: candidates not sorted best-first: %+v", policy, cands)
			}
		}
	}
}
