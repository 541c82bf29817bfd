package extraction

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func testEngine() *Engine {
	return NewEngine(Config{
		Now: func() time.Time { return time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC) },
	}, nil)
}

func TestExtractInvoiceNumberEndToEnd(t *testing.T) {
	res := testEngine().Extract(RecognitionResult{FullText: "Fatura No: 123456789"})
	if res.Invoice.InvoiceNumber != "123456789" {
		t.Errorf("invoiceNumber = %q, want 123456789", res.Invoice.InvoiceNumber)
	}
}

func TestExtractAmountEndToEnd(t *testing.T) {
	res := testEngine().Extract(RecognitionResult{FullText: "Tutar: 420,75 TL"})
	if res.Invoice.Amount != "420.75" {
		t.Errorf("amount = %q, want 420.75", res.Invoice.Amount)
	}
}

func TestExtractDueDateNextLineEndToEnd(t *testing.T) {
	res := testEngine().Extract(RecognitionResult{FullText: "Son Ödeme Tarihi\n15.04.2024"})
	if res.Invoice.DueDate != "2024-04-15" {
		t.Errorf("dueDate = %q, want 2024-04-15", res.Invoice.DueDate)
	}
}

func TestExtractConsumptionMaxHeuristic(t *testing.T) {
	text := "Dönem Toplam 300,5 kWh\nToplam 484,023 kWh"
	res := testEngine().Extract(RecognitionResult{FullText: text})
	if res.Invoice.Consumption != "484,023" {
		t.Errorf("consumption = %q, want 484,023 (max-value heuristic)", res.Invoice.Consumption)
	}
}

const sampleBill = `CK Boğaziçi Elektrik Perakende Satış A.Ş.
Elektrik Faturası

Sayın: AHMET YILMAZ
Adres: Cumhuriyet Mah. Bahar Sk. Beşiktaş/İstanbul
Fatura No: 123456789
Fatura Tarihi: 05.03.2024
Son Ödeme Tarihi: 15.04.2024
Tutar: 420,75 TL
Sözleşme Hesap No: 10020030
Tesisat No: 40050060
Müşteri No: 70080090
Abone Grubu: Mesken
Dönem Toplam 300,5 kWh
Toplam 484,023 kWh`

func TestExtractFullBill(t *testing.T) {
	res := testEngine().Extract(RecognitionResult{FullText: sampleBill})
	inv := res.Invoice

	want := map[string]string{
		"invoiceNumber":      "123456789",
		"invoiceDate":        "2024-03-05",
		"dueDate":            "2024-04-15",
		"amount":             "420.75",
		"provider":           "CK Boğaziçi",
		"invoiceType":        "electricity",
		"unit":               "kwh",
		"period":             "Mart 2024",
		"consumption":        "484,023",
		"accountNumber":      "10020030",
		"installationNumber": "40050060",
		"customerNumber":     "70080090",
		"consumerGroup":      "Mesken",
		"fullName":           "AHMET YILMAZ",
	}
	got := map[string]string{
		"invoiceNumber":      inv.InvoiceNumber,
		"invoiceDate":        inv.InvoiceDate,
		"dueDate":            inv.DueDate,
		"amount":             inv.Amount,
		"provider":           inv.Provider,
		"invoiceType":        inv.InvoiceType,
		"unit":               inv.Unit,
		"period":             inv.Period,
		"consumption":        inv.Consumption,
		"accountNumber":      inv.AccountNumber,
		"installationNumber": inv.InstallationNumber,
		"customerNumber":     inv.CustomerNumber,
		"consumerGroup":      inv.ConsumerGroup,
		"fullName":           inv.FullName,
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
	if !strings.Contains(inv.Address, "Cumhuriyet Mah.") {
		t.Errorf("address = %q, want the street line", inv.Address)
	}
	if inv.Warning != "" {
		t.Errorf("unexpected warning %q", inv.Warning)
	}
	if inv.RawText != sampleBill {
		t.Error("rawText must carry the recognition text verbatim")
	}
}

func TestExtractWarningOnMissingRequired(t *testing.T) {
	res := testEngine().Extract(RecognitionResult{FullText: "hiçbir alan yok"})
	w := res.Invoice.Warning
	if w == "" {
		t.Fatal("expected a warning for unresolved required fields")
	}
	for _, f := range []string{"invoiceNumber", "invoiceDate", "amount"} {
		if !strings.Contains(w, f) {
			t.Errorf("warning %q missing field %s", w, f)
		}
	}
}

// Unresolved fields stay empty; nothing is backfilled with literals.
func TestExtractNoFabricatedValues(t *testing.T) {
	res := testEngine().Extract(RecognitionResult{FullText: "Tutar: 420,75 TL"})
	inv := res.Invoice
	for name, v := range map[string]string{
		"accountNumber":      inv.AccountNumber,
		"installationNumber": inv.InstallationNumber,
		"customerNumber":     inv.CustomerNumber,
		"averageConsumption": inv.AverageConsumption,
		"consumption":        inv.Consumption,
	} {
		if v != "" {
			t.Errorf("%s = %q, want empty (explicit unresolved)", name, v)
		}
	}
	for _, r := range res.Resolutions {
		if r.Kind == FieldAccountNumber && r.Source != SourceUnresolved {
			t.Errorf("account number source = %v, want unresolved", r.Source)
		}
	}
}

func TestExtractResolutionProvenance(t *testing.T) {
	res := testEngine().Extract(RecognitionResult{FullText: sampleBill})
	src := map[FieldKind]Source{}
	for _, r := range res.Resolutions {
		src[r.Kind] = r.Source
	}
	if src[FieldInvoiceNumber] != SourceLabelTable {
		t.Errorf("invoice number source = %v, want label table", src[FieldInvoiceNumber])
	}
	if src[FieldProvider] != SourceKeyword {
		t.Errorf("provider source = %v, want keyword", src[FieldProvider])
	}
	if src[FieldPeriod] != SourceDerived {
		t.Errorf("period source = %v, want derived", src[FieldPeriod])
	}
	if src[FieldConsumption] != SourceDerived {
		t.Errorf("consumption source = %v, want derived", src[FieldConsumption])
	}
}

func TestExtractSpatialTableAttached(t *testing.T) {
	words := []WordElement{
		word("Dönem", 0, 0), word("Tüketim", 200, 0),
		word("Ocak", 0, 50), word("120", 200, 50),
		word("Şubat", 0, 100), word("135", 200, 100),
	}
	res := testEngine().Extract(RecognitionResult{FullText: "Elektrik", Words: words})
	if len(res.Invoice.TableHeaders) != 2 || res.Invoice.TableHeaders[0] != "Dönem" {
		t.Fatalf("tableHeaders = %v", res.Invoice.TableHeaders)
	}
	if len(res.Invoice.TableData) != 2 {
		t.Fatalf("tableData rows = %d, want 2", len(res.Invoice.TableData))
	}
}

func TestExtractOutputMatchesSchema(t *testing.T) {
	for _, text := range []string{sampleBill, "hiçbir alan yok", "Tutar: 420,75 TL"} {
		res := testEngine().Extract(RecognitionResult{FullText: text})
		b, err := json.Marshal(res.Invoice)
		if err != nil {
			t.Fatal(err)
		}
		if err := ValidateInvoiceJSON(b); err != nil {
			t.Errorf("formatter output violates canonical schema for %q: %v", text[:12], err)
		}
	}
}
