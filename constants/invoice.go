package constants

import "strings"

// InvoiceType is the utility category recovered from the invoice text.
type InvoiceType string

const (
	Electricity InvoiceType = "electricity"
	Water       InvoiceType = "water"
	Gas         InvoiceType = "gas"
)

// UnitFor maps an invoice type to its consumption unit.
func UnitFor(t InvoiceType) string {
	switch t {
	case Electricity:
		return "kwh"
	case Water, Gas:
		return "m3"
	default:
		return ""
	}
}

// invoiceTypeKeywords maps lowercase substrings to invoice types. Matched
// against the full document text; first hit wins in declaration order.
var invoiceTypeKeywords = []struct {
	keyword string
	typ     InvoiceType
}{
	{"elektrik", Electricity},
	{"su fatura", Water},
	{"su tüketim", Water},
	{"doğalgaz", Gas},
	{"gaz fatura", Gas},
}

// DetectInvoiceType scans text for utility-type keywords.
func DetectInvoiceType(text string) (InvoiceType, bool) {
	lower := strings.ToLower(text)
	for _, kw := range invoiceTypeKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.typ, true
		}
	}
	return "", false
}

// KnownProviders lists Turkish utility providers matched by substring against
// the raw document text. New providers are additions to this table.
var KnownProviders = []string{
	"CK Boğaziçi",
	"CK Enerji",
	"Enerjisa",
	"BEDAŞ",
	"AYEDAŞ",
	"Toroslar",
	"Başkent EDAŞ",
	"Gediz Elektrik",
	"UEDAŞ",
	"Aksa Elektrik",
	"Aksa Doğalgaz",
	"İGDAŞ",
	"Bursagaz",
	"Başkentgaz",
	"İSKİ",
	"ASKİ",
	"İZSU",
}

// DetectProvider returns the first known provider found in text.
func DetectProvider(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, p := range KnownProviders {
		if strings.Contains(lower, strings.ToLower(p)) {
			return p, true
		}
	}
	return "", false
}

// MonthNames holds localized month names for billing-period labels,
// indexed by month number.
var MonthNames = map[int]string{
	1:  "Ocak",
	2:  "Şubat",
	3:  "Mart",
	4:  "Nisan",
	5:  "Mayıs",
	6:  "Haziran",
	7:  "Temmuz",
	8:  "Ağustos",
	9:  "Eylül",
	10: "Ekim",
	11: "Kasım",
	12: "Aralık",
}
