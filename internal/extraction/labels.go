package extraction

import "strings"

// labelSynonyms maps each field kind to the label variants seen on Turkish
// utility bills. Matching is case-insensitive. New locales or layouts extend
// this table; no extractor hard-codes a label string.
var labelSynonyms = map[FieldKind][]string{
	FieldInvoiceNumber: {
		"fatura no",
		"fatura numarası",
		"fatura seri no",
		"belge no",
	},
	FieldInvoiceDate: {
		"fatura tarihi",
		"düzenleme tarihi",
		"tanzim tarihi",
	},
	FieldDueDate: {
		"son ödeme tarihi",
		"son ödeme",
		"ödeme tarihi",
		"vade tarihi",
	},
	FieldAmount: {
		"fatura tutarı",
		"ödenecek tutar",
		"toplam tutar",
		"tutar",
		"toplam",
	},
	FieldPeriod: {
		"fatura dönemi",
		"dönem",
		"okuma dönemi",
	},
	FieldConsumption: {
		"tüketim",
		"toplam tüketim",
		"tüketim miktarı",
	},
	FieldAccountNumber: {
		"sözleşme hesap no",
		"hesap no",
		"sözleşme no",
		"abone no",
	},
	FieldInstallationNumber: {
		"tesisat no",
		"tesisat numarası",
		"sayaç no",
	},
	FieldCustomerNumber: {
		"müşteri no",
		"müşteri numarası",
	},
	FieldFullName: {
		"ad soyad",
		"adı soyadı",
		"sayın",
		"ünvan",
	},
	FieldAddress: {
		"adres",
		"kullanım yeri",
		"tüketim adresi",
	},
	FieldConsumerGroup: {
		"abone grubu",
		"tarife",
		"tarife grubu",
		"abone türü",
	},
}

// labelScanOrder fixes the iteration order over labelSynonyms so parses are
// deterministic. Longer, more specific kinds come before generic ones.
var labelScanOrder = []FieldKind{
	FieldInvoiceNumber,
	FieldInvoiceDate,
	FieldDueDate,
	FieldAccountNumber,
	FieldInstallationNumber,
	FieldCustomerNumber,
	FieldConsumerGroup,
	FieldConsumption,
	FieldPeriod,
	FieldAmount,
	FieldFullName,
	FieldAddress,
}

// findLabel reports the first synonym of kind present in line (lowercased
// match), and its byte offset.
func findLabel(line string, kind FieldKind) (string, int) {
	lower := strings.ToLower(line)
	for _, syn := range labelSynonyms[kind] {
		if idx := strings.Index(lower, syn); idx >= 0 {
			return syn, idx
		}
	}
	return "", -1
}

// hasAnyLabel reports whether any known field label occurs in line.
func hasAnyLabel(line string) bool {
	for _, kind := range labelScanOrder {
		if _, idx := findLabel(line, kind); idx >= 0 {
			return true
		}
	}
	return false
}
